package interpreter

type arity uint8

const (
	noArgs arity = iota
	oneArg
	twoArgs
)

// command describes one GML letter: how many arguments it takes and what
// it does with them.
type command struct {
	arity arity
	exec  func(in *Interpreter, p1, p2 int)
}

// step builds a relative move whose displacement is (dx, dy) times the
// scaled parameter.
func step(dx, dy int) command {
	return command{arity: oneArg, exec: func(in *Interpreter, p1, _ int) {
		d := in.ctx.Scale * p1
		in.move(in.ctx.X+dx*d, in.ctx.Y+dy*d)
	}}
}

var table = map[byte]command{
	'U': step(0, -1),
	'D': step(0, 1),
	'L': step(-1, 0),
	'R': step(1, 0),
	'E': step(1, -1),
	'F': step(1, 1),
	'G': step(-1, 1),
	'H': step(-1, -1),

	'M': {arity: twoArgs, exec: func(in *Interpreter, p1, p2 int) {
		in.move(in.ctx.Scale*p1, in.ctx.Scale*p2)
	}},

	// move without drawing
	'B': {arity: noArgs, exec: func(in *Interpreter, _, _ int) {
		in.ctx.PenUp.Arm()
	}},
	// draw, then stay where we were
	'N': {arity: noArgs, exec: func(in *Interpreter, _, _ int) {
		in.ctx.ReturnOrigin.Arm()
	}},

	'C': {arity: oneArg, exec: func(in *Interpreter, p1, _ int) {
		in.ctx.Color = p1
		in.canvas.SetColor(p1)
	}},
	'S': {arity: oneArg, exec: func(in *Interpreter, p1, _ int) {
		in.ctx.Scale = p1 / 4
	}},
	'A': {arity: oneArg, exec: func(in *Interpreter, p1, _ int) {
		in.ctx.Angle = float64(p1) * 90.0
	}},
	'T': {arity: oneArg, exec: func(in *Interpreter, p1, _ int) {
		in.ctx.Angle += float64(p1)
	}},
}

// move is shared by every movement command. Each one-shot flag is consumed
// here and nowhere else.
func (in *Interpreter) move(tx, ty int) {
	if !in.ctx.PenUp.Consume() {
		in.canvas.DrawLine(in.ctx.X, in.ctx.Y, tx, ty, in.ctx.Color)
	}
	if !in.ctx.ReturnOrigin.Consume() {
		in.ctx.X, in.ctx.Y = tx, ty
	}
}
