package interpreter

import (
	"errors"
	"fmt"
	"log/slog"

	"gmldraw/internal/logging"
)

var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// Token is one parsed command. Unused arguments are -1 and Len counts the
// letter together with its argument text.
type Token struct {
	Letter byte
	P1, P2 int
	Len    int
}

func (t Token) String() string {
	switch table[t.Letter].arity {
	case noArgs:
		return string(t.Letter)
	case twoArgs:
		return fmt.Sprintf("%c%d,%d", t.Letter, t.P1, t.P2)
	}
	return fmt.Sprintf("%c%d", t.Letter, t.P1)
}

// Diagnostic describes a problem found while running a command string.
// Offset indexes Input; for ErrUnexpectedCharacter it may equal len(Input)
// when the string ended where an argument was expected.
type Diagnostic struct {
	Err    error
	Letter byte
	Offset int
	Input  string
}

// Fatal reports whether the rest of the command string was abandoned.
func (d Diagnostic) Fatal() bool {
	return errors.Is(d.Err, ErrUnexpectedCharacter)
}

func (d Diagnostic) Error() string {
	if !d.Fatal() {
		return fmt.Sprintf("%v %q at offset %d", d.Err, d.Letter, d.Offset)
	}
	if d.Offset >= len(d.Input) {
		return fmt.Sprintf("%v: end of input after %q", d.Err, d.Letter)
	}
	return fmt.Sprintf("%v %q after %q at offset %d", d.Err, d.Input[d.Offset], d.Letter, d.Offset)
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Hooks are optional callbacks invoked synchronously while a string runs.
type Hooks struct {
	OnCommand    func(Token)
	OnDiagnostic func(Diagnostic)
}

type Option func(*Interpreter)

func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.log = l }
}

func WithHooks(h Hooks) Option {
	return func(in *Interpreter) { in.hooks = h }
}

// Interpreter executes GML command strings against a single DrawingContext.
// It is not safe for concurrent use.
type Interpreter struct {
	ctx    *DrawingContext
	canvas Canvas
	log    *slog.Logger
	hooks  Hooks
}

func New(canvas Canvas, ctx *DrawingContext, opts ...Option) *Interpreter {
	in := &Interpreter{
		ctx:    ctx,
		canvas: canvas,
		log:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Context exposes the drawing state. Callers must not modify it while Run
// is executing.
func (in *Interpreter) Context() *DrawingContext {
	return in.ctx
}

// Run processes one command string. State carries over between calls.
// Problems are reported through the logger and hooks: an unknown letter is
// skipped, a malformed M is dropped silently, and a missing numeric
// argument abandons the rest of the string.
func (in *Interpreter) Run(commands string) {
	for i := 0; i < len(commands); i++ {
		c := commands[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}

		switch c {
		case ';', ' ', ',':
			continue
		}

		cmd, ok := table[c]
		if !ok {
			in.report(Diagnostic{Err: ErrUnknownCommand, Letter: c, Offset: i, Input: commands})
			continue
		}

		switch cmd.arity {
		case noArgs:
			in.dispatch(cmd, Token{Letter: c, P1: -1, P2: -1, Len: 1})

		case twoArgs:
			j := i + 1
			var sign byte
			if j < len(commands) && (commands[j] == '+' || commands[j] == '-') {
				sign = commands[j]
				j++
			}
			x, y, n, ok := scanPair(commands[j:])
			if !ok {
				// the sign, if any, stays consumed
				i = j - 1
				continue
			}
			if sign != 0 {
				if sign == '-' {
					x = -x
				}
				ux, uy := in.ctx.Unscaled()
				x += ux
				y += uy
			}
			in.dispatch(cmd, Token{Letter: c, P1: x, P2: y, Len: j + n - i})
			i = j + n - 1

		case oneArg:
			v, n, ok := scanUint(commands[i+1:])
			if !ok {
				in.report(Diagnostic{Err: ErrUnexpectedCharacter, Letter: c, Offset: i + 1, Input: commands})
				return
			}
			in.dispatch(cmd, Token{Letter: c, P1: v, P2: -1, Len: n + 1})
			i += n
		}
	}
}

func (in *Interpreter) dispatch(cmd command, tok Token) {
	in.log.Debug("gml command", "token", tok.String())
	cmd.exec(in, tok.P1, tok.P2)
	if in.hooks.OnCommand != nil {
		in.hooks.OnCommand(tok)
	}
}

func (in *Interpreter) report(d Diagnostic) {
	in.log.Warn(d.Error(), "letter", string(d.Letter), "offset", d.Offset, "input", d.Input)
	if in.hooks.OnDiagnostic != nil {
		in.hooks.OnDiagnostic(d)
	}
}
