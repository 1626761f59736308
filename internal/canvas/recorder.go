package canvas

import (
	"fmt"
	"io"
)

type OpKind uint8

const (
	OpColor OpKind = iota
	OpLine
)

// Op is one recorded canvas request. For OpColor only Color is set.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 int
	Color          int
}

func (o Op) String() string {
	if o.Kind == OpColor {
		return fmt.Sprintf("color %d", o.Color)
	}
	return fmt.Sprintf("line %d %d %d %d %d", o.X1, o.Y1, o.X2, o.Y2, o.Color)
}

// Recorder keeps every request it receives, in order.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) SetColor(index int) {
	r.Ops = append(r.Ops, Op{Kind: OpColor, Color: index})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2, color int) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: color})
}

// Lines returns only the recorded line requests.
func (r *Recorder) Lines() []Op {
	var lines []Op
	for _, o := range r.Ops {
		if o.Kind == OpLine {
			lines = append(lines, o)
		}
	}
	return lines
}

// WriteTo writes one op per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, o := range r.Ops {
		n, err := fmt.Fprintln(w, o)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
