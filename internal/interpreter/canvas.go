package interpreter

// Canvas receives the primitive drawing requests issued by the interpreter.
// Color values are palette indices; resolving them is up to the canvas.
type Canvas interface {
	SetColor(index int)
	DrawLine(x1, y1, x2, y2, color int)
}
