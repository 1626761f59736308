package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmldraw/internal/canvas"
)

const twoDrawings = `
# comments are ignored
drawing first {
	"S32C3"
	"R1"
}
drawing "second one" {
	"D1" # trailing comment
}
drawing empty {}
`

func TestParse(t *testing.T) {
	s, err := Parse(twoDrawings)
	require.NoError(t, err)
	require.Len(t, s.Drawings, 3)

	assert.Equal(t, "first", s.Drawings[0].Name)
	assert.Equal(t, []string{"S32C3", "R1"}, s.Drawings[0].Commands)
	assert.Equal(t, 3, s.Drawings[0].Pos.Line)
	assert.Equal(t, "second one", s.Drawings[1].Name)
	assert.Equal(t, []string{"D1"}, s.Drawings[1].Commands)
	assert.Empty(t, s.Drawings[2].Commands)

	lib, err := s.Library()
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second one", "empty"}, lib.Names())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"missing brace":  `drawing a { "R1"`,
		"bare command":   `"R1"`,
		"unquoted":       `drawing a { R1 }`,
		"duplicate name": "drawing a {}\ndrawing a {}",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(src)
			assert.Error(t, err)
		})
	}
}

func TestScript_Exec(t *testing.T) {
	s, err := Parse(twoDrawings)
	require.NoError(t, err)

	t.Run("all drawings in order", func(t *testing.T) {
		rec := &canvas.Recorder{}
		in := New(rec, NewDrawingContext(320, 200))
		require.NoError(t, s.Exec(in))
		assert.Equal(t, []canvas.Op{
			{Kind: canvas.OpColor, Color: 3},
			line(160, 100, 168, 100, 3),
			line(168, 100, 168, 108, 3),
		}, rec.Ops)
	})

	t.Run("selected drawings", func(t *testing.T) {
		rec := &canvas.Recorder{}
		in := New(rec, NewDrawingContext(320, 200))
		require.NoError(t, s.Exec(in, "second one", "first"))
		assert.Equal(t, []canvas.Op{
			line(160, 100, 160, 104, 1),
			{Kind: canvas.OpColor, Color: 3},
			line(160, 104, 168, 104, 3),
		}, rec.Ops)
	})

	t.Run("undefined drawing", func(t *testing.T) {
		rec := &canvas.Recorder{}
		in := New(rec, NewDrawingContext(320, 200))
		err := s.Exec(in, "first", "missing")
		assert.EqualError(t, err, "undefined drawing missing")
		assert.Empty(t, rec.Ops, "nothing runs when a name is unknown")
	})
}

func TestExampleScripts(t *testing.T) {
	for _, path := range []string{"../../examples/car.gml", "../../examples/donkey.gml"} {
		t.Run(path, func(t *testing.T) {
			s, err := ParseFile(path)
			require.NoError(t, err)

			var diags []Diagnostic
			rec := &canvas.Recorder{}
			in := New(rec, NewDrawingContext(320, 200), WithHooks(Hooks{
				OnDiagnostic: func(d Diagnostic) { diags = append(diags, d) },
			}))
			require.NoError(t, s.Exec(in))

			assert.Empty(t, diags)
			assert.NotEmpty(t, rec.Lines())
			assert.Equal(t, 8, in.Context().Scale)
			assert.Equal(t, 3, in.Context().Color)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile("does-not-exist.gml")
	assert.Error(t, err)
}
