package interpreter

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a file of named drawings, each an ordered list of GML strings:
//
//	# comment
//	drawing car {
//	    "S32C3"
//	    "BM12,1r3"
//	}
type Script struct {
	Drawings []*Drawing `parser:"@@*"`
}

type Drawing struct {
	Pos      lexer.Position
	Name     string   `parser:"'drawing' @(Ident | String)"`
	Commands []string `parser:"'{' @String* '}'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"[^"\n]*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `[{}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
)

func Parse(data string) (*Script, error) {
	return ParseNamed("input", data)
}

// ParseNamed parses data, using name in error positions.
func ParseNamed(name, data string) (*Script, error) {
	s, err := parser.ParseString(name, data)
	if err != nil {
		return nil, err
	}
	if _, err := s.Library(); err != nil {
		return nil, err
	}
	return s, nil
}

func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseNamed(path, string(data))
}

// Library indexes the drawings by name. Names must be unique.
func (s *Script) Library() (*Library, error) {
	lib := NewLibrary()
	for _, d := range s.Drawings {
		if _, ok := lib.Get(d.Name); ok {
			return nil, fmt.Errorf("%s: drawing %s already defined", d.Pos, d.Name)
		}
		lib.Set(d.Name, d.Commands)
	}
	return lib, nil
}

// Exec runs every drawing in file order, or only the named ones in the
// order given. Unknown names are rejected before anything is drawn.
func (s *Script) Exec(in *Interpreter, names ...string) error {
	lib, err := s.Library()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = lib.Names()
	}
	for _, name := range names {
		if _, ok := lib.Get(name); !ok {
			return fmt.Errorf("undefined drawing %s", name)
		}
	}
	for _, name := range names {
		cmds, _ := lib.Get(name)
		for _, c := range cmds {
			in.Run(c)
		}
	}
	return nil
}
