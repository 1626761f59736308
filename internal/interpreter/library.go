package interpreter

import "fmt"

// Library holds named drawings in definition order

type Library struct {
	names    []string
	drawings map[string][]string
}

func NewLibrary() *Library {
	return &Library{drawings: make(map[string][]string)}
}

func (l *Library) Get(name string) ([]string, bool) {
	v, ok := l.drawings[name]
	return v, ok
}

func (l *Library) Set(name string, commands []string) {
	if _, ok := l.drawings[name]; !ok {
		l.names = append(l.names, name)
	}
	l.drawings[name] = commands
}

func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *Library) String() string {
	return fmt.Sprint(l.names)
}
