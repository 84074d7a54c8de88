package analyze

import (
	"github.com/slowlang/bugs/statement"
)

// RenameCalls replaces, in place, every call to the instruction or
// procedure named from with a call to to, anywhere in s. It reports
// the number of calls renamed. Nothing else about s changes.
func RenameCalls(s statement.Statement, from, to string) (n int) {
	switch s := s.(type) {
	case *statement.Block:
		for _, c := range s.List {
			n += RenameCalls(c, from, to)
		}
	case *statement.If:
		n = RenameCalls(s.Body, from, to)
	case *statement.IfElse:
		n = RenameCalls(s.Then, from, to) + RenameCalls(s.Else, from, to)
	case *statement.While:
		n = RenameCalls(s.Body, from, to)
	case *statement.Call:
		if s.Name == from {
			s.Name = to
			n = 1
		}
	}

	return n
}
