package analyze

import (
	"github.com/slowlang/bugs/statement"
)

// CountPrimitiveCalls reports the number of calls to primitive
// instructions (move, turnleft, turnright, infect, skip) in s.
//
// The count is lexical: a call to a user procedure contributes 0 no
// matter what its definition contains. s is not modified.
func CountPrimitiveCalls(s statement.Statement) (count int) {
	switch s := s.(type) {
	case *statement.Block:
		for _, c := range s.List {
			count += CountPrimitiveCalls(c)
		}
	case *statement.If:
		count = CountPrimitiveCalls(s.Body)
	case *statement.IfElse:
		count = CountPrimitiveCalls(s.Then) + CountPrimitiveCalls(s.Else)
	case *statement.While:
		count = CountPrimitiveCalls(s.Body)
	case *statement.Call:
		if statement.IsPrimitive(s.Name) {
			count = 1
		}
	}

	return count
}

// Depth reports the nesting height of s: 1 for a leaf, one more for
// each level of enclosing construct. It bounds the recursion depth of
// the other walkers in this package.
func Depth(s statement.Statement) (d int) {
	switch s := s.(type) {
	case *statement.Block:
		for _, c := range s.List {
			d = max(d, Depth(c))
		}
	case *statement.If:
		d = Depth(s.Body)
	case *statement.IfElse:
		d = max(Depth(s.Then), Depth(s.Else))
	case *statement.While:
		d = Depth(s.Body)
	case *statement.Call:
	}

	return d + 1
}
