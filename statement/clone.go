package statement

// Clone returns a deep copy of s. The copy shares no nodes with the
// original.
func Clone(s Statement) Statement {
	switch s := s.(type) {
	case *Block:
		list := make([]Statement, len(s.List))

		for i, c := range s.List {
			list[i] = Clone(c)
		}

		return &Block{List: list}
	case *If:
		return &If{Cond: s.Cond, Body: Clone(s.Body)}
	case *IfElse:
		return &IfElse{Cond: s.Cond, Then: Clone(s.Then), Else: Clone(s.Else)}
	case *While:
		return &While{Cond: s.Cond, Body: Clone(s.Body)}
	case *Call:
		return &Call{Name: s.Name}
	}

	return nil
}

// Equal reports whether a and b are structurally identical: same kinds,
// same conditions and call names, same children in the same order.
func Equal(a, b Statement) bool {
	switch a := a.(type) {
	case *Block:
		b, ok := b.(*Block)
		if !ok || len(a.List) != len(b.List) {
			return false
		}

		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}

		return true
	case *If:
		b, ok := b.(*If)

		return ok && a.Cond == b.Cond && Equal(a.Body, b.Body)
	case *IfElse:
		b, ok := b.(*IfElse)

		return ok && a.Cond == b.Cond && Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *While:
		b, ok := b.(*While)

		return ok && a.Cond == b.Cond && Equal(a.Body, b.Body)
	case *Call:
		b, ok := b.(*Call)

		return ok && a.Name == b.Name
	}

	return false
}
