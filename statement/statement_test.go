package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	for _, tc := range []struct {
		s Statement
		k Kind
	}{
		{&Block{}, KindBlock},
		{&If{Cond: "c", Body: &Block{}}, KindIf},
		{&IfElse{Cond: "c", Then: &Block{}, Else: &Block{}}, KindIfElse},
		{&While{Cond: "c", Body: &Block{}}, KindWhile},
		{&Call{Name: Move}, KindCall},
	} {
		assert.Equal(t, tc.k, tc.s.Kind(), "%v", tc.k)
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, name := range []string{Move, TurnLeft, TurnRight, Infect, Skip} {
		assert.True(t, IsPrimitive(name), "%v", name)
	}

	for _, name := range []string{"", "Move", "MOVE", "turn left", "moov", "foo", "infectall"} {
		assert.False(t, IsPrimitive(name), "%q", name)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := &Block{List: []Statement{
		&While{Cond: "next-is-empty", Body: &Block{List: []Statement{
			&Call{Name: Move},
		}}},
		&Call{Name: "seek"},
	}}

	c := Clone(s)
	require.True(t, Equal(s, c))

	c.(*Block).List[1].(*Call).Name = Infect
	c.(*Block).List[0].(*While).Body.(*Block).List[0].(*Call).Name = Skip

	assert.False(t, Equal(s, c))
	assert.Equal(t, "seek", s.List[1].(*Call).Name)
	assert.Equal(t, Move, s.List[0].(*While).Body.(*Block).List[0].(*Call).Name)
}

func TestEqual(t *testing.T) {
	a := &Block{List: []Statement{&Call{Name: Move}, &Call{Name: TurnLeft}}}

	assert.True(t, Equal(a, Clone(a)))
	assert.True(t, Equal(&Block{}, &Block{}))

	// order matters
	b := &Block{List: []Statement{&Call{Name: TurnLeft}, &Call{Name: Move}}}
	assert.False(t, Equal(a, b))

	// kind matters
	assert.False(t, Equal(&Block{}, &Call{Name: Move}))
	assert.False(t, Equal(
		&If{Cond: "c", Body: &Block{}},
		&While{Cond: "c", Body: &Block{}},
	))

	// condition matters
	assert.False(t, Equal(
		&If{Cond: "next-is-wall", Body: &Block{}},
		&If{Cond: "next-is-empty", Body: &Block{}},
	))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BLOCK", KindBlock.String())
	assert.Equal(t, "IF", KindIf.String())
	assert.Equal(t, "IF_ELSE", KindIfElse.String())
	assert.Equal(t, "WHILE", KindWhile.String())
	assert.Equal(t, "CALL", KindCall.String())
}
