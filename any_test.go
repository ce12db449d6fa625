package oncelist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/oncelist"
)

func TestFindByType(t *testing.T) {
	requireT := require.New(t)

	l := oncelist.New[any]()
	l.Push(1)
	l.Push("hello")
	l.Push(2)

	n, ok := oncelist.FindByType[int](l)
	requireT.True(ok)
	requireT.Equal(1, n)

	s, ok := oncelist.FindByType[string](l)
	requireT.True(ok)
	requireT.Equal("hello", s)

	_, ok = oncelist.FindByType[[]byte](l)
	requireT.False(ok)
}

func TestRemoveByType(t *testing.T) {
	requireT := require.New(t)

	l := oncelist.NewWith(oncelist.WithLen[any]())
	l.Push(1)
	l.Push("hello")

	n, ok := oncelist.RemoveByType[int](l)
	requireT.True(ok)
	requireT.Equal(1, n)
	requireT.Equal(1, l.Len())

	s, ok := oncelist.FindByType[string](l)
	requireT.True(ok)
	requireT.Equal("hello", s)

	_, ok = oncelist.RemoveByType[int](l)
	requireT.False(ok)
	requireT.Equal(1, l.Len())
}
