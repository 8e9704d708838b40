package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableIdsMonotones(t *testing.T) {
	tbl := newTable[struct{ Nom string }]()

	a := tbl.nextID()
	b := tbl.nextID()
	require.Equal(t, a+1, b)

	tbl.put(a, &struct{ Nom string }{Nom: "a"})
	tbl.put(b, &struct{ Nom string }{Nom: "b"})
	require.Equal(t, 2, tbl.count())

	// un id supprimé n'est jamais réutilisé
	tbl.remove(b)
	c := tbl.nextID()
	require.Greater(t, c, b)
}

func TestTableIdsTries(t *testing.T) {
	tbl := newTable[struct{}]()
	for i := 0; i < 5; i++ {
		tbl.put(tbl.nextID(), &struct{}{})
	}
	tbl.remove(3)

	ids := tbl.ids()
	require.Equal(t, []uint{1, 2, 4, 5}, ids)
}

func TestTableFilter(t *testing.T) {
	type row struct{ Pair bool }
	tbl := newTable[row]()
	for i := 1; i <= 6; i++ {
		tbl.put(tbl.nextID(), &row{Pair: i%2 == 0})
	}

	pairs := tbl.filter(func(r *row) bool { return r.Pair })
	require.Len(t, pairs, 3)
}
