package storage

import (
	"sort"
)

// table collection typée indexée par id, avec générateur d'id monotone.
// Les ids ne sont jamais réutilisés. La table n'est pas synchronisée :
// le verrou du store englobe chaque opération.
type table[T any] struct {
	rows   map[uint]*T
	lastID uint
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]*T)}
}

// nextID attribue le prochain id, jamais réutilisé
func (t *table[T]) nextID() uint {
	t.lastID++
	return t.lastID
}

func (t *table[T]) put(id uint, row *T) {
	t.rows[id] = row
}

func (t *table[T]) get(id uint) (*T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) count() int {
	return len(t.rows)
}

// ids retourne les ids triés par ordre croissant d'insertion
func (t *table[T]) ids() []uint {
	out := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// all retourne toutes les lignes par id croissant
func (t *table[T]) all() []*T {
	out := make([]*T, 0, len(t.rows))
	for _, id := range t.ids() {
		out = append(out, t.rows[id])
	}
	return out
}

// filter retourne les lignes satisfaisant le prédicat, par id croissant
func (t *table[T]) filter(pred func(*T) bool) []*T {
	var out []*T
	for _, id := range t.ids() {
		if row := t.rows[id]; pred(row) {
			out = append(out, row)
		}
	}
	return out
}
