package search

import (
	"fmt"
	"math/bits"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
)

// Bound represents the precision of a stored search score relative to the
// alpha/beta window that produced it. Klikschaak's search distinguishes all
// three classical bounds (spec §4.4), unlike the teacher's two-valued
// Exact/Lower scheme: a fail-low node's score is only known to be an upper
// bound (AlphaBound), which yields a cutoff only when a later probe's alpha
// is at or above the stored score.
type Bound uint8

const (
	ExactBound Bound = iota
	AlphaBound       // upper bound: true score <= stored score
	BetaBound        // lower bound: true score >= stored score
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case AlphaBound:
		return "Alpha"
	case BetaBound:
		return "Beta"
	default:
		return "?"
	}
}

// entry is one transposition table slot. The full hash is kept alongside the
// bucket index to resolve collisions (spec §4.4: "key collision check by full
// 64-bit compare").
type entry struct {
	hash  board.ZobristHash
	used  bool
	bound Bound
	depth int
	score eval.Score
	best  board.Move
}

// Table is a single-threaded transposition table. Unlike the teacher's
// lock-free atomic-pointer design, Klikschaak's search is single-threaded
// (spec §5), so a plain slice with unconditional overwrite replacement
// suffices (spec §4.4: "replacement can be trivial").
type Table struct {
	slots []entry
	mask  uint64
	used  int
}

// NewTable allocates a table sized to roughly the given number of entries,
// rounded down to a power of two (spec §4.4: "bounded size, e.g. 1,000,000
// entries").
func NewTable(maxEntries int) *Table {
	if maxEntries < 1 {
		maxEntries = 1
	}
	n := uint64(1) << (bits.Len64(uint64(maxEntries)) - 1)
	return &Table{
		slots: make([]entry, n),
		mask:  n - 1,
	}
}

// Clear discards all stored entries without reallocating.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = entry{}
	}
	t.used = 0
}

// Len returns the number of occupied slots.
func (t *Table) Len() int {
	return t.used
}

// Probe looks up hash, returning the stored bound/depth/score/best move.
func (t *Table) Probe(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	e := &t.slots[uint64(hash)&t.mask]
	if !e.used || e.hash != hash {
		return ExactBound, 0, 0, board.Move{}, false
	}
	return e.bound, e.depth, e.score, e.best, true
}

// Store records a search result, unconditionally overwriting whatever
// occupied the slot.
func (t *Table) Store(hash board.ZobristHash, bound Bound, depth int, score eval.Score, best board.Move) {
	e := &t.slots[uint64(hash)&t.mask]
	if !e.used {
		t.used++
	}
	*e = entry{hash: hash, used: true, bound: bound, depth: depth, score: score, best: best}
}

func (t *Table) String() string {
	return fmt.Sprintf("TT[%v/%v]", t.used, len(t.slots))
}
