package search

import (
	"container/heap"
	"fmt"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
)

// Priority represents a move's ordering priority, highest first (spec §4.4).
type Priority int32

const (
	ttMovePriority    Priority = 10_000_000
	capturePriority   Priority = 1_000_000
	killerOnePriority Priority = 900_000
	killerTwoPriority Priority = 800_000
)

// MoveList is a move priority queue used for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a MoveList over moves, scored by fn.
func NewMoveList(moves []board.Move, fn func(m board.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the highest-priority remaining move.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	e := heap.Pop(&ml.h).(elm)
	return e.m, true
}

// Size returns the number of moves left in the list.
func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { panic("fixed size heap") }

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// orderer computes move-ordering priority against a specific board position:
// TT move, then MVV-LVA captures, then killers, then history (spec §4.4).
type orderer struct {
	b       *board.Board
	ttMove  board.Move
	killers [2]board.Move
	history *[64][64]int
}

func (o orderer) priority(m board.Move) Priority {
	if !o.ttMove.IsZero() && m.Equals(o.ttMove) {
		return ttMovePriority
	}
	if gain, ok := captureGain(o.b, m); ok {
		return capturePriority + gain
	}
	if m.Equals(o.killers[0]) {
		return killerOnePriority
	}
	if m.Equals(o.killers[1]) {
		return killerTwoPriority
	}
	if o.history != nil {
		return Priority(o.history[m.From][m.To])
	}
	return 0
}

// moveCaptures reports whether m removes at least one enemy piece from b.
// Unklik departs a stack and may land on an empty, friendly (impossible --
// that's UnklikKlik) or enemy square, so its capture-ness is occupancy-driven
// rather than encoded in the Kind (spec §4.1.3).
func moveCaptures(b *board.Board, m board.Move) bool {
	switch m.Kind {
	case board.Capture, board.EnPassant, board.PromotionCapture:
		return true
	case board.Unklik:
		return !b.IsEmpty(m.To)
	default:
		return false
	}
}

// capturedValue sums the nominal value of every piece m removes from the
// board: a single-square capture may remove a whole enemy 2-stack at once
// (effEnemy classification doesn't distinguish stack size), so MVV-LVA
// generalizes "victim value" to the total material captured.
func capturedValue(b *board.Board, m board.Move) eval.Score {
	if m.Kind == board.EnPassant {
		return eval.NominalValue(board.Pawn)
	}
	st := b.At(m.To)
	var total eval.Score
	for i := 0; i < int(st.Count); i++ {
		total += eval.NominalValue(st.Kinds[i])
	}
	return total
}

// moverValue is the nominal value of the attacking piece. For a combined move
// (both stack pieces move as one), the weaker of the two governs soundness.
func moverValue(b *board.Board, m board.Move) eval.Score {
	fromStack := b.At(m.From)
	if m.UnklikIndex == board.CombinedMove {
		a, c := eval.NominalValue(fromStack.Kinds[0]), eval.NominalValue(fromStack.Kinds[1])
		return eval.Min(a, c)
	}
	return eval.NominalValue(fromStack.Kinds[m.UnklikIndex])
}

// captureGain returns the MVV-LVA priority delta for a capturing move: 10
// times the victim's value minus the attacker's value (spec §4.4).
func captureGain(b *board.Board, m board.Move) (Priority, bool) {
	if !moveCaptures(b, m) {
		return 0, false
	}
	gain := 10*capturedValue(b, m) - moverValue(b, m)
	return Priority(gain), true
}
