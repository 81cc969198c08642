package search

import (
	"time"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
)

// run holds the mutable state of one Search call's alpha-beta searches across
// all iterative-deepening depths: node/time accounting plus the engine-owned
// TT, killer and history tables, which persist across depths and searches
// (spec §5).
type run struct {
	tt          *Table
	killers     *[MaxPly][2]board.Move
	history     *[64][64]int
	nodes       uint64
	deadline    time.Time
	hasDeadline bool
	stopped     bool
}

func (r *run) shouldStop() bool {
	return r.hasDeadline && time.Now().After(r.deadline)
}

// negamax implements negamax alpha-beta with TT probing, move ordering and
// killer/history updates (spec §4.4). depth is the remaining search depth;
// ply is the absolute distance from the search root.
func (r *run) negamax(b *board.Board, depth, ply int, alpha, beta eval.Score) eval.Score {
	if r.nodes%NodeCheckInterval == 0 && r.shouldStop() {
		r.stopped = true
	}
	if r.stopped {
		return alpha
	}
	r.nodes++

	if b.HalfmoveClock() >= 100 {
		return eval.DrawScore
	}

	origAlpha := alpha

	var ttMove board.Move
	if bound, ttDepth, score, best, ok := r.tt.Probe(b.Hash()); ok {
		ttMove = best
		if ttDepth >= depth {
			switch bound {
			case ExactBound:
				return score
			case AlphaBound:
				if score <= alpha {
					return alpha
				}
			case BetaBound:
				if score >= beta {
					return beta
				}
			}
		}
	}

	if depth <= 0 {
		return r.quiescence(b, alpha, beta, 0, ply)
	}

	var killers [2]board.Move
	if ply < MaxPly {
		killers = r.killers[ply]
	}
	ord := orderer{b: b, ttMove: ttMove, killers: killers, history: r.history}
	moves := NewMoveList(board.GeneratePseudoLegalMoves(b), ord.priority)

	hasLegalMove := false
	var best board.Move
	first := true

	for {
		m, ok := moves.Next()
		if !ok {
			break
		}

		mover := b.SideToMove()
		u := b.Make(m)
		if b.IsInCheck(mover) {
			b.Unmake(m, u)
			continue
		}
		hasLegalMove = true

		var score eval.Score
		if first {
			score = r.negamax(b, depth-1, ply+1, beta.Negate(), alpha.Negate()).Negate()
		} else {
			// Null-window search first; re-search with the full window if it
			// suggests an improvement (spec §4.4).
			nullAlpha := alpha.Negate() - 1
			nullBeta := alpha.Negate()
			score = r.negamax(b, depth-1, ply+1, nullAlpha, nullBeta).Negate()
			if score > alpha && score < beta {
				score = r.negamax(b, depth-1, ply+1, beta.Negate(), alpha.Negate()).Negate()
			}
		}
		b.Unmake(m, u)

		if r.stopped {
			return alpha
		}

		if score > alpha {
			alpha = score
			best = m
		}
		first = false

		if alpha >= beta {
			if !moveCaptures(b, m) && ply < MaxPly {
				r.recordKiller(ply, m)
				r.history[m.From][m.To] += depth * depth
			}
			break
		}
	}

	if !hasLegalMove {
		if b.IsInCheck(b.SideToMove()) {
			return eval.MinScore + eval.Score(ply)
		}
		return eval.DrawScore
	}

	bound := ExactBound
	switch {
	case alpha <= origAlpha:
		bound = AlphaBound
	case alpha >= beta:
		bound = BetaBound
	}
	r.tt.Store(b.Hash(), bound, depth, alpha, best)

	return alpha
}

func (r *run) recordKiller(ply int, m board.Move) {
	if r.killers[ply][0].Equals(m) {
		return
	}
	r.killers[ply][1] = r.killers[ply][0]
	r.killers[ply][0] = m
}
