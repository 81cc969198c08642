package search

import (
	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
)

// quiescence searches captures only, beyond the main alpha-beta horizon, to
// avoid misjudging positions mid-exchange (spec §4.4). qply counts plies into
// quiescence (capped at quiescenceMaxPly); ply is the absolute distance from
// the search root. Quiescence never returns a mate score itself.
func (r *run) quiescence(b *board.Board, alpha, beta eval.Score, qply, ply int) eval.Score {
	r.nodes++
	if r.nodes%NodeCheckInterval == 0 && r.shouldStop() {
		r.stopped = true
	}
	if r.stopped {
		return alpha
	}

	standPat := eval.Evaluate(b)
	if b.SideToMove() == board.Black {
		standPat = standPat.Negate() // Evaluate scores from White's view; negamax needs the mover's.
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if qply >= quiescenceMaxPly {
		return alpha
	}

	moves := captureMoves(b)
	ml := NewMoveList(moves, func(m board.Move) Priority {
		gain, _ := captureGain(b, m)
		return gain
	})

	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		u := b.Make(m)
		if b.IsInCheck(b.SideToMove().Opposite()) {
			b.Unmake(m, u)
			continue // left own king attacked: illegal.
		}

		score := r.quiescence(b, beta.Negate(), alpha.Negate(), qply+1, ply+1).Negate()
		b.Unmake(m, u)

		if r.stopped {
			return alpha
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// captureMoves filters pseudo-legal moves down to those that remove at least
// one enemy piece, for quiescence's captures-only search.
func captureMoves(b *board.Board) []board.Move {
	all := board.GeneratePseudoLegalMoves(b)
	out := all[:0:0]
	for _, m := range all {
		if moveCaptures(b, m) {
			out = append(out, m)
		}
	}
	return out
}
