// Package eval implements static position evaluation for Klikschaak, combining
// material, piece-square tables, stack-specific terms, king safety, passed pawns,
// and a check bonus into a single centipawn score.
package eval

import "github.com/klikschaak/engine/pkg/board"

// Evaluate returns a static score for b from White's perspective: positive favors
// White, negative favors Black. Evaluate is a pure function of the Board (spec
// §4.3) and never mutates it.
func Evaluate(b *board.Board) Score {
	endgame := isEndgame(b)

	score := material(b)
	score += pieceSquareTerm(b, endgame)
	score += stackTerm(b)
	score += kingSafetyTerm(b)
	score += passedPawnsTerm(b)
	score += checkTerm(b)

	return score
}

// checkTerm rewards delivering check and penalizes being in check, from the side
// to move's perspective, then signs the result onto White's perspective (spec
// §4.3.6).
func checkTerm(b *board.Board) Score {
	stm := b.SideToMove()
	opp := stm.Opposite()

	var s Score
	if b.IsInCheck(opp) {
		s += 50
	}
	if b.IsInCheck(stm) {
		s -= 50
	}

	if stm == board.Black {
		return -s
	}
	return s
}
