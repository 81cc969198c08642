package eval

import "github.com/klikschaak/engine/pkg/board"

// passedPawnBonus by rank advancement (own side's perspective: index 0 = own back
// rank, 1 = starting rank, 6 = one step from promotion), per spec §4.3.5.
var passedPawnBonus = [7]Score{0, 10, 15, 25, 45, 75, 120}

// passedPawnsTerm scores passed pawns for both colors, signed from White's view.
func passedPawnsTerm(b *board.Board) Score {
	return passedPawnsFor(b, board.White) - passedPawnsFor(b, board.Black)
}

func passedPawnsFor(b *board.Board, c board.Color) Score {
	opp := c.Opposite()
	var score Score

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.At(sq)
		for i := 0; i < int(st.Count); i++ {
			if st.Color != c || st.Kinds[i] != board.Pawn {
				continue
			}
			if !isPassed(b, sq, c, opp) {
				continue
			}

			advancement := advancementSteps(sq.Rank(), c)
			score += passedPawnBonus[advancement]
			if st.Count == 2 {
				score += 15 // passer sitting in a stack (spec §4.3.5).
			}
		}
	}
	return score
}

// isPassed reports whether no enemy pawn exists on sq's file or an adjacent file,
// strictly ahead (toward promotion) of sq.
func isPassed(b *board.Board, sq board.Square, c, opp board.Color) bool {
	dir := pawnAdvanceDir(c)
	file := int(sq.File())

	for r := int(sq.Rank()) + dir; r >= 0 && r <= 7; r += dir {
		for df := -1; df <= 1; df++ {
			f := file + df
			if f < 0 || f > 7 {
				continue
			}
			if stackHasKind(b.At(board.NewSquare(board.File(f), board.Rank(r))), opp, board.Pawn) {
				return false
			}
		}
	}
	return true
}

func pawnAdvanceDir(c board.Color) int {
	if c == board.White {
		return 1
	}
	return -1
}

func advancementSteps(r board.Rank, c board.Color) int {
	if c == board.White {
		return int(r)
	}
	return 7 - int(r)
}
