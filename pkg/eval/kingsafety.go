package eval

import "github.com/klikschaak/engine/pkg/board"

// kingSafetyTerm scores castled-king bonuses, uncastled penalties, a pawn-shield
// scan, and the (should-never-happen) stacked-king guard, per spec §4.3.4.
func kingSafetyTerm(b *board.Board) Score {
	return kingSafetyFor(b, board.White) - kingSafetyFor(b, board.Black)
}

func kingSafetyFor(b *board.Board, c board.Color) Score {
	sq := b.KingSquare(c)
	if sq == board.None {
		return 0
	}

	st := b.At(sq)
	if st.Count == 2 {
		return -40 // guard: kings never stack, but score defensively if it somehow occurred.
	}

	home := board.NewSquare(4, homeRank(c))
	castledFiles := [2]board.File{6, 2} // g-file, c-file landing squares.

	var score Score
	switch {
	case sq == home:
		score -= 20
	case sq.Rank() == homeRank(c) && (sq.File() == castledFiles[0] || sq.File() == castledFiles[1]):
		score += 30
	}

	shieldRankInt := int(homeRank(c)) + pawnShieldDirection(c)
	if shieldRankInt >= 0 && shieldRankInt <= 7 {
		shieldRank := board.Rank(shieldRankInt)
		for _, df := range [2]int{-1, 1} {
			f := int(sq.File()) + df
			if f < 0 || f > 7 {
				continue
			}
			shieldSq := board.NewSquare(board.File(f), shieldRank)
			if stackHasKind(b.At(shieldSq), c, board.Pawn) {
				score += 10
			}
		}
	}
	return score
}

func homeRank(c board.Color) board.Rank {
	if c == board.White {
		return 0
	}
	return 7
}

func pawnShieldDirection(c board.Color) int {
	if c == board.White {
		return 1
	}
	return -1
}

func stackHasKind(st board.Stack, c board.Color, k board.PieceKind) bool {
	if st.IsEmpty() || st.Color != c {
		return false
	}
	for i := 0; i < int(st.Count); i++ {
		if st.Kinds[i] == k {
			return true
		}
	}
	return false
}
