package eval

import "github.com/klikschaak/engine/pkg/board"

// NominalValue is the absolute centipawn value of a piece kind, per spec §4.3.1. The
// King's value is nominal and arbitrary; it is never a captured value, since kings are
// never captured, but it is the attacker value when move ordering scores a king capture.
func NominalValue(k board.PieceKind) Score {
	switch k {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	case board.King:
		return 20000
	default:
		return 0
	}
}

// material returns the side-to-move-independent material balance, White minus Black.
func material(b *board.Board) Score {
	var score Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.At(sq)
		for i := 0; i < int(st.Count); i++ {
			v := NominalValue(st.Kinds[i])
			if st.Color == board.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}
