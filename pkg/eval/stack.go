package eval

import "github.com/klikschaak/engine/pkg/board"

// stackTerm scores the Klikschaak-specific bonus/penalty for 2-piece stacks, per
// spec §4.3.3. Signed from White's perspective.
func stackTerm(b *board.Board) Score {
	var score Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.At(sq)
		if st.Count != 2 {
			continue
		}

		bottom, top := st.Kinds[0], st.Kinds[1]
		var s Score

		switch {
		case isMinor(bottom) && isMinor(top):
			s += 15
		case isMinor(bottom) && top == board.Rook:
			s += 20
		}

		if bottom == board.Queen || top == board.Queen {
			s += 5
		}

		if bottom == board.Pawn {
			s += 10
			if top != board.Pawn {
				s -= 5 // non-pawn sits on the pawn, limiting its advance.
			}
		}

		if st.Color == board.Black {
			s = -s
		}
		score += s
	}
	return score
}

func isMinor(k board.PieceKind) bool {
	return k == board.Knight || k == board.Bishop
}
