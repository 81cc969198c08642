package eval

import "github.com/klikschaak/engine/pkg/board"

// Piece-square tables, indexed a1..h8 (White's perspective; mirrored by rank for
// Black), per spec §4.3.2. Two king tables are kept, selected by game phase.

var pawnPST = [64]Score{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]Score{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]Score{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]Score{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]Score{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]Score{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgamePST = [64]Score{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

func pstIndex(sq board.Square, c board.Color) int {
	if c == board.White {
		return int(sq)
	}
	// Mirror by rank for Black: flip the rank while keeping the file.
	return int(board.NewSquare(sq.File(), board.NumRanks-1-sq.Rank()))
}

func pieceSquareValue(k board.PieceKind, sq board.Square, c board.Color, endgame bool) Score {
	idx := pstIndex(sq, c)
	switch k {
	case board.Pawn:
		return pawnPST[idx]
	case board.Knight:
		return knightPST[idx]
	case board.Bishop:
		return bishopPST[idx]
	case board.Rook:
		return rookPST[idx]
	case board.Queen:
		return queenPST[idx]
	case board.King:
		if endgame {
			return kingEndgamePST[idx]
		}
		return kingMidgamePST[idx]
	default:
		return 0
	}
}

// pieceSquareTerm sums the PST contribution for every piece on the board, signed
// from White's perspective.
func pieceSquareTerm(b *board.Board, endgame bool) Score {
	var score Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.At(sq)
		for i := 0; i < int(st.Count); i++ {
			v := pieceSquareValue(st.Kinds[i], sq, st.Color, endgame)
			if st.Color == board.White {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// isEndgame reports the spec's phase test: queens==0, or exactly one queen total and
// minor+rook count <= 1 (spec §4.3.2).
func isEndgame(b *board.Board) bool {
	queens, minorsAndRooks := 0, 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		st := b.At(sq)
		for i := 0; i < int(st.Count); i++ {
			switch st.Kinds[i] {
			case board.Queen:
				queens++
			case board.Knight, board.Bishop, board.Rook:
				minorsAndRooks++
			}
		}
	}
	return queens == 0 || (queens == 1 && minorsAndRooks <= 1)
}
