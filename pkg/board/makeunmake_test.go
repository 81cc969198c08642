package board_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUnmakeExactInverse checks spec §8 universal property 2: every pseudo-legal
// move, made then unmade, restores the board bit-exactly.
func TestMakeUnmakeExactInverse(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/4N3/8/4P3/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2(RB) w K - 0 1",
		"4k3/8/8/8/8/8/8/4KP1R w K - 0 1",
		"8/4(NP)3/8/8/8/8/8/4K2k w - - 0 1",
		"4k3/8/8/8/8/8/1(NP)6/4K3 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, p := range positions {
		b, err := fen.Decode(p)
		require.NoError(t, err, p)

		for _, m := range board.GeneratePseudoLegalMoves(b) {
			before := b.Clone()

			u := b.Make(m)
			b.Unmake(m, u)

			assert.True(t, before.Equal(b), "fen=%v move=%v", p, m)
		}
	}
}

// TestStackInvariantsHoldAfterMake checks spec §8 universal property 4 across a run
// of legal moves from the starting position.
func TestStackInvariantsHoldAfterMake(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var walk func(depth int)
	walk = func(depth int) {
		if depth == 0 {
			return
		}
		moves := board.LegalMoves(b)
		if len(moves) == 0 {
			return
		}
		m := moves[0]
		u := b.Make(m)

		for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
			st := b.At(sq)
			assert.LessOrEqual(t, int(st.Count), 2)
			if st.Count == 2 {
				assert.False(t, st.HasKing())
			}
		}

		walk(depth - 1)
		b.Unmake(m, u)
	}
	walk(6)
}
