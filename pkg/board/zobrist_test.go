package board_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestZobristStableAcrossMakeUnmake checks spec §8 universal property 5.
func TestZobristStableAcrossMakeUnmake(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	initial := b.Hash()
	for _, m := range board.GeneratePseudoLegalMoves(b) {
		u := b.Make(m)
		b.Unmake(m, u)
		assert.Equal(t, initial, b.Hash())
	}
}

// TestZobristEqualForEquivalentPositions checks that two boards with identical
// observable state hash identically, regardless of how they were constructed.
func TestZobristEqualForEquivalentPositions(t *testing.T) {
	a, err := fen.Decode("4k3/8/8/8/4N3/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	b, err := fen.Decode("4k3/8/8/8/4N3/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
}

func TestZobristDiffersAfterAMove(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	initial := b.Hash()
	moves := board.LegalMoves(b)
	require.NotEmpty(t, moves)

	b.Make(moves[0])
	assert.NotEqual(t, initial, b.Hash())
}
