package query_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/klikschaak/engine/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesFromInitialPosition(t *testing.T) {
	resp, err := query.LegalMoves(query.Request{FEN: fen.Initial})
	require.NoError(t, err)

	assert.Equal(t, 34, resp.Count)
	assert.Len(t, resp.Moves, 34)
	for _, m := range resp.Moves {
		assert.NotEmpty(t, m.UCI)
		assert.NotEmpty(t, m.Kind)
	}
}

func TestLegalMovesRejectsMissingFEN(t *testing.T) {
	_, err := query.LegalMoves(query.Request{})
	assert.Error(t, err)
}

func TestLegalMovesRejectsMalformedFEN(t *testing.T) {
	_, err := query.LegalMoves(query.Request{FEN: "not a fen"})
	assert.Error(t, err)
}

func TestLegalMovesOnCheckmateIsEmpty(t *testing.T) {
	resp, err := query.LegalMoves(query.Request{
		FEN: "rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Moves)
}
