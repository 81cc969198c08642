package board_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionHas34LegalMoves(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := board.LegalMoves(b)
	assert.Len(t, moves, 34)
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	b, err := fen.Decode("rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	assert.True(t, b.IsInCheck(board.White))
	assert.Empty(t, board.LegalMoves(b))
}

func TestStalemate(t *testing.T) {
	b, err := fen.Decode("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	assert.False(t, b.IsInCheck(board.Black))
	assert.Empty(t, board.LegalMoves(b))
}

func TestPawnForwardKlikDouble(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/4N3/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	e2, err := board.ParseSquareStr("e2")
	require.NoError(t, err)
	e4, err := board.ParseSquareStr("e4")
	require.NoError(t, err)

	var matches []board.Move
	for _, m := range board.LegalMoves(b) {
		if m.From == e2 && m.To == e4 {
			matches = append(matches, m)
		}
	}
	require.Len(t, matches, 1)
	assert.Equal(t, board.Klik, matches[0].Kind)
}

func TestCastleWithStackedRook(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4K2(RB) w K - 0 1")
	require.NoError(t, err)

	var castle board.Move
	found := false
	for _, m := range board.LegalMoves(b) {
		if m.Kind == board.CastleK {
			castle = m
			found = true
		}
	}
	require.True(t, found)

	b.Make(castle)

	g1, _ := board.ParseSquareStr("g1")
	f1, _ := board.ParseSquareStr("f1")
	h1, _ := board.ParseSquareStr("h1")

	assert.Equal(t, "K", b.At(g1).String())
	assert.Equal(t, "R", b.At(f1).String())
	assert.Equal(t, "B", b.At(h1).String())
}

func TestCastleKlik(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/8/4KP1R w K - 0 1")
	require.NoError(t, err)

	var castle board.Move
	found := false
	for _, m := range board.LegalMoves(b) {
		if m.Kind == board.CastleKKlik {
			castle = m
			found = true
		}
	}
	require.True(t, found)

	b.Make(castle)

	g1, _ := board.ParseSquareStr("g1")
	f1, _ := board.ParseSquareStr("f1")
	h1, _ := board.ParseSquareStr("h1")

	assert.Equal(t, "K", b.At(g1).String())
	assert.Equal(t, "(PR)", b.At(f1).String())
	assert.True(t, b.At(h1).IsEmpty())
}

func TestCombinedPromotion(t *testing.T) {
	b, err := fen.Decode("8/4(NP)3/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	e8, err := board.ParseSquareStr("e8")
	require.NoError(t, err)

	var promos []board.Move
	for _, m := range board.GeneratePseudoLegalMoves(b) {
		if m.To == e8 && m.Kind == board.Promotion && m.UnklikIndex == board.CombinedMove {
			promos = append(promos, m)
		}
	}
	require.Len(t, promos, 4)

	var queenMove board.Move
	for _, m := range promos {
		if m.Promotion == board.Queen {
			queenMove = m
		}
	}
	b.Make(queenMove)
	assert.Equal(t, "(NQ)", b.At(e8).String())
}

func TestCombinedBackRankBlock(t *testing.T) {
	b, err := fen.Decode("4k3/8/8/8/8/8/1(NP)6/4K3 w - - 0 1")
	require.NoError(t, err)

	d1, err := board.ParseSquareStr("d1")
	require.NoError(t, err)

	var combinedToD1, unklikToD1 bool
	for _, m := range board.GeneratePseudoLegalMoves(b) {
		if m.To != d1 {
			continue
		}
		switch m.UnklikIndex {
		case board.CombinedMove:
			combinedToD1 = true
		case 0:
			unklikToD1 = true
		}
	}
	assert.False(t, combinedToD1)
	assert.True(t, unklikToD1)
}
