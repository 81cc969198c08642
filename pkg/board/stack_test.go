package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushAndRemove(t *testing.T) {
	var s Stack
	assert.True(t, s.IsEmpty())

	s.push(Piece{Color: White, Kind: Pawn})
	assert.Equal(t, uint8(1), s.Count)
	assert.Equal(t, Piece{Color: White, Kind: Pawn}, s.Bottom())
	assert.Equal(t, s.Bottom(), s.Top())

	s.push(Piece{Color: White, Kind: Knight})
	assert.Equal(t, uint8(2), s.Count)
	assert.Equal(t, Piece{Color: White, Kind: Pawn}, s.Bottom())
	assert.Equal(t, Piece{Color: White, Kind: Knight}, s.Top())
	assert.False(t, s.HasKing())

	top := s.remove(1)
	assert.Equal(t, Piece{Color: White, Kind: Knight}, top)
	assert.Equal(t, uint8(1), s.Count)
	assert.Equal(t, Piece{Color: White, Kind: Pawn}, s.Bottom())
}

func TestStackRemoveBottomCollapsesTopDown(t *testing.T) {
	var s Stack
	s.push(Piece{Color: Black, Kind: Rook})
	s.push(Piece{Color: Black, Kind: Bishop})

	bottom := s.remove(0)
	assert.Equal(t, Piece{Color: Black, Kind: Rook}, bottom)
	assert.Equal(t, uint8(1), s.Count)
	assert.Equal(t, Piece{Color: Black, Kind: Bishop}, s.Bottom())
}

func TestStackString(t *testing.T) {
	var s Stack
	assert.Equal(t, ".", s.String())

	s.push(Piece{Color: White, Kind: Queen})
	assert.Equal(t, "Q", s.String())

	s.push(Piece{Color: White, Kind: Rook})
	assert.Equal(t, "(QR)", s.String())
}

func TestStackHasKing(t *testing.T) {
	var s Stack
	s.push(Piece{Color: Black, Kind: King})
	assert.True(t, s.HasKing())
}
