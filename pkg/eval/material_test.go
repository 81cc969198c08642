package eval_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/klikschaak/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominalValue(t *testing.T) {
	assert.Equal(t, eval.Score(100), eval.NominalValue(board.Pawn))
	assert.Equal(t, eval.Score(320), eval.NominalValue(board.Knight))
	assert.Equal(t, eval.Score(330), eval.NominalValue(board.Bishop))
	assert.Equal(t, eval.Score(500), eval.NominalValue(board.Rook))
	assert.Equal(t, eval.Score(900), eval.NominalValue(board.Queen))
	assert.Equal(t, eval.Score(20000), eval.NominalValue(board.King))
}

func TestMaterialBalance(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sign int // +1 White ahead, -1 Black ahead, 0 equal
	}{
		{"initial position is level", fen.Initial, 0},
		{"bare kings are level", "k7/8/8/8/8/8/8/7K w - - 0 1", 0},
		{"white up a queen", "k7/8/8/8/8/8/8/6QK w - - 0 1", +1},
		{"black up a rook", "kr6/8/8/8/8/8/8/7K w - - 0 1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			score := eval.Evaluate(b)
			switch {
			case tt.sign > 0:
				assert.Greater(t, int(score), 0)
			case tt.sign < 0:
				assert.Less(t, int(score), 0)
			default:
				assert.Equal(t, eval.Score(0), score)
			}
		})
	}
}
