package eval_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/klikschaak/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInitialPositionIsLevel(t *testing.T) {
	b, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, eval.Score(0), eval.Evaluate(b))
}

func TestEvaluateIsMirroredAcrossColors(t *testing.T) {
	// A White knight developed to f3 should score the same, negated, as a Black
	// knight developed to the mirrored square f6.
	white, err := fen.Decode("k7/8/8/8/8/5N2/8/7K w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Decode("k7/8/5n2/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, eval.Evaluate(white), -eval.Evaluate(black))
}

func TestEvaluateRewardsKnightDevelopment(t *testing.T) {
	corner, err := fen.Decode("k7/8/8/8/8/8/8/N6K w - - 0 1")
	require.NoError(t, err)
	center, err := fen.Decode("k7/8/8/3N4/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Evaluate(center)), int(eval.Evaluate(corner)))
}
