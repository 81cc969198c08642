package eval_test

import (
	"testing"

	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/klikschaak/engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassedPawnIsRewardedOverBlockedPawn(t *testing.T) {
	passed, err := fen.Decode("k7/8/8/8/8/8/4P3/7K w - - 0 1")
	require.NoError(t, err)
	blocked, err := fen.Decode("k3p3/8/8/8/8/8/4P3/7K w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Evaluate(passed)), int(eval.Evaluate(blocked)))
}

func TestPassedPawnBonusGrowsWithAdvancement(t *testing.T) {
	early, err := fen.Decode("k7/8/8/8/8/8/4P3/7K w - - 0 1")
	require.NoError(t, err)
	advanced, err := fen.Decode("k7/8/8/8/4P3/8/8/7K w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Evaluate(advanced)), int(eval.Evaluate(early)))
}

func TestPassedPawnInStackGetsExtraBonus(t *testing.T) {
	stacked, err := fen.Decode("k7/8/8/8/8/8/4(PN)3/7K w - - 0 1")
	require.NoError(t, err)
	unstacked, err := fen.Decode("k7/8/8/8/8/8/4P1N1/7K w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, int(eval.Evaluate(stacked)), int(eval.Evaluate(unstacked)))
}
