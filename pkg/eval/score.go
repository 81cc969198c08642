package eval

import "fmt"

// Score is a signed centipawn score. Evaluate returns it from White's perspective
// (spec §4.3), positive favoring White; search scores are from the side to move's
// perspective. A mate is encoded as MateScore minus the number of plies to deliver
// it, so shorter mates are preferred by ordinary score comparison.
type Score int32

const (
	MateScore Score = 1000000
	MaxScore  Score = MateScore
	MinScore  Score = -MateScore
	DrawScore Score = 0
)

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

// Negate flips the score to the opponent's perspective (negamax convention).
func (s Score) Negate() Score {
	return -s
}

// IsMate reports whether s represents a forced mate (for either side).
func (s Score) IsMate() bool {
	return s > MateScore-1000 || s < -MateScore+1000
}

// Max returns the larger of a, b.
func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a, b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}
