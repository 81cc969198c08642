// Package search implements iterative-deepening negamax alpha-beta search for
// Klikschaak positions, single-threaded per spec §5.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// MaxPly bounds killer-move storage and mate-distance scoring (spec §4.4).
const MaxPly = 128

// NodeCheckInterval is how often, in visited nodes, the search polls its soft
// time limit (spec §4.4, §5: "check every 4096 nodes"). Only the time limit is
// polled; cancellation of the caller's context is not observed.
const NodeCheckInterval = 4096

// quiescenceMaxPly is quiescence's hard cap beyond the main alpha-beta search
// (spec §4.4).
const quiescenceMaxPly = 10

// PV is the principal variation produced by one completed iterative-deepening
// depth (spec §4.4: "record score, depth, pv, nodes, time_ms, nps").
type PV struct {
	Score  eval.Score
	Depth  int
	Moves  []board.Move
	Nodes  uint64
	TimeMS int64
	NPS    uint64
}

func (p PV) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = m.String()
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%vms nps=%v pv=%v",
		p.Depth, p.Score, p.Nodes, p.TimeMS, p.NPS, strings.Join(parts, " "))
}

// Options holds the per-search limits a caller may set. Neither field set
// means search to DefaultMaxDepth (MaxPly-1) with no time budget.
type Options struct {
	DepthLimit lang.Optional[uint]
	TimeLimit  lang.Optional[time.Duration]
}
