package search

import (
	"context"
	"time"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/eval"
	"github.com/seekerror/logw"
)

// DefaultMaxDepth is the depth ceiling used when Options.DepthLimit is unset.
const DefaultMaxDepth = MaxPly - 1

// Engine is a reusable search instance. Its transposition table, killer and
// history arrays are owned here and persist across Search calls unless
// explicitly cleared (spec §5).
type Engine struct {
	tt      *Table
	killers [MaxPly][2]board.Move
	history [64][64]int
}

// NewEngine allocates an Engine with a transposition table sized to roughly
// ttEntries slots (spec §4.4: "bounded size, e.g. 1,000,000 entries").
func NewEngine(ttEntries int) *Engine {
	return &Engine{tt: NewTable(ttEntries)}
}

// ClearTT discards all transposition table entries.
func (e *Engine) ClearTT() {
	e.tt.Clear()
}

// ResetHeuristics clears the killer and history tables without touching the
// transposition table.
func (e *Engine) ResetHeuristics() {
	e.killers = [MaxPly][2]board.Move{}
	e.history = [64][64]int{}
}

// Search performs iterative deepening from depth 1 to Options.DepthLimit (or
// DefaultMaxDepth), calling negamax alpha-beta at each depth (spec §4.4). It
// returns the PV of the last fully completed depth, except that a time-out
// during depth 1 returns that depth's partial result. A time-out never errors.
// Search stops only on its depth or time limit: ctx is used for logging and
// its cancellation is not observed.
func (e *Engine) Search(ctx context.Context, b *board.Board, opt Options) PV {
	maxDepth := DefaultMaxDepth
	if d, ok := opt.DepthLimit.V(); ok {
		maxDepth = int(d)
	}

	r := &run{tt: e.tt, killers: &e.killers, history: &e.history}
	if limit, ok := opt.TimeLimit.V(); ok {
		r.deadline = time.Now().Add(limit)
		r.hasDeadline = true
	}

	var best PV
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		prevNodes := r.nodes

		score := r.negamax(b, depth, 0, eval.MinScore, eval.MaxScore)
		if r.stopped && depth > 1 {
			break // keep the last fully-completed depth's PV.
		}

		elapsed := time.Since(start)
		pv := PV{
			Score:  score,
			Depth:  depth,
			Moves:  extractPV(r.tt, b, depth),
			Nodes:  r.nodes - prevNodes,
			TimeMS: elapsed.Milliseconds(),
		}
		if elapsed > 0 {
			pv.NPS = uint64(float64(pv.Nodes) / elapsed.Seconds())
		}
		best = pv

		logw.Debugf(ctx, "Searched %v: %v", b, pv)

		if r.stopped {
			break
		}
		if score.IsMate() {
			break // no point deepening past a confirmed mate.
		}
	}
	return best
}

// extractPV walks the transposition table's best-move chain from b's current
// position, up to depth plies, to reconstruct the principal variation. The TT
// is read-only here; moves are made and unmade to follow the chain.
func extractPV(tt *Table, b *board.Board, depth int) []board.Move {
	var pv []board.Move
	var undo []board.UndoRecord

	for i := 0; i < depth; i++ {
		_, _, _, best, ok := tt.Probe(b.Hash())
		if !ok || best.IsZero() {
			break
		}
		if !board.IsLegal(b, best) {
			break
		}
		pv = append(pv, best)
		undo = append(undo, b.Make(best))
	}

	for i := len(undo) - 1; i >= 0; i-- {
		b.Unmake(pv[i], undo[i])
	}
	return pv
}
