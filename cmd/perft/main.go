// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	b, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

// perft counts leaf nodes reachable from b at the given depth, making and
// unmaking each legal move in place (spec §8: make/unmake must be an exact
// inverse, which perft's traversal exercises exhaustively).
func perft(b *board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	mover := b.SideToMove()

	var nodes int64
	for _, m := range board.GeneratePseudoLegalMoves(b) {
		u := b.Make(m)
		if !b.IsInCheck(mover) {
			count := perft(b, depth-1, false)
			if d {
				println(fmt.Sprintf("%v: %v", m, count))
			}
			nodes += count
		}
		b.Unmake(m, u)
	}
	return nodes
}
