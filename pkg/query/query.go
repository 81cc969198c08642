// Package query implements the minimal request/response surface external
// collaborators use to ask the core for legal moves from a FEN string (spec
// §6.3). It holds no persistent state across requests.
package query

import (
	"fmt"

	"github.com/klikschaak/engine/pkg/board"
	"github.com/klikschaak/engine/pkg/board/fen"
	"github.com/seekerror/build"
)

// Version stamps this build of the engine core.
var Version = build.NewVersion(0, 1, 0)

// Request asks for the legal moves available from a position.
type Request struct {
	FEN string
}

// Move describes one legal move in the response: its UCI-extended string
// (spec §6.2) and its kind name.
type Move struct {
	UCI  string
	Kind string
}

// Response is the legal-move list for a Request's position.
type Response struct {
	Moves []Move
	Count int
}

// LegalMoves decodes req.FEN and returns every legal move from that position.
// A missing FEN or one that fails to parse is a caller-visible error (spec
// §6.3); no other validation or side effect occurs.
func LegalMoves(req Request) (Response, error) {
	if req.FEN == "" {
		return Response{}, fmt.Errorf("query: missing FEN")
	}

	b, err := fen.Decode(req.FEN)
	if err != nil {
		return Response{}, fmt.Errorf("query: malformed FEN %q: %w", req.FEN, err)
	}

	legal := board.LegalMoves(b)
	moves := make([]Move, len(legal))
	for i, m := range legal {
		moves[i] = Move{UCI: m.String(), Kind: m.Kind.String()}
	}
	return Response{Moves: moves, Count: len(moves)}, nil
}
