// Package fen contains utilities for reading and writing Klikschaak positions in
// FEN notation, extended with stack notation (spec §6.1).
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/klikschaak/engine/pkg/board"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a Board. In addition to standard FEN, a 2-piece
// stack is written as "(XY)" where X is the bottom piece and Y the top (spec §6.1);
// the parser advances one file for the whole parenthesized group.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//	"4k3/8/8/8/4(NP)3/8/8/4K3 w - - 0 1" (stack on e4: knight at the bottom, pawn on top)
func Decode(s string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", s)
	}

	// (1) Piece placement, rank 8 down to rank 1, file a through h within a rank.
	// A stack is written "(XY)": X bottom, Y top.

	var placements []board.Placement

	runes := []rune(parts[0])
	rank := board.Rank(7)
	file := board.ZeroFile
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '/':
			if file != board.NumFiles {
				return nil, fmt.Errorf("invalid rank length in FEN: %q", s)
			}
			if rank == 0 {
				return nil, fmt.Errorf("too many ranks in FEN: %q", s)
			}
			rank--
			file = board.ZeroFile

		case unicode.IsDigit(r):
			file += board.File(r - '0')

		case r == '(':
			close := strings.IndexRune(string(runes[i:]), ')')
			if close < 0 {
				return nil, fmt.Errorf("unterminated stack in FEN: %q", s)
			}
			group := runes[i+1 : i+close]
			if len(group) != 2 {
				return nil, fmt.Errorf("invalid stack group in FEN: %q", s)
			}
			sq := board.NewSquare(file, rank)
			for _, g := range group {
				p, ok := board.ParsePiece(g)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q in FEN: %q", g, s)
				}
				placements = append(placements, board.Placement{Square: sq, Piece: p})
			}
			file++
			i += close

		case unicode.IsLetter(r):
			p, ok := board.ParsePiece(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q in FEN: %q", r, s)
			}
			placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Piece: p})
			file++

		default:
			return nil, fmt.Errorf("invalid character %q in FEN: %q", r, s)
		}
	}
	if rank != 0 || file != board.NumFiles {
		return nil, fmt.Errorf("invalid number of squares in FEN: %q", s)
	}

	// (2) Active color.

	side, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active color in FEN: %q", s)
	}

	// (3) Castling availability.

	castling, ok := board.ParseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	// (4) En passant target square.

	ep := board.None
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square in FEN: %q: %w", s, err)
		}
		ep = sq
	}

	// (5) Halfmove clock.

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}

	// (6) Fullmove number.

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	return board.NewBoard(board.DefaultZobristTable(), placements, side, castling, ep, halfmove, fullmove)
}

// Encode writes b in extended FEN notation, emitting "(XY)" for any 2-piece stack.
func Encode(b *board.Board) string {
	var sb strings.Builder

	for r := board.Rank(7); ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			st := b.At(board.NewSquare(f, r))
			if st.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			if st.Count == 2 {
				sb.WriteString("(")
				sb.WriteString(st.Bottom().String())
				sb.WriteString(st.Top().String())
				sb.WriteString(")")
			} else {
				sb.WriteString(st.Bottom().String())
			}
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == 0 {
			break
		}
		sb.WriteString("/")
	}

	ep := "-"
	if b.EnPassant() != board.None {
		ep = b.EnPassant().String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), printColor(b.SideToMove()), b.Castling(), ep, b.HalfmoveClock(), b.FullMove())
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}
