package board

import (
	"fmt"
	"strconv"
)

// MoveKind classifies a move's effect on the board.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	Klik
	Unklik
	UnklikKlik
	EnPassant
	CastleK
	CastleQ
	CastleKKlik
	CastleQKlik
	Promotion
	PromotionCapture
)

func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case Klik:
		return "Klik"
	case Unklik:
		return "Unklik"
	case UnklikKlik:
		return "UnklikKlik"
	case EnPassant:
		return "EnPassant"
	case CastleK:
		return "CastleK"
	case CastleQ:
		return "CastleQ"
	case CastleKKlik:
		return "CastleKKlik"
	case CastleQKlik:
		return "CastleQKlik"
	case Promotion:
		return "Promotion"
	case PromotionCapture:
		return "PromotionCapture"
	default:
		return "?"
	}
}

func (k MoveKind) IsCapture() bool {
	return k == Capture || k == EnPassant || k == PromotionCapture
}

func (k MoveKind) IsKlik() bool {
	return k == Klik || k == UnklikKlik || k == CastleKKlik || k == CastleQKlik
}

func (k MoveKind) IsCastle() bool {
	return k == CastleK || k == CastleQ || k == CastleKKlik || k == CastleQKlik
}

func (k MoveKind) IsPromotion() bool {
	return k == Promotion || k == PromotionCapture
}

// CombinedMove is the unklik_index sentinel meaning "both pieces of the stack move
// together" (spec §3, "combined move").
const CombinedMove int8 = -1

// Move is a not-necessarily-legal move, along with its encoding metadata. Value type.
type Move struct {
	From, To     Square
	Kind         MoveKind
	UnklikIndex  int8 // 0=bottom, 1=top, CombinedMove=both.
	Promotion    PieceKind
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.UnklikIndex == o.UnklikIndex && m.Promotion == o.Promotion
}

func (m Move) IsZero() bool {
	return m == Move{}
}

// String formats the move in UCI-extended notation (spec §6.2): <from><to>[promo]
// plus a 'k' (Klik), 'u<index>' (Unklik) or 'U<index>' (UnklikKlik) suffix. Castling
// and en passant use the plain from-to form.
func (m Move) String() string {
	s := fmt.Sprintf("%v%v", m.From, m.To)
	if m.Promotion.IsValid() {
		s += m.Promotion.String()
	}
	switch m.Kind {
	case Klik:
		s += "k"
	case Unklik:
		s += "u" + strconv.Itoa(int(m.UnklikIndex))
	case UnklikKlik:
		s += "U" + strconv.Itoa(int(m.UnklikIndex))
	}
	return s
}

// ParseMoveString parses a move in the UCI-extended notation produced by String. It
// does not validate legality or consult a position; From/To/Promotion/suffix are
// purely syntactic.
func ParseMoveString(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %v", str, err)
	}

	m := Move{From: from, To: to}
	rest := runes[4:]

	if len(rest) > 0 {
		if promo, ok := ParsePieceKind(rest[0]); ok && promo != Pawn && promo != King {
			m.Promotion = promo
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		switch rest[0] {
		case 'k':
			m.Kind = Klik
		case 'u', 'U':
			if len(rest) < 2 {
				return Move{}, fmt.Errorf("invalid move %q: missing unklik index", str)
			}
			idx, err := strconv.Atoi(string(rest[1]))
			if err != nil || (idx != 0 && idx != 1) {
				return Move{}, fmt.Errorf("invalid move %q: bad unklik index", str)
			}
			m.UnklikIndex = int8(idx)
			if rest[0] == 'u' {
				m.Kind = Unklik
			} else {
				m.Kind = UnklikKlik
			}
		default:
			return Move{}, fmt.Errorf("invalid move %q: unknown suffix", str)
		}
	}

	// Kind beyond Klik/Unklik/UnklikKlik (Normal vs Capture vs Promotion vs castling)
	// is not recoverable from the string alone; callers match against the legal move
	// list by (From, To, UnklikIndex, Promotion) and take the Kind from there.
	return m, nil
}
