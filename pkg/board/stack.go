package board

// Stack represents the contents of a square: zero, one or two same-color pieces,
// ordered bottom-first. Fixed-width, to avoid allocation in the move-generator hot
// path (spec §9, "Stack storage").
//
// Invariant: Count in {0,1,2}; if Count==2, both kinds belong to the same Color and
// neither is King (kings never share a stack).
type Stack struct {
	Color  Color
	Kinds  [2]PieceKind // bottom, top
	Count  uint8
}

func (s Stack) IsEmpty() bool {
	return s.Count == 0
}

// Bottom returns the bottom piece. Valid only if Count > 0.
func (s Stack) Bottom() Piece {
	return Piece{Color: s.Color, Kind: s.Kinds[0]}
}

// Top returns the top piece. Valid only if Count > 0: for Count==1 it equals Bottom.
func (s Stack) Top() Piece {
	if s.Count < 2 {
		return s.Bottom()
	}
	return Piece{Color: s.Color, Kind: s.Kinds[1]}
}

// At returns the piece at the given layer (0=bottom, 1=top). Valid only if index < Count.
func (s Stack) At(index int) Piece {
	return Piece{Color: s.Color, Kind: s.Kinds[index]}
}

// HasKing returns true iff the stack contains a king (only possible if Count==1).
func (s Stack) HasKing() bool {
	return s.Count == 1 && s.Kinds[0] == King
}

// single returns true iff exactly one piece occupies the square.
func (s Stack) single() bool {
	return s.Count == 1
}

// push appends a piece to the top of the stack. The caller must ensure the color and
// king invariants hold (empty square, or a single same-color non-king occupant).
func (s *Stack) push(p Piece) {
	if s.Count == 0 {
		s.Color = p.Color
		s.Kinds[0] = p.Kind
		s.Count = 1
		return
	}
	s.Kinds[1] = p.Kind
	s.Count = 2
}

// set replaces the square's contents with a single piece.
func (s *Stack) set(p Piece) {
	*s = Stack{Color: p.Color, Kinds: [2]PieceKind{p.Kind, NoPiece}, Count: 1}
}

// clear empties the square.
func (s *Stack) clear() {
	*s = Stack{}
}

// remove extracts the piece at the given layer, collapsing the remaining piece (if
// any) down to the bottom. Returns the extracted piece.
func (s *Stack) remove(index int) Piece {
	p := s.At(index)
	switch {
	case s.Count == 1:
		s.clear()
	case index == 0:
		// Bottom leaves; top (companion) becomes the sole occupant.
		s.Kinds[0] = s.Kinds[1]
		s.Kinds[1] = NoPiece
		s.Count = 1
	default:
		// Top leaves; bottom remains.
		s.Kinds[1] = NoPiece
		s.Count = 1
	}
	return p
}

func (s Stack) String() string {
	switch s.Count {
	case 0:
		return "."
	case 1:
		return s.Bottom().String()
	default:
		return "(" + s.Bottom().String() + s.Top().String() + ")"
	}
}
