package board

// change records a square's prior contents, for exact restoration on Unmake.
type change struct {
	sq    Square
	prior Stack
}

// UndoRecord captures everything Make mutated, so Unmake can restore the board to a
// bit-exact pre-Make state (spec §4.2, §8 property 2).
type UndoRecord struct {
	changes []change

	castling      Castling
	epSquare      Square
	halfmoveClock uint16
	fullmove      uint16
	kingSq        [NumColors]Square
	unmovedPawns  [NumColors]uint8
	hash          ZobristHash
}

func (b *Board) recordTouch(u *UndoRecord, sq Square) {
	for _, c := range u.changes {
		if c.sq == sq {
			return
		}
	}
	u.changes = append(u.changes, change{sq: sq, prior: b.squares[sq]})
}

func (b *Board) setSquare(u *UndoRecord, sq Square, st Stack) {
	b.recordTouch(u, sq)
	b.squares[sq] = st
}

// rightsTouched returns the castling rights bits lost when the given square is
// touched as a move source or destination (spec §4.2, "Rights updates").
func rightsTouched(sq Square) Castling {
	switch sq {
	case NewSquare(4, 0):
		return WhiteKingSide | WhiteQueenSide
	case NewSquare(0, 0):
		return WhiteQueenSide
	case NewSquare(7, 0):
		return WhiteKingSide
	case NewSquare(4, 7):
		return BlackKingSide | BlackQueenSide
	case NewSquare(0, 7):
		return BlackQueenSide
	case NewSquare(7, 7):
		return BlackKingSide
	default:
		return NoCastling
	}
}

// Make applies the (assumed pseudo-legal) move in place and returns an UndoRecord
// that exactly reverses it. The caller is responsible for validating legality before
// calling Make if that matters to them (spec §7); Make itself does not re-derive
// move generation.
func (b *Board) Make(m Move) UndoRecord {
	u := UndoRecord{
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfmoveClock: b.halfmoveClock,
		fullmove:      b.fullmove,
		kingSq:        b.kingSq,
		unmovedPawns:  b.unmovedPawns,
		hash:          b.hash,
	}

	turn := b.sideToMove
	opp := turn.Opposite()
	fromStack := b.squares[m.From]

	capture := b.isCaptureEffect(m)
	pawnMoved := stackHasMovingPawn(fromStack, m)

	touchedRights := rightsTouched(m.From) | rightsTouched(m.To)

	var newEP Square = None
	if pawnMoved && pawnIsDoublePush(m) {
		switch m.Kind {
		case Normal, Capture, Klik, Unklik, UnklikKlik:
			newEP = midpoint(m.From, m.To)
		}
	}

	switch m.Kind {
	case Normal, Capture:
		moving := b.extractMover(&u, m.From, m.UnklikIndex, fromStack)
		dest := Stack{}
		for _, p := range moving {
			dest.push(p)
		}
		b.setSquare(&u, m.To, dest)

	case Klik:
		moving := b.extractMover(&u, m.From, m.UnklikIndex, fromStack)
		dest := b.squares[m.To]
		for _, p := range moving {
			dest.push(p)
		}
		b.setSquare(&u, m.To, dest)

	case Unklik:
		p := fromStack.At(int(m.UnklikIndex))
		b.setSquare(&u, m.From, removeAt(fromStack, int(m.UnklikIndex)))
		b.setSquare(&u, m.To, Stack{}.withPush(p))

	case UnklikKlik:
		p := fromStack.At(int(m.UnklikIndex))
		b.setSquare(&u, m.From, removeAt(fromStack, int(m.UnklikIndex)))
		dest := b.squares[m.To]
		dest.push(p)
		b.setSquare(&u, m.To, dest)

	case EnPassant:
		moving := b.extractMover(&u, m.From, m.UnklikIndex, fromStack)
		dest := Stack{}
		for _, p := range moving {
			dest.push(p)
		}
		b.setSquare(&u, m.To, dest)

		capSq := epCaptureSquare(m.To, turn)
		b.setSquare(&u, capSq, Stack{})

	case Promotion, PromotionCapture:
		b.applyPromotion(&u, m, fromStack, turn)

	case CastleK, CastleQ, CastleKKlik, CastleQKlik:
		kingSide := m.Kind == CastleK || m.Kind == CastleKKlik
		corner := rookCorner(turn, kingSide)
		landing := rookLanding(turn, kingSide)
		cornerStack := b.squares[corner]
		rook := cornerStack.At(0)
		remainder := removeAt(cornerStack, 0) // rook sits alone, or at the bottom of the corner
		b.setSquare(&u, corner, remainder)

		b.setSquare(&u, m.From, Stack{}) // king departs
		b.setSquare(&u, m.To, Stack{}.withPush(Piece{Color: turn, Kind: King}))
		b.kingSq[turn] = m.To

		dest := b.squares[landing]
		dest.push(rook)
		b.setSquare(&u, landing, dest)

		touchedRights |= rightsTouched(corner) | rightsTouched(landing)
	}

	// King square cache, for non-castling king moves (castling updates it above).
	if !m.Kind.IsCastle() {
		if movedKing, ok := movedKingTo(m, fromStack); ok {
			b.kingSq[turn] = movedKing
		}
	}

	b.castling &^= touchedRights
	b.epSquare = newEP

	if capture || pawnMoved {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	b.recomputeUnmovedPawns()

	b.sideToMove = opp
	if turn == Black {
		b.fullmove++
	}

	b.hash = b.zt.Hash(b)
	return u
}

// Unmake exactly reverses the Make call that produced u.
func (b *Board) Unmake(m Move, u UndoRecord) {
	for i := len(u.changes) - 1; i >= 0; i-- {
		c := u.changes[i]
		b.squares[c.sq] = c.prior
	}
	b.castling = u.castling
	b.epSquare = u.epSquare
	b.halfmoveClock = u.halfmoveClock
	b.fullmove = u.fullmove
	b.kingSq = u.kingSq
	b.unmovedPawns = u.unmovedPawns
	b.hash = u.hash
	b.sideToMove = b.sideToMove.Opposite()
}

// extractMover removes and empties/collapses `from` for the piece(s) that leave it: a
// single piece for a plain move or unklik, or both (bottom, top order) for a combined
// move. Touches are recorded so Unmake can restore `from` exactly.
func (b *Board) extractMover(u *UndoRecord, from Square, idx int8, fromStack Stack) []Piece {
	if idx == CombinedMove {
		var ps []Piece
		for i := 0; i < int(fromStack.Count); i++ {
			ps = append(ps, fromStack.At(i))
		}
		b.setSquare(u, from, Stack{})
		return ps
	}
	p := fromStack.At(int(idx))
	b.setSquare(u, from, removeAt(fromStack, int(idx)))
	return []Piece{p}
}

func removeAt(st Stack, idx int) Stack {
	st.remove(idx)
	return st
}

func (s Stack) withPush(p Piece) Stack {
	s.push(p)
	return s
}

// isCaptureEffect reports whether the move, as generated against the board's current
// (pre-Make) contents, removes an opposing occupant.
func (b *Board) isCaptureEffect(m Move) bool {
	switch m.Kind {
	case Capture, EnPassant, PromotionCapture:
		return true
	case Unklik, UnklikKlik:
		return !b.IsEmpty(m.To) && b.squares[m.To].Color != b.sideToMove
	default:
		return false
	}
}

func stackHasMovingPawn(fromStack Stack, m Move) bool {
	if m.UnklikIndex == CombinedMove {
		return fromStack.Kinds[0] == Pawn || fromStack.Kinds[1] == Pawn
	}
	return fromStack.Kinds[m.UnklikIndex] == Pawn
}

func pawnIsDoublePush(m Move) bool {
	d := int(m.To) - int(m.From)
	return d == 16 || d == -16
}

func midpoint(from, to Square) Square {
	return Square((int(from) + int(to)) / 2)
}

func epCaptureSquare(to Square, turn Color) Square {
	if turn == White {
		return to - 8
	}
	return to + 8
}

// movedKingTo returns the king's new square if this move relocates a (non-castling)
// king, so the cache can be refreshed.
func movedKingTo(m Move, fromStack Stack) (Square, bool) {
	if m.UnklikIndex == CombinedMove {
		return None, false // combined moves never include a king (kings never stack)
	}
	if fromStack.Kinds[m.UnklikIndex] == King {
		return m.To, true
	}
	return None, false
}

// applyPromotion executes a Promotion/PromotionCapture move, including its combined
// and unklik-companion variants (spec §4.2).
func (b *Board) applyPromotion(u *UndoRecord, m Move, fromStack Stack, turn Color) {
	promoted := Piece{Color: turn, Kind: m.Promotion}

	if m.UnklikIndex == CombinedMove {
		// Both pieces leave; companion lands below the promoted piece.
		var companion Piece
		for i := 0; i < int(fromStack.Count); i++ {
			if fromStack.Kinds[i] != Pawn {
				companion = fromStack.At(i)
			}
		}
		b.setSquare(u, m.From, Stack{})
		dest := Stack{}
		dest.push(companion)
		dest.push(promoted)
		b.setSquare(u, m.To, dest)
		return
	}

	// Single pawn promotes; any stack companion stays behind on `from`.
	b.setSquare(u, m.From, removeAt(fromStack, int(m.UnklikIndex)))
	b.setSquare(u, m.To, Stack{}.withPush(promoted))
}
