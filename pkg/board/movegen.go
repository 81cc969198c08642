package board

// Move generation (spec §4.1): pseudo-legal generation per square, dispatching on
// stack occupancy (empty / single / two-piece), followed by a legality filter built
// on Make/Unmake/IsAttacked.

// effect classifies what a candidate destination square holds, from the mover's
// point of view, before any move-kind tagging is applied.
type effect int

const (
	effEmpty effect = iota
	effEnemy
	effFriendly // single, non-king: a klik candidate for non-combined moves.
	effBlocked  // friendly king, full stack, or otherwise illegal to land on.
)

// rawTarget is a candidate destination for a single piece moving alone from its
// origin square, tagged with enough context for promotion-rank and en-passant
// handling in the unklik and combined families.
type rawTarget struct {
	sq          Square
	eff         effect
	enPassant   bool
	viaPawnMove bool // reached via straight/diagonal pawn movement, not another piece's pattern.
}

func classify(b *Board, mover Piece, sq Square) effect {
	st := b.squares[sq]
	if st.IsEmpty() {
		return effEmpty
	}
	if st.Color != mover.Color {
		return effEnemy
	}
	if st.Count == 2 || st.HasKing() {
		return effBlocked
	}
	return effFriendly
}

// GeneratePseudoLegalMoves enumerates every pseudo-legal move for the side to move,
// per spec §4.1.
func GeneratePseudoLegalMoves(b *Board) []Move {
	var moves []Move
	turn := b.sideToMove

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		st := b.squares[sq]
		if st.IsEmpty() || st.Color != turn {
			continue
		}
		switch st.Count {
		case 1:
			appendPieceMoves(b, &moves, sq, st.At(0), 0, false)
		case 2:
			appendPieceMoves(b, &moves, sq, st.At(0), 0, true)
			appendPieceMoves(b, &moves, sq, st.At(1), 1, true)
			appendCombinedMoves(b, &moves, sq, st)
		}
	}

	appendCastlingMoves(b, &moves, turn)
	return moves
}

// LegalMoves filters GeneratePseudoLegalMoves down to moves that do not leave the
// mover's own king in check (spec §4.1.6).
func LegalMoves(b *Board) []Move {
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether m leaves the mover's own king safe, per spec §4.1.6:
// make(m); ok := !is_attacked(king_sq[mover], ~mover); unmake(m); ok.
func IsLegal(b *Board, m Move) bool {
	mover := b.sideToMove
	u := b.Make(m)
	ok := !b.IsAttacked(b.kingSq[mover], mover.Opposite())
	b.Unmake(m, u)
	return ok
}

// rawTargetsFor returns a single piece's reachable squares, as if it were alone on
// sq (the spec's "as singletons" rule for unklik and combined generation).
func rawTargetsFor(b *Board, sq Square, p Piece) []rawTarget {
	switch p.Kind {
	case Pawn:
		return pawnRawTargets(b, sq, p.Color)
	case Knight:
		return tableRawTargets(b, knightTargets[sq], p)
	case King:
		return tableRawTargets(b, kingTargets[sq], p)
	case Bishop:
		return sliderRawTargets(b, sq, p, bishopDirs[:])
	case Rook:
		return sliderRawTargets(b, sq, p, rookDirs[:])
	case Queen:
		targets := sliderRawTargets(b, sq, p, bishopDirs[:])
		return append(targets, sliderRawTargets(b, sq, p, rookDirs[:])...)
	default:
		return nil
	}
}

func tableRawTargets(b *Board, targets []Square, p Piece) []rawTarget {
	out := make([]rawTarget, 0, len(targets))
	for _, t := range targets {
		out = append(out, rawTarget{sq: t, eff: classify(b, p, t)})
	}
	return out
}

func sliderRawTargets(b *Board, sq Square, p Piece, dirs [][2]int) []rawTarget {
	var out []rawTarget
	for _, d := range dirs {
		ray(b, sq, d[0], d[1], func(t Square) bool {
			out = append(out, rawTarget{sq: t, eff: classify(b, p, t)})
			return true
		})
	}
	return out
}

func pawnRawTargets(b *Board, sq Square, c Color) []rawTarget {
	var out []rawTarget
	dir := pawnDirection(c)
	promoRank := pawnPromotionRank(c)

	if one, ok := step(sq, 0, dir); ok {
		switch classify(b, Piece{Color: c, Kind: Pawn}, one) {
		case effEmpty:
			out = append(out, rawTarget{sq: one, eff: effEmpty, viaPawnMove: true})
			if sq.Rank() == pawnStartRank(c) && b.UnmovedPawnFile(c, sq.File()) {
				if two, ok := step(one, 0, dir); ok {
					switch classify(b, Piece{Color: c, Kind: Pawn}, two) {
					case effEmpty:
						out = append(out, rawTarget{sq: two, eff: effEmpty, viaPawnMove: true})
					case effFriendly:
						if two.Rank() != promoRank {
							out = append(out, rawTarget{sq: two, eff: effFriendly, viaPawnMove: true})
						}
					}
				}
			}
		case effFriendly:
			// Forward klik: forbidden onto the promotion rank (spec §4.1.2).
			if one.Rank() != promoRank {
				out = append(out, rawTarget{sq: one, eff: effFriendly, viaPawnMove: true})
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		diag, ok := step(sq, df, dir)
		if !ok {
			continue
		}
		if diag == b.epSquare && diag != None {
			out = append(out, rawTarget{sq: diag, eff: effEnemy, enPassant: true, viaPawnMove: true})
			continue
		}
		if classify(b, Piece{Color: c, Kind: Pawn}, diag) == effEnemy {
			out = append(out, rawTarget{sq: diag, eff: effEnemy, viaPawnMove: true})
		}
	}

	return out
}

// appendPieceMoves turns one piece's raw targets into tagged Moves. stacked
// indicates the origin is a two-piece stack, so destinations become Unklik/
// UnklikKlik/Promotion(unklik_index=idx) rather than Normal/Capture/Klik/Promotion.
func appendPieceMoves(b *Board, moves *[]Move, from Square, p Piece, idx int8, stacked bool) {
	promoRank := pawnPromotionRank(p.Color)
	for _, t := range rawTargetsFor(b, from, p) {
		switch t.eff {
		case effBlocked:
			continue
		case effFriendly:
			if p.Kind == King {
				continue // kings never klik (spec §4.1.2).
			}
			kind := Klik
			if stacked {
				kind = UnklikKlik
			}
			*moves = append(*moves, Move{From: from, To: t.sq, Kind: kind, UnklikIndex: idx})
		case effEmpty, effEnemy:
			if t.enPassant {
				*moves = append(*moves, Move{From: from, To: t.sq, Kind: EnPassant, UnklikIndex: idx})
				continue
			}
			if p.Kind == Pawn && t.sq.Rank() == promoRank {
				for _, promo := range promotionKinds {
					kind := Promotion
					if t.eff == effEnemy {
						kind = PromotionCapture
					}
					*moves = append(*moves, Move{From: from, To: t.sq, Kind: kind, UnklikIndex: idx, Promotion: promo})
				}
				continue
			}
			kind := Normal
			if t.eff == effEnemy {
				kind = Capture
			}
			if stacked {
				kind = Unklik // Unklik covers both the quiet and capturing case (spec §4.1.3).
			}
			*moves = append(*moves, Move{From: from, To: t.sq, Kind: kind, UnklikIndex: idx})
		}
	}
}

var promotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// appendCombinedMoves generates the combined-move family for a two-piece stack
// (spec §4.1.4): both pieces travel together to the union of their singleton
// reachable squares, excluding friendly destinations, the movers' own back rank,
// and promotion-rank squares not reached via pawn movement.
func appendCombinedMoves(b *Board, moves *[]Move, from Square, st Stack) {
	bottom, top := st.At(0), st.At(1)
	hasPawn := bottom.Kind == Pawn || top.Kind == Pawn
	color := st.Color
	backRank := ownBackRank(color)
	promoRank := pawnPromotionRank(color)

	type union struct {
		eff         effect
		enPassant   bool
		viaPawnMove bool
	}
	seen := make(map[Square]union)
	order := make([]Square, 0, 8)

	for _, t := range rawTargetsFor(b, from, bottom) {
		if t.eff == effFriendly || t.eff == effBlocked {
			continue
		}
		if _, ok := seen[t.sq]; !ok {
			order = append(order, t.sq)
		}
		u := seen[t.sq]
		u.eff = t.eff
		u.enPassant = u.enPassant || t.enPassant
		u.viaPawnMove = u.viaPawnMove || t.viaPawnMove
		seen[t.sq] = u
	}
	for _, t := range rawTargetsFor(b, from, top) {
		if t.eff == effFriendly || t.eff == effBlocked {
			continue
		}
		if _, ok := seen[t.sq]; !ok {
			order = append(order, t.sq)
		}
		u := seen[t.sq]
		u.eff = t.eff
		u.enPassant = u.enPassant || t.enPassant
		u.viaPawnMove = u.viaPawnMove || t.viaPawnMove
		seen[t.sq] = u
	}

	for _, sq := range order {
		u := seen[sq]

		if hasPawn && sq.Rank() == backRank {
			continue // a pawn may never occupy its own back rank (spec §4.1.4).
		}
		if hasPawn && sq.Rank() == promoRank && !u.viaPawnMove {
			continue // promotion-rank only reachable via the pawn's own move.
		}

		if u.enPassant {
			*moves = append(*moves, Move{From: from, To: sq, Kind: EnPassant, UnklikIndex: CombinedMove})
			continue
		}

		if hasPawn && sq.Rank() == promoRank {
			kind := Promotion
			if u.eff == effEnemy {
				kind = PromotionCapture
			}
			for _, promo := range promotionKinds {
				*moves = append(*moves, Move{From: from, To: sq, Kind: kind, UnklikIndex: CombinedMove, Promotion: promo})
			}
			continue
		}

		kind := Normal
		if u.eff == effEnemy {
			kind = Capture
		}
		*moves = append(*moves, Move{From: from, To: sq, Kind: kind, UnklikIndex: CombinedMove})
	}
}

// appendCastlingMoves generates castling moves for the side to move, including the
// stacked-rook and klik landing variants (spec §4.1.5).
func appendCastlingMoves(b *Board, moves *[]Move, c Color) {
	if b.kingSq[c] != kingHome(c) {
		return
	}
	if b.IsInCheck(c) {
		return
	}
	opp := c.Opposite()

	tryAngle := func(kingSide bool) {
		right := KingSide(c)
		if !kingSide {
			right = QueenSide(c)
		}
		if !b.castling.IsAllowed(right) {
			return
		}

		corner := rookCorner(c, kingSide)
		cornerStack := b.squares[corner]
		if cornerStack.IsEmpty() || cornerStack.Color != c || !stackHasKind(cornerStack, c, Rook) {
			return
		}

		passSq := kingPassSquare(c, kingSide)
		landSq := kingLanding(c, kingSide)
		rookLandSq := rookLanding(c, kingSide)

		if !b.IsEmpty(landSq) {
			return
		}
		if !kingSide && !b.IsEmpty(queenSidePassageSquare(c)) {
			return
		}

		rookLandEff := classify(b, Piece{Color: c, Kind: Rook}, rookLandSq)
		var kind MoveKind
		switch rookLandEff {
		case effEmpty:
			kind = CastleK
			if !kingSide {
				kind = CastleQ
			}
		case effFriendly:
			// The rook's own landing square only ever holds a non-king single piece
			// here, since klik onto a King is impossible (kings never stack).
			kind = CastleKKlik
			if !kingSide {
				kind = CastleQKlik
			}
		default:
			return
		}

		if b.IsAttacked(passSq, opp) || b.IsAttacked(landSq, opp) {
			return
		}

		*moves = append(*moves, Move{From: b.kingSq[c], To: landSq, Kind: kind})
	}

	tryAngle(true)
	tryAngle(false)
}
