package board

// PseudoLegalMoves enumerates every move for the side to move that
// obeys piece movement rules, ignoring whether the mover's own king is
// left attacked. Order is deterministic for a fixed position: squares
// are scanned A1..H8 and each piece appends in a fixed pattern.
func (p *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece || piece.Color() != p.SideToMove {
			continue
		}
		switch piece.Type() {
		case Pawn:
			moves = p.pawnMoves(sq, moves)
		case Knight:
			moves = p.offsetMoves(sq, knightOffsets, moves)
		case Bishop:
			moves = p.slidingMoves(sq, diagonalDirs, moves)
		case Rook:
			moves = p.slidingMoves(sq, orthogonalDirs, moves)
		case Queen:
			moves = p.slidingMoves(sq, orthogonalDirs, moves)
			moves = p.slidingMoves(sq, diagonalDirs, moves)
		case King:
			moves = p.offsetMoves(sq, kingOffsets, moves)
			moves = p.castleMoves(sq, moves)
		}
	}
	return moves
}

// LegalMoves filters the pseudo-legal set by simulation: each
// candidate is applied, the mover's own king checked for attack, and
// the candidate reverted. Only king-safe moves survive. Order follows
// generation order and is deterministic for a fixed position.
func (p *Position) LegalMoves() []Move {
	candidates := p.PseudoLegalMoves()
	legal := candidates[:0]
	for _, m := range candidates {
		p.MakeMove(m)
		mover := p.SideToMove.Other()
		safe := !p.IsSquareAttacked(p.KingSquare[mover], p.SideToMove)
		p.UnmakeMove()
		if safe {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one
// legal move, stopping at the first one found.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		p.MakeMove(m)
		mover := p.SideToMove.Other()
		safe := !p.IsSquareAttacked(p.KingSquare[mover], p.SideToMove)
		p.UnmakeMove()
		if safe {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare[p.SideToMove], p.SideToMove.Other())
}

// IsCheckmate reports whether the side to move is in check with no
// legal moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move is not in check but has
// no legal moves.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

// pawnMoves appends pushes, captures and en passant captures for the
// pawn on sq.
func (p *Position) pawnMoves(sq Square, moves []Move) []Move {
	us := p.Squares[sq].Color()
	them := us.Other()

	rankDir := 1
	startRank := 1
	if us == Black {
		rankDir = -1
		startRank = 6
	}

	if one, ok := sq.Offset(0, rankDir); ok && p.IsEmpty(one) {
		moves = append(moves, NewMove(p, sq, one))
		if sq.Rank() == startRank {
			if two, ok := sq.Offset(0, 2*rankDir); ok && p.IsEmpty(two) {
				moves = append(moves, NewMove(p, sq, two))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		target, ok := sq.Offset(df, rankDir)
		if !ok {
			continue
		}
		if p.Squares[target] != NoPiece && p.Squares[target].Color() == them {
			moves = append(moves, NewMove(p, sq, target))
		}
		if target == p.EnPassant {
			moves = append(moves, NewEnPassantMove(p, sq, target))
		}
	}

	return moves
}

// offsetMoves appends fixed-offset moves (knight or king) landing on
// empty or enemy-occupied squares.
func (p *Position) offsetMoves(sq Square, offsets [8][2]int, moves []Move) []Move {
	us := p.Squares[sq].Color()
	for _, o := range offsets {
		target, ok := sq.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if p.Squares[target] == NoPiece || p.Squares[target].Color() != us {
			moves = append(moves, NewMove(p, sq, target))
		}
	}
	return moves
}

// slidingMoves appends ray moves for rooks, bishops and queens,
// stopping each ray at the first obstruction and including it only
// when enemy-occupied.
func (p *Position) slidingMoves(sq Square, dirs [4][2]int, moves []Move) []Move {
	us := p.Squares[sq].Color()
	for _, d := range dirs {
		for i := 1; i < 8; i++ {
			target, ok := sq.Offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			piece := p.Squares[target]
			if piece == NoPiece {
				moves = append(moves, NewMove(p, sq, target))
				continue
			}
			if piece.Color() != us {
				moves = append(moves, NewMove(p, sq, target))
			}
			break
		}
	}
	return moves
}

// castleMoves appends castling candidates for the king on sq. A side
// qualifies when its right is still held, the squares strictly between
// king and rook are empty, the king is not in check, and neither the
// king's square nor the squares it passes through are attacked. The
// rook's own square may be attacked; only the king's path matters.
func (p *Position) castleMoves(sq Square, moves []Move) []Move {
	us := p.Squares[sq].Color()
	them := us.Other()

	home := E1
	if us == Black {
		home = E8
	}
	if sq != home {
		return moves
	}

	if inCheck, _, _ := p.PinsAndChecks(); inCheck {
		return moves
	}

	if p.CastlingRights.CanCastle(us, true) {
		if p.IsEmpty(sq+1) && p.IsEmpty(sq+2) &&
			!p.IsSquareAttacked(sq+1, them) && !p.IsSquareAttacked(sq+2, them) {
			moves = append(moves, NewCastleMove(p, sq, sq+2))
		}
	}
	if p.CastlingRights.CanCastle(us, false) {
		if p.IsEmpty(sq-1) && p.IsEmpty(sq-2) && p.IsEmpty(sq-3) &&
			!p.IsSquareAttacked(sq-1, them) && !p.IsSquareAttacked(sq-2, them) {
			moves = append(moves, NewCastleMove(p, sq, sq-2))
		}
	}
	return moves
}
