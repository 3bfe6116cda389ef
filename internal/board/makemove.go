package board

// rankDistance returns the absolute rank distance between two squares.
func rankDistance(a, b Square) int {
	d := a.Rank() - b.Rank()
	if d < 0 {
		return -d
	}
	return d
}

// epCaptureSquare returns the square of the pawn removed by an en
// passant capture: one rank behind the destination, from the mover's
// point of view.
func (m Move) epCaptureSquare() Square {
	if m.Piece.Color() == White {
		return m.To - 8
	}
	return m.To + 8
}

// MakeMove applies a move to the position: it mutates the grid, the
// king cache, the en passant target and the castling rights, appends
// the move and a rights snapshot to the logs, records the new position
// fingerprint and flips the side to move.
//
// The move must come from LegalMoves on this same position (or be an
// exact field-for-field reconstruction of one); applying anything else
// is outside the contract.
func (p *Position) MakeMove(m Move) {
	us := m.Piece.Color()

	p.Squares[m.From] = NoPiece
	if m.EnPassant {
		p.Squares[m.epCaptureSquare()] = NoPiece
	}
	p.Squares[m.To] = m.Piece

	if m.Piece.Type() == King {
		p.KingSquare[us] = m.To
	}

	if m.IsPromotion() {
		choice := m.Promotion
		if choice == NoPieceType {
			choice = Queen
		}
		p.Squares[m.To] = NewPiece(choice, us)
	}

	// A double pawn push opens an en passant window for one ply.
	if m.Piece.Type() == Pawn && rankDistance(m.From, m.To) == 2 {
		p.EnPassant = (m.From + m.To) / 2
	} else {
		p.EnPassant = NoSquare
	}

	if m.Castle {
		if m.To > m.From {
			// kingside: rook hops from the h-file to beside the king
			p.Squares[m.To-1] = p.Squares[m.To+1]
			p.Squares[m.To+1] = NoPiece
		} else {
			// queenside: rook hops from the a-file to beside the king
			p.Squares[m.To+1] = p.Squares[m.To-2]
			p.Squares[m.To-2] = NoPiece
		}
	}

	p.updateCastlingRights(m)
	p.rightsLog = append(p.rightsLog, p.CastlingRights)
	p.MoveLog = append(p.MoveLog, m)

	p.SideToMove = p.SideToMove.Other()
	p.recordPosition()
}

// UnmakeMove reverts the last logged move, restoring the position to a
// state indistinguishable from before the matching MakeMove. With an
// empty log it is a no-op.
func (p *Position) UnmakeMove() {
	if len(p.MoveLog) == 0 {
		return
	}

	// Drop the fingerprint of the position being left before any state
	// changes, so search simulation never leaks repetition counts.
	p.forgetPosition()

	m := p.MoveLog[len(p.MoveLog)-1]
	p.MoveLog = p.MoveLog[:len(p.MoveLog)-1]

	// Restoring m.Piece also reverts a promotion: the logged mover is
	// the pawn, and the destination gets the captured piece back.
	p.Squares[m.From] = m.Piece
	if m.EnPassant {
		p.Squares[m.To] = NoPiece
		p.Squares[m.epCaptureSquare()] = m.Captured
	} else {
		p.Squares[m.To] = m.Captured
	}

	if m.Piece.Type() == King {
		p.KingSquare[m.Piece.Color()] = m.From
	}

	if m.Castle {
		if m.To > m.From {
			p.Squares[m.To+1] = p.Squares[m.To-1]
			p.Squares[m.To-1] = NoPiece
		} else {
			p.Squares[m.To-2] = p.Squares[m.To+1]
			p.Squares[m.To+1] = NoPiece
		}
	}

	p.rightsLog = p.rightsLog[:len(p.rightsLog)-1]
	p.CastlingRights = p.rightsLog[len(p.rightsLog)-1]

	// The en passant target is a function of the previous move.
	if len(p.MoveLog) > 0 {
		last := p.MoveLog[len(p.MoveLog)-1]
		if last.Piece.Type() == Pawn && rankDistance(last.From, last.To) == 2 {
			p.EnPassant = (last.From + last.To) / 2
		} else {
			p.EnPassant = NoSquare
		}
	} else {
		p.EnPassant = p.baseEnPassant
	}

	p.SideToMove = p.SideToMove.Other()
}

// updateCastlingRights clears rights lost by the move: any king move
// clears both of that color's rights, a rook moving off its home
// square clears the matching right, and a capture landing on a rook's
// home square clears the victim's matching right.
func (p *Position) updateCastlingRights(m Move) {
	switch m.Piece {
	case WhiteKing:
		p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
	case BlackKing:
		p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
	case WhiteRook:
		if m.From == A1 {
			p.CastlingRights &^= WhiteQueenSideCastle
		} else if m.From == H1 {
			p.CastlingRights &^= WhiteKingSideCastle
		}
	case BlackRook:
		if m.From == A8 {
			p.CastlingRights &^= BlackQueenSideCastle
		} else if m.From == H8 {
			p.CastlingRights &^= BlackKingSideCastle
		}
	}

	switch m.Captured {
	case WhiteRook:
		if m.To == A1 {
			p.CastlingRights &^= WhiteQueenSideCastle
		} else if m.To == H1 {
			p.CastlingRights &^= WhiteKingSideCastle
		}
	case BlackRook:
		if m.To == A8 {
			p.CastlingRights &^= BlackQueenSideCastle
		} else if m.To == H8 {
			p.CastlingRights &^= BlackKingSideCastle
		}
	}
}
