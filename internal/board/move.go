package board

import "fmt"

// Move records a single transition together with everything needed to
// invert it. It is a plain value: the move log, the search stack and
// drivers all hold their own copies.
//
// For an en passant capture, Captured is the pawn actually removed
// from the board, not the (empty) piece on the destination square.
type Move struct {
	From     Square
	To       Square
	Piece    Piece // the moving piece
	Captured Piece // NoPiece when the destination was empty

	// Promotion is the chosen replacement piece type for a promoting
	// pawn. It stays NoPieceType until a driver resolves it; MakeMove
	// falls back to Queen when it is still unresolved.
	Promotion PieceType

	EnPassant bool
	Castle    bool
}

// NewMove creates a move on pos, reading the moving and captured
// pieces from the current grid.
func NewMove(pos *Position, from, to Square) Move {
	return Move{
		From:      from,
		To:        to,
		Piece:     pos.PieceAt(from),
		Captured:  pos.PieceAt(to),
		Promotion: NoPieceType,
	}
}

// NewEnPassantMove creates an en passant capture. The captured pawn
// sits beside the origin, not on the destination square.
func NewEnPassantMove(pos *Position, from, to Square) Move {
	m := Move{
		From:      from,
		To:        to,
		Piece:     pos.PieceAt(from),
		Promotion: NoPieceType,
		EnPassant: true,
	}
	m.Captured = NewPiece(Pawn, m.Piece.Color().Other())
	return m
}

// NewCastleMove creates a castling move, expressed as the king's
// two-square step. The rook relocation is handled by MakeMove.
func NewCastleMove(pos *Position, from, to Square) Move {
	return Move{
		From:      from,
		To:        to,
		Piece:     pos.PieceAt(from),
		Captured:  NoPiece,
		Promotion: NoPieceType,
		Castle:    true,
	}
}

// IsPromotion reports whether the move promotes a pawn: the mover must
// be a pawn and the destination must be the far rank for its color.
func (m Move) IsPromotion() bool {
	if m.Piece.Type() != Pawn {
		return false
	}
	rank := m.To.Rank()
	return rank == 7 || rank == 0
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// SameIntent reports whether two moves express the same user intent:
// identical origin, destination and promotion choice. Full struct
// equality is still what state restoration relies on.
func (m Move) SameIntent(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String returns the move in coordinate notation (e.g. "e2e4"), with a
// trailing piece letter for promotions (e.g. "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		choice := m.Promotion
		if choice == NoPieceType {
			choice = Queen
		}
		s += string("nbrq"[choice-Knight])
	}
	return s
}

// ParseMove parses coordinate notation ("e2e4", "e7e8q") against the
// current position and returns the matching legal move. The returned
// move is an exact reconstruction of a LegalMoves candidate, with the
// promotion choice from the suffix already resolved.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	promo := NoPieceType
	if len(s) == 5 {
		promo = PieceTypeFromChar(s[4])
		if promo == NoPieceType {
			return Move{}, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
	}

	for _, m := range pos.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if promo != NoPieceType {
			if !m.IsPromotion() {
				return Move{}, fmt.Errorf("move %s is not a promotion", s[:4])
			}
			m.Promotion = promo
		}
		return m, nil
	}
	return Move{}, fmt.Errorf("illegal move: %s", s)
}
