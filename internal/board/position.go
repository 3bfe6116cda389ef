package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// Position is the single mutable aggregate of game state. It owns the
// grid, the castling rights and their history, the move log, the king
// location cache and the repetition counts.
//
// A Position must not be shared between concurrent searches; use Copy
// to give each one its own instance.
type Position struct {
	// Squares is the board as a mailbox array indexed by Square.
	Squares [64]Piece

	SideToMove Color

	// KingSquare caches the king location per color. It always equals
	// the actual king square on the grid.
	KingSquare [2]Square

	CastlingRights CastlingRights

	// EnPassant is the capture target square set immediately after a
	// two-square pawn advance, NoSquare otherwise. It is valid for
	// exactly one ply.
	EnPassant Square

	// MoveLog holds every applied move, append-only during play and
	// popped on undo.
	MoveLog []Move

	// rightsLog mirrors MoveLog with one rights snapshot per ply, plus
	// the initial rights at index 0. Rights cannot be recomputed from
	// the grid after captures, so they are logged for exact undo.
	rightsLog []CastlingRights

	// baseEnPassant is the en passant target active before the first
	// logged move (set by ParseFEN), restored when the log empties.
	baseEnPassant Square

	// repetition counts how often each position fingerprint has
	// occurred, for threefold repetition claims.
	repetition map[uint64]int
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates a deep copy of the position, with its own logs and
// repetition counts.
func (p *Position) Copy() *Position {
	c := *p
	c.MoveLog = append([]Move(nil), p.MoveLog...)
	c.rightsLog = append([]CastlingRights(nil), p.rightsLog...)
	c.repetition = make(map[uint64]int, len(p.repetition))
	for k, v := range p.repetition {
		c.repetition[k] = v
	}
	return &c
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPiece
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	return s
}

// Validate checks basic structural invariants of the position.
func (p *Position) Validate() error {
	var kings [2]int
	for sq := A1; sq <= H8; sq++ {
		piece := p.Squares[sq]
		if piece == NoPiece {
			continue
		}
		if piece.Type() == King {
			kings[piece.Color()]++
			if p.KingSquare[piece.Color()] != sq {
				return fmt.Errorf("stale king cache for %s: cached %s, found %s",
					piece.Color(), p.KingSquare[piece.Color()], sq)
			}
		}
		if piece.Type() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on back rank at %s", sq)
		}
	}
	if kings[White] != 1 {
		return fmt.Errorf("white must have exactly one king, found %d", kings[White])
	}
	if kings[Black] != 1 {
		return fmt.Errorf("black must have exactly one king, found %d", kings[Black])
	}
	return nil
}
