package board

// Direction and offset tables, as (file, rank) deltas.
var (
	orthogonalDirs = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirs   = [4][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// IsSquareAttacked reports whether sq is attacked by any piece of the
// given color. It is a pure read-only geometric scan of the grid and
// never touches move generation, which is what lets the legality
// filter call it without recursing.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally toward sq: a white attacker sits one
	// rank below it, a black attacker one rank above.
	pawnRankDir := -1
	if by == Black {
		pawnRankDir = 1
	}
	enemyPawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.Offset(df, pawnRankDir); ok && p.Squares[from] == enemyPawn {
			return true
		}
	}

	enemyKnight := NewPiece(Knight, by)
	for _, o := range knightOffsets {
		if from, ok := sq.Offset(o[0], o[1]); ok && p.Squares[from] == enemyKnight {
			return true
		}
	}

	if p.slidingAttack(sq, by, orthogonalDirs, Rook) {
		return true
	}
	if p.slidingAttack(sq, by, diagonalDirs, Bishop) {
		return true
	}

	enemyKing := NewPiece(King, by)
	for _, o := range kingOffsets {
		if from, ok := sq.Offset(o[0], o[1]); ok && p.Squares[from] == enemyKing {
			return true
		}
	}

	return false
}

// slidingAttack walks each ray from sq outward and reports whether the
// first occupied square holds a slider of the given color and type (or
// a queen).
func (p *Position) slidingAttack(sq Square, by Color, dirs [4][2]int, slider PieceType) bool {
	for _, d := range dirs {
		for i := 1; i < 8; i++ {
			target, ok := sq.Offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			piece := p.Squares[target]
			if piece == NoPiece {
				continue
			}
			if piece.Color() == by && (piece.Type() == slider || piece.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// Ray identifies a piece together with the direction (file, rank
// deltas) of the line it shares with the side to move's king.
type Ray struct {
	Square Square
	DF     int
	DR     int
}

// PinsAndChecks analyzes the side to move's king: it returns whether
// the king is in check, the absolutely pinned friendly pieces, and the
// enemy pieces currently delivering check, each tagged with the ray
// direction from the king.
//
// LegalMoves does not depend on this; it stays correct through pure
// simulate-and-observe filtering. The analysis gates castling (no
// castling out of check) and is exported for drivers that want to
// highlight pins or checking pieces.
func (p *Position) PinsAndChecks() (inCheck bool, pins, checks []Ray) {
	us := p.SideToMove
	them := us.Other()
	ksq := p.KingSquare[us]

	allDirs := [8][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	for _, d := range allDirs {
		var possiblePin Ray
		havePin := false
		for i := 1; i < 8; i++ {
			target, ok := ksq.Offset(d[0]*i, d[1]*i)
			if !ok {
				break
			}
			piece := p.Squares[target]
			if piece == NoPiece {
				continue
			}
			if piece.Color() == us && piece.Type() != King {
				if havePin {
					break // second friendly blocker, no pin on this ray
				}
				possiblePin = Ray{Square: target, DF: d[0], DR: d[1]}
				havePin = true
				continue
			}
			if piece.Color() == them {
				pt := piece.Type()
				orth := d[0] == 0 || d[1] == 0
				if pt == Queen || (pt == Rook && orth) || (pt == Bishop && !orth) {
					if havePin {
						pins = append(pins, possiblePin)
					} else {
						inCheck = true
						checks = append(checks, Ray{Square: target, DF: d[0], DR: d[1]})
					}
				}
				break
			}
		}
	}

	enemyKnight := NewPiece(Knight, them)
	for _, o := range knightOffsets {
		if target, ok := ksq.Offset(o[0], o[1]); ok && p.Squares[target] == enemyKnight {
			inCheck = true
			checks = append(checks, Ray{Square: target, DF: o[0], DR: o[1]})
		}
	}

	pawnRankDir := 1
	if us == Black {
		pawnRankDir = -1
	}
	enemyPawn := NewPiece(Pawn, them)
	for _, df := range [2]int{-1, 1} {
		if target, ok := ksq.Offset(df, pawnRankDir); ok && p.Squares[target] == enemyPawn {
			inCheck = true
			checks = append(checks, Ray{Square: target, DF: df, DR: pawnRankDir})
		}
	}

	return inCheck, pins, checks
}
