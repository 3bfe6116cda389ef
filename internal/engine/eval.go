// Package engine implements a fixed-depth negamax search with
// alpha-beta pruning over the board package's legal move interface.
package engine

import "github.com/larsenmt/chesscore/internal/board"

// Score constants. Checkmate dominates any material total; stalemate
// is a dead draw.
const (
	CheckmateScore = 1000000
	StalemateScore = 0
)

// materialScore sums piece values over the board, positive when white
// is ahead. Kings carry no material value.
func materialScore(pos *board.Position) int {
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		if piece.Color() == board.White {
			score += piece.Value()
		} else {
			score -= piece.Value()
		}
	}
	return score
}

// evaluate scores a leaf from the side to move's perspective: the
// white-positive material sum times the turn multiplier.
func evaluate(pos *board.Position) int {
	score := materialScore(pos)
	if pos.SideToMove == board.Black {
		score = -score
	}
	return score
}
