package engine

import "github.com/larsenmt/chesscore/internal/board"

// FindBestMove runs a negamax alpha-beta search of the given ply depth
// over the supplied root moves and returns the best one. The root
// moves should be pos.LegalMoves(); passing them in lets a driver that
// already generated them avoid doing it twice.
//
// The second return value is false when there are no root moves (the
// caller should consult IsCheckmate/IsStalemate) or depth is not
// positive. Ties resolve to the first qualifying move under the
// captures-first ordering, so results are deterministic for a fixed
// position.
//
// The search mutates pos through MakeMove/UnmakeMove pairs but leaves
// it exactly as it found it.
func FindBestMove(pos *board.Position, moves []board.Move, depth int) (board.Move, bool) {
	if len(moves) == 0 || depth <= 0 {
		return board.Move{}, false
	}

	bestScore := -CheckmateScore - 1
	var best board.Move
	alpha, beta := -CheckmateScore, CheckmateScore

	for _, m := range orderMoves(moves) {
		pos.MakeMove(m)
		score := -negamax(pos, depth-1, -beta, -alpha)
		pos.UnmakeMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best, true
}

// negamax searches depth plies below the current node and returns its
// score from the side to move's perspective. Alpha-beta bounds are
// fail-hard: search stops at a node once alpha meets beta.
func negamax(pos *board.Position, depth, alpha, beta int) int {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.InCheck() {
			return -CheckmateScore
		}
		return StalemateScore
	}
	if depth == 0 {
		return evaluate(pos)
	}

	maxScore := -CheckmateScore
	for _, m := range orderMoves(moves) {
		pos.MakeMove(m)
		score := -negamax(pos, depth-1, -beta, -alpha)
		pos.UnmakeMove()

		if score > maxScore {
			maxScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return maxScore
}

// orderMoves returns the moves with captures stably partitioned in
// front of quiet moves. The cheap partition is enough to improve
// pruning; relative order within each group is preserved.
func orderMoves(moves []board.Move) []board.Move {
	ordered := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			ordered = append(ordered, m)
		}
	}
	for _, m := range moves {
		if !m.IsCapture() {
			ordered = append(ordered, m)
		}
	}
	return ordered
}
