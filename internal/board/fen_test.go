package board

import (
	"testing"

	"github.com/larsenmt/chesscore/internal/testutil"
)

func TestParseFENStartingPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, pos.SideToMove, White)
	testutil.AssertEqual(t, pos.CastlingRights, AllCastling)
	testutil.AssertEqual(t, pos.EnPassant, NoSquare)
	testutil.AssertEqual(t, pos.KingSquare[White], E1)
	testutil.AssertEqual(t, pos.KingSquare[Black], E8)
	testutil.AssertEqual(t, pos.PieceAt(A1), WhiteRook)
	testutil.AssertEqual(t, pos.PieceAt(D8), BlackQueen)
	testutil.AssertEqual(t, pos.PieceAt(E4), NoPiece)
	testutil.AssertEqual(t, len(pos.MoveLog), 0)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, pos.ToFEN(), fen)
	}
}

func TestParseFENIgnoresClockFields(t *testing.T) {
	short, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq -")
	testutil.AssertNoError(t, err)
	long, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 37 94")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, short.ToFEN(), long.ToFEN())
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",        // missing fields
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KXkq -", // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9",
		"8/8/8/8/8/8/8/8 w - -",          // no kings
		"KK6/8/8/8/8/8/8/7k w - -",       // two white kings
		"P7/8/8/8/8/7k/8/K7 w - -",       // pawn on the back rank
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		}
	}
}

func TestNewPositionMatchesStartFEN(t *testing.T) {
	testutil.AssertEqual(t, NewPosition(), mustParse(t, StartFEN), positionCmp...)
}

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	testutil.AssertNoError(t, err)
	return pos
}
