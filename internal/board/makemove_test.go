package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/larsenmt/chesscore/internal/testutil"
)

var positionCmp = []cmp.Option{
	cmp.AllowUnexported(Position{}),
	cmpopts.EquateEmpty(),
}

// mustMove fails the test unless the notation matches a legal move.
func mustMove(t *testing.T, pos *Position, s string) Move {
	t.Helper()
	m, err := ParseMove(s, pos)
	if err != nil {
		t.Fatalf("move %s: %v", s, err)
	}
	return m
}

// assertRoundTrip plays the move and takes it back, requiring the
// position to come back equal in every field.
func assertRoundTrip(t *testing.T, pos *Position, s string) {
	t.Helper()
	want := pos.Copy()
	m := mustMove(t, pos, s)
	pos.MakeMove(m)
	if err := pos.Validate(); err != nil {
		t.Fatalf("invalid position after %s: %v", s, err)
	}
	pos.UnmakeMove()
	testutil.AssertEqual(t, pos, want, positionCmp...)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"pawn push", StartFEN, "e2e4"},
		{"double push", StartFEN, "d2d4"},
		{"knight", StartFEN, "g1f3"},
		{"capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5"},
		{"white kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1"},
		{"white queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1"},
		{"black kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8"},
		{"black queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8"},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 1", "e5d6"},
		{"promotion to queen", "8/P6k/8/8/8/8/8/7K w - - 0 1", "a7a8q"},
		{"promotion to knight", "8/P6k/8/8/8/8/8/7K w - - 0 1", "a7a8n"},
		{"promotion capture", "1r6/P6k/8/8/8/8/8/7K w - - 0 1", "a7b8q"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			testutil.AssertNoError(t, err)
			assertRoundTrip(t, pos, tc.move)
		})
	}
}

func TestRoundTripAllLegalMoves(t *testing.T) {
	// Every legal move in a position with castling, en passant and
	// promotion candidates must round-trip exactly.
	pos, err := ParseFEN("r3k2r/1P6/8/3pP3/8/8/8/R3K2R w KQkq d6 0 1")
	testutil.AssertNoError(t, err)

	want := pos.Copy()
	for _, m := range pos.LegalMoves() {
		pos.MakeMove(m)
		pos.UnmakeMove()
		testutil.AssertEqual(t, pos, want, positionCmp...)
	}
}

func TestUnmakeOnEmptyLogIsNoOp(t *testing.T) {
	pos := NewPosition()
	want := pos.Copy()
	pos.UnmakeMove()
	testutil.AssertEqual(t, pos, want, positionCmp...)
}

func TestMakeMoveFlipsSideAndLogs(t *testing.T) {
	pos := NewPosition()
	pos.MakeMove(mustMove(t, pos, "e2e4"))

	testutil.AssertEqual(t, pos.SideToMove, Black)
	testutil.AssertEqual(t, len(pos.MoveLog), 1)
	testutil.AssertEqual(t, pos.EnPassant, E3)
	testutil.AssertEqual(t, pos.PieceAt(E4), WhitePawn)
	testutil.AssertEqual(t, pos.PieceAt(E2), NoPiece)
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	pos, err := ParseFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	testutil.AssertNoError(t, err)

	// Apply the generated candidate without resolving the choice.
	var promo Move
	for _, m := range pos.LegalMoves() {
		if m.From == A7 && m.To == A8 {
			promo = m
		}
	}
	testutil.AssertTrue(t, promo.IsPromotion(), "a7a8 should be a promotion")
	testutil.AssertEqual(t, promo.Promotion, NoPieceType)

	pos.MakeMove(promo)
	testutil.AssertEqual(t, pos.PieceAt(A8), WhiteQueen)
}

func TestKingCacheFollowsKing(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	pos.MakeMove(mustMove(t, pos, "e1d2"))
	testutil.AssertEqual(t, pos.KingSquare[White], D2)
	pos.MakeMove(mustMove(t, pos, "e8f7"))
	testutil.AssertEqual(t, pos.KingSquare[Black], F7)

	pos.UnmakeMove()
	testutil.AssertEqual(t, pos.KingSquare[Black], E8)
	pos.UnmakeMove()
	testutil.AssertEqual(t, pos.KingSquare[White], E1)
}

func TestCastlingRightsAfterKingMove(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	pos.MakeMove(mustMove(t, pos, "e1d1"))
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(White, true), "white kingside after king move")
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(White, false), "white queenside after king move")
	testutil.AssertTrue(t, pos.CastlingRights.CanCastle(Black, true), "black kingside untouched")

	pos.UnmakeMove()
	testutil.AssertEqual(t, pos.CastlingRights, AllCastling)
}

func TestCastlingRightLostForwardRestoredByUndo(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	// Rook leaves h1 and returns: the right stays lost in forward play.
	pos.MakeMove(mustMove(t, pos, "h1h4"))
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(White, true), "kingside after rook move")
	pos.MakeMove(mustMove(t, pos, "a8b8"))
	pos.MakeMove(mustMove(t, pos, "h4h1"))
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(White, true), "kingside after rook returns")

	// Undo all three plies: the right comes back.
	pos.UnmakeMove()
	pos.UnmakeMove()
	pos.UnmakeMove()
	testutil.AssertTrue(t, pos.CastlingRights.CanCastle(White, true), "kingside restored by undo")
}

func TestCapturingUnmovedRookClearsRight(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	// White rook takes the a8 rook in place.
	pos.MakeMove(mustMove(t, pos, "a1a8"))
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(Black, false), "black queenside after rook captured")
	testutil.AssertFalse(t, pos.CastlingRights.CanCastle(White, false), "white queenside after rook left a1")
	testutil.AssertTrue(t, pos.CastlingRights.CanCastle(Black, true), "black kingside untouched")

	// Undoing the capture puts the rook back and restores the right.
	pos.UnmakeMove()
	testutil.AssertEqual(t, pos.CastlingRights, AllCastling)
}

func TestEnPassantStateRoundTrip(t *testing.T) {
	pos, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 1")
	testutil.AssertNoError(t, err)

	m := mustMove(t, pos, "e5d6")
	testutil.AssertTrue(t, m.EnPassant, "e5d6 should be en passant")
	testutil.AssertEqual(t, m.Captured, BlackPawn)

	pos.MakeMove(m)
	testutil.AssertEqual(t, pos.PieceAt(D6), WhitePawn)
	testutil.AssertEqual(t, pos.PieceAt(D5), NoPiece) // the captured pawn, not the target square
	testutil.AssertEqual(t, pos.PieceAt(E5), NoPiece)

	pos.UnmakeMove()
	testutil.AssertEqual(t, pos.PieceAt(D5), BlackPawn)
	testutil.AssertEqual(t, pos.PieceAt(E5), WhitePawn)
	testutil.AssertEqual(t, pos.PieceAt(D6), NoPiece)
	testutil.AssertEqual(t, pos.EnPassant, D6)
}
