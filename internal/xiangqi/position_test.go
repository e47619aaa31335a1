package xiangqi

import (
	"strings"
	"testing"
)

func TestInitialPositionLayout(t *testing.T) {
	pos := NewInitialPosition()
	if err := pos.Validate(); err != nil {
		t.Fatalf("initial position invalid: %v", err)
	}
	if pos.SideToMove != Red {
		t.Fatalf("red moves first, got %v", pos.SideToMove)
	}
	if pos.Count(Red) != 16 || pos.Count(Black) != 16 {
		t.Fatalf("piece count red=%d black=%d", pos.Count(Red), pos.Count(Black))
	}
	rg, ok := pos.General(Red)
	if !ok || rg.X != 4 || rg.Y != 9 {
		t.Fatalf("red general at %+v", rg)
	}
	bg, ok := pos.General(Black)
	if !ok || bg.X != 4 || bg.Y != 0 {
		t.Fatalf("black general at %+v", bg)
	}
	for _, pc := range pos.PiecesOf(Red) {
		if pc.ID >= MaxPiecesPerSide {
			t.Fatalf("red piece with black id range: %+v", pc)
		}
	}
	if pc, ok := pos.PieceAt(1, 7); !ok || pc.Type != PieceCannon || pc.Side != Red {
		t.Fatalf("expected red cannon at (1,7), got %+v ok=%v", pc, ok)
	}
	if _, ok := pos.PieceAt(4, 4); ok {
		t.Fatalf("(4,4) should be empty")
	}
	if _, ok := pos.PieceAt(9, 0); ok {
		t.Fatalf("out of range lookup must be empty")
	}
}

func TestFENRoundTrip(t *testing.T) {
	pos := NewInitialPosition()
	if got := pos.Encode(); got != InitialFEN {
		t.Fatalf("encode: got %q want %q", got, InitialFEN)
	}

	fen := "4k4/9/9/9/4c4/9/9/9/4C4/3K5 b"
	decoded, err := DecodePosition(fen)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Encode() != fen {
		t.Fatalf("round trip: got %q", decoded.Encode())
	}
	if decoded.SideToMove != Black {
		t.Fatalf("side to move = %v", decoded.SideToMove)
	}
}

func TestDecodeRejectsBadFEN(t *testing.T) {
	bad := []string{
		"",
		"rnbakabnr/9/9 w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNRR w",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAXABNR w",
		"kk7/9/9/9/9/9/9/9/9/4K4 w",
		strings.Repeat("P", 9) + "/" + strings.Repeat("P", 9) + "/9/9/9/9/9/9/9/4K4 w",
	}
	for _, fen := range bad {
		if _, err := DecodePosition(fen); err != ErrInvalidFEN {
			t.Errorf("DecodePosition(%q) err=%v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestPlaceRejectsOccupiedAndOffBoard(t *testing.T) {
	pos := NewEmptyPosition(Red)
	pos.MustPlace(Red, PieceGeneral, 4, 9)
	if _, err := pos.Place(Black, PieceSoldier, 4, 9); err == nil {
		t.Fatalf("placing on an occupied square must fail")
	}
	if _, err := pos.Place(Black, PieceSoldier, 9, 9); err == nil {
		t.Fatalf("placing off board must fail")
	}
	if _, err := pos.Place(NoSide, PieceSoldier, 0, 0); err == nil {
		t.Fatalf("placing without a side must fail")
	}
	if err := pos.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCatchesGridMismatch(t *testing.T) {
	pos := NewInitialPosition()
	pos.Grid[indexOf(4, 4)] = pos.Grid[indexOf(4, 9)]
	if err := pos.Validate(); err == nil {
		t.Fatalf("grid pointing at a piece elsewhere must be reported")
	}
}

func TestPieceLabels(t *testing.T) {
	if PieceGeneral.Label(Red) != "帅" || PieceGeneral.Label(Black) != "将" {
		t.Fatalf("general labels wrong")
	}
	if PieceChariot.String() != "chariot" {
		t.Fatalf("chariot name = %q", PieceChariot.String())
	}
	if PieceNone.Label(Red) != "" {
		t.Fatalf("empty piece should have no label")
	}
}
