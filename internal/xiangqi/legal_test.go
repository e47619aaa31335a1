package xiangqi

import (
	"reflect"
	"testing"
)

func sq(x, y int) Square { return Square{X: x, Y: y} }

func TestLegalDestinationsOnEmptyBoard(t *testing.T) {
	cases := []struct {
		name string
		side Side
		pt   PieceType
		x, y int
		want []Square
	}{
		{"red general centre", Red, PieceGeneral, 4, 8, []Square{sq(3, 8), sq(4, 7), sq(4, 9), sq(5, 8)}},
		{"red general corner", Red, PieceGeneral, 3, 7, []Square{sq(3, 8), sq(4, 7)}},
		{"black general corner", Black, PieceGeneral, 5, 0, []Square{sq(4, 0), sq(5, 1)}},
		{"black advisor centre", Black, PieceAdvisor, 4, 1, []Square{sq(3, 0), sq(3, 2), sq(5, 0), sq(5, 2)}},
		{"red advisor corner", Red, PieceAdvisor, 3, 9, []Square{sq(4, 8)}},
		{"red elephant home", Red, PieceElephant, 2, 9, []Square{sq(0, 7), sq(4, 7)}},
		{"red elephant centre", Red, PieceElephant, 4, 7, []Square{sq(2, 5), sq(2, 9), sq(6, 5), sq(6, 9)}},
		{"red elephant at river", Red, PieceElephant, 2, 5, []Square{sq(0, 7), sq(4, 7)}},
		{"black elephant at river", Black, PieceElephant, 2, 4, []Square{sq(0, 2), sq(4, 2)}},
		{"horse centre", Red, PieceHorse, 4, 4, []Square{
			sq(2, 3), sq(2, 5), sq(3, 2), sq(3, 6), sq(5, 2), sq(5, 6), sq(6, 3), sq(6, 5),
		}},
		{"horse corner", Black, PieceHorse, 0, 0, []Square{sq(1, 2), sq(2, 1)}},
		{"red soldier home", Red, PieceSoldier, 4, 6, []Square{sq(4, 5)}},
		{"red soldier crossed", Red, PieceSoldier, 4, 4, []Square{sq(3, 4), sq(4, 3), sq(5, 4)}},
		{"red soldier last rank", Red, PieceSoldier, 0, 0, []Square{sq(1, 0)}},
		{"black soldier home", Black, PieceSoldier, 4, 3, []Square{sq(4, 4)}},
		{"black soldier crossed", Black, PieceSoldier, 4, 5, []Square{sq(3, 5), sq(4, 6), sq(5, 5)}},
		{"black soldier last rank", Black, PieceSoldier, 8, 9, []Square{sq(7, 9)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewEmptyPosition(tc.side)
			id := pos.MustPlace(tc.side, tc.pt, tc.x, tc.y)

			got := LegalDestinations(pos, id)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("destinations mismatch:\n got=%v\nwant=%v", got, tc.want)
			}
			// 逐格核对 IsLegal 与 LegalDestinations 一致
			want := make(map[Square]bool, len(tc.want))
			for _, s := range tc.want {
				want[s] = true
			}
			for x := 0; x < Cols; x++ {
				for y := 0; y < Rows; y++ {
					if IsLegal(pos, id, x, y) != want[sq(x, y)] {
						t.Fatalf("IsLegal(%d,%d)=%v", x, y, !want[sq(x, y)])
					}
				}
			}
		})
	}
}

func TestSlidersOnEmptyBoard(t *testing.T) {
	for _, pt := range []PieceType{PieceChariot, PieceCannon} {
		pos := NewEmptyPosition(Red)
		id := pos.MustPlace(Red, pt, 4, 4)

		var want []Square
		for x := 0; x < Cols; x++ {
			for y := 0; y < Rows; y++ {
				if (x == 4) != (y == 4) {
					want = append(want, sq(x, y))
				}
			}
		}
		got := LegalDestinations(pos, id)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%v: got %d destinations, want %d", pt, len(got), len(want))
		}
	}
}

func TestGeneralsFacingRule(t *testing.T) {
	pos := NewEmptyPosition(Red)
	red := pos.MustPlace(Red, PieceGeneral, 4, 9)
	pos.MustPlace(Black, PieceGeneral, 4, 0)

	if IsLegal(pos, red, 4, 8) {
		t.Fatalf("general must not step onto an open file facing the enemy general")
	}
	if !IsLegal(pos, red, 3, 9) {
		t.Fatalf("stepping off the file should be legal")
	}

	pos.MustPlace(Black, PieceSoldier, 4, 5)
	if !IsLegal(pos, red, 4, 8) {
		t.Fatalf("blocked file: (4,9)->(4,8) should be legal")
	}
}

func TestGeneralFacingIgnoresOwnOriginSquare(t *testing.T) {
	pos := NewEmptyPosition(Red)
	red := pos.MustPlace(Red, PieceGeneral, 3, 8)
	pos.MustPlace(Black, PieceGeneral, 3, 0)

	// 沿同一列后退，原位置不能算挡子
	if IsLegal(pos, red, 3, 9) {
		t.Fatalf("retreating along an open file still faces the enemy general")
	}
}

func TestCannonScreen(t *testing.T) {
	pos := NewEmptyPosition(Red)
	cannon := pos.MustPlace(Red, PieceCannon, 0, 0)
	pos.MustPlace(Black, PieceSoldier, 0, 3)
	pos.MustPlace(Black, PieceChariot, 0, 6)
	pos.MustPlace(Black, PieceChariot, 0, 9)

	checks := []struct {
		x, y int
		want bool
		why  string
	}{
		{0, 6, true, "capture over exactly one screen"},
		{0, 9, false, "two pieces between"},
		{0, 3, false, "capture without a screen"},
		{0, 2, true, "quiet move on a clear path"},
		{0, 4, false, "quiet move over a piece"},
		{0, 5, false, "quiet move over a piece"},
		{3, 0, true, "quiet move along the rank"},
		{1, 1, false, "diagonal"},
	}
	for _, c := range checks {
		if got := IsLegal(pos, cannon, c.x, c.y); got != c.want {
			t.Errorf("cannon -> (%d,%d) = %v, want %v (%s)", c.x, c.y, got, c.want, c.why)
		}
	}
}

func TestChariotStopsAtFirstBlocker(t *testing.T) {
	pos := NewEmptyPosition(Red)
	ch := pos.MustPlace(Red, PieceChariot, 0, 9)
	pos.MustPlace(Black, PieceHorse, 0, 5)

	if !IsLegal(pos, ch, 0, 5) {
		t.Fatalf("chariot should capture the first blocker")
	}
	if IsLegal(pos, ch, 0, 4) {
		t.Fatalf("chariot must not pass through a piece")
	}
}

func TestHorseLeg(t *testing.T) {
	pos := NewEmptyPosition(Red)
	horse := pos.MustPlace(Red, PieceHorse, 1, 9)
	pos.MustPlace(Red, PieceElephant, 2, 9)

	if lx, ly, ok := horseLeg(1, 9, 3, 8); !ok || lx != 2 || ly != 9 {
		t.Fatalf("leg for (1,9)->(3,8) = (%d,%d,%v), want (2,9)", lx, ly, ok)
	}
	got := LegalDestinations(pos, horse)
	want := []Square{sq(0, 7), sq(2, 7)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("leg on (2,9): got %v want %v", got, want)
	}

	// 换成挡竖腿
	pos = NewEmptyPosition(Red)
	horse = pos.MustPlace(Red, PieceHorse, 1, 9)
	pos.MustPlace(Black, PieceSoldier, 1, 8)
	got = LegalDestinations(pos, horse)
	want = []Square{sq(3, 8)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("leg on (1,8): got %v want %v", got, want)
	}
}

func TestElephantEye(t *testing.T) {
	pos := NewEmptyPosition(Red)
	el := pos.MustPlace(Red, PieceElephant, 4, 7)
	pos.MustPlace(Black, PieceSoldier, 3, 6)

	got := LegalDestinations(pos, el)
	want := []Square{sq(2, 9), sq(6, 5), sq(6, 9)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestOwnSquareAndFriendlyCapture(t *testing.T) {
	pos := NewEmptyPosition(Red)
	ch := pos.MustPlace(Red, PieceChariot, 0, 9)
	pos.MustPlace(Red, PieceHorse, 1, 9)

	if IsLegal(pos, ch, 0, 9) {
		t.Fatalf("moving to own square must be illegal")
	}
	if IsLegal(pos, ch, 1, 9) {
		t.Fatalf("capturing a friendly piece must be illegal")
	}
	if IsLegal(pos, ch, 0, 10) || IsLegal(pos, ch, -1, 9) {
		t.Fatalf("off-board destinations must be illegal")
	}
	if IsLegal(pos, PieceID(30), 0, 0) {
		t.Fatalf("missing piece must be illegal")
	}
}

func TestInitialPositionMoveCount(t *testing.T) {
	pos := NewInitialPosition()
	if got := len(GenerateMoves(pos, Red)); got != 44 {
		t.Fatalf("red opening moves = %d, want 44", got)
	}
	if got := len(GenerateMoves(pos, Black)); got != 44 {
		t.Fatalf("black opening moves = %d, want 44", got)
	}
}

func TestGenerateMovesOrder(t *testing.T) {
	pos := NewInitialPosition()
	moves := GenerateMoves(pos, Red)
	for i := 1; i < len(moves); i++ {
		a, b := moves[i-1], moves[i]
		if a.Piece > b.Piece {
			t.Fatalf("piece order broken at %d: %v before %v", i, a, b)
		}
		if a.Piece == b.Piece {
			if a.To.X > b.To.X || (a.To.X == b.To.X && a.To.Y >= b.To.Y) {
				t.Fatalf("square order broken at %d: %v before %v", i, a, b)
			}
		}
	}
}
