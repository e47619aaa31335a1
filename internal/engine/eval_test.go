package engine

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestEvaluateInitialIsBalanced(t *testing.T) {
	if got := Evaluate(xiangqi.NewInitialPosition()); got != 0 {
		t.Fatalf("initial eval=%d want 0", got)
	}
}

func TestEvaluateWithoutGeneral(t *testing.T) {
	pos := xiangqi.NewEmptyPosition(xiangqi.Red)
	pos.MustPlace(xiangqi.Black, xiangqi.PieceGeneral, 4, 0)
	if got := Evaluate(pos); got != 10000 {
		t.Fatalf("eval=%d want 10000", got)
	}
}

func TestEvaluateComponents(t *testing.T) {
	pos := xiangqi.NewEmptyPosition(xiangqi.Red)
	pos.MustPlace(xiangqi.Red, xiangqi.PieceGeneral, 4, 9)
	pos.MustPlace(xiangqi.Black, xiangqi.PieceGeneral, 3, 0)
	pos.MustPlace(xiangqi.Black, xiangqi.PieceChariot, 0, 0)

	// 黑：将 10000 + 靠近 4；车 900 + 位置 10 + 靠近 0
	// 红：帅 10000 + 靠近 4
	if got := Evaluate(pos); got != 910 {
		t.Fatalf("eval=%d want 910", got)
	}
}

func TestRankBand(t *testing.T) {
	cases := []struct {
		side xiangqi.Side
		y    int
		want int
	}{
		{xiangqi.Black, 0, 0},
		{xiangqi.Black, 4, 0},
		{xiangqi.Black, 5, 1},
		{xiangqi.Black, 6, 1},
		{xiangqi.Black, 7, 2},
		{xiangqi.Red, 9, 0},
		{xiangqi.Red, 5, 0},
		{xiangqi.Red, 4, 1},
		{xiangqi.Red, 2, 2},
	}
	for _, tc := range cases {
		if got := rankBand(tc.side, tc.y); got != tc.want {
			t.Errorf("rankBand(%v,%d)=%d want %d", tc.side, tc.y, got, tc.want)
		}
	}
}

func TestProximityBonus(t *testing.T) {
	gen := xiangqi.Piece{X: 4, Y: 0}
	cases := []struct {
		x, y int8
		want int
	}{
		{4, 1, 45},
		{4, 2, 40},
		{5, 1, 42}, // 50 - 5*1.414 = 42.9
		{4, 9, 5},
		{0, 9, 0},
	}
	for _, tc := range cases {
		if got := proximityBonus(xiangqi.Piece{X: tc.x, Y: tc.y}, gen); got != tc.want {
			t.Errorf("proximity(%d,%d)=%d want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
