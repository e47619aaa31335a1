package xiangqi

import "testing"

func TestMakeUnmakeRestoresEveryMove(t *testing.T) {
	pos := NewInitialPosition()
	// 走几步打开局面，让吃子招出现
	line := []struct{ fx, fy, tx, ty int }{
		{1, 7, 4, 7}, // 炮二平五
		{7, 0, 6, 2}, // 马8进7
		{4, 7, 4, 3}, // 炮五进四 吃卒
	}
	for _, l := range line {
		pc, ok := pos.PieceAt(l.fx, l.fy)
		if !ok || !IsLegal(pos, pc.ID, l.tx, l.ty) {
			t.Fatalf("setup move (%d,%d)->(%d,%d) not legal", l.fx, l.fy, l.tx, l.ty)
		}
		pos.MakeMove(Move{Piece: pc.ID, From: pc.Square(), To: sq(l.tx, l.ty)})
	}

	for _, side := range []Side{Red, Black} {
		for _, mv := range GenerateMoves(pos, side) {
			before := *pos
			u := pos.MakeMove(mv)
			if err := pos.Validate(); err != nil {
				t.Fatalf("after make %+v: %v", mv, err)
			}
			pos.UnmakeMove(u)
			if *pos != before {
				t.Fatalf("unmake did not restore position for %+v", mv)
			}
		}
	}
}

func TestMakeMoveCaptureMarksSlotDead(t *testing.T) {
	pos := NewEmptyPosition(Red)
	ch := pos.MustPlace(Red, PieceChariot, 0, 9)
	victim := pos.MustPlace(Black, PieceHorse, 0, 2)

	u := pos.MakeMove(Move{Piece: ch, From: sq(0, 9), To: sq(0, 2)})
	if u.Captured != victim {
		t.Fatalf("captured=%d want %d", u.Captured, victim)
	}
	if _, ok := pos.Piece(victim); ok {
		t.Fatalf("captured piece still alive")
	}
	if pc, ok := pos.PieceAt(0, 2); !ok || pc.ID != ch || !pc.HasMoved {
		t.Fatalf("mover not on target: %+v", pc)
	}
	if pos.SideToMove != Black {
		t.Fatalf("side not flipped")
	}
	if pos.Hash != pos.CalculateHash() {
		t.Fatalf("incremental hash diverged")
	}

	pos.UnmakeMove(u)
	if pc, ok := pos.PieceAt(0, 2); !ok || pc.ID != victim {
		t.Fatalf("victim not restored: %+v", pc)
	}
	if pc, _ := pos.Piece(ch); pc.HasMoved {
		t.Fatalf("hasMoved not restored")
	}
}

func TestReviveAndRelocate(t *testing.T) {
	pos := NewEmptyPosition(Red)
	ch := pos.MustPlace(Red, PieceChariot, 0, 9)
	victim := pos.MustPlace(Black, PieceHorse, 0, 2)
	snap, _ := pos.Piece(victim)
	start := *pos

	pos.MakeMove(Move{Piece: ch, From: sq(0, 9), To: sq(0, 2)})
	if !pos.Relocate(ch, sq(0, 9), false) {
		t.Fatalf("relocate failed")
	}
	if !pos.Revive(snap) {
		t.Fatalf("revive failed")
	}
	if pos.Revive(snap) {
		t.Fatalf("reviving a live piece must fail")
	}
	pos.SetSideToMove(Red)
	if *pos != start {
		t.Fatalf("revive+relocate did not restore the position")
	}
}
