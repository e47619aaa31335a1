package xiangqi

// 马走日：终点 + 马腿，马腿在走两格那条轴上、紧挨起点
var horseLegMoves = [8]struct {
	Dx, Dy int // 终点
	Lx, Ly int // 马腿
}{
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-2, -1, -1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{+2, +1, +1, 0},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

// horseLeg 返回 (sx,sy)->(tx,ty) 的马腿；不是日字返回 false
func horseLeg(sx, sy, tx, ty int) (int, int, bool) {
	dx, dy := tx-sx, ty-sy
	for _, m := range horseLegMoves {
		if m.Dx == dx && m.Dy == dy {
			return sx + m.Lx, sy + m.Ly, true
		}
	}
	return 0, 0, false
}

func legalHorse(p *Position, sx, sy, tx, ty int) bool {
	lx, ly, ok := horseLeg(sx, sy, tx, ty)
	if !ok {
		return false
	}
	// 憋马腿
	return !p.occupied(lx, ly)
}
