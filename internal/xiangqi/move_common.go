package xiangqi

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// 帅/将：九宫内横竖一格，且走完不能和对方照面
func legalGeneral(p *Position, pc Piece, sx, sy, tx, ty int) bool {
	if abs(tx-sx)+abs(ty-sy) != 1 {
		return false
	}
	if !inPalace(pc.Side, tx, ty) {
		return false
	}
	return !p.generalsFace(pc, tx, ty)
}

// 仕/士：九宫内斜走一格
func legalAdvisor(pc Piece, sx, sy, tx, ty int) bool {
	if abs(tx-sx) != 1 || abs(ty-sy) != 1 {
		return false
	}
	return inPalace(pc.Side, tx, ty)
}

// 相/象：田字，不过河，象眼不能有子
func legalElephant(p *Position, pc Piece, sx, sy, tx, ty int) bool {
	if abs(tx-sx) != 2 || abs(ty-sy) != 2 {
		return false
	}
	if !onOwnHalf(pc.Side, ty) {
		return false
	}
	return !p.occupied((sx+tx)/2, (sy+ty)/2)
}

// 起点和终点之间（不含两端）有几个子；不在一条线上返回 -1
func countBetween(p *Position, sx, sy, tx, ty int) int {
	if sx != tx && sy != ty {
		return -1
	}
	dx, dy := sign(tx-sx), sign(ty-sy)
	n := 0
	for x, y := sx+dx, sy+dy; x != tx || y != ty; x, y = x+dx, y+dy {
		if p.occupied(x, y) {
			n++
		}
	}
	return n
}

// 车：横竖随便走，路上不能有子
func legalChariot(p *Position, sx, sy, tx, ty int) bool {
	return countBetween(p, sx, sy, tx, ty) == 0
}

// 炮：不吃子时路上无子；吃子时正好隔一个炮架
func legalCannon(p *Position, sx, sy, tx, ty int) bool {
	n := countBetween(p, sx, sy, tx, ty)
	if n < 0 {
		return false
	}
	if p.occupied(tx, ty) {
		return n == 1
	}
	return n == 0
}
