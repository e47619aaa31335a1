package xiangqi

// 兵/卒：一次一格。未过河只能前进；过河后还能左右走；永远不能后退。
// 过没过河看的是当前所在行。
func legalSoldier(pc Piece, sx, sy, tx, ty int) bool {
	dx, dy := tx-sx, ty-sy
	if abs(dx)+abs(dy) != 1 {
		return false
	}
	dir := soldierDir(pc.Side)
	if dy == dir {
		return true
	}
	if dy != 0 {
		// 后退
		return false
	}
	return crossedRiver(pc.Side, sy)
}
