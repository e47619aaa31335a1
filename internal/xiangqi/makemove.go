package xiangqi

// Undo 记录 MakeMove 改动的全部东西，UnmakeMove 据此原样恢复
type Undo struct {
	Move         Move
	Captured     PieceID
	PrevHasMoved bool
	PrevSide     Side
	PrevHash     uint64
}

// MakeMove 在原局面上走一步：吃子只把槽位标记为死，不挪动数组。
// 默认传进来的就是合法招（由上层检查）。
func (p *Position) MakeMove(m Move) Undo {
	initZobrist()
	pc := p.Pieces[m.Piece]
	u := Undo{
		Move:         m,
		Captured:     NoPiece,
		PrevHasMoved: pc.HasMoved,
		PrevSide:     p.SideToMove,
		PrevHash:     p.Hash,
	}

	h := p.Hash
	fromSq := indexOf(m.From.X, m.From.Y)
	toSq := indexOf(m.To.X, m.To.Y)

	if v := p.Grid[toSq]; v != 0 {
		cid := PieceID(v - 1)
		u.Captured = cid
		p.Pieces[cid].Alive = false
		h ^= pieceHashKey(p.Pieces[cid].Side, p.Pieces[cid].Type, toSq)
	}

	h ^= pieceHashKey(pc.Side, pc.Type, fromSq)
	h ^= pieceHashKey(pc.Side, pc.Type, toSq)

	p.Grid[fromSq] = 0
	p.Grid[toSq] = int8(m.Piece + 1)
	mover := &p.Pieces[m.Piece]
	mover.X = int8(m.To.X)
	mover.Y = int8(m.To.Y)
	mover.HasMoved = true

	p.SideToMove = opposite(p.SideToMove)
	h ^= zobristSide
	p.Hash = h
	return u
}

// UnmakeMove 撤销 MakeMove，局面逐字节恢复
func (p *Position) UnmakeMove(u Undo) {
	m := u.Move
	fromSq := indexOf(m.From.X, m.From.Y)
	toSq := indexOf(m.To.X, m.To.Y)

	mover := &p.Pieces[m.Piece]
	mover.X = int8(m.From.X)
	mover.Y = int8(m.From.Y)
	mover.HasMoved = u.PrevHasMoved
	p.Grid[fromSq] = int8(m.Piece + 1)

	if u.Captured != NoPiece {
		p.Pieces[u.Captured].Alive = true
		p.Grid[toSq] = int8(u.Captured + 1)
	} else {
		p.Grid[toSq] = 0
	}

	p.SideToMove = u.PrevSide
	p.Hash = u.PrevHash
}

// Revive 把被吃的子按快照放回棋盘（悔棋用），id 不变
func (p *Position) Revive(snap Piece) bool {
	if snap.ID < 0 || int(snap.ID) >= MaxPieces {
		return false
	}
	x, y := int(snap.X), int(snap.Y)
	if !InBounds(x, y) || p.occupied(x, y) || p.Pieces[snap.ID].Alive {
		return false
	}
	snap.Alive = true
	p.Pieces[snap.ID] = snap
	sq := indexOf(x, y)
	p.Grid[sq] = int8(snap.ID + 1)
	p.Hash ^= pieceHashKey(snap.Side, snap.Type, sq)
	return true
}

// Relocate 把存活的子直接挪回某格并设置 HasMoved（悔棋用），不换边
func (p *Position) Relocate(id PieceID, to Square, hasMoved bool) bool {
	pc, ok := p.Piece(id)
	if !ok || !InBounds(to.X, to.Y) {
		return false
	}
	fromSq := indexOf(int(pc.X), int(pc.Y))
	toSq := indexOf(to.X, to.Y)
	if fromSq != toSq && p.Grid[toSq] != 0 {
		return false
	}
	p.Grid[fromSq] = 0
	p.Grid[toSq] = int8(id + 1)
	p.Hash ^= pieceHashKey(pc.Side, pc.Type, fromSq)
	p.Hash ^= pieceHashKey(pc.Side, pc.Type, toSq)
	mover := &p.Pieces[id]
	mover.X = int8(to.X)
	mover.Y = int8(to.Y)
	mover.HasMoved = hasMoved
	return true
}

// SetSideToMove 改走棋方并同步哈希
func (p *Position) SetSideToMove(side Side) {
	if p.SideToMove == side {
		return
	}
	initZobrist()
	p.SideToMove = side
	p.Hash ^= zobristSide
}
