package xiangqi

import (
	"errors"
	"fmt"
)

// Position = 固定 32 格的棋子表 + 格子索引 + 轮到谁走。
// 只含数组，可直接 == 比较，也可按值拷贝给搜索协程。
type Position struct {
	Pieces     [MaxPieces]Piece
	Grid       [NumSquares]int8 // 0=空；否则 PieceID+1
	SideToMove Side
	Hash       uint64
}

// PieceAt 返回 (x,y) 上的棋子
func (p *Position) PieceAt(x, y int) (Piece, bool) {
	if !InBounds(x, y) {
		return Piece{}, false
	}
	v := p.Grid[indexOf(x, y)]
	if v == 0 {
		return Piece{}, false
	}
	return p.Pieces[v-1], true
}

func (p *Position) occupied(x, y int) bool {
	return p.Grid[indexOf(x, y)] != 0
}

// Piece 按 id 取棋子，已被吃或越界返回 false
func (p *Position) Piece(id PieceID) (Piece, bool) {
	if id < 0 || int(id) >= MaxPieces {
		return Piece{}, false
	}
	pc := p.Pieces[id]
	if !pc.Alive {
		return Piece{}, false
	}
	return pc, true
}

// PiecesOf 某一方所有存活棋子，按 id 升序；side=NoSide 时返回全部
func (p *Position) PiecesOf(side Side) []Piece {
	out := make([]Piece, 0, MaxPiecesPerSide)
	for _, pc := range p.Pieces {
		if !pc.Alive {
			continue
		}
		if side != NoSide && pc.Side != side {
			continue
		}
		out = append(out, pc)
	}
	return out
}

// General 取某一方的帅/将
func (p *Position) General(side Side) (Piece, bool) {
	for _, pc := range p.Pieces {
		if pc.Alive && pc.Side == side && pc.Type == PieceGeneral {
			return pc, true
		}
	}
	return Piece{}, false
}

func (p *Position) GeneralExists(side Side) bool {
	_, ok := p.General(side)
	return ok
}

// Count 某一方存活棋子数
func (p *Position) Count(side Side) int {
	n := 0
	for _, pc := range p.Pieces {
		if pc.Alive && pc.Side == side {
			n++
		}
	}
	return n
}

// place 把新棋子放进空槽，只在构造局面时用
func (p *Position) place(side Side, pt PieceType, x, y int) (PieceID, error) {
	if !InBounds(x, y) {
		return NoPiece, fmt.Errorf("square (%d,%d) out of range", x, y)
	}
	if p.occupied(x, y) {
		return NoPiece, fmt.Errorf("square (%d,%d) already occupied", x, y)
	}
	lo, hi := 0, MaxPiecesPerSide
	if side == Black {
		lo, hi = MaxPiecesPerSide, MaxPieces
	}
	for i := lo; i < hi; i++ {
		if p.Pieces[i].Alive || p.Pieces[i].Type != PieceNone {
			continue
		}
		p.Pieces[i] = Piece{
			ID:    PieceID(i),
			Type:  pt,
			Side:  side,
			X:     int8(x),
			Y:     int8(y),
			Alive: true,
		}
		p.Grid[indexOf(x, y)] = int8(i + 1)
		return PieceID(i), nil
	}
	return NoPiece, fmt.Errorf("more than %d %s pieces", MaxPiecesPerSide, side)
}

// NewEmptyPosition 空棋盘，测试和摆局用
func NewEmptyPosition(stm Side) *Position {
	pos := &Position{SideToMove: stm}
	pos.Hash = pos.CalculateHash()
	return pos
}

// Place 在空棋盘上摆子；坐标非法或格子已占返回错误
func (p *Position) Place(side Side, pt PieceType, x, y int) (PieceID, error) {
	if side != Red && side != Black {
		return NoPiece, errors.New("invalid side")
	}
	if pt <= PieceNone || int(pt) >= numPieceTypes {
		return NoPiece, errors.New("invalid piece type")
	}
	id, err := p.place(side, pt, x, y)
	if err != nil {
		return NoPiece, err
	}
	p.Hash = p.CalculateHash()
	return id, nil
}

// MustPlace 同 Place，失败直接 panic
func (p *Position) MustPlace(side Side, pt PieceType, x, y int) PieceID {
	id, err := p.Place(side, pt, x, y)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate 检查棋子表和格子索引是否一致
func (p *Position) Validate() error {
	var seen [NumSquares]bool
	generals := [2]int{}
	for i, pc := range p.Pieces {
		if !pc.Alive {
			continue
		}
		if pc.ID != PieceID(i) {
			return fmt.Errorf("piece slot %d carries id %d", i, pc.ID)
		}
		x, y := int(pc.X), int(pc.Y)
		if !InBounds(x, y) {
			return fmt.Errorf("piece %d off board at (%d,%d)", i, x, y)
		}
		sq := indexOf(x, y)
		if seen[sq] {
			return fmt.Errorf("two pieces on (%d,%d)", x, y)
		}
		seen[sq] = true
		if p.Grid[sq] != int8(i+1) {
			return fmt.Errorf("grid (%d,%d)=%d, want %d", x, y, p.Grid[sq], i+1)
		}
		if pc.Type == PieceGeneral {
			generals[pc.Side]++
		}
	}
	for sq, v := range p.Grid {
		if v != 0 && !seen[sq] {
			return fmt.Errorf("grid cell %d points at dead piece %d", sq, v-1)
		}
	}
	if generals[Red] > 1 || generals[Black] > 1 {
		return errors.New("more than one general per side")
	}
	if p.Hash != p.CalculateHash() {
		return errors.New("stale hash")
	}
	return nil
}

// generalsFace 假设 mover 走到 (tx,ty) 后两将是否照面。
// 只在将帅自己走时调用；mover 原位置不算挡子。
func (p *Position) generalsFace(mover Piece, tx, ty int) bool {
	enemy, ok := p.General(opposite(mover.Side))
	if !ok {
		return false
	}
	ex, ey := int(enemy.X), int(enemy.Y)
	if tx != ex {
		// 不在同一列，不可能照面
		return false
	}
	lo, hi := ty, ey
	if lo > hi {
		lo, hi = hi, lo
	}
	for y := lo + 1; y < hi; y++ {
		v := p.Grid[indexOf(tx, y)]
		if v == 0 || PieceID(v-1) == mover.ID {
			continue
		}
		return false // 中间有子
	}
	return true
}
