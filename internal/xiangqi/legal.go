package xiangqi

// IsLegal 判断 id 这枚子能否走到 (tx,ty)。纯函数，不看轮到谁走。
func IsLegal(p *Position, id PieceID, tx, ty int) bool {
	pc, ok := p.Piece(id)
	if !ok || !InBounds(tx, ty) {
		return false
	}
	sx, sy := int(pc.X), int(pc.Y)

	// 不能原地不动
	if sx == tx && sy == ty {
		return false
	}
	// 目标有己方棋子
	if dst, ok := p.PieceAt(tx, ty); ok && dst.Side == pc.Side {
		return false
	}

	switch pc.Type {
	case PieceGeneral:
		return legalGeneral(p, pc, sx, sy, tx, ty)
	case PieceAdvisor:
		return legalAdvisor(pc, sx, sy, tx, ty)
	case PieceElephant:
		return legalElephant(p, pc, sx, sy, tx, ty)
	case PieceHorse:
		return legalHorse(p, sx, sy, tx, ty)
	case PieceChariot:
		return legalChariot(p, sx, sy, tx, ty)
	case PieceCannon:
		return legalCannon(p, sx, sy, tx, ty)
	case PieceSoldier:
		return legalSoldier(pc, sx, sy, tx, ty)
	}
	return false
}

// LegalDestinations 某个子的所有可走格子，x 从小到大、同列 y 从小到大
func LegalDestinations(p *Position, id PieceID) []Square {
	var out []Square
	if _, ok := p.Piece(id); !ok {
		return out
	}
	for x := 0; x < Cols; x++ {
		for y := 0; y < Rows; y++ {
			if IsLegal(p, id, x, y) {
				out = append(out, Square{X: x, Y: y})
			}
		}
	}
	return out
}

// GenerateMoves 生成 side 的全部走法。
// 顺序固定：棋子 id 升序，然后 x 升序，然后 y 升序；搜索依赖这个顺序收集并列最优。
func GenerateMoves(p *Position, side Side) []Move {
	var moves []Move
	for i := range p.Pieces {
		pc := p.Pieces[i]
		if !pc.Alive || pc.Side != side {
			continue
		}
		from := pc.Square()
		for x := 0; x < Cols; x++ {
			for y := 0; y < Rows; y++ {
				if IsLegal(p, pc.ID, x, y) {
					moves = append(moves, Move{Piece: pc.ID, From: from, To: Square{X: x, Y: y}})
				}
			}
		}
	}
	return moves
}

// GenerateLegalMoves 轮到走棋一方的全部走法
func (p *Position) GenerateLegalMoves() []Move {
	return GenerateMoves(p, p.SideToMove)
}
