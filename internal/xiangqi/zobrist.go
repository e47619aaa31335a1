package xiangqi

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces [2][numPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < numPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(side Side, pt PieceType, sq int) uint64 {
	if side != Red && side != Black {
		return 0
	}
	if pt <= PieceNone || int(pt) >= numPieceTypes || sq < 0 || sq >= NumSquares {
		return 0
	}
	initZobrist()
	return zobristPieces[side][pt][sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希（棋子摆放 + 走棋方）。
// 棋子 id 不参与，同型同色的两个子互换位置算同一局面。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for _, pc := range p.Pieces {
		if !pc.Alive {
			continue
		}
		h ^= pieceHashKey(pc.Side, pc.Type, indexOf(int(pc.X), int(pc.Y)))
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}
