package engine

import (
	"context"

	"xiangqi/internal/xiangqi"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000

	// 老将被吃的分数，再加上剩余深度：越快赢分越高
	MateScore = 100_000

	// 每隔多少个节点看一次 ctx
	cancelCheckMask = 1023
)

// 终局判定：红帅没了黑胜(+)，黑将没了红胜(-)；同时没了按红帅先判
func terminalScore(pos *xiangqi.Position, depth int) (int, bool) {
	if !pos.GeneralExists(xiangqi.Red) {
		return MateScore + depth, true
	}
	if !pos.GeneralExists(xiangqi.Black) {
		return -MateScore - depth, true
	}
	return 0, false
}

// 无子可走按输棋算
func noMoveScore(maximizing bool, depth int) int {
	if maximizing {
		return -MateScore - depth
	}
	return MateScore + depth
}

func sideFor(maximizing bool) xiangqi.Side {
	if maximizing {
		return xiangqi.Black
	}
	return xiangqi.Red
}

// Search 深度受限的 minimax + alpha-beta。maximizing=true 表示黑方走。
// 在 pos 上原地走子、撤销，返回时 pos 与调用前逐字节相同。
func Search(pos *xiangqi.Position, depth, alpha, beta int, maximizing bool) int {
	var s searcher
	return s.alphaBeta(pos, depth, alpha, beta, maximizing)
}

type searcher struct {
	ctx     context.Context
	nodes   int64
	aborted bool
	tt      map[uint64]ttEntry
}

func (s *searcher) alphaBeta(pos *xiangqi.Position, depth, alpha, beta int, maximizing bool) int {
	s.nodes++
	if s.ctx != nil && s.nodes&cancelCheckMask == 0 && s.ctx.Err() != nil {
		s.aborted = true
	}
	if s.aborted {
		// 结果会被丢弃，只需尽快退回去并把局面撤干净
		return 0
	}

	if score, ok := terminalScore(pos, depth); ok {
		return score
	}
	if depth <= 0 {
		return Evaluate(pos)
	}
	if score, ok := s.probeTT(pos, depth, maximizing); ok {
		return score
	}
	origAlpha, origBeta := alpha, beta

	side := sideFor(maximizing)
	bestScore := scoreInf
	if maximizing {
		bestScore = -scoreInf
	}
	searched := false

pieces:
	for i := range pos.Pieces {
		pc := pos.Pieces[i]
		if !pc.Alive || pc.Side != side {
			continue
		}
		from := pc.Square()
		for x := 0; x < xiangqi.Cols; x++ {
			for y := 0; y < xiangqi.Rows; y++ {
				if !xiangqi.IsLegal(pos, pc.ID, x, y) {
					continue
				}
				searched = true

				u := pos.MakeMove(xiangqi.Move{Piece: pc.ID, From: from, To: xiangqi.Square{X: x, Y: y}})
				score := s.alphaBeta(pos, depth-1, alpha, beta, !maximizing)
				pos.UnmakeMove(u)

				if maximizing {
					if score > bestScore {
						bestScore = score
					}
					if bestScore > alpha {
						alpha = bestScore
					}
				} else {
					if score < bestScore {
						bestScore = score
					}
					if bestScore < beta {
						beta = bestScore
					}
				}
				if beta <= alpha {
					break pieces
				}
			}
		}
	}

	if !searched {
		return noMoveScore(maximizing, depth)
	}
	if !s.aborted && bestScore > origAlpha && bestScore < origBeta {
		s.storeTT(pos, depth, maximizing, bestScore)
	}
	return bestScore
}
