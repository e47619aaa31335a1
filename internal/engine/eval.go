package engine

import (
	"math"

	"xiangqi/internal/xiangqi"
)

// ======= 基础子力估值 =======

var pieceValue = [...]int{
	xiangqi.PieceNone:     0,
	xiangqi.PieceGeneral:  10000,
	xiangqi.PieceChariot:  900,
	xiangqi.PieceHorse:    450,
	xiangqi.PieceCannon:   400,
	xiangqi.PieceElephant: 200,
	xiangqi.PieceAdvisor:  200,
	xiangqi.PieceSoldier:  100,
}

// 位置权重：[段][列]，段按“从本方底线前进了多少行”折算，红黑共用一张表。
// 没有表的子（帅仕相）不加位置分。
var positionWeights = map[xiangqi.PieceType][3][xiangqi.Cols]int{
	xiangqi.PieceChariot: {
		{1, 1, 1, 2, 3, 2, 1, 1, 1},
		{1, 2, 2, 2, 3, 2, 2, 2, 1},
		{1, 2, 2, 2, 3, 2, 2, 2, 1},
	},
	xiangqi.PieceHorse: {
		{1, 2, 3, 2, 1, 2, 3, 2, 1},
		{2, 3, 4, 3, 2, 3, 4, 3, 2},
		{2, 3, 4, 3, 2, 3, 4, 3, 2},
	},
	xiangqi.PieceCannon: {
		{1, 1, 1, 1, 2, 1, 1, 1, 1},
		{1, 2, 1, 2, 3, 2, 1, 2, 1},
		{1, 2, 1, 2, 3, 2, 1, 2, 1},
	},
	xiangqi.PieceSoldier: {
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2, 2, 2, 2, 2},
	},
}

const (
	positionScale = 10

	// 靠近对方老将加成：max(0, proximityBase - proximityStep*距离)
	proximityBase = 50
	proximityStep = 5
)

// 段：0=本方半场，1=刚过河，2=深入敌阵
func rankBand(side xiangqi.Side, y int) int {
	adv := y
	if side == xiangqi.Red {
		adv = xiangqi.Rows - 1 - y
	}
	switch {
	case adv <= 4:
		return 0
	case adv <= 6:
		return 1
	}
	return 2
}

func positionBonus(pc xiangqi.Piece) int {
	table, ok := positionWeights[pc.Type]
	if !ok {
		return 0
	}
	return table[rankBand(pc.Side, int(pc.Y))][pc.X] * positionScale
}

func proximityBonus(pc, enemyGeneral xiangqi.Piece) int {
	dx := float64(pc.X - enemyGeneral.X)
	dy := float64(pc.Y - enemyGeneral.Y)
	b := proximityBase - proximityStep*math.Sqrt(dx*dx+dy*dy)
	if b <= 0 {
		return 0
	}
	return int(b)
}

// Evaluate 静态评估。正数黑方好，负数红方好。
// 少了将帅的局面也能评（靠近加成直接跳过）。
func Evaluate(pos *xiangqi.Position) int {
	redGen, redOK := pos.General(xiangqi.Red)
	blackGen, blackOK := pos.General(xiangqi.Black)

	score := 0
	for _, pc := range pos.Pieces {
		if !pc.Alive {
			continue
		}
		val := pieceValue[pc.Type] + positionBonus(pc)

		if pc.Side == xiangqi.Black && redOK {
			val += proximityBonus(pc, redGen)
		} else if pc.Side == xiangqi.Red && blackOK {
			val += proximityBonus(pc, blackGen)
		}

		if pc.Side == xiangqi.Black {
			score += val
		} else {
			score -= val
		}
	}
	return score
}
