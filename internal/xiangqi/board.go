package xiangqi

const (
	Cols       = 9
	Rows       = 10
	NumSquares = Cols * Rows

	MaxPiecesPerSide = 16
	MaxPieces        = 2 * MaxPiecesPerSide

	// 黑方在上 (y=0..4)，红方在下 (y=5..9)
	RiverLow  = 4 // 黑方一侧最后一行
	RiverHigh = 5 // 红方一侧最后一行
)

func indexOf(x, y int) int { return y*Cols + x }

// InBounds 坐标是否在棋盘内
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河：只看当前所在行
func crossedRiver(side Side, y int) bool {
	if side == Red {
		return y <= RiverLow
	}
	if side == Black {
		return y >= RiverHigh
	}
	return false
}

// 是否在本方一侧（相不能过河）
func onOwnHalf(side Side, y int) bool {
	if side == Red {
		return y >= RiverHigh
	}
	if side == Black {
		return y <= RiverLow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, x, y int) bool {
	if x < 3 || x > 5 {
		return false
	}
	if side == Black {
		return y >= 0 && y <= 2
	}
	if side == Red {
		return y >= 7 && y <= 9
	}
	return false
}

// 从本方底线算起前进了几行：0 表示还在底线
func advanceOf(side Side, y int) int {
	if side == Red {
		return Rows - 1 - y
	}
	return y
}

// 开局盘面，标准中国象棋 FEN
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

// NewInitialPosition 开局局面，红先
func NewInitialPosition() *Position {
	pos, err := DecodePosition(InitialFEN)
	if err != nil {
		panic("initial FEN: " + err.Error())
	}
	return pos
}
