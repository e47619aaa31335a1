package game

import "xiangqi/internal/xiangqi"

type DrawReason string

const (
	DrawNone       DrawReason = ""
	DrawNoCapture  DrawReason = "no_capture"
	DrawMaterial   DrawReason = "insufficient_material"
	DrawRepetition DrawReason = "threefold_repetition"
)

const (
	// 连续这么多步没有吃子判和
	NoCaptureLimit = 60
	// 同一局面出现这么多次判和
	RepetitionLimit = 3
)

// Text 给界面显示的中文说明
func (r DrawReason) Text() string {
	switch r {
	case DrawNoCapture:
		return "六十步无吃子，判定和棋"
	case DrawMaterial:
		return "双方只剩将帅，判定和棋"
	case DrawRepetition:
		return "重复局面三次，判定和棋"
	}
	return ""
}

// CheckDraw 按优先级：六十步无吃子 > 只剩将帅 > 三次重复
func (g *Game) CheckDraw() (DrawReason, bool) {
	if g.moveCount-g.lastCaptureTurn >= NoCaptureLimit {
		return DrawNoCapture, true
	}
	if g.pos.Count(xiangqi.Red) == 1 && g.pos.Count(xiangqi.Black) == 1 {
		return DrawMaterial, true
	}
	if g.drawRepetitionCount >= RepetitionLimit {
		return DrawRepetition, true
	}
	return DrawNone, false
}
