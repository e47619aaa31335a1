// Package game 管一整盘棋：轮次、历史、悔棋、胜负与和棋判定。
// Game 本身不加锁，并发调用由上层（会话）串行化。
package game

import (
	"context"
	"errors"
	"math/rand"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNoSuchPiece = errors.New("no such piece")
	ErrNotYourTurn = errors.New("not this side's turn")
	ErrIllegalMove = errors.New("illegal move")
)

// MoveRecord 一步棋的记录，只用来悔棋；生成后不再修改
type MoveRecord struct {
	Piece     xiangqi.Piece  `json:"piece"` // 走之前的快照
	From      xiangqi.Square `json:"from"`
	To        xiangqi.Square `json:"to"`
	Captured  *xiangqi.Piece `json:"captured,omitempty"`
	TurnIndex int            `json:"turn"`
}

func (r MoveRecord) Move() xiangqi.Move {
	return xiangqi.Move{Piece: r.Piece.ID, From: r.From, To: r.To}
}

type Game struct {
	pos *xiangqi.Position

	history         []MoveRecord
	moveCount       int
	lastCaptureTurn int

	// 局面键栈：keys[i] 是走完第 i 步后的哈希，keys[0] 为开局
	keys                []uint64
	drawRepetitionCount int

	gameOver   bool
	winner     xiangqi.Side
	drawReason DrawReason

	// Engine 电脑走棋用；nil 时按需创建
	Engine *engine.Engine
}

func New() *Game {
	return NewFromPosition(xiangqi.NewInitialPosition())
}

// NewFromPosition 从任意合法局面开一盘（残局、调试用）
func NewFromPosition(pos *xiangqi.Position) *Game {
	g := &Game{}
	g.reset(pos)
	return g
}

// Reset 回到开局，历史清空
func (g *Game) Reset() {
	g.reset(xiangqi.NewInitialPosition())
}

func (g *Game) reset(pos *xiangqi.Position) {
	g.pos = pos
	g.history = nil
	g.moveCount = 0
	g.lastCaptureTurn = 0
	g.keys = []uint64{pos.Hash}
	g.drawRepetitionCount = 1
	g.gameOver = false
	g.winner = xiangqi.NoSide
	g.drawReason = DrawNone
}

// Position 返回当前局面的拷贝
func (g *Game) Position() xiangqi.Position { return *g.pos }

func (g *Game) Turn() xiangqi.Side { return g.pos.SideToMove }

func (g *Game) MoveCount() int { return g.moveCount }

func (g *Game) LastCaptureTurn() int { return g.lastCaptureTurn }

func (g *Game) RepetitionCount() int { return g.drawRepetitionCount }

func (g *Game) IsOver() bool { return g.gameOver }

func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove 最近一步，没有时 ok=false
func (g *Game) LastMove() (MoveRecord, bool) {
	if len(g.history) == 0 {
		return MoveRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

// LegalDestinations 某子能去的格子；对局结束后为空
func (g *Game) LegalDestinations(id xiangqi.PieceID) []xiangqi.Square {
	if g.gameOver {
		return nil
	}
	return xiangqi.LegalDestinations(g.pos, id)
}

// ApplyMove 走一步。被拒绝时返回哨兵错误，局面不变。
func (g *Game) ApplyMove(id xiangqi.PieceID, to xiangqi.Square) (MoveRecord, error) {
	if g.gameOver {
		return MoveRecord{}, ErrGameOver
	}
	pc, ok := g.pos.Piece(id)
	if !ok {
		return MoveRecord{}, ErrNoSuchPiece
	}
	if pc.Side != g.pos.SideToMove {
		return MoveRecord{}, ErrNotYourTurn
	}
	if !xiangqi.IsLegal(g.pos, id, to.X, to.Y) {
		return MoveRecord{}, ErrIllegalMove
	}

	rec := MoveRecord{
		Piece:     pc,
		From:      pc.Square(),
		To:        to,
		TurnIndex: g.moveCount,
	}
	if victim, ok := g.pos.PieceAt(to.X, to.Y); ok {
		snap := victim
		rec.Captured = &snap
		g.lastCaptureTurn = g.moveCount
	}

	g.pos.MakeMove(rec.Move())
	g.history = append(g.history, rec)
	g.moveCount++
	g.keys = append(g.keys, g.pos.Hash)
	g.drawRepetitionCount = g.countRepetitions()

	g.updateTerminal()
	return rec, nil
}

// AttemptMove 与 ApplyMove 相同，只报成功与否
func (g *Game) AttemptMove(id xiangqi.PieceID, to xiangqi.Square) (MoveRecord, bool) {
	rec, err := g.ApplyMove(id, to)
	return rec, err == nil
}

// RequestAIMove 让 side 由电脑走一步：在局面拷贝上搜索，再按人走棋的路径落子。
// 无子可走返回 ok=false、err=nil。
func (g *Game) RequestAIMove(ctx context.Context, side xiangqi.Side, depth int, seed int64) (MoveRecord, bool, error) {
	if g.gameOver {
		return MoveRecord{}, false, ErrGameOver
	}
	if side != g.pos.SideToMove {
		return MoveRecord{}, false, ErrNotYourTurn
	}
	if g.Engine == nil {
		g.Engine = engine.NewEngine()
	}

	scratch := *g.pos
	res, ok, err := g.Engine.FindBestMove(ctx, &scratch, side, depth, rand.New(rand.NewSource(seed)))
	if err != nil || !ok {
		return MoveRecord{}, false, err
	}
	rec, err := g.ApplyMove(res.BestMove.Piece, res.BestMove.To)
	if err != nil {
		return MoveRecord{}, false, err
	}
	return rec, true, nil
}

// Undo 悔棋：轮到红方时退两步（电脑的应着和玩家的一步），否则退一步。
// 之后强制红方走。历史为空或已终局时什么也不做。
func (g *Game) Undo() bool {
	if len(g.history) == 0 || g.gameOver {
		return false
	}
	n := 1
	if g.pos.SideToMove == xiangqi.Red {
		n = 2
	}
	if n > len(g.history) {
		n = len(g.history)
	}

	for i := 0; i < n; i++ {
		rec := g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]

		if !g.pos.Relocate(rec.Piece.ID, rec.From, rec.Piece.HasMoved) {
			panic("game: undo could not move piece back")
		}
		if rec.Captured != nil && !g.pos.Revive(*rec.Captured) {
			panic("game: undo could not revive captured piece")
		}
		g.moveCount--
	}
	g.pos.SetSideToMove(xiangqi.Red)

	g.keys = g.keys[:len(g.history)+1]
	g.keys[len(g.keys)-1] = g.pos.Hash
	g.lastCaptureTurn = 0
	for i := len(g.history) - 1; i >= 0; i-- {
		if g.history[i].Captured != nil {
			g.lastCaptureTurn = g.history[i].TurnIndex
			break
		}
	}
	g.drawRepetitionCount = g.countRepetitions()
	return true
}

// 当前局面在栈里出现的次数（含本次）。吃子后子数变少，之前的局面不会再出现，
// 所以等价于“自上次吃子以来”的计数。
func (g *Game) countRepetitions() int {
	cur := g.keys[len(g.keys)-1]
	n := 0
	for i := len(g.keys) - 1; i >= 0; i-- {
		if g.keys[i] == cur {
			n++
		}
	}
	return n
}

func (g *Game) updateTerminal() {
	if side, ok := g.CheckWin(); ok {
		g.gameOver = true
		g.winner = side
		return
	}
	if reason, ok := g.CheckDraw(); ok {
		g.gameOver = true
		g.drawReason = reason
	}
}

// CheckWin 对方老将没了就赢；两个都没了先报红胜
func (g *Game) CheckWin() (xiangqi.Side, bool) {
	if !g.pos.GeneralExists(xiangqi.Black) {
		return xiangqi.Red, true
	}
	if !g.pos.GeneralExists(xiangqi.Red) {
		return xiangqi.Black, true
	}
	return xiangqi.NoSide, false
}

// Winner 已分胜负时返回胜方
func (g *Game) Winner() (xiangqi.Side, bool) {
	if g.winner == xiangqi.NoSide {
		return xiangqi.NoSide, false
	}
	return g.winner, true
}

// DrawReason 已判和时返回原因
func (g *Game) DrawReason() (string, bool) {
	if g.drawReason == DrawNone {
		return "", false
	}
	return string(g.drawReason), true
}
