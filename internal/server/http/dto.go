package httpserver

import (
	"strings"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

// 所有请求都带 game_id
type GameRequest struct {
	GameID string `json:"game_id"`
}

type LegalRequest struct {
	GameID string          `json:"game_id"`
	Piece  xiangqi.PieceID `json:"piece"`
}

type LegalResponse struct {
	Piece        xiangqi.PieceID  `json:"piece"`
	Destinations []xiangqi.Square `json:"destinations"`
}

// Play 请求：某个子走到某格
type PlayRequest struct {
	GameID string          `json:"game_id"`
	Piece  xiangqi.PieceID `json:"piece"`
	To     xiangqi.Square  `json:"to"`
}

// AiMoveRequest 让电脑替 side 走一步
type AiMoveRequest struct {
	GameID     string `json:"game_id"`
	Side       string `json:"side"`       // "red"/"black"，空 = 当前走棋方
	Difficulty string `json:"difficulty"` // easy / normal / hard
	Depth      int    `json:"depth"`      // >0 时覆盖 difficulty
	Seed       *int64 `json:"seed"`       // 不给就用时间
}

// 改动类请求统一返回：applied=false 时 reason 说明原因，仍是 200
type ActionResponse struct {
	Applied bool          `json:"applied"`
	Reason  string        `json:"reason,omitempty"`
	Move    *MoveDTO      `json:"move,omitempty"`
	State   StateResponse `json:"state"`
}

type PieceDTO struct {
	ID       xiangqi.PieceID `json:"id"`
	Type     string          `json:"type"`
	Side     string          `json:"side"`
	Label    string          `json:"label"`
	X        int             `json:"x"`
	Y        int             `json:"y"`
	HasMoved bool            `json:"has_moved"`
}

type MoveDTO struct {
	Piece    xiangqi.PieceID  `json:"piece"`
	From     xiangqi.Square   `json:"from"`
	To       xiangqi.Square   `json:"to"`
	Captured *xiangqi.PieceID `json:"captured,omitempty"`
	Turn     int              `json:"turn"`
}

type StateResponse struct {
	GameID     string     `json:"game_id"`
	FEN        string     `json:"fen"`
	ToMove     string     `json:"to_move"`
	Pieces     []PieceDTO `json:"pieces"`
	MoveCount  int        `json:"move_count"`
	Status     string     `json:"status"` // ongoing / red_win / black_win / draw
	DrawReason string     `json:"draw_reason,omitempty"`
	DrawText   string     `json:"draw_text,omitempty"`
	LastMove   *MoveDTO   `json:"last_move,omitempty"`
}

func pieceToDTO(pc xiangqi.Piece) PieceDTO {
	return PieceDTO{
		ID:       pc.ID,
		Type:     pc.Type.String(),
		Side:     pc.Side.String(),
		Label:    pc.Type.Label(pc.Side),
		X:        int(pc.X),
		Y:        int(pc.Y),
		HasMoved: pc.HasMoved,
	}
}

func recordToDTO(rec game.MoveRecord) *MoveDTO {
	m := &MoveDTO{Piece: rec.Piece.ID, From: rec.From, To: rec.To, Turn: rec.TurnIndex}
	if rec.Captured != nil {
		id := rec.Captured.ID
		m.Captured = &id
	}
	return m
}

func gameStatus(g *game.Game) string {
	if side, ok := g.Winner(); ok {
		return side.String() + "_win"
	}
	if _, ok := g.DrawReason(); ok {
		return "draw"
	}
	return "ongoing"
}

// 调用方持有会话锁
func stateOf(id string, g *game.Game) StateResponse {
	pos := g.Position()
	resp := StateResponse{
		GameID:    id,
		FEN:       pos.Encode(),
		ToMove:    g.Turn().String(),
		MoveCount: g.MoveCount(),
		Status:    gameStatus(g),
	}
	for _, pc := range pos.PiecesOf(xiangqi.NoSide) {
		resp.Pieces = append(resp.Pieces, pieceToDTO(pc))
	}
	if reason, ok := g.DrawReason(); ok {
		resp.DrawReason = reason
		resp.DrawText = game.DrawReason(reason).Text()
	}
	if last, ok := g.LastMove(); ok {
		resp.LastMove = recordToDTO(last)
	}
	return resp
}

func parseSide(s string) (xiangqi.Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r", "w", "0":
		return xiangqi.Red, true
	case "black", "b", "1":
		return xiangqi.Black, true
	}
	return xiangqi.NoSide, false
}
