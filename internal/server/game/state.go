package game

import (
	"sync"
	"sync/atomic"
	"time"

	"xiangqi/internal/game"
)

// Session 一盘在内存里的对局。mu 保证同一时刻只有一个改动在进行
// （包括电脑思考），读写 Game 都要经过 With。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu   sync.Mutex
	game *game.Game

	// 原子读写，不用拿 mu
	updatedAt atomic.Int64
}

// With 持锁执行 fn；fn 里可以随意读写 Game
func (s *Session) With(fn func(g *game.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.game)
	s.touch()
	return err
}

func (s *Session) touch() {
	s.updatedAt.Store(time.Now().UnixNano())
}

func (s *Session) UpdatedAt() time.Time {
	return time.Unix(0, s.updatedAt.Load())
}
