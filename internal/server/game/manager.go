package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/engine"
	"xiangqi/internal/game"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session

	// 新会话的引擎设置从这里拷一份，节点计数各算各的
	engine *engine.Engine
}

func NewManager(e *engine.Engine) *Manager {
	if e == nil {
		e = engine.NewEngine()
	}
	return &Manager{games: make(map[string]*Session), engine: e}
}

func (m *Manager) NewGame() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := game.New()
	e := *m.engine
	g.Engine = &e

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		game:      g,
	}
	s.touch()
	m.games[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

// IDs 所有会话 id，按创建时间排序
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sessions := make([]*Session, 0, len(m.games))
	for _, s := range m.games {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

// Prune 删掉超过 maxIdle 没动过的会话，返回删除个数
func (m *Manager) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.games {
		if s.UpdatedAt().Before(cutoff) {
			delete(m.games, id)
			n++
		}
	}
	return n
}
