package game

import (
	"errors"
	"sync"
	"testing"
	"time"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

func TestManagerNewAndGet(t *testing.T) {
	m := NewManager(nil)
	s := m.NewGame()
	if s.ID == "" {
		t.Fatalf("empty session id")
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get: %v", err)
	}
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}

	other := m.NewGame()
	if other.ID == s.ID {
		t.Fatalf("duplicate session id")
	}
	if ids := m.IDs(); len(ids) != 2 {
		t.Fatalf("ids=%v", ids)
	}
	if err := m.Delete(s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.Delete(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSessionWithSerializesMoves(t *testing.T) {
	s := NewManager(nil).NewGame()

	// 同时抢着走红方的第一步，只有一个能成功
	var wg sync.WaitGroup
	var mu sync.Mutex
	applied := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.With(func(g *game.Game) error {
				pos := g.Position()
				pc, _ := pos.PieceAt(1, 7)
				if _, ok := g.AttemptMove(pc.ID, xiangqi.Square{X: 4, Y: 7}); ok {
					mu.Lock()
					applied++
					mu.Unlock()
				}
				return nil
			})
		}()
	}
	wg.Wait()
	if applied != 1 {
		t.Fatalf("applied=%d want 1", applied)
	}
}

func TestManagerPrune(t *testing.T) {
	m := NewManager(nil)
	m.NewGame()
	if n := m.Prune(time.Hour); n != 0 {
		t.Fatalf("pruned fresh session: %d", n)
	}
	if n := m.Prune(-time.Second); n != 1 {
		t.Fatalf("pruned=%d want 1", n)
	}
}
