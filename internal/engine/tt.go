package engine

import "xiangqi/internal/xiangqi"

// 置换表只存精确值：分数落在当时的 (alpha, beta) 窗口里才存，
// 命中时直接返回，所以有没有表 minimax 的值都一样。
type ttEntry struct {
	Key        uint64 // 局面哈希，防止混合键碰撞
	Depth      int
	Maximizing bool
	Score      int
}

const (
	ttMaxEntries = 1 << 20
	ttDepthSalt  = 0x9e3779b97f4a7c15
	ttMaxSalt    = 0xc2b2ae3d27d4eb4f
)

// 同一局面在不同剩余深度、不同极大/极小方下分数不同，都要进键
func ttSlot(hash uint64, depth int, maximizing bool) uint64 {
	k := hash ^ uint64(depth)*ttDepthSalt
	if maximizing {
		k ^= ttMaxSalt
	}
	return k
}

func (s *searcher) probeTT(pos *xiangqi.Position, depth int, maximizing bool) (int, bool) {
	if s.tt == nil {
		return 0, false
	}
	e, ok := s.tt[ttSlot(pos.Hash, depth, maximizing)]
	if !ok || e.Key != pos.Hash || e.Depth != depth || e.Maximizing != maximizing {
		return 0, false
	}
	return e.Score, true
}

func (s *searcher) storeTT(pos *xiangqi.Position, depth int, maximizing bool, score int) {
	// 满了直接清空，不做替换策略
	if s.tt == nil || len(s.tt) >= ttMaxEntries {
		s.tt = make(map[uint64]ttEntry, 1<<14)
	}
	s.tt[ttSlot(pos.Hash, depth, maximizing)] = ttEntry{
		Key:        pos.Hash,
		Depth:      depth,
		Maximizing: maximizing,
		Score:      score,
	}
}
