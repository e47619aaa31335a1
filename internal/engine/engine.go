package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/xiangqi"
)

// Rand 并列最优着法里随机挑一个；*math/rand.Rand 直接满足
type Rand interface {
	Intn(n int) int
}

// Difficulty 难度 = 搜索深度
type Difficulty int

const (
	Easy   Difficulty = 1
	Normal Difficulty = 3
	Hard   Difficulty = 5
)

func (d Difficulty) Depth() int {
	if d < 1 {
		return int(Easy)
	}
	return int(d)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("depth-%d", int(d))
}

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "simple":
		return Easy, nil
	case "normal", "medium", "":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return 0, ErrUnknownDifficulty
}

// 搜索结果
type SearchResult struct {
	BestMove   xiangqi.Move  // 选中的着法
	Score      int           // 该着法的 minimax 值（正：黑方好）
	Depth      int           // 搜索深度（ply）
	Candidates int           // 并列最优的着法数
	Nodes      int64         // 节点数
	TimeUsed   time.Duration // 花费时间
}

type Engine struct {
	nodes int64

	// Parallel 为 true 时根节点每个着法一个 goroutine，各自拷一份局面
	Parallel bool
	// Verbose 每次搜索打一行日志
	Verbose bool
}

func NewEngine() *Engine {
	return &Engine{Parallel: true}
}

// Nodes 上一次搜索的节点数
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}

// FindBestMove 为 side 走一层根节点，每个子节点用满窗口搜 depth-1 层，
// 收集所有最优分（黑取最大、红取最小）的着法，再用 rng 等概率挑一个。
// 没有着法返回 ok=false；ctx 取消时放弃搜索并返回 ctx.Err()。
func (e *Engine) FindBestMove(ctx context.Context, pos *xiangqi.Position, side xiangqi.Side, depth int, rng Rand) (SearchResult, bool, error) {
	if depth < 1 {
		depth = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	moves := xiangqi.GenerateMoves(pos, side)
	if len(moves) == 0 {
		return SearchResult{Depth: depth}, false, nil
	}

	childMax := side == xiangqi.Red // 红走完轮到黑，黑是极大方
	scores := make([]int, len(moves))

	var err error
	if e.Parallel && len(moves) > 1 {
		err = e.scoreParallel(ctx, pos, moves, depth, childMax, scores)
	} else {
		err = e.scoreSerial(ctx, pos, moves, depth, childMax, scores)
	}
	if err != nil {
		return SearchResult{}, false, err
	}

	bestScore := scores[0]
	for _, sc := range scores[1:] {
		if (side == xiangqi.Black && sc > bestScore) || (side == xiangqi.Red && sc < bestScore) {
			bestScore = sc
		}
	}
	var candidates []int
	for i, sc := range scores {
		if sc == bestScore {
			candidates = append(candidates, i)
		}
	}

	pick := candidates[0]
	if rng != nil && len(candidates) > 1 {
		pick = candidates[rng.Intn(len(candidates))]
	}

	res := SearchResult{
		BestMove:   moves[pick],
		Score:      bestScore,
		Depth:      depth,
		Candidates: len(candidates),
		Nodes:      atomic.LoadInt64(&e.nodes),
		TimeUsed:   time.Since(start),
	}
	if e.Verbose {
		log.Printf("[ai] side=%v depth=%d move=%+v score=%d ties=%d/%d nodes=%d time=%v",
			side, depth, res.BestMove, res.Score, res.Candidates, len(moves), res.Nodes, res.TimeUsed)
	}
	return res, true, nil
}

// 单线程：直接在 pos 上走子、撤销
func (e *Engine) scoreSerial(ctx context.Context, pos *xiangqi.Position, moves []xiangqi.Move, depth int, childMax bool, scores []int) error {
	s := searcher{ctx: ctx}
	for i, mv := range moves {
		u := pos.MakeMove(mv)
		scores[i] = s.alphaBeta(pos, depth-1, -scoreInf, scoreInf, childMax)
		pos.UnmakeMove(u)
		if s.aborted {
			break
		}
	}
	atomic.AddInt64(&e.nodes, s.nodes)
	return ctx.Err()
}

// 并行：每个根着法拷一份局面，分数按下标落位，候选顺序与串行一致
func (e *Engine) scoreParallel(ctx context.Context, pos *xiangqi.Position, moves []xiangqi.Move, depth int, childMax bool, scores []int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, mv := range moves {
		local := *pos
		g.Go(func() error {
			s := searcher{ctx: gctx}
			local.MakeMove(mv)
			scores[i] = s.alphaBeta(&local, depth-1, -scoreInf, scoreInf, childMax)
			atomic.AddInt64(&e.nodes, s.nodes)
			if s.aborted {
				return gctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
