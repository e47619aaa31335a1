package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

// 几个固定局面，从开局到残局
var benchPositions = []struct {
	Name string
	FEN  string
}{
	{"opening", xiangqi.InitialFEN},
	{"central cannon", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C2C4/9/RNBAKABNR b"},
	{"middlegame", "r1bakab1r/9/1cn3nc1/p1p1p1p1p/9/2P6/P3P1P1P/1C2C1N2/9/RNBAKAB1R b"},
	{"endgame", "3k5/4a4/9/9/2r6/6P2/9/4C4/4A4/5K3 w"},
}

func runBenchmark(e *engine.Engine, maxDepth int) {
	fmt.Printf("%-16s %5s %12s %12s %10s %6s\n", "position", "depth", "nodes", "time", "nps", "ties")
	for _, bp := range benchPositions {
		pos, err := xiangqi.DecodePosition(bp.FEN)
		if err != nil {
			log.Fatalf("[selfplay] bench position %q: %v", bp.Name, err)
		}
		for d := 1; d <= maxDepth; d++ {
			res, ok, err := e.FindBestMove(context.Background(), pos, pos.SideToMove, d, rand.New(rand.NewSource(1)))
			if err != nil {
				log.Fatalf("[selfplay] bench %s depth %d: %v", bp.Name, d, err)
			}
			if !ok {
				fmt.Printf("%-16s %5d  no moves\n", bp.Name, d)
				break
			}
			nps := int64(0)
			if s := res.TimeUsed.Seconds(); s > 0 {
				nps = int64(float64(res.Nodes) / s)
			}
			fmt.Printf("%-16s %5d %12d %12v %10d %6d\n", bp.Name, d, res.Nodes, res.TimeUsed, nps, res.Candidates)
		}
	}
}
