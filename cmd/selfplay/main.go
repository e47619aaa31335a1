package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"xiangqi/internal/engine"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

type PlayerConfig struct {
	Name  string
	Depth int
}

func main() {
	redDepth := flag.Int("red-depth", 1, "red search depth")
	blackDepth := flag.Int("black-depth", 3, "black search depth")
	totalGames := flag.Int("games", 4, "number of games to play")
	maxMoves := flag.Int("maxmoves", 300, "max plies per game")
	seed := flag.Int64("seed", 1, "base tie-break seed")
	serial := flag.Bool("serial", false, "score root moves on one goroutine")
	verbose := flag.Bool("v", false, "log every search")
	bench := flag.Bool("bench", false, "run the depth benchmark instead of games")
	benchDepth := flag.Int("bench-depth", 4, "deepest benchmark depth")
	pprof := flag.Bool("pprof", false, "serve pprof on localhost:6060")
	flag.Parse()

	if *pprof {
		go func() {
			log.Println("[selfplay] pprof listening on :6060")
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				log.Printf("[selfplay] pprof failed: %v", err)
			}
		}()
	}

	e := engine.NewEngine()
	e.Parallel = !*serial
	e.Verbose = *verbose

	if *bench {
		runBenchmark(e, *benchDepth)
		return
	}

	a := PlayerConfig{Name: fmt.Sprintf("Depth %d", *redDepth), Depth: *redDepth}
	b := PlayerConfig{Name: fmt.Sprintf("Depth %d", *blackDepth), Depth: *blackDepth}
	if *redDepth == *blackDepth {
		a.Name += " (A)"
		b.Name += " (B)"
	}

	score := map[string]int{}
	draws := 0
	for i := 0; i < *totalGames; i++ {
		// 交换先后手
		red, black := a, b
		if i%2 == 1 {
			red, black = b, a
		}
		fmt.Printf("\n=== Game %d: Red [%s] vs Black [%s] ===\n", i+1, red.Name, black.Name)

		winner, reason, plies := playGame(e, red, black, *maxMoves, *seed+int64(i)*1000)
		switch winner {
		case xiangqi.Red:
			score[red.Name]++
			fmt.Printf("Result: %s wins in %d plies\n", red.Name, plies)
		case xiangqi.Black:
			score[black.Name]++
			fmt.Printf("Result: %s wins in %d plies\n", black.Name, plies)
		default:
			draws++
			fmt.Printf("Result: draw (%s) after %d plies\n", reason, plies)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", a.Name, score[a.Name])
	fmt.Printf("%s: %d\n", b.Name, score[b.Name])
	fmt.Printf("Draws: %d\n", draws)
	os.Exit(0)
}

// playGame 走完一盘，返回胜方（和棋为 NoSide）、和棋原因、总步数
func playGame(e *engine.Engine, red, black PlayerConfig, maxMoves int, seed int64) (xiangqi.Side, string, int) {
	g := game.New()
	g.Engine = e
	ctx := context.Background()

	for ply := 0; ply < maxMoves; ply++ {
		side := g.Turn()
		depth := red.Depth
		if side == xiangqi.Black {
			depth = black.Depth
		}

		rec, ok, err := g.RequestAIMove(ctx, side, depth, seed+int64(ply))
		if err != nil {
			log.Printf("[selfplay] ply %d: %v", ply, err)
			return xiangqi.NoSide, "error", g.MoveCount()
		}
		if !ok {
			// 无子可动，当前方输
			return side.Opponent(), "", g.MoveCount()
		}
		log.Printf("[selfplay] %3d %-5v %s %v->%v", ply+1, side, rec.Piece.Type.Label(side), rec.From, rec.To)

		if w, ok := g.Winner(); ok {
			return w, "", g.MoveCount()
		}
		if reason, ok := g.DrawReason(); ok {
			return xiangqi.NoSide, game.DrawReason(reason).Text(), g.MoveCount()
		}
	}
	return xiangqi.NoSide, "move limit", g.MoveCount()
}
