package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

// TestCase 给前端核对走法生成用：
// stage 0 的 mask 标出能动的子，stage 1 的 mask 标出选中子的落点。
// mask 下标 = y*9 + x。
type TestCase struct {
	FEN   string          `json:"fen"`
	Side  string          `json:"side"`
	Stage int             `json:"stage"`
	Piece xiangqi.PieceID `json:"piece"`
	Mask  []int8          `json:"mask"`
}

func maskIndex(sq xiangqi.Square) int {
	return sq.Y*xiangqi.Cols + sq.X
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	maxMoves := flag.Int("maxmoves", 200, "max plies per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for gi := 0; gi < *numGames; gi++ {
		g := game.New()
		for ply := 0; ply < *maxMoves && !g.IsOver(); ply++ {
			pos := g.Position()
			legalMoves := pos.GenerateLegalMoves()
			if len(legalMoves) == 0 {
				break
			}
			fen := pos.Encode()
			side := pos.SideToMove.String()

			mask0 := make([]int8, xiangqi.NumSquares)
			for _, mv := range legalMoves {
				mask0[maskIndex(mv.From)] = 1
			}
			testCases = append(testCases, TestCase{FEN: fen, Side: side, Stage: 0, Piece: xiangqi.NoPiece, Mask: mask0})

			// 随机选一步
			chosen := legalMoves[rng.Intn(len(legalMoves))]

			mask1 := make([]int8, xiangqi.NumSquares)
			for _, to := range g.LegalDestinations(chosen.Piece) {
				mask1[maskIndex(to)] = 1
			}
			testCases = append(testCases, TestCase{FEN: fen, Side: side, Stage: 1, Piece: chosen.Piece, Mask: mask1})

			if _, err := g.ApplyMove(chosen.Piece, chosen.To); err != nil {
				log.Fatalf("apply %+v: %v", chosen, err)
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
