package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to inspect")
	depth := flag.Int("depth", 0, "also search this deep (0 = skip)")
	flag.Parse()

	pos, err := xiangqi.DecodePosition(*fen)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Println("FEN:", pos.Encode())
	fmt.Printf("Hash: %016x\n", pos.Hash)
	for y := 0; y < xiangqi.Rows; y++ {
		for x := 0; x < xiangqi.Cols; x++ {
			if pc, ok := pos.PieceAt(x, y); ok {
				fmt.Print(pc.Type.Label(pc.Side))
			} else {
				fmt.Print("・")
			}
		}
		fmt.Println()
	}
	fmt.Println("Red moves:", len(xiangqi.GenerateMoves(pos, xiangqi.Red)))
	fmt.Println("Black moves:", len(xiangqi.GenerateMoves(pos, xiangqi.Black)))
	fmt.Println("Eval (+black):", engine.Evaluate(pos))

	if *depth > 0 {
		e := engine.NewEngine()
		e.Verbose = true
		res, ok, err := e.FindBestMove(context.Background(), pos, pos.SideToMove, *depth, nil)
		if err != nil || !ok {
			log.Fatalf("search: ok=%v err=%v", ok, err)
		}
		pc, _ := pos.Piece(res.BestMove.Piece)
		fmt.Printf("Best: %s %v->%v score=%d ties=%d\n", pc.Type.Label(pc.Side), res.BestMove.From, res.BestMove.To, res.Score, res.Candidates)
	}
}
