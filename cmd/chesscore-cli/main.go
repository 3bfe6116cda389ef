// Command chesscore-cli is a terminal driver for the chesscore engine:
// it accepts coordinate moves on stdin, plays engine moves on request
// and maintains the redo stack the engine itself does not keep.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/larsenmt/chesscore/internal/board"
	"github.com/larsenmt/chesscore/internal/engine"
)

const defaultDepth = 4

func main() {
	pos := board.NewPosition()
	var redo []board.Move

	fmt.Println("chesscore — type 'help' for commands.")
	fmt.Print(pos)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		switch parts[0] {
		case "help":
			fmt.Println(`Commands:
  help
  print             show the board
  moves             list legal moves
  fen               print the position as FEN
  undo              take back the last move
  redo              replay the last undone move
  go [depth N]      let the engine pick and play a move
  new               start a new game
  quit
  or enter a move like e2e4 (e7e8q to promote)`)

		case "print":
			fmt.Print(pos)

		case "moves":
			legal := pos.LegalMoves()
			if len(legal) == 0 {
				fmt.Println("(no legal moves)")
				continue
			}
			notated := make([]string, len(legal))
			for i, m := range legal {
				notated[i] = m.String()
			}
			fmt.Println(strings.Join(notated, " "))

		case "fen":
			fmt.Println(pos.ToFEN())

		case "undo":
			if len(pos.MoveLog) == 0 {
				fmt.Println("nothing to undo")
				continue
			}
			last := pos.MoveLog[len(pos.MoveLog)-1]
			pos.UnmakeMove()
			redo = append(redo, last)
			fmt.Print(pos)

		case "redo":
			if len(redo) == 0 {
				fmt.Println("nothing to redo")
				continue
			}
			m := redo[len(redo)-1]
			redo = redo[:len(redo)-1]
			pos.MakeMove(m)
			fmt.Printf("replayed %s\n", m)
			reportStatus(pos)

		case "go":
			depth := defaultDepth
			if len(parts) == 3 && parts[1] == "depth" {
				n, err := strconv.Atoi(parts[2])
				if err != nil || n < 1 {
					fmt.Println("usage: go depth N (N >= 1)")
					continue
				}
				depth = n
			}
			legal := pos.LegalMoves()
			m, ok := engine.FindBestMove(pos, legal, depth)
			if !ok {
				reportStatus(pos)
				continue
			}
			pos.MakeMove(m)
			redo = redo[:0]
			fmt.Printf("engine plays %s\n", m)
			fmt.Print(pos)
			reportStatus(pos)

		case "new":
			pos = board.NewPosition()
			redo = redo[:0]
			fmt.Print(pos)

		case "quit", "exit":
			return

		default:
			m, err := board.ParseMove(line, pos)
			if err != nil {
				fmt.Println(err)
				continue
			}
			pos.MakeMove(m)
			redo = redo[:0]
			fmt.Print(pos)
			reportStatus(pos)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// reportStatus prints check, game-over and draw-claim states for the
// side to move.
func reportStatus(pos *board.Position) {
	switch {
	case pos.IsCheckmate():
		fmt.Printf("checkmate — %s wins\n", pos.SideToMove.Other())
	case pos.IsStalemate():
		fmt.Println("stalemate — draw")
	case pos.InCheck():
		fmt.Printf("%s is in check\n", pos.SideToMove)
	}
	if pos.IsThreefoldRepetition() {
		fmt.Println("threefold repetition — draw may be claimed")
	}
}
