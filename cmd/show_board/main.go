package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/reversi-solver/internal/display"
	"github.com/lk16/reversi-solver/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, rows separated by '/'")
	turn := flag.String("turn", "X", "player to move, X or O")
	flag.Parse()

	player, err := othello.ParsePlayer(*turn)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	game := othello.NewGame()
	if *boardString != "" {
		game, err = othello.ParseGame(strings.ReplaceAll(*boardString, "/", "\n"), player, false)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	if err = display.Render(os.Stdout, game); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
