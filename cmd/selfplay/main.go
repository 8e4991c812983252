package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/history"
	"gomoku/internal/store"
)

func main() {
	app := &cli.App{
		Name:  "selfplay",
		Usage: "play the engine against itself and report results",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 10, Usage: "number of games"},
			&cli.IntFlag{Name: "size", Value: game.DefaultBoardSize, Usage: "board size"},
			&cli.Int64Flag{Name: "seed", Value: 1, Usage: "base seed for tie-breaking"},
			&cli.IntFlag{Name: "workers", Value: 1, Usage: "concurrent candidate scoring"},
			&cli.StringFlag{Name: "db", Usage: "save records and stats to this sqlite file"},
			&cli.StringFlag{Name: "cpuprofile", Usage: "write a CPU profile into this directory"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only print the summary"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if dir := c.String("cpuprofile"); dir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir)).Stop()
	}

	size := c.Int("size")
	if size < game.WinLength {
		return fmt.Errorf("size must be at least %d", game.WinLength)
	}

	var db *store.SQLiteStore
	if path := c.String("db"); path != "" {
		var err error
		if db, err = store.NewSQLiteStore(path); err != nil {
			return err
		}
		defer db.Close()
	}

	settings := config.Get().EngineSettings(config.Get().DefaultWeights)
	settings.Workers = c.Int("workers")

	var stats history.Stats
	seed := c.Int64("seed")
	for i := 0; i < c.Int("games"); i++ {
		black := game.NewEngine(settings, rand.New(rand.NewSource(seed+int64(2*i))))
		white := game.NewEngine(settings, rand.New(rand.NewSource(seed+int64(2*i+1))))

		winner, moves := playGame(size, black, white)
		res := history.Result{Mode: history.ModePvP, Winner: winner, Moves: len(moves)}
		stats.RecordGame(res)

		if db != nil {
			rec := history.NewRecord(moves, history.ModePvP, winner, game.Empty, size)
			if err := db.SaveRecord(rec); err != nil {
				return err
			}
			if err := db.RecordResult(res); err != nil {
				return err
			}
		}
		if !c.Bool("quiet") {
			fmt.Printf("game %3d: %-5s in %3d moves\n", i+1, winner, len(moves))
		}
	}

	d := stats.Detailed()
	fmt.Printf("\n%d games: black %d, white %d, draws %d, avg %d moves\n",
		stats.TotalGames, stats.BlackWins, stats.WhiteWins, stats.Draws, d.AvgMoves)
	return nil
}

// playGame runs one game to a win or a full board.
func playGame(size int, black, white *game.Engine) (history.Outcome, []history.Move) {
	b := game.NewBoard(size)
	var (
		moves []history.Move
		last  *game.Coord
	)
	engines := map[game.Stone]*game.Engine{game.Black: black, game.White: white}

	for turn := game.Black; ; turn = turn.Opponent() {
		mv, ok := engines[turn].SelectMove(b, turn, last)
		if !ok {
			return history.OutcomeDraw, moves
		}
		if err := b.Place(mv, turn); err != nil {
			// the engine only returns empty cells
			panic(err)
		}
		moves = append(moves, history.Move{Row: mv.Row, Col: mv.Col, Player: turn})
		last = &mv

		if won, _ := game.DetectWin(b, mv); won {
			return history.OutcomeFor(turn), moves
		}
		if b.IsFull() {
			return history.OutcomeDraw, moves
		}
	}
}
