package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/pyrat/internal/config"
	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/generator"
	"github.com/vancomm/pyrat/internal/record"
	"github.com/vancomm/pyrat/internal/store"
)

var (
	log = logrus.New()

	configPath string
	seed       uint64
	games      int
	maxTurns   int
	kindName   string
	workers    int
	dbPath     string
	logFile    string
	verbose    bool
	verify     bool
)

func init() {
	const configUsage = "game config file path"
	flag.StringVar(&configPath, "config", "", configUsage)
	flag.StringVar(&configPath, "c", "", configUsage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 1, "seed of the first game, later games count up from it")
	flag.IntVar(&games, "games", 100, "number of games to play")
	flag.IntVar(&maxTurns, "turns", 1000, "turn limit per game")
	flag.StringVar(&kindName, "engine", string(engine.Scalar), "turn resolver: scalar or dense")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "games played in parallel")
	flag.StringVar(&dbPath, "db", "", "sqlite file to save game records to")
	flag.StringVar(&logFile, "log-file", "", "also write logs to this file, rotated")
	flag.BoolVar(&verbose, "v", false, "log every game")
	flag.BoolVar(&verify, "verify", false, "replay every record and compare final states")
}

func setupLogging() {
	level := logrus.InfoLevel
	if verbose || config.Development() {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	generator.Log = log

	if logFile == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file: ", err)
	}
	log.AddHook(hook)
}

type result struct {
	seed   uint64
	turns  int
	score1 float64
	score2 float64
}

func (r result) winner() int {
	switch {
	case r.score1 > r.score2:
		return 1
	case r.score2 > r.score1:
		return 2
	}
	return 0
}

func play(ctx context.Context, game config.Game, kind engine.Kind, seed uint64, records *store.RecordStore) (result, error) {
	initial, err := generator.Generate(game.Maze, game.Players, generator.NewRand(seed))
	if err != nil {
		return result{}, fmt.Errorf("game %d: %w", seed, err)
	}
	e, err := engine.NewKind(initial, kind)
	if err != nil {
		return result{}, err
	}
	rec := record.Playout(e, rand.New(rand.NewPCG(seed, ^seed)), maxTurns)
	final := e.State()

	if verify {
		replayed, err := rec.Replay(kind)
		if err != nil {
			return result{}, err
		}
		if !replayed.Equal(final) {
			return result{}, fmt.Errorf("game %d: replay diverged from play", seed)
		}
	}
	if records != nil {
		if err := records.Save(ctx, strconv.FormatUint(seed, 10), rec); err != nil {
			return result{}, fmt.Errorf("game %d: unable to save record: %w", seed, err)
		}
	}

	res := result{
		seed:   seed,
		turns:  rec.Len(),
		score1: final.Player1.Score,
		score2: final.Player2.Score,
	}
	log.WithFields(logrus.Fields{
		"seed":   res.seed,
		"turns":  res.turns,
		"score1": res.score1,
		"score2": res.score2,
	}).Debug("game over")
	return res, nil
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	game, err := config.ReadGame(configPath)
	if err != nil {
		log.Fatal(err)
	}
	kind, err := engine.ParseKind(kindName)
	if err != nil {
		log.Fatal(err)
	}

	var records *store.RecordStore
	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			log.Fatal("unable to open record db: ", err)
		}
		defer db.Close()
		if records, err = store.NewRecordStore(ctx, db); err != nil {
			log.Fatal("unable to prepare record db: ", err)
		}
	}

	log.WithFields(logrus.Fields{
		"games":   games,
		"seed":    seed,
		"engine":  kind,
		"workers": workers,
	}).Info("starting simulation")

	results := make([]result, games)
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range games {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := play(gCtx, game, kind, seed+uint64(i), records)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("simulation stopped: ", err)
	}

	var wins [3]int
	var turns int
	for _, r := range results {
		wins[r.winner()]++
		turns += r.turns
	}
	avg := 0.0
	if games > 0 {
		avg = float64(turns) / float64(games)
	}
	log.WithFields(logrus.Fields{
		"player1": wins[1],
		"player2": wins[2],
		"draws":   wins[0],
		"turns":   avg,
	}).Info("simulation finished")
	fmt.Printf("games: %d  player1: %d  player2: %d  draws: %d  avg turns: %.1f\n",
		games, wins[1], wins[2], wins[0], avg)
}
