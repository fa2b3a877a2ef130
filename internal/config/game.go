package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vancomm/pyrat/internal/generator"
)

// Game holds generation parameters as read from a JSON file.
type Game struct {
	Maze    generator.MazeConfig   `json:"maze"`
	Players generator.PlayerConfig `json:"players"`
}

func DefaultGame() Game {
	return Game{
		Maze:    generator.DefaultMazeConfig(),
		Players: generator.DefaultPlayerConfig(),
	}
}

// ReadGame loads path over the defaults, so a file only needs the keys it
// changes. An empty path yields the defaults.
func ReadGame(path string) (Game, error) {
	game := DefaultGame()
	if path == "" {
		return game, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return game, fmt.Errorf("unable to open game config: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&game); err != nil {
		return game, fmt.Errorf("unable to parse game config %s: %w", path, err)
	}
	return game, nil
}
