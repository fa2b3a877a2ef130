package generator

import (
	"fmt"
	"strings"

	"github.com/vancomm/pyrat/internal/maze"
)

type WallMode int

const (
	RandomWalls WallMode = iota
	CustomWalls
)

type MudMode int

const (
	RandomMud MudMode = iota
	CustomMud
)

type CheeseMode int

const (
	SymmetricCheese CheeseMode = iota
	AsymmetricCheese
	ListCheese
)

type PlayerMode int

const (
	CornerPlayers PlayerMode = iota
	SymmetricPlayers
	AsymmetricPlayers
	CustomPlayers
)

var (
	wallModes   = []string{"RANDOM", "CUSTOM"}
	mudModes    = []string{"RANDOM", "CUSTOM"}
	cheeseModes = []string{"SYMMETRICAL", "ASYMMETRICAL", "LIST"}
	playerModes = []string{"CORNER", "SYMMETRIC", "ASYMMETRIC", "CUSTOM"}
)

func modeName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%d", v)
	}
	return names[v]
}

func parseMode(names []string, kind, s string) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s mode %q", kind, s)
}

func (m WallMode) String() string   { return modeName(wallModes, int(m)) }
func (m MudMode) String() string    { return modeName(mudModes, int(m)) }
func (m CheeseMode) String() string { return modeName(cheeseModes, int(m)) }
func (m PlayerMode) String() string { return modeName(playerModes, int(m)) }

func (m WallMode) MarshalText() ([]byte, error)   { return []byte(m.String()), nil }
func (m MudMode) MarshalText() ([]byte, error)    { return []byte(m.String()), nil }
func (m CheeseMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (m PlayerMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *WallMode) UnmarshalText(text []byte) error {
	v, err := parseMode(wallModes, "wall", string(text))
	*m = WallMode(v)
	return err
}

func (m *MudMode) UnmarshalText(text []byte) error {
	v, err := parseMode(mudModes, "mud", string(text))
	*m = MudMode(v)
	return err
}

func (m *CheeseMode) UnmarshalText(text []byte) error {
	v, err := parseMode(cheeseModes, "cheese", string(text))
	*m = CheeseMode(v)
	return err
}

func (m *PlayerMode) UnmarshalText(text []byte) error {
	v, err := parseMode(playerModes, "player", string(text))
	*m = PlayerMode(v)
	return err
}

// MazeConfig describes the board: its size, walls, mud and cheese.
// Walls, Mud and Cheeses are only read in the matching custom modes.
type MazeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	WallMode    WallMode    `json:"wall_mode"`
	WallDensity float64     `json:"wall_density"`
	Symmetric   bool        `json:"symmetric"`
	IsConnected bool        `json:"is_connected"`
	Walls       []maze.Edge `json:"walls,omitempty"`

	MudMode    MudMode        `json:"mud_mode"`
	MudDensity float64        `json:"mud_density"`
	MudRange   int            `json:"mud_range"`
	Mud        []maze.MudEdge `json:"mud,omitempty"`

	CheeseCount int               `json:"nb_cheese"`
	CheeseMode  CheeseMode        `json:"cheese_mode"`
	Cheeses     []maze.Coordinate `json:"cheeses,omitempty"`
}

func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Width:       21,
		Height:      15,
		WallMode:    RandomWalls,
		WallDensity: 0.7,
		Symmetric:   true,
		IsConnected: true,
		MudMode:     RandomMud,
		MudDensity:  0.1,
		MudRange:    10,
		CheeseCount: 41,
		CheeseMode:  SymmetricCheese,
	}
}

// InitialPlayer overrides the starting score, mud timer and miss count of a
// player.
type InitialPlayer struct {
	Score  float64 `json:"score"`
	Mud    int     `json:"mud"`
	Misses int     `json:"misses"`
}

type PlayerConfig struct {
	Mode     PlayerMode       `json:"player_pos_init"`
	Player1  *maze.Coordinate `json:"player1_pos,omitempty"`
	Player2  *maze.Coordinate `json:"player2_pos,omitempty"`
	Initial1 InitialPlayer    `json:"player1_initial"`
	Initial2 InitialPlayer    `json:"player2_initial"`
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{Mode: CornerPlayers}
}

func (c MazeConfig) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return configError("maze must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.WallMode == RandomWalls && (c.WallDensity < 0 || c.WallDensity > 1) {
		return configError("wall density %v outside [0, 1]", c.WallDensity)
	}
	if c.WallMode == CustomWalls {
		if c.Walls == nil {
			return configError("custom wall mode requires walls")
		}
		for _, e := range c.Walls {
			if !e.Valid(c.Width, c.Height) {
				return configError("wall %v is not a grid edge", e)
			}
		}
	}
	switch c.MudMode {
	case RandomMud:
		if c.MudDensity < 0 || c.MudDensity > 1 {
			return configError("mud density %v outside [0, 1]", c.MudDensity)
		}
		if c.MudDensity > 0 && c.MudRange < 2 {
			return configError("mud range must be at least 2, got %d", c.MudRange)
		}
	case CustomMud:
		if c.Mud == nil {
			return configError("custom mud mode requires mud")
		}
		for _, m := range c.Mud {
			if !m.Valid(c.Width, c.Height) {
				return configError("mud %v is not a grid edge", m.Edge)
			}
			if m.Cost < 2 {
				return configError("mud %v has cost %d, minimum is 2", m.Edge, m.Cost)
			}
		}
	}
	switch c.CheeseMode {
	case ListCheese:
		if c.Cheeses == nil {
			return configError("list cheese mode requires cheeses")
		}
		for _, cell := range c.Cheeses {
			if !cell.InBounds(c.Width, c.Height) {
				return configError("cheese %v is off the grid", cell)
			}
		}
	case SymmetricCheese, AsymmetricCheese:
		if c.CheeseCount < 0 || c.CheeseCount > c.Width*c.Height {
			return configError("cannot place %d cheeses on %d cells", c.CheeseCount, c.Width*c.Height)
		}
		if c.CheeseMode == SymmetricCheese && c.CheeseCount%2 == 1 {
			if _, ok := maze.Center(c.Width, c.Height); !ok {
				return configError("odd cheese count %d needs odd dimensions, got %dx%d",
					c.CheeseCount, c.Width, c.Height)
			}
		}
	default:
		return configError("unknown cheese mode %v", c.CheeseMode)
	}
	return nil
}

func (c PlayerConfig) validate(width, height int) error {
	switch c.Mode {
	case CornerPlayers:
	case SymmetricPlayers:
		if width*height < 2 {
			return configError("symmetric placement needs at least 2 cells")
		}
	case AsymmetricPlayers:
		if width*height < 2 {
			return configError("asymmetric placement needs at least 2 cells")
		}
	case CustomPlayers:
		if c.Player1 == nil || c.Player2 == nil {
			return configError("custom player mode requires both positions")
		}
		if !c.Player1.InBounds(width, height) || !c.Player2.InBounds(width, height) {
			return configError("player positions %v, %v off the %dx%d grid",
				*c.Player1, *c.Player2, width, height)
		}
	default:
		return configError("unknown player mode %v", c.Mode)
	}
	for i, p := range []InitialPlayer{c.Initial1, c.Initial2} {
		if p.Mud < 0 || p.Misses < 0 {
			return configError("player %d initial mud and misses must be non-negative", i+1)
		}
	}
	return nil
}
