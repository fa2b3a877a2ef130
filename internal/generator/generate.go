package generator

import (
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/state"
)

var Log = logrus.New()

// Generate builds the initial state of a game. All randomness is drawn
// from r, so equal configurations and equally seeded sources give equal
// games.
//
// Invalid parameters are reported as [*ConfigurationError], generated
// states that break the game invariants as [state.InvariantViolation].
func Generate(mc MazeConfig, pc PlayerConfig, r *rand.Rand) (s *state.GameState, err error) {
	defer func() {
		var iv state.InvariantViolation
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.As(e, &iv) {
				s, err = nil, iv
				return
			}
			panic(rec)
		}
	}()

	if err := mc.validate(); err != nil {
		return nil, err
	}
	if err := pc.validate(mc.Width, mc.Height); err != nil {
		return nil, err
	}
	if !mc.IsConnected {
		Log.Warn("disconnected mazes are not supported, generating a connected one")
	}

	var walls maze.Walls
	switch mc.WallMode {
	case RandomWalls:
		walls = randomWalls(mc.Width, mc.Height, mc.WallDensity, mc.Symmetric, r)
	case CustomWalls:
		walls = customWalls(mc.Walls)
	default:
		return nil, configError("unknown wall mode %v", mc.WallMode)
	}

	var mud maze.Mud
	switch mc.MudMode {
	case RandomMud:
		mud = randomMud(mc.Width, mc.Height, walls, mc.MudDensity, mc.MudRange, mc.Symmetric, r)
	case CustomMud:
		if mud, err = customMud(mc.Mud, walls); err != nil {
			return nil, err
		}
	default:
		return nil, configError("unknown mud mode %v", mc.MudMode)
	}

	p1, p2 := placePlayers(pc, mc.Width, mc.Height, r)

	var cheese maze.Cheese
	switch mc.CheeseMode {
	case ListCheese:
		cheese, err = listCheese(mc.Cheeses, p1, p2)
	case SymmetricCheese:
		cheese, err = symmetricCheese(mc.Width, mc.Height, mc.CheeseCount, p1, p2, r)
	case AsymmetricCheese:
		cheese, err = asymmetricCheese(mc.Width, mc.Height, mc.CheeseCount, p1, p2, r)
	}
	if err != nil {
		return nil, err
	}

	s = &state.GameState{
		Width:   mc.Width,
		Height:  mc.Height,
		Walls:   walls,
		Mud:     mud,
		Cheese:  cheese,
		Player1: newPlayer(p1, pc.Initial1),
		Player2: newPlayer(p2, pc.Initial2),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	Log.WithFields(logrus.Fields{
		"width":  s.Width,
		"height": s.Height,
		"walls":  s.Walls.Len(),
		"mud":    s.Mud.Len(),
		"cheese": s.Cheese.Len(),
	}).Debug("generated game")
	return s, nil
}

func newPlayer(pos maze.Coordinate, init InitialPlayer) state.Player {
	return state.Player{
		Position: pos,
		Score:    init.Score,
		Mud:      init.Mud,
		Misses:   init.Misses,
	}
}

// NewRand returns the source [Generate] should draw from for a given game
// seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
