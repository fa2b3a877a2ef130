package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/generator"
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/session"
	"github.com/vancomm/pyrat/internal/state"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type CreateGameDTO struct {
	Width       int     `schema:"width"`
	Height      int     `schema:"height"`
	WallDensity float64 `schema:"wall_density"`
	Symmetric   bool    `schema:"symmetric"`
	MudDensity  float64 `schema:"mud_density"`
	MudRange    int     `schema:"mud_range"`
	CheeseCount int     `schema:"nb_cheese"`
	CheeseMode  string  `schema:"cheese_mode"`
	PlayerMode  string  `schema:"players"`
	Seed        *uint64 `schema:"seed"`
	Engine      string  `schema:"engine"`
}

// ParseCreateGameDTO decodes query parameters over the server defaults.
func ParseCreateGameDTO(src map[string][]string, defaults generator.MazeConfig) (CreateGameDTO, error) {
	dto := CreateGameDTO{
		Width:       defaults.Width,
		Height:      defaults.Height,
		WallDensity: defaults.WallDensity,
		Symmetric:   defaults.Symmetric,
		MudDensity:  defaults.MudDensity,
		MudRange:    defaults.MudRange,
		CheeseCount: defaults.CheeseCount,
		CheeseMode:  defaults.CheeseMode.String(),
		PlayerMode:  generator.CornerPlayers.String(),
		Engine:      string(engine.Scalar),
	}
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Configs turns the request into generator configurations. Custom layouts
// are not accepted over the query string.
func (dto CreateGameDTO) Configs() (generator.MazeConfig, generator.PlayerConfig, error) {
	mc := generator.MazeConfig{
		Width:       dto.Width,
		Height:      dto.Height,
		WallMode:    generator.RandomWalls,
		WallDensity: dto.WallDensity,
		Symmetric:   dto.Symmetric,
		IsConnected: true,
		MudMode:     generator.RandomMud,
		MudDensity:  dto.MudDensity,
		MudRange:    dto.MudRange,
		CheeseCount: dto.CheeseCount,
	}
	var pc generator.PlayerConfig
	if err := mc.CheeseMode.UnmarshalText([]byte(dto.CheeseMode)); err != nil {
		return mc, pc, err
	}
	if mc.CheeseMode == generator.ListCheese {
		return mc, pc, fmt.Errorf("cheese mode %s is not available here", mc.CheeseMode)
	}
	if err := pc.Mode.UnmarshalText([]byte(dto.PlayerMode)); err != nil {
		return mc, pc, err
	}
	if pc.Mode == generator.CustomPlayers {
		return mc, pc, fmt.Errorf("player mode %s is not available here", pc.Mode)
	}
	return mc, pc, nil
}

type MoveDTO struct {
	P1 string `schema:"p1"`
	P2 string `schema:"p2"`
}

func ParseMoves(src map[string][]string) (maze.Move, maze.Move, error) {
	var dto MoveDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return maze.DidNotMove, maze.DidNotMove, err
	}
	p1, err := maze.ParseMove(dto.P1)
	if err != nil {
		return maze.DidNotMove, maze.DidNotMove, fmt.Errorf("p1: %w", err)
	}
	p2, err := maze.ParseMove(dto.P2)
	if err != nil {
		return maze.DidNotMove, maze.DidNotMove, fmt.Errorf("p2: %w", err)
	}
	return p1, p2, nil
}

type SessionDTO struct {
	ID        string           `json:"id"`
	Seed      uint64           `json:"seed"`
	Engine    engine.Kind      `json:"engine"`
	Turn      int              `json:"turn"`
	Finished  bool             `json:"finished"`
	State     *state.GameState `json:"state"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
}

func NewSessionDTO(s *session.Session) *SessionDTO {
	return &SessionDTO{
		ID:        s.ID,
		Seed:      s.Seed,
		Engine:    s.Kind,
		Turn:      s.Record.Len(),
		Finished:  s.State.Finished(),
		State:     s.State,
		CreatedAt: s.CreatedAt.UnixMilli(),
		UpdatedAt: s.UpdatedAt.UnixMilli(),
	}
}

type TurnDTO struct {
	Delta   [2]float64  `json:"delta"`
	Session *SessionDTO `json:"session"`
}
