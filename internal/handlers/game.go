package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vancomm/pyrat/internal/config"
	"github.com/vancomm/pyrat/internal/engine"
	"github.com/vancomm/pyrat/internal/generator"
	"github.com/vancomm/pyrat/internal/maze"
	"github.com/vancomm/pyrat/internal/session"
)

type GameHandler struct {
	logger   *slog.Logger
	store    session.Store
	ws       *config.WebSocket
	defaults generator.MazeConfig

	mu  sync.Mutex // guards rnd and serializes session updates
	rnd *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	store session.Store,
	ws *config.WebSocket,
	defaults generator.MazeConfig,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		store:    store,
		ws:       ws,
		defaults: defaults,
		rnd:      rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	mc, pc, err := dto.Configs()
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	kind, err := engine.ParseKind(dto.Engine)
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	var seed uint64
	if dto.Seed != nil {
		seed = *dto.Seed
	} else {
		g.mu.Lock()
		seed = g.rnd.Uint64()
		g.mu.Unlock()
	}

	initial, err := generator.Generate(mc, pc, generator.NewRand(seed))
	var ce *generator.ConfigurationError
	if errors.As(err, &ce) {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	} else if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", slog.Any("error", err), slog.Uint64("seed", seed))
		return
	}

	s := session.New(initial, seed, kind)
	if err := g.store.Create(r.Context(), s); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", slog.Any("error", err))
		return
	}

	g.logger.Debug("created game session", slog.String("id", s.ID), slog.Uint64("seed", seed))
	if err := SendJSON(w, http.StatusCreated, NewSessionDTO(s)); err != nil {
		g.logger.Error("unable to send new game", slog.Any("error", err))
	}
}

// fetch loads the session named in the path, answering the request itself
// when it cannot.
func (g *GameHandler) fetch(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := g.store.Fetch(r.Context(), r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.logger, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session", slog.Any("error", err))
		return nil, false
	}
	return s, true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.fetch(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewSessionDTO(s))
}

func (g *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	s, ok := g.fetch(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, s.Record)
}

func (g *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	p1, p2, err := ParseMoves(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.fetch(w, r)
	if !ok {
		return
	}
	turn, err := g.play(r, s, p1, p2)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to play turn", slog.Any("error", err))
		return
	}
	sendJSONOrLog(w, g.logger, turn)
}

func (g *GameHandler) play(r *http.Request, s *session.Session, p1, p2 maze.Move) (*TurnDTO, error) {
	d1, d2, err := s.Move(p1, p2)
	if err != nil {
		return nil, err
	}
	if err := g.store.Update(r.Context(), s); err != nil {
		return nil, err
	}
	return &TurnDTO{Delta: [2]float64{d1, d2}, Session: NewSessionDTO(s)}, nil
}

func (g *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.fetch(w, r)
	if !ok {
		return
	}
	s.Reset()
	if err := g.store.Update(r.Context(), s); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to reset session", slog.Any("error", err))
		return
	}
	sendJSONOrLog(w, g.logger, NewSessionDTO(s))
}

// command runs one websocket line: "<p1> <p2>", "reset" or "state".
func (g *GameHandler) command(r *http.Request, id, line string) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.store.Fetch(r.Context(), id)
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(line)
	switch {
	case len(fields) == 1 && fields[0] == "state":
		return NewSessionDTO(s), nil
	case len(fields) == 1 && fields[0] == "reset":
		s.Reset()
		if err := g.store.Update(r.Context(), s); err != nil {
			return nil, err
		}
		return NewSessionDTO(s), nil
	case len(fields) == 2:
		p1, err := maze.ParseMove(fields[0])
		if err != nil {
			return nil, err
		}
		p2, err := maze.ParseMove(fields[1])
		if err != nil {
			return nil, err
		}
		return g.play(r, s, p1, p2)
	}
	return nil, fmt.Errorf("invalid command %q", line)
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := g.fetch(w, r); !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()
	c.SetReadLimit(g.ws.ReadLimit)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}
		for _, line := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			result, err := g.command(r, id, line)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return
				}
				result = wrapError(err)
			}
			if err := c.WriteJSON(result); err != nil {
				g.logger.Error("unable to write json", slog.Any("error", err))
				return
			}
		}
	}
}
