package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/pyrat/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.store, a.ws, a.game.Maze, createRand(),
	)

	a.router.HandleFunc("POST /games", game.NewGame)
	a.router.HandleFunc("GET /games/{id}", game.Fetch)
	a.router.HandleFunc("POST /games/{id}/move", game.Move)
	a.router.HandleFunc("POST /games/{id}/reset", game.Reset)
	a.router.HandleFunc("GET /games/{id}/record", game.Record)
	a.router.HandleFunc("/games/{id}/connect", game.ConnectWS)
}
