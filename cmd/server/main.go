package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/config"
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/handlers"
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)

	h := handlers.New(cfg, log)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route("/blackrock/challenge/v1", func(r chi.Router) {
		r.Post("/transactions:parse", h.ParseTransactions)
		r.Post("/transactions:validator", h.ValidateTransactions)
		r.Post("/transactions:filter", h.FilterTransactions)
		r.Post("/returns:nps", h.NPSReturns)
		r.Post("/returns:index", h.IndexReturns)
		r.Get("/performance", h.Performance)
	})

	log.Info().Str("port", cfg.ServerPort).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.ServerPort, r); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
