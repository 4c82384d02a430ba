// Package worker holds the background tasks of the server. There is only
// one: the opt-in sweep that reclaims uploaded images no recipe references
// anymore. Deleting or re-imaging a recipe intentionally leaves its old
// file behind, so disk usage grows until an operator enables the sweep.
package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"recetario/internal/repository"

	"github.com/rs/zerolog/log"
)

type Sweeper struct {
	repo      repository.RecetaRepository
	dir       string
	intervalo time.Duration
}

func NewSweeper(repo repository.RecetaRepository, dir string, intervalo time.Duration) *Sweeper {
	return &Sweeper{repo: repo, dir: dir, intervalo: intervalo}
}

// Start launches the sweep loop; it stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
	log.Info().Dur("interval", s.intervalo).Str("dir", s.dir).Msg("image sweeper started")
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("image sweeper shutting down")
			return
		case <-ticker.C:
			borrados, err := s.Barrer(ctx)
			if err != nil {
				log.Error().Err(err).Msg("image sweep failed")
				continue
			}
			if borrados > 0 {
				log.Info().Int("deleted", borrados).Msg("orphan images swept")
			}
		}
	}
}

// Barrer performs one sweep pass: any file in the uploads directory that no
// recipe references and that is older than one interval gets deleted. The
// age guard protects files uploaded by a request still in flight.
func (s *Sweeper) Barrer(ctx context.Context) (int, error) {
	recetas, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	referencias := make(map[string]bool, len(recetas))
	for _, r := range recetas {
		if r.Imagen != nil {
			referencias[filepath.Base(*r.Imagen)] = true
		}
	}

	entradas, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, err
	}

	limite := time.Now().Add(-s.intervalo)
	borrados := 0
	for _, entrada := range entradas {
		if entrada.IsDir() || referencias[entrada.Name()] {
			continue
		}
		info, err := entrada.Info()
		if err != nil || info.ModTime().After(limite) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entrada.Name())); err != nil {
			log.Warn().Err(err).Str("file", entrada.Name()).Msg("could not remove orphan image")
			continue
		}
		borrados++
	}
	return borrados, nil
}
