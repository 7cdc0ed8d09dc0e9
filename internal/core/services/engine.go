package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/tempolab/pacer/internal/core/domain"
	"github.com/tempolab/pacer/internal/core/ports"
)

// Engine is the song query engine. It performs exactly one provider round
// trip per logical query and applies the client-side result filter. Upstream
// failures never propagate: they are logged and degrade to an empty result,
// so a broken network and "no matches" look the same to callers.
type Engine struct {
	provider ports.SongProvider
}

// NewEngine constructs an Engine around the given provider.
func NewEngine(provider ports.SongProvider) *Engine {
	return &Engine{provider: provider}
}

// Search runs the tempo search described by spec and returns the filtered,
// order-preserving result, at most spec's limit long.
func (e *Engine) Search(ctx context.Context, spec domain.QuerySpec) []domain.Song {
	queryID := uuid.New()
	bpmMin, bpmMax := spec.Window()
	log.Printf("DEBUG engine: query %s: window [%d, %d] artist=%q genre=%q limit=%d",
		queryID, bpmMin, bpmMax, spec.Artist, spec.Genre, spec.EffectiveLimit())

	songs, err := e.provider.SongsByTempo(ctx, spec)
	if err != nil {
		log.Printf("WARN engine: query %s: tempo search failed: %v", queryID, err)
		return nil
	}

	return Filter(songs, spec)
}

// TempoWindow queries the generic search endpoint for songs in
// [bpmMin, bpmMax] without any client-side filtering.
func (e *Engine) TempoWindow(ctx context.Context, bpmMin, bpmMax, limit int) []domain.Song {
	queryID := uuid.New()
	log.Printf("DEBUG engine: query %s: raw window [%d, %d] limit=%d", queryID, bpmMin, bpmMax, limit)

	songs, err := e.provider.SearchTempoWindow(ctx, bpmMin, bpmMax, limit)
	if err != nil {
		log.Printf("WARN engine: query %s: window search failed: %v", queryID, err)
		return nil
	}
	return songs
}

// Lookup fetches one song's detail record. The boolean reports whether a
// record came back; failures degrade to a zero Song, matching Search.
func (e *Engine) Lookup(ctx context.Context, id string) (domain.Song, bool) {
	song, err := e.provider.SongByID(ctx, id)
	if err != nil {
		log.Printf("WARN engine: song lookup %s failed: %v", id, err)
		return domain.Song{}, false
	}
	return song, true
}
