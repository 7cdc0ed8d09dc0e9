package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/tempolab/pacer/internal/core/domain"
)

// ErrUpstreamFailure indicates the remote song service could not satisfy a
// request, for any reason: unreachable host, rejected key, bad status.
var ErrUpstreamFailure = errors.New("upstream request failed")

// UpstreamStatusError carries the HTTP status of a failed upstream call.
type UpstreamStatusError struct {
	Status int
}

func (e UpstreamStatusError) Error() string {
	if e.Status == 0 {
		return ErrUpstreamFailure.Error()
	}
	return fmt.Sprintf("upstream request failed with status %d", e.Status)
}

func (e UpstreamStatusError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// SongProvider is the driven port for the remote song-metadata service.
type SongProvider interface {
	// SongsByTempo performs the tempo search described by spec: the
	// artist-scoped endpoint when spec.Artist is set, the general
	// tempo-range endpoint otherwise. Returns the raw, unfiltered page.
	SongsByTempo(ctx context.Context, spec domain.QuerySpec) ([]domain.Song, error)

	// SearchTempoWindow queries the generic search endpoint for songs whose
	// tempo falls in [bpmMin, bpmMax].
	SearchTempoWindow(ctx context.Context, bpmMin, bpmMax, limit int) ([]domain.Song, error)

	// SongByID looks up one song's detail record.
	SongByID(ctx context.Context, id string) (domain.Song, error)
}
