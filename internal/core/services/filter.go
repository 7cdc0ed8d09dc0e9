package services

import (
	"strings"

	"github.com/tempolab/pacer/internal/core/domain"
)

// Filter narrows a raw result page to the songs satisfying spec's client-side
// predicates, preserving input order, and truncates to spec's limit.
//
// Known quirk, kept on purpose: a song with no danceability value carries 0,
// so any lower bound above 0 excludes it, and an upper bound never does.
// Likewise a bound whose value is exactly 0 counts as unset.
func Filter(songs []domain.Song, spec domain.QuerySpec) []domain.Song {
	filtered := make([]domain.Song, 0, len(songs))
	for _, song := range songs {
		if spec.Genre != "" && !strings.EqualFold(song.Genre, spec.Genre) {
			continue
		}
		if min := spec.DanceabilityMin; min != nil && *min != 0 && song.Danceability < *min {
			continue
		}
		if max := spec.DanceabilityMax; max != nil && *max != 0 && song.Danceability > *max {
			continue
		}
		filtered = append(filtered, song)
	}

	if limit := spec.EffectiveLimit(); len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}
