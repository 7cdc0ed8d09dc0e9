package songbpm

import "github.com/tempolab/pacer/internal/core/domain"

// mapSongToDomain converts a raw GetSongBPM record to a clean domain Song.
// Absent wire fields stay zero-valued, which the domain reads as "unknown".
func mapSongToDomain(ws wireSong) domain.Song {
	return domain.Song{
		ID:           ws.ID,
		Title:        ws.Title,
		Artist:       ws.Artist.Name,
		Album:        ws.Album.Title,
		Tempo:        float64(ws.Tempo),
		Genre:        ws.Genre,
		Danceability: float64(ws.Danceability),
		Energy:       float64(ws.Energy),
		Key:          ws.Key,
	}
}

func mapPageToDomain(page []wireSong) []domain.Song {
	songs := make([]domain.Song, 0, len(page))
	for _, ws := range page {
		songs = append(songs, mapSongToDomain(ws))
	}
	return songs
}
