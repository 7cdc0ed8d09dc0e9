package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tempolab/pacer/internal/core/domain"
)

func TestPresenter_Render(t *testing.T) {
	tests := []struct {
		name        string
		songs       []domain.Song
		verbose     bool
		wantLines   []string
		unwantLines []string
	}{
		{
			name:      "empty result prints the no-match message",
			songs:     nil,
			wantLines: []string{"No songs found matching your criteria."},
		},
		{
			name: "numbered entries with core fields",
			songs: []domain.Song{
				{ID: "s1", Title: "One More Time", Artist: "Daft Punk", Album: "Discovery", Tempo: 123},
				{Title: "Untitled"},
			},
			wantLines: []string{
				"Found 2 songs:",
				"1. One More Time - Daft Punk",
				"   BPM: 123",
				"   Album: Discovery",
				"   Song ID: s1",
				"2. Untitled - Unknown Artist",
				"   BPM: N/A",
				"   Album: N/A",
			},
			unwantLines: []string{"   Danceability:"},
		},
		{
			name: "optional attributes appear when set",
			songs: []domain.Song{
				{Title: "T", Artist: "A", Danceability: 0.83, Genre: "House"},
			},
			wantLines: []string{
				"   Danceability: 0.83",
				"   Genre: House",
			},
			unwantLines: []string{"   Energy:", "   Key:"},
		},
		{
			name: "verbose forces the optional attribute lines",
			songs: []domain.Song{
				{Title: "T", Artist: "A"},
			},
			verbose: true,
			wantLines: []string{
				"   Danceability: N/A",
				"   Energy: N/A",
				"   Key: N/A",
				"   Genre: N/A",
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPresenter(&buf).Render(tc.songs, tc.verbose)
			out := buf.String()

			for _, want := range tc.wantLines {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwant := range tc.unwantLines {
				if strings.Contains(out, unwant) {
					t.Errorf("output unexpectedly contains %q:\n%s", unwant, out)
				}
			}
		})
	}
}

// TestPresenter_Render_Order pins that entries keep their input order.
func TestPresenter_Render_Order(t *testing.T) {
	var buf bytes.Buffer
	NewPresenter(&buf).Render([]domain.Song{
		{Title: "First"},
		{Title: "Second"},
		{Title: "Third"},
	}, false)

	out := buf.String()
	first := strings.Index(out, "1. First")
	second := strings.Index(out, "2. Second")
	third := strings.Index(out, "3. Third")
	if first == -1 || second == -1 || third == -1 || !(first < second && second < third) {
		t.Fatalf("entries out of order:\n%s", out)
	}
}
