package songbpm

import (
	"testing"

	"github.com/tempolab/pacer/internal/core/domain"
)

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name      string
		spec      domain.QuerySpec
		wantPath  string
		wantLimit string
	}{
		{
			name:      "no artist selects the general tempo endpoint",
			spec:      domain.QuerySpec{BPM: 180, Tolerance: 5, Limit: 10},
			wantPath:  "/tempo/175/185/",
			wantLimit: "10",
		},
		{
			name:      "artist selects the artist-scoped endpoint",
			spec:      domain.QuerySpec{BPM: 180, Tolerance: 10, Artist: "Daft Punk", Limit: 5},
			wantPath:  "/artist/Daft%20Punk/tempo/170/190/",
			wantLimit: "5",
		},
		{
			name:      "genre and danceability filters do not change the upstream request",
			spec:      domain.QuerySpec{BPM: 120, Tolerance: 0, Genre: "house", Limit: 3},
			wantPath:  "/tempo/120/120/",
			wantLimit: "3",
		},
		{
			name:      "unset limit falls back to the default",
			spec:      domain.QuerySpec{BPM: 90, Tolerance: 2},
			wantPath:  "/tempo/88/92/",
			wantLimit: "20",
		},
		{
			name:      "zero bpm passes through unvalidated",
			spec:      domain.QuerySpec{BPM: 0, Tolerance: 5, Limit: 1},
			wantPath:  "/tempo/-5/5/",
			wantLimit: "1",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := BuildRequest(tc.spec)
			if got.Path != tc.wantPath {
				t.Errorf("path: got %q, want %q", got.Path, tc.wantPath)
			}
			if limit := got.Params.Get("limit"); limit != tc.wantLimit {
				t.Errorf("limit param: got %q, want %q", limit, tc.wantLimit)
			}
		})
	}
}
