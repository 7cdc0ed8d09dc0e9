// Package term is the terminal adapter: it renders result lists and collects
// an interactive query from a human. It holds no logic of its own; everything
// it prints or parses travels as plain domain values.
package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tempolab/pacer/internal/core/domain"
)

const ruleWidth = 80

// Presenter writes formatted search results to a terminal.
type Presenter struct {
	w io.Writer
}

// NewPresenter constructs a Presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Render prints the result list. Verbose forces the optional attribute lines
// even when their values are unknown; otherwise they appear only when set.
func (p *Presenter) Render(songs []domain.Song, verbose bool) {
	if len(songs) == 0 {
		fmt.Fprintln(p.w, "No songs found matching your criteria.")
		return
	}

	fmt.Fprintf(p.w, "\nFound %d songs:\n\n", len(songs))
	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))

	for i, song := range songs {
		fmt.Fprintf(p.w, "\n%d. %s - %s\n", i+1, valueOr(song.Title, "Unknown"), valueOr(song.Artist, "Unknown Artist"))
		fmt.Fprintf(p.w, "   BPM: %s\n", numberOrNA(song.Tempo))
		fmt.Fprintf(p.w, "   Album: %s\n", valueOr(song.Album, "N/A"))

		if verbose || song.Danceability != 0 {
			fmt.Fprintf(p.w, "   Danceability: %s\n", numberOrNA(song.Danceability))
		}
		if verbose || song.Energy != 0 {
			fmt.Fprintf(p.w, "   Energy: %s\n", numberOrNA(song.Energy))
		}
		if verbose || song.Key != "" {
			fmt.Fprintf(p.w, "   Key: %s\n", valueOr(song.Key, "N/A"))
		}
		if verbose || song.Genre != "" {
			fmt.Fprintf(p.w, "   Genre: %s\n", valueOr(song.Genre, "N/A"))
		}
		if song.ID != "" {
			fmt.Fprintf(p.w, "   Song ID: %s\n", song.ID)
		}
	}

	fmt.Fprintln(p.w, strings.Repeat("-", ruleWidth))
}

// Banner prints a section heading between rule lines, for the demo driver.
func (p *Presenter) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "%s\n%s\n%s\n", rule, title, rule)
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// numberOrNA renders a numeric attribute, treating the zero value as unknown.
func numberOrNA(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
