package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tempolab/pacer/internal/core/domain"
)

// ErrCancelled reports that the user ended the prompt sequence early
// (EOF / Ctrl-D). It is a clean exit, not a failure.
var ErrCancelled = errors.New("prompt cancelled")

// InvalidInputError reports a prompt answer that could not be parsed.
type InvalidInputError struct {
	Field string
	Value string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %q", e.Field, e.Value)
}

// Prompt collects a QuerySpec interactively, one line per field. Empty
// answers take the field's default.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt constructs a Prompt reading answers from in and writing
// questions to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// QuerySpec runs the prompt sequence and assembles the resulting query.
// A malformed numeric answer aborts the sequence with InvalidInputError so
// the malformed query is never issued.
func (p *Prompt) QuerySpec() (domain.QuerySpec, error) {
	bpm, err := p.askInt("Enter target BPM (default 180): ", "target BPM", 180)
	if err != nil {
		return domain.QuerySpec{}, err
	}

	tolerance, err := p.askInt("Enter BPM tolerance (default 5): ", "BPM tolerance", 5)
	if err != nil {
		return domain.QuerySpec{}, err
	}

	artist, err := p.askString("Enter artist name (optional, press Enter to skip): ")
	if err != nil {
		return domain.QuerySpec{}, err
	}

	genre, err := p.askString("Enter genre (optional, press Enter to skip): ")
	if err != nil {
		return domain.QuerySpec{}, err
	}

	danceMin, err := p.askOptionalFloat("Enter minimum danceability 0-1 (optional, press Enter to skip): ", "minimum danceability")
	if err != nil {
		return domain.QuerySpec{}, err
	}

	limit, err := p.askInt("Enter number of results (default 10): ", "number of results", 10)
	if err != nil {
		return domain.QuerySpec{}, err
	}

	return domain.QuerySpec{
		BPM:             bpm,
		Tolerance:       tolerance,
		Artist:          artist,
		Genre:           genre,
		DanceabilityMin: danceMin,
		Limit:           limit,
	}, nil
}

func (p *Prompt) askString(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", ErrCancelled
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompt) askInt(question string, field string, fallback int) (int, error) {
	answer, err := p.askString(question)
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, InvalidInputError{Field: field, Value: answer}
	}
	return v, nil
}

func (p *Prompt) askOptionalFloat(question string, field string) (*float64, error) {
	answer, err := p.askString(question)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return nil, InvalidInputError{Field: field, Value: answer}
	}
	return &v, nil
}
