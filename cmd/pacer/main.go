package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	xterm "golang.org/x/term"

	"github.com/tempolab/pacer/internal/adapters/songbpm"
	"github.com/tempolab/pacer/internal/adapters/term"
	"github.com/tempolab/pacer/internal/core/domain"
	"github.com/tempolab/pacer/internal/core/services"
)

// courtesyDelay spaces out the demo queries. It is politeness towards the
// API, not a correctness mechanism.
const courtesyDelay = time.Second

func main() {
	// 1. Configuration (Environment Variables)
	// Crash early if required config is missing.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN main: could not load .env: %v", err)
	}

	apiKey := os.Getenv("GETSONGBPM_API_KEY")
	if apiKey == "" {
		log.Fatal("FATAL: GETSONGBPM_API_KEY environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize the driven adapter and inject it into the core.
	client := songbpm.NewClient(nil, os.Getenv("GETSONGBPM_BASE_URL"), apiKey)
	engine := services.NewEngine(client)
	presenter := term.NewPresenter(os.Stdout)

	// 3. Demo queries, then the interactive custom search.
	runExamples(ctx, engine, presenter)

	if ctx.Err() != nil {
		return
	}
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return
	}
	runCustomSearch(ctx, engine, presenter)
}

func runExamples(ctx context.Context, engine *services.Engine, presenter *term.Presenter) {
	presenter.Banner("EXAMPLE 1: Songs at 180 BPM (±5 BPM tolerance)")
	presenter.Render(engine.Search(ctx, domain.QuerySpec{
		BPM:       180,
		Tolerance: 5,
		Limit:     10,
	}), false)

	if !pause(ctx, courtesyDelay) {
		return
	}

	presenter.Banner("EXAMPLE 2: High danceability songs at 180 BPM")
	danceMin := 0.7
	presenter.Render(engine.Search(ctx, domain.QuerySpec{
		BPM:             180,
		Tolerance:       5,
		DanceabilityMin: &danceMin,
		Limit:           10,
	}), false)

	if !pause(ctx, courtesyDelay) {
		return
	}

	presenter.Banner("EXAMPLE 3: Search by specific artist")
	presenter.Render(engine.Search(ctx, domain.QuerySpec{
		BPM:       180,
		Tolerance: 10,
		Artist:    "Daft Punk",
		Limit:     5,
	}), true)
}

func runCustomSearch(ctx context.Context, engine *services.Engine, presenter *term.Presenter) {
	presenter.Banner("CUSTOM SEARCH")

	type promptResult struct {
		spec domain.QuerySpec
		err  error
	}

	prompt := term.NewPrompt(os.Stdin, os.Stdout)
	results := make(chan promptResult, 1)
	go func() {
		spec, err := prompt.QuerySpec()
		results <- promptResult{spec: spec, err: err}
	}()

	var res promptResult
	select {
	case <-ctx.Done():
		fmt.Println("\nSearch cancelled.")
		return
	case res = <-results:
	}

	if res.err != nil {
		if errors.Is(res.err, term.ErrCancelled) {
			fmt.Println("\nSearch cancelled.")
			return
		}
		fmt.Printf("Invalid input: %v\n", res.err)
		return
	}

	presenter.Render(engine.Search(ctx, res.spec), true)
}

// pause waits out the courtesy delay unless the run is interrupted first.
func pause(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
