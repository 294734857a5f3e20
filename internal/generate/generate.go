// Package generate drives icon rendering across the slot table and verifies
// that previously generated icons are still current.
package generate

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aellingwood/flowicons/internal/icon"
	"github.com/aellingwood/flowicons/internal/slots"
)

// Options configures a Generator.
type Options struct {
	// Jobs is the number of icons rendered concurrently. Values below 1 are
	// treated as 1, which renders the table strictly in order.
	Jobs int

	// Out receives progress messages. Nil discards them.
	Out io.Writer

	// Verbose adds the computed geometry for each icon to the progress output.
	Verbose bool
}

// Generator renders every slot of a table to disk.
type Generator struct {
	opts Options
	mu   sync.Mutex // guards writes to opts.Out
}

// Result summarises a completed run.
type Result struct {
	Slots    []slots.Slot // in table order
	Duration time.Duration
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts Options) *Generator {
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{opts: opts}
}

// Run renders each slot in table. With one job the slots are rendered in
// order; with more, a bounded pool renders them concurrently. Every slot owns
// its canvas and a distinct path, so the only shared state is the progress
// writer. The first error stops scheduling and is returned.
func (g *Generator) Run(ctx context.Context, table []slots.Slot) (*Result, error) {
	start := time.Now()
	g.printf("Generating icons for %d slots...\n", len(table))

	var err error
	if g.opts.Jobs == 1 {
		err = g.runSequential(ctx, table)
	} else {
		err = g.runParallel(ctx, table)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Slots:    table,
		Duration: time.Since(start),
	}, nil
}

func (g *Generator) runSequential(ctx context.Context, table []slots.Slot) error {
	for _, s := range table {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.render(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) runParallel(ctx context.Context, table []slots.Slot) error {
	sem := make(chan struct{}, g.opts.Jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for _, s := range table {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}
		if failed() {
			break
		}

		s := s
		wg.Add(1)
		sem <- struct{}{} // acquire
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release

			if err := g.render(s); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// render writes one slot and reports it.
func (g *Generator) render(s slots.Slot) error {
	if err := icon.Render(s.Spec()); err != nil {
		return fmt.Errorf("rendering %s icon: %w", s.Name, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	fmt.Fprintf(g.opts.Out, "Created icon: %s (%s)\n", s.Path, s.Dimensions())
	if g.opts.Verbose {
		l := icon.Layout(s.Size)
		fmt.Fprintf(g.opts.Out, "  face (%d,%d) r=%d, eyes r=%d/%d, corner r=%d\n",
			l.CenterX, l.CenterY, l.HeadRadius, l.EyeRadius, l.PupilRadius, l.CornerRadius)
	}
	return nil
}

func (g *Generator) printf(format string, args ...any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fmt.Fprintf(g.opts.Out, format, args...)
}
