package accel

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tailgen/internal/css"
	"github.com/yacobolo/tailgen/internal/generator"
)

// ElementResult is the outcome for one element, at the same index as its
// input.
type ElementResult struct {
	Index   int
	Classes []string
	Entries []css.Entry
	Err     error
}

// Pool fans element class lists out over a fixed number of workers.
type Pool struct {
	compiler *Compiler
	workers  int
}

// NewPool returns a pool of workers goroutines. workers < 1 means
// runtime.NumCPU().
func NewPool(c *Compiler, workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{compiler: c, workers: workers}
}

// Workers returns the worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// CompileElements compiles every element and returns results in input
// order. The error combines every element failure; per-element errors are
// also set on the results. When ctx is cancelled no new elements are
// dispatched and the undispatched ones carry ctx.Err().
func (p *Pool) CompileElements(ctx context.Context, elements [][]string) ([]ElementResult, error) {
	results := make([]ElementResult, len(elements))
	for i, classes := range elements {
		results[i] = ElementResult{Index: i, Classes: classes}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := &results[i]
				r.Entries, r.Err = p.compiler.Compile(ctx, r.Classes)
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range elements {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(results); i++ {
		results[i].Err = ctx.Err()
	}

	var err error
	for _, r := range results[:dispatched] {
		if r.Err != nil {
			err = multierr.Append(err, fmt.Errorf("element %d: %w", r.Index, r.Err))
		}
	}
	if dispatched < len(results) {
		err = multierr.Append(err, ctx.Err())
	}
	return results, err
}

// MergeResults upserts the entries of every successful result into g in
// input order. A token shared by several elements keeps its first position
// and the last element's rule. It returns how many upserts replaced a rule
// with a different one, which happens for gradient directions whose stops
// differ per element.
func MergeResults(g *generator.Generator, results []ElementResult, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}

	conflicts := 0
	table := g.Table()
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		for _, e := range r.Entries {
			if prev, ok := table.Get(e.Key); ok && !prev.Equal(e.Rule) {
				conflicts++
				log.Debug("element rule replaces an earlier one",
					zap.String("token", e.Key),
					zap.Int("element", r.Index),
					zap.String("before", css.Declarations(prev.Properties)),
					zap.String("after", css.Declarations(e.Rule.Properties)))
			}
			table.Upsert(e.Key, e.Rule)
		}
	}
	return conflicts
}
