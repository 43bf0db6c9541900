package accel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/tailgen/internal/generator"
	"github.com/yacobolo/tailgen/internal/theme"
)

func TestCompiler_CachesEntries(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(8)
	c := NewCompiler(cache)

	first, err := c.Compile(ctx, []string{"p-4", "hover:bg-blue-500"})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := c.Compile(ctx, []string{"p-4", "hover:bg-blue-500"})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, cache.Len())
}

func TestCompiler_ThemeIsPartOfKey(t *testing.T) {
	ctx := context.Background()
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	out, err := NewCompiler(cache).CompileCSS(ctx, []string{"bg-blue-500"})
	require.NoError(t, err)
	assert.Equal(t, ".bg-blue-500{background-color:#3b82f6}", out)

	custom := theme.Default()
	custom.Colors["blue"]["500"] = "#000001"
	c := NewCompiler(cache, WithCompilerTheme(custom))

	out, err = c.CompileCSS(ctx, []string{"bg-blue-500"})
	require.NoError(t, err)
	assert.Equal(t, ".bg-blue-500{background-color:#000001}", out)

	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Equal(t, int64(1), misses)

	// Same theme contents, new Compiler: the entry is reused.
	again := theme.Default()
	again.Colors["blue"]["500"] = "#000001"
	c = NewCompiler(cache, WithCompilerTheme(again))
	_, err = c.CompileCSS(ctx, []string{"bg-blue-500"})
	require.NoError(t, err)
	hits, _ = c.Stats()
	assert.Equal(t, int64(1), hits)
}

func TestCompiler_GradientBatch(t *testing.T) {
	out, err := NewCompiler(nil).CompileCSS(context.Background(),
		[]string{"bg-gradient-to-r", "from-blue-500", "to-red-500"})
	require.NoError(t, err)
	assert.Equal(t, ".bg-gradient-to-r{background-image:linear-gradient(to right, #3b82f6, #ef4444)}", out)
}

func TestCompiler_UnknownClassIsNotCached(t *testing.T) {
	cache := NewMemoryCache(8)
	_, err := NewCompiler(cache).Compile(context.Background(), []string{"p-4", "nope-nope"})
	require.Error(t, err)
	assert.True(t, generator.IsUnknownClass(err))
	assert.Equal(t, 0, cache.Len())
}

func TestPool_CompileElements(t *testing.T) {
	elements := [][]string{
		{"p-4"},
		{"m-2", "text-sm"},
		{"bogus-class"},
		{"flex", "items-center"},
	}

	p := NewPool(NewCompiler(NewMemoryCache(16)), 3)
	assert.Equal(t, 3, p.Workers())

	results, err := p.CompileElements(context.Background(), elements)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "element 2")

	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, elements[i], r.Classes)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "p-4", results[0].Entries[0].Key)
	assert.Len(t, results[1].Entries, 2)
	assert.Error(t, results[2].Err)
	assert.Len(t, results[3].Entries, 2)
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewPool(NewCompiler(nil), 2).CompileElements(ctx, [][]string{{"p-4"}, {"m-4"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 2)
}

func TestPool_DefaultWorkers(t *testing.T) {
	assert.Positive(t, NewPool(NewCompiler(nil), 0).Workers())
}

func TestMergeResults(t *testing.T) {
	results, err := NewPool(NewCompiler(nil), 2).CompileElements(context.Background(), [][]string{
		{"p-4", "m-2"},
		{"nope-nope"},
		{"m-2", "flex"},
	})
	require.Error(t, err)

	g := generator.New()
	assert.Zero(t, MergeResults(g, results, nil))
	assert.Equal(t, []string{"p-4", "m-2", "flex"}, g.Table().Keys())
}

func TestMergeResults_ReportsReplacedRules(t *testing.T) {
	results, err := NewPool(NewCompiler(nil), 2).CompileElements(context.Background(), [][]string{
		{"bg-gradient-to-r", "from-blue-500", "to-red-500"},
		{"bg-gradient-to-r", "from-green-500", "to-red-500"},
	})
	require.NoError(t, err)

	core, logs := observer.New(zap.DebugLevel)
	g := generator.New()
	assert.Equal(t, 1, MergeResults(g, results, zap.New(core)))

	rule, ok := g.Rule("bg-gradient-to-r")
	require.True(t, ok)
	assert.Contains(t, rule.Properties[0].Value, "#22c55e")

	entries := logs.FilterField(zap.String("token", "bg-gradient-to-r")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["element"])
}
