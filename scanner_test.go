package tailgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		values  []string
		columns []int
	}{
		{
			name:    "class attribute",
			line:    `<div class="p-4 bg-blue-500">`,
			values:  []string{"p-4 bg-blue-500"},
			columns: []int{13},
		},
		{
			name:    "className attribute",
			line:    `  <div className="flex items-center">`,
			values:  []string{"flex items-center"},
			columns: []int{19},
		},
		{
			name:    "single quotes",
			line:    `<span class='text-sm'>`,
			values:  []string{"text-sm"},
			columns: []int{14},
		},
		{
			name:    "templ braces",
			line:    `<p class={ "m-2 hover:underline" }>`,
			values:  []string{"m-2 hover:underline"},
			columns: []int{13},
		},
		{
			name:    "tw helper",
			line:    `cls := tw("grid grid-cols-3")`,
			values:  []string{"grid grid-cols-3"},
			columns: []int{12},
		},
		{
			name:    "templ.Classes with KV",
			line:    `<a class={ templ.Classes("px-2", templ.KV("font-bold", active)) }>`,
			values:  []string{"px-2", "font-bold"},
			columns: []int{27, 44},
		},
		{
			name:    "templ.KV alone",
			line:    `templ.KV("opacity-50", disabled)`,
			values:  []string{"opacity-50"},
			columns: []int{11},
		},
		{
			name: "comment line",
			line: `// <div class="p-4">`,
		},
		{
			name:    "two attributes",
			line:    `<div class="p-4"><span class="m-1"></span></div>`,
			values:  []string{"p-4", "m-1"},
			columns: []int{13, 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractClassesFromLine(tt.line, 7, "x.templ")
			require.Len(t, got, len(tt.values))
			for i, u := range got {
				assert.Equal(t, tt.values[i], u.Value)
				assert.Equal(t, tt.columns[i], u.Location.Column)
				assert.Equal(t, tt.values[i], tt.line[u.Location.Column-1:u.Location.Column-1+len(u.Value)])
				assert.Equal(t, 7, u.Location.Line)
				assert.Equal(t, "x.templ", u.Location.File)
			}
		})
	}
}

func TestTokenColumns(t *testing.T) {
	u := ClassUsage{Value: "p-4  hover:m-2 flex", Location: FileLocation{Column: 13}}
	assert.Equal(t, []string{"p-4", "hover:m-2", "flex"}, u.Classes())
	assert.Equal(t, []int{13, 18, 28}, u.TokenColumns())
}

func TestSplitTemplArgs(t *testing.T) {
	assert.Equal(t, []string{`"a"`, ` templ.KV("b", x)`}, splitTemplArgs(`"a", templ.KV("b", x)`))
	assert.Equal(t, []string{`"a, b"`, ` c`}, splitTemplArgs(`"a, b", c`))
}

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"internal/web/features/sidebar_templ.go", true},
		{"internal/web/features/sidebar.templ.go", true},
		{"internal/api/handlers.go", false},
		{"internal/web/features/sidebar.templ", false},
		{"internal/templates/handler.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.expected, isTemplGenerated(tt.path))
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	write("pages/home.templ", "<div class=\"p-4\">\n\t<span class=\"text-sm font-bold\"></span>\n</div>\n")
	write("pages/home_templ.go", `templ.WriteString("<div class=\"p-4\">")`)
	write("pages/other.go", "package pages\n")

	usages, stats, err := ScanFiles([]string{
		filepath.Join(dir, "**/*.templ"),
		filepath.Join(dir, "**/*.go"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	require.Len(t, usages, 2)
	assert.Equal(t, "p-4", usages[0].Value)
	assert.Equal(t, 1, usages[0].Location.Line)
	assert.Equal(t, "text-sm font-bold", usages[1].Value)
	assert.Equal(t, 2, usages[1].Location.Line)
	assert.Equal(t, 15, usages[1].Location.Column)
	assert.Equal(t, "\t<span class=\"text-sm font-bold\"></span>", usages[1].Location.Text)
}
