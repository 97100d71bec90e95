package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/knave/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func sourcePaths(sources []m.Source) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, string(s.Origin.Path))
	}

	return out
}

// projectTree lays out a small mixed-language project:
//
//	tool.py, notes.txt, nested/helper.c, vendor/lib.c, __pycache__/cached.py
func projectTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "tool.py"), "limit = 1\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "limit = 1\n")

	mustMkdir(t, filepath.Join(root, "nested"))
	writeTestFile(t, filepath.Join(root, "nested", "helper.c"), "int helper_value;\n")

	mustMkdir(t, filepath.Join(root, "vendor"))
	writeTestFile(t, filepath.Join(root, "vendor", "lib.c"), "int lib;\n")

	mustMkdir(t, filepath.Join(root, "__pycache__"))
	writeTestFile(t, filepath.Join(root, "__pycache__", "cached.py"), "x = 1\n")

	return root
}

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := projectTree(t)

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, filepath.Join(root, "tool.py")), "Walk() did not visit top-level file")
		assert.False(t, containsPath(visited, filepath.Join(root, "nested", "helper.c")))
	})

	t.Run("recursive visits nested files but skips tool directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		root := projectTree(t)

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, filepath.Join(root, "nested", "helper.c")))
		assert.False(t, containsPath(visited, filepath.Join(root, "vendor", "lib.c")))
		assert.False(t, containsPath(visited, filepath.Join(root, "__pycache__", "cached.py")))
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := projectTree(t)

	t.Run("directory is not recursive", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []string{filepath.Join(root, "tool.py")}, sourcePaths(sources))
		assert.Equal(t, m.LanguagePython, sources[0].Language)
	})

	t.Run("recursive suffix", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{
			filepath.Join(root, "tool.py"),
			filepath.Join(root, "nested", "helper.c"),
		}, sourcePaths(sources))
	})

	t.Run("file roots are deduplicated", func(t *testing.T) {
		file := m.Path(filepath.Join(root, "nested", "helper.c"))

		sources, err := adapter.Get([]m.Path{file, file})
		require.NoError(t, err)
		require.Len(t, sources, 1)

		assert.Equal(t, m.LanguageC, sources[0].Language)

		sum := sha256.Sum256([]byte("int helper_value;\n"))
		assert.Equal(t, fmt.Sprintf("%x", sum), sources[0].Origin.Hash)
	})

	t.Run("files without a grammar are skipped", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "notes.txt"))})
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("paths outside the working directory stay absolute", func(t *testing.T) {
		sources, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "tool.py"))})
		require.NoError(t, err)
		require.Len(t, sources, 1)

		assert.Equal(t, sources[0].Origin.Path, sources[0].Origin.ShortPath)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := adapter.Get([]m.Path{m.Path(filepath.Join(root, "missing"))})
		require.Error(t, err)
	})

	t.Run("no roots", func(t *testing.T) {
		sources, err := adapter.Get(nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "tool.py")
	content := "limit = 1\nprint(limit)\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	t.Run("replaces content and keeps the mode", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		dir := t.TempDir()
		path := filepath.Join(dir, "tool.py")

		require.NoError(t, os.WriteFile(path, []byte("limit = 1\n"), 0o600))
		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("knave = 1\n")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "knave = 1\n", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file left behind")
	})

	t.Run("creates missing files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "new.c")

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("int x;\n")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("missing directory", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "missing", "new.c")

		require.Error(t, adapter.WriteFile(m.Path(path), []byte("int x;\n")))
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "tool.py")
	writeTestFile(t, path, "abc")

	got, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("abc"))
	assert.Equal(t, fmt.Sprintf("%x", sum), got)

	_, err = adapter.HashFile(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfoAndRelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := projectTree(t)

	info, err := adapter.FileInfo(m.Path(filepath.Join(root, "nested")))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	rel, err := adapter.RelPath(m.Path(root), m.Path(filepath.Join(root, "nested", "helper.c")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("nested", "helper.c")), rel)
}

func TestParseRootPath(t *testing.T) {
	tests := []struct {
		in        string
		path      string
		recursive bool
	}{
		{"...", ".", true},
		{"./...", ".", true},
		{"src/...", "src", true},
		{"src", "src", false},
		{"tool.py", "tool.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			path, recursive := parseRootPath(tt.in)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.recursive, recursive)
		})
	}
}
