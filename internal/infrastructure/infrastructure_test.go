package infrastructure

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem(t *testing.T) {
	fs := NewMemoryFileSystem()

	require.NoError(t, fs.MkdirAll("a/b"))
	require.NoError(t, fs.WriteFile("a/b/c.txt", []byte("hello")))
	require.NoError(t, fs.WriteFile("a/d.txt", []byte("hi")))

	data, err := fs.ReadFile("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	f, err := fs.Open("a/d.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "hi", string(body))

	var visited []string
	require.NoError(t, fs.Walk("a", func(p string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		if !info.IsDir() {
			visited = append(visited, filepath.ToSlash(p))
		}
		return nil
	}))
	assert.Equal(t, []string{"a/b/c.txt", "a/d.txt"}, visited)

	require.NoError(t, fs.RemoveAll("a"))
	_, err = fs.Stat("a")
	assert.True(t, os.IsNotExist(err))
}

func TestRenameMovesWholeTree(t *testing.T) {
	for name, fs := range map[string]*BillyFileSystem{
		"memory": NewMemoryFileSystem(),
		"os":     NewOSFileSystem(t.TempDir()),
	} {
		t.Run(name, func(t *testing.T) {
			want := map[string]string{
				"pom.xml":                    "pom",
				"src/main/java/a/App.java":   "app",
				"src/main/java/a/b/X.java":   "x",
				"src/main/java/a/b/c/Y.java": "y",
				"src/main/resources/app.yml": "yml",
			}
			for p, body := range want {
				require.NoError(t, fs.WriteFile(filepath.Join("stage/1/Demo", p), []byte(body)))
			}

			require.NoError(t, fs.Rename("stage/1/Demo", "out/Demo"))

			got := map[string]string{}
			require.NoError(t, fs.Walk("out/Demo", func(p string, info os.FileInfo, err error) error {
				require.NoError(t, err)
				if !info.IsDir() {
					rel, _ := filepath.Rel("out/Demo", p)
					data, err := fs.ReadFile(p)
					require.NoError(t, err)
					got[filepath.ToSlash(rel)] = string(data)
				}
				return nil
			}))
			assert.Equal(t, want, got)

			_, err := fs.Stat("stage/1/Demo")
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	fs := NewMemoryFileSystem()
	require.NoError(t, fs.WriteFile("a/f.txt", []byte("a")))
	require.NoError(t, fs.WriteFile("b/f.txt", []byte("b")))

	err := fs.Rename("a", "b")
	assert.True(t, errors.Is(err, os.ErrExist))

	data, err := fs.ReadFile("b/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestOSFileSystem(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem(dir)
	assert.Equal(t, dir, fs.Root())

	require.NoError(t, fs.WriteFile("nested/file.txt", []byte("on disk")))

	data, err := os.ReadFile(filepath.Join(dir, "nested", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))

	info, err := fs.Stat("nested/file.txt")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
	assert.Equal(t, int64(7), info.Size())
}

func TestGoTemplateEngine(t *testing.T) {
	engine := NewGoTemplateEngine()

	out, err := engine.Render("t", `package {{.Pkg}};{{if .Flag}} // on{{end}}`, map[string]any{
		"Pkg":  "com.acme.demo",
		"Flag": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "package com.acme.demo; // on", string(out))
}

func TestGoTemplateEngineErrors(t *testing.T) {
	engine := NewGoTemplateEngine()

	_, err := engine.Render("bad", `{{.Missing`, nil)
	assert.Error(t, err)

	_, err = engine.Render("missing", `{{.Missing}}`, map[string]string{})
	assert.Error(t, err)
}
