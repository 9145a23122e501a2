package infrastructure

import (
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFileSystem implements domain.FileSystemPort on top of a billy.Filesystem
type BillyFileSystem struct {
	fs billy.Filesystem
}

// NewOSFileSystem returns a store rooted at baseDir on the local disk.
func NewOSFileSystem(baseDir string) *BillyFileSystem {
	return &BillyFileSystem{fs: osfs.New(baseDir)}
}

// NewMemoryFileSystem returns an in-memory store.
func NewMemoryFileSystem() *BillyFileSystem {
	return &BillyFileSystem{fs: memfs.New()}
}

// Root returns the base directory of the underlying filesystem.
func (b *BillyFileSystem) Root() string {
	return b.fs.Root()
}

func (b *BillyFileSystem) MkdirAll(path string) error {
	return b.fs.MkdirAll(path, 0755)
}

func (b *BillyFileSystem) WriteFile(path string, data []byte) error {
	return util.WriteFile(b.fs, path, data, 0644)
}

func (b *BillyFileSystem) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(b.fs, path)
}

func (b *BillyFileSystem) Open(path string) (io.ReadCloser, error) {
	return b.fs.Open(path)
}

func (b *BillyFileSystem) Stat(path string) (os.FileInfo, error) {
	return b.fs.Stat(path)
}

func (b *BillyFileSystem) RemoveAll(path string) error {
	return util.RemoveAll(b.fs, path)
}

// Rename moves from to to. Directories are moved file by file because memfs
// loses entries when renaming nested directories in one call.
func (b *BillyFileSystem) Rename(from, to string) error {
	info, err := b.fs.Stat(from)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return b.fs.Rename(from, to)
	}
	if _, err := b.fs.Stat(to); err == nil {
		return &os.LinkError{Op: "rename", Old: from, New: to, Err: os.ErrExist}
	}

	err = util.Walk(b.fs, from, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, p)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)
		if info.IsDir() {
			return b.fs.MkdirAll(target, 0755)
		}
		return b.fs.Rename(p, target)
	})
	if err != nil {
		return err
	}
	return util.RemoveAll(b.fs, from)
}

func (b *BillyFileSystem) Walk(root string, fn filepath.WalkFunc) error {
	return util.Walk(b.fs, root, fn)
}
