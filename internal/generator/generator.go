package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/eduardo/initializr/internal/domain"
)

// ProjectPath is the storage path of an application below root.
func ProjectPath(root, applicationName string) string {
	return path.Join(root, applicationName)
}

// Render runs every enabled emitter for config in emission order. It
// validates and defaults config first and performs no I/O.
func Render(config domain.Config, tmpl domain.TemplatePort) ([]domain.GeneratedFile, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cfg := config.WithDefaults()

	var files []domain.GeneratedFile
	seen := make(map[string]string)
	for _, e := range Emitters() {
		out, err := e.Emit(cfg, tmpl)
		if err != nil {
			return nil, err
		}
		for _, f := range out {
			if prev, ok := seen[f.Path]; ok {
				return nil, fmt.Errorf("emitters %s and %s both write %s", prev, e.Name, f.Path)
			}
			seen[f.Path] = e.Name
		}
		files = append(files, out...)
	}
	return files, nil
}

// Generate writes the project described by config below root and returns the
// manifest of what was written. A rejected config fails before any write.
// A failed write leaves the files already written in place.
func Generate(ctx context.Context, config domain.Config, root string, fs domain.FileSystemPort, tmpl domain.TemplatePort) (*domain.Manifest, error) {
	files, err := Render(config, tmpl)
	if err != nil {
		return nil, err
	}
	cfg := config.WithDefaults()
	projectPath := ProjectPath(root, cfg.ApplicationName)

	for _, dir := range PlanDirectories(projectPath, cfg) {
		if err := fs.MkdirAll(dir); err != nil {
			return nil, domain.NewStorageError("generate", "failed to create directory "+dir, err)
		}
	}

	manifest := &domain.Manifest{ProjectPath: projectPath}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, domain.NewStorageError("generate", "generation cancelled", err)
		}
		if err := fs.WriteFile(path.Join(projectPath, f.Path), f.Content); err != nil {
			return nil, domain.NewStorageError("generate", "failed to write "+f.Path, err)
		}
		sum := sha256.Sum256(f.Content)
		manifest.Files = append(manifest.Files, domain.ManifestEntry{
			Path:   f.Path,
			Size:   int64(len(f.Content)),
			SHA256: hex.EncodeToString(sum[:]),
		})
	}

	size, err := TreeSize(fs, projectPath)
	if err != nil {
		return nil, domain.NewStorageError("generate", "failed to measure "+projectPath, err)
	}
	manifest.TotalBytes = size

	return manifest, nil
}

// TreeSize sums the sizes of all regular files below root.
func TreeSize(fs domain.FileSystemPort, root string) (int64, error) {
	var total int64
	err := fs.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// RelativePath returns p relative to root with forward slashes.
func RelativePath(root, p string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(root), filepath.FromSlash(p))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
