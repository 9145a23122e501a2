package archive

import (
	"archive/zip"
	"context"
	"io"
	"os"

	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/generator"
)

// Stats describes a finished stream.
type Stats struct {
	Entries int
	Bytes   int64
}

// Streamer writes a generated tree as a zip archive onto a sink.
type Streamer struct {
	fs domain.FileSystemPort
}

// NewStreamer creates a streamer reading from fs.
func NewStreamer(fs domain.FileSystemPort) *Streamer {
	return &Streamer{fs: fs}
}

// Stream archives every regular file below projectPath onto sink, one entry
// per file named by its slash separated path relative to projectPath. The
// archive is never held in memory; entries go to the sink as they are read.
//
// On failure the sink may hold a partial archive. Cancelling ctx stops the
// stream before the next entry.
func (s *Streamer) Stream(ctx context.Context, projectPath string, sink io.Writer) (Stats, error) {
	var stats Stats
	zw := zip.NewWriter(sink)

	err := s.fs.Walk(projectPath, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return domain.NewArchiveError("stream", "failed to read "+p, err)
		}
		if cerr := ctx.Err(); cerr != nil {
			return domain.NewArchiveError("stream", "stream cancelled", cerr)
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := generator.RelativePath(projectPath, p)
		if err != nil {
			return domain.NewArchiveError("stream", "failed to resolve entry name for "+p, err)
		}
		n, err := s.writeEntry(zw, p, rel, info)
		if err != nil {
			return err
		}
		stats.Entries++
		stats.Bytes += n
		return nil
	})
	if err != nil {
		return stats, err
	}

	if err := zw.Close(); err != nil {
		return stats, domain.NewArchiveError("stream", "failed to finish archive", err)
	}
	return stats, nil
}

func (s *Streamer) writeEntry(zw *zip.Writer, p, name string, info os.FileInfo) (int64, error) {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: info.ModTime(),
	}
	w, err := zw.CreateHeader(header)
	if err != nil {
		return 0, domain.NewArchiveError("stream", "failed to write header for "+name, err)
	}

	f, err := s.fs.Open(p)
	if err != nil {
		return 0, domain.NewArchiveError("stream", "failed to open "+name, err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, domain.NewArchiveError("stream", "failed to write content for "+name, err)
	}
	return n, nil
}
