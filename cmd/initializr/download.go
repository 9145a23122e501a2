package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eduardo/initializr/internal/output"
)

func newDownloadCmd(c *cli) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "download <application-name>",
		Short: "Write a generated project as a zip archive",
		Example: `  initializr download DemoApp
  initializr download DemoApp -o /tmp/demo.zip
  initializr download DemoApp -o - > demo.zip`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if target == "" {
				target = name + ".zip"
			}

			svc, closeFn, err := c.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if target == "-" {
				return svc.Download(cmd.Context(), name, cmd.OutOrStdout())
			}

			sink := &lazyFile{path: target}
			err = svc.Download(cmd.Context(), name, sink)
			if cerr := sink.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				sink.discard()
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", enabledColor.Sprint("✓"), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "output", "o", "", "Output file, - for stdout (default <application-name>.zip)")
	return cmd
}

// lazyFile creates its file on the first write, so a download that fails
// before producing any byte leaves nothing behind.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		f, err := os.Create(l.path)
		if err != nil {
			return 0, err
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

// discard removes a partially written archive.
func (l *lazyFile) discard() {
	if l.f == nil {
		return
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		output.Warn("failed to remove partial archive", "path", l.path, "err", err)
	}
}
