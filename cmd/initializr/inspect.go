package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eduardo/initializr/internal/generator"
	"github.com/eduardo/initializr/internal/infrastructure"
)

func newInspectCmd(c *cli) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the effective request and the files it would produce",
		Long: `Resolve a request the same way generate does, validate it and print
the effective configuration and planned files. Nothing is written.`,
		Example: `  initializr inspect -f demo.yaml
  initializr inspect --name DemoApp --database MYSQL --jwt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			files, err := generator.Render(cfg, infrastructure.NewGoTemplateEngine())
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg.WithDefaults())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, string(out))
			fmt.Fprintf(w, "\n%s (%d)\n", labelColor.Sprint("Files"), len(files))
			for _, f := range files {
				fmt.Fprintf(w, "  %s %s\n", pathColor.Sprint(f.Path), labelColor.Sprint(formatBytes(int64(len(f.Content)))))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
