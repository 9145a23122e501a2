package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eduardo/initializr/internal/output"
	"github.com/eduardo/initializr/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator over HTTP",
		Long: `Serve the generator over HTTP.

  POST /spring-boot/generator                              generate a project
  GET  /spring-boot/generator/download/:applicationName    download it as a zip
  GET  /spring-boot/generator/projects                     list records
  GET  /spring-boot/generator/projects/:applicationName    show one record`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.Server.Address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			svc, closeFn, err := c.openService(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			return server.New(svc, output.Component("http")).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (env: INITIALIZR_SERVER_ADDRESS, default :8080)")
	return cmd
}
