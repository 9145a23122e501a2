package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eduardo/initializr/internal/application"
	"github.com/eduardo/initializr/internal/config"
	"github.com/eduardo/initializr/internal/db"
	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/generator"
	"github.com/eduardo/initializr/internal/infrastructure"
	"github.com/eduardo/initializr/internal/output"
)

// cli holds the global flags and the configuration resolved from them.
type cli struct {
	configFile string
	baseDir    string
	logLevel   string
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "initializr",
		Short: "Spring Boot project initializr",
		Long: `initializr scaffolds Spring Boot projects from a short description,
keeps a ledger of every generated project and serves them back as zip archives.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initialize(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "Path to config file (default ./initializr.yaml)")
	rootCmd.PersistentFlags().StringVar(&c.baseDir, "base-dir", "", "Directory generated projects and the ledger live in (env: INITIALIZR_STORAGE_BASE_DIR)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: INITIALIZR_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newGenerateCmd(c),
		newNewCmd(c),
		newInspectCmd(c),
		newDownloadCmd(c),
		newShowCmd(c),
		newListCmd(c),
		newServeCmd(c),
		newVersionCmd(),
	)

	return rootCmd
}

// initialize loads configuration and sets up logging. Flags win over env,
// env wins over the config file.
func (c *cli) initialize(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if cmd.Flags().Changed("base-dir") {
		loader.Set("storage.base_dir", c.baseDir)
	}
	if cmd.Flags().Changed("log-level") {
		loader.Set("log.level", c.logLevel)
	}

	cfg, err := loader.Load(c.configFile)
	if err != nil {
		return asConfigError(err)
	}
	c.cfg = cfg

	output.SetupLogging(cfg.Log.Level, c.verbose)
	if used := loader.ConfigFileUsed(); used != "" {
		output.Debug("loaded config", "file", used)
	}
	return nil
}

// openService wires the service for one command. The returned func releases
// the ledger.
func (c *cli) openService(ctx context.Context) (*application.InitializrService, func(), error) {
	ledger, err := db.Open(ctx, c.cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := application.NewInitializrService(
		infrastructure.NewOSFileSystem(c.cfg.Storage.BaseDir),
		infrastructure.NewGoTemplateEngine(),
		ledger,
		c.cfg.Storage.Root,
		output.Component("initializr"),
		generator.Generate,
	)
	closeFn := func() {
		if err := ledger.Close(); err != nil {
			output.Warn("failed to close ledger", "err", err)
		}
	}
	return svc, closeFn, nil
}

func asConfigError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domain.Error); ok {
		return err
	}
	return &domain.Error{Kind: domain.ErrConfiguration, Op: "config", Cause: err}
}
