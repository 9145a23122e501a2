package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/infrastructure"
	"github.com/eduardo/initializr/internal/parser"
)

// requestFlags are the Configuration Vector flags shared by generate and inspect.
type requestFlags struct {
	file         string
	name         string
	framework    string
	database     string
	jwt          bool
	baseEntity   bool
	baseResponse bool
	packageName  string
	groupID      string
	artifactID   string
	version      string
	javaVersion  string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Request file (.json, .yaml or .md with a fenced block)")
	fl.StringVar(&f.name, "name", "", "Application name")
	fl.StringVar(&f.framework, "framework", string(domain.FrameworkSpringBoot), "Framework type")
	fl.StringVar(&f.database, "database", "", "Database type: MYSQL, POSTGRESQL, SQLSERVER, ORACLE")
	fl.BoolVar(&f.jwt, "jwt", false, "Generate JWT authentication support")
	fl.BoolVar(&f.baseEntity, "base-entity", false, "Generate the base entity")
	fl.BoolVar(&f.baseResponse, "base-response", false, "Generate the response envelopes")
	fl.StringVar(&f.packageName, "package", "", "Base package (default: lower-cased name)")
	fl.StringVar(&f.groupID, "group-id", "", "Maven group id (default "+domain.DefaultGroupID+")")
	fl.StringVar(&f.artifactID, "artifact-id", "", "Maven artifact id (default: lower-cased name)")
	fl.StringVar(&f.version, "project-version", "", "Project version (default "+domain.DefaultVersion+")")
	fl.StringVar(&f.javaVersion, "java-version", "", "Java version (default "+domain.DefaultJavaVersion+")")
}

// config builds the request from the file, if any, with explicitly set
// flags taking precedence over it.
func (f *requestFlags) config(cmd *cobra.Command) (domain.Config, error) {
	var cfg domain.Config
	if f.file != "" {
		parsed, err := parseRequestFile(f.file)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = *parsed
	}

	fl := cmd.Flags()
	set := func(name string) bool { return f.file == "" || fl.Changed(name) }

	if set("name") {
		cfg.ApplicationName = f.name
	}
	if set("framework") || cfg.Framework == "" {
		cfg.Framework = domain.ParseFrameworkKind(f.framework)
	}
	if set("database") && f.database != "" {
		db, err := domain.ParseDatabaseKind(f.database)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Database = db
	}
	if set("jwt") {
		cfg.JwtAuthEnabled = f.jwt
	}
	if set("base-entity") {
		cfg.BaseEntityEnabled = f.baseEntity
	}
	if set("base-response") {
		cfg.BaseResponseEnabled = f.baseResponse
	}
	if set("package") && f.packageName != "" {
		cfg.PackageName = f.packageName
	}
	if set("group-id") && f.groupID != "" {
		cfg.GroupID = f.groupID
	}
	if set("artifact-id") && f.artifactID != "" {
		cfg.ArtifactID = f.artifactID
	}
	if set("project-version") && f.version != "" {
		cfg.Version = f.version
	}
	if set("java-version") && f.javaVersion != "" {
		cfg.JavaVersion = f.javaVersion
	}
	return cfg, nil
}

// parseRequestFile reads a request file from the local disk.
func parseRequestFile(path string) (*domain.Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	p := parser.NewRequestParser(infrastructure.NewOSFileSystem(filepath.Dir(abs)))
	return p.Parse(filepath.Base(abs))
}

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		flags  requestFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Spring Boot project",
		Long: `Generate a Spring Boot project and record it in the ledger.

The request comes from flags, from a request file, or from both; flags
given explicitly override the file.`,
		Example: `  initializr generate --name DemoApp --database POSTGRESQL --jwt --base-entity --base-response
  initializr generate -f demo.yaml
  initializr generate -f blueprint.md --name OtherApp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd)
			if err != nil {
				return err
			}

			svc, closeFn, err := c.openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			record, err := svc.Generate(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), record)
			}
			printGenerated(cmd.OutOrStdout(), record)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	return cmd
}
