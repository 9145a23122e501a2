package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eduardo/initializr/internal/domain"
)

const (
	featureJwt          = "jwt"
	featureBaseEntity   = "base-entity"
	featureBaseResponse = "base-response"
)

// databaseOptions lists every database kind under its display label.
func databaseOptions() []huh.Option[domain.DatabaseKind] {
	var opts []huh.Option[domain.DatabaseKind]
	for _, k := range domain.DatabaseKinds() {
		facts, _ := k.Facts()
		opts = append(opts, huh.NewOption(facts.Label, k))
	}
	return opts
}

func newNewCmd(c *cli) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Describe and generate a project interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, generate, err := runInteractiveForm()
			if err != nil {
				return err
			}

			if save != "" {
				if err := saveRequest(save, cfg); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved request to %s\n", save)
			}
			if !generate {
				return nil
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
			printGenerated(cmd.OutOrStdout(), record)
			return nil
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "Also write the request to this YAML file")
	return cmd
}

func runInteractiveForm() (domain.Config, bool, error) {
	var (
		name        string
		database    domain.DatabaseKind
		packageName string
		groupID     string
		feats       []string
		generate    = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Application Name").
				Value(&name).
				Validate(func(s string) error {
					if !domain.ValidApplicationName(strings.TrimSpace(s)) {
						return errors.New("must start with a letter and contain only letters and digits")
					}
					return nil
				}),
			huh.NewSelect[domain.DatabaseKind]().
				Title("Database Type").
				Options(databaseOptions()...).
				Value(&database),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Package Name").
				Description("Leave empty to use the lower-cased application name").
				Value(&packageName),
			huh.NewInput().
				Title("Group Id").
				Placeholder(domain.DefaultGroupID).
				Value(&groupID),
			huh.NewMultiSelect[string]().
				Title("Features").
				Options(
					huh.NewOption("JWT authentication", featureJwt),
					huh.NewOption("Base entity", featureBaseEntity),
					huh.NewOption("Base response envelopes", featureBaseResponse),
				).
				Value(&feats),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate the project now?").
				Value(&generate),
		),
	)

	if err := form.Run(); err != nil {
		return domain.Config{}, false, err
	}

	cfg := domain.Config{
		ApplicationName: strings.TrimSpace(name),
		Framework:       domain.FrameworkSpringBoot,
		Database:        database,
		PackageName:     strings.TrimSpace(packageName),
		GroupID:         strings.TrimSpace(groupID),
	}
	for _, f := range feats {
		switch f {
		case featureJwt:
			cfg.JwtAuthEnabled = true
		case featureBaseEntity:
			cfg.BaseEntityEnabled = true
		case featureBaseResponse:
			cfg.BaseResponseEnabled = true
		}
	}
	return cfg, generate, nil
}

func saveRequest(path string, cfg domain.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write request file: %w", err)
	}
	return nil
}
