package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/blueprint/config"
	"github.com/c360studio/blueprint/domain"
)

func newDomainsCmd() *cobra.Command {
	var detect string

	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List domain profiles or detect one from a description",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(slog.Default()).Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			catalogOpts := []domain.Option{domain.WithLogger(slog.Default())}
			if cfg.Catalog.OverlayDir != "" {
				catalogOpts = append(catalogOpts, domain.WithOverlayDir(cfg.Catalog.OverlayDir))
			}
			catalog, err := domain.New(catalogOpts...)
			if err != nil {
				return fmt.Errorf("loading domain catalog: %w", err)
			}

			if detect != "" {
				name := catalog.Resolve(detect)
				cmd.Println(name)
				return nil
			}

			for _, name := range catalog.List() {
				d, err := catalog.Load(name)
				if err != nil {
					return fmt.Errorf("loading domain %s: %w", name, err)
				}
				line := fmt.Sprintf("%-22s %s", name, d.DisplayName)
				if regs := d.RegulationNames(); len(regs) > 0 {
					line += " [" + strings.Join(regs, ", ") + "]"
				}
				cmd.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&detect, "detect", "", "Print the domain resolved from a description")

	return cmd
}
