package cli

import (
	"alcyxob/football-training/internal/service"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func seedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the program dataset unless mesocycles already exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return runSeed(cmd.Context(), cmd.OutOrStdout(), a.CatalogService)
		},
	}
}

func runSeed(ctx context.Context, out io.Writer, svc service.CatalogService) error {
	seeded, err := svc.Seed(ctx)
	if err != nil {
		return err
	}
	if seeded {
		fmt.Fprintln(out, "Data initialized successfully")
	} else {
		fmt.Fprintln(out, "Data already exists, skipping initialization")
	}
	status := svc.SeedStatus()
	fmt.Fprintf(out, "state: %s\n", status.State)
	return nil
}
