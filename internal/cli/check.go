package cli

import (
	"alcyxob/football-training/internal/service"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// errNotSeeded is returned by check when the store lacks mesocycles or a plan.
var errNotSeeded = errors.New("catalog is not seeded")

func checkCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print what the document store holds (no writes)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(*configPath)
			if err != nil {
				return err
			}
			defer a.Close()
			return runCheck(cmd.Context(), cmd.OutOrStdout(), a.CatalogService)
		},
	}
}

func runCheck(ctx context.Context, out io.Writer, svc service.CatalogService) error {
	mesocycles, err := svc.ListMesocycles(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "mesociclos: %d\n", len(mesocycles))

	weeks, sessions := 0, 0
	for _, m := range mesocycles {
		weekly, err := svc.ListWeeklyTraining(ctx, m.ID)
		if err != nil {
			return err
		}
		for _, w := range weekly {
			sessions += len(w.Sessions)
		}
		weeks += len(weekly)
		fmt.Fprintf(out, "  %d. %s (%s, %d semanas): %d semana(s) con sesiones\n", m.ID, m.Name, m.Month, m.Weeks, len(weekly))
	}
	fmt.Fprintf(out, "sesiones_semanales: %d (%d sesiones)\n", weeks, sessions)

	plan, err := svc.GetFullPlan(ctx)
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		fmt.Fprintln(out, "planificacion: none")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "planificacion: %s (%d meses, %d sesiones/semana, %d min)\n",
			plan.Title, plan.DurationMonths, plan.SessionsPerWeek, plan.SessionDuration)
	}

	if len(mesocycles) == 0 || plan == nil {
		return errNotSeeded
	}
	return nil
}
