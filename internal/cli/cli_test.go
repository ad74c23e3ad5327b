package cli

import (
	"alcyxob/football-training/internal/repository/memory"
	"alcyxob/football-training/internal/service"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() service.CatalogService {
	store := memory.NewStore()
	return service.NewCatalogService(store.Mesocycles(), store.WeeklyTrainings(), store.Plans(), nil, nil, time.Minute)
}

func TestRunCheck_EmptyStore(t *testing.T) {
	var out bytes.Buffer
	err := runCheck(context.Background(), &out, newService())

	assert.ErrorIs(t, err, errNotSeeded)
	assert.Contains(t, out.String(), "mesociclos: 0")
	assert.Contains(t, out.String(), "planificacion: none")
}

func TestRunSeedThenCheck(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, runSeed(ctx, &out, svc))
	assert.Contains(t, out.String(), "Data initialized successfully")
	assert.Contains(t, out.String(), "state: completed")

	out.Reset()
	require.NoError(t, runSeed(ctx, &out, svc))
	assert.Contains(t, out.String(), "Data already exists, skipping initialization")
	assert.Contains(t, out.String(), "state: skipped")

	out.Reset()
	require.NoError(t, runCheck(ctx, &out, svc))
	assert.Contains(t, out.String(), "mesociclos: 5")
	assert.Contains(t, out.String(), "1. Adaptación y Familiarización (Mes 1, 4 semanas): 1 semana(s) con sesiones")
	assert.Contains(t, out.String(), "sesiones_semanales: 1 (3 sesiones)")
	assert.Contains(t, out.String(), "planificacion: Entrenamiento Fútbol 7 - Benjamines (5 meses, 3 sesiones/semana, 90 min)")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["seed"])
	assert.True(t, names["check"])

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, ".", flag.DefValue)
}

func TestSeedCommand_WithMemoryDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("METRICS_ENABLED", "false")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed", "--config", t.TempDir()})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Data initialized successfully")
}
