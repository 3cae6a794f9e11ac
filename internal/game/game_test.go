package game

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tilegrid/internal/grid"
	"github.com/samdwyer/tilegrid/internal/ui"
	"github.com/samdwyer/tilegrid/internal/world"
)

func TestRunPrintsWorld(t *testing.T) {
	var out bytes.Buffer
	g, err := New(DefaultConfig(), &out)
	require.NoError(t, err)
	require.NoError(t, g.Run(context.Background()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, world.DefaultSize)

	border := strings.Repeat("2", world.DefaultSize)
	interior := "2" + strings.Repeat("1", world.DefaultSize-2) + "2"
	assert.Equal(t, border, lines[0])
	assert.Equal(t, border, lines[world.DefaultSize-1])
	for y := 1; y < world.DefaultSize-1; y++ {
		assert.Equal(t, interior, lines[y], "row %d", y)
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	_, err := New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewWithTilesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiles.json")
	data := `{"tiles":[{"id":1,"name":"Rock","glyph":"R","color":"#777777"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := DefaultConfig()
	cfg.TilesFile = path
	g, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "Rock", g.tiles.ByID(1).Name)

	cfg.TilesFile = filepath.Join(dir, "missing.json")
	_, err = New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunViewQuitsOnKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Mode = ModeView

	g, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	sim := tcell.NewSimulationScreen("UTF-8")
	g.newScreen = func() (*ui.Screen, error) {
		s, err := ui.NewScreenFrom(sim)
		if err != nil {
			return nil, err
		}
		sim.SetSize(20, 10)
		sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		return s, nil
	}

	require.NoError(t, g.Run(context.Background()))
}

func TestRunViewHonorsCancelledContext(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 3
	cfg.Mode = ModeView

	g, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	g.newScreen = func() (*ui.Screen, error) {
		return ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
}

func TestStatusReportsSmallTerminal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 10
	g, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "10x10 world - q to quit", g.status(true))
	assert.Equal(t, "terminal too small, need 10x12", g.status(false))
}

func TestRunViewStopsWhenCancelledWhileWaiting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 3
	cfg.Mode = ModeView

	g, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	opened := make(chan struct{})
	g.newScreen = func() (*ui.Screen, error) {
		defer close(opened)
		return ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()

	// No key is ever injected, so only cancellation can end the loop.
	<-opened
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("view did not return after cancel")
	}
}

func TestNewRejectsOversizedWorld(t *testing.T) {
	cfg, err := LoadConfig(envFunc(map[string]string{EnvSize: "4294967296"}))
	if err != nil {
		// int is 32 bits here, so the size never parses.
		return
	}

	_, err = New(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, grid.ErrTooLarge)
}
