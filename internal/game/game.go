package game

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilegrid/internal/telemetry"
	"github.com/samdwyer/tilegrid/internal/tiledata"
	"github.com/samdwyer/tilegrid/internal/ui"
	"github.com/samdwyer/tilegrid/internal/world"
)

// Game holds a world and the collaborators that present it.
type Game struct {
	cfg   Config
	out   io.Writer
	world *world.World
	tiles *tiledata.Registry

	// newScreen opens the terminal for ModeView. Tests swap in a simulation screen.
	newScreen func() (*ui.Screen, error)
}

// New creates a game for cfg that prints to out.
func New(cfg Config, out io.Writer) (*Game, error) {
	w, err := world.NewWorld(cfg.Size)
	if err != nil {
		return nil, err
	}

	tiles, err := loadTiles(cfg.TilesFile)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:       cfg,
		out:       out,
		world:     w,
		tiles:     tiles,
		newScreen: ui.NewScreen,
	}, nil
}

func loadTiles(path string) (*tiledata.Registry, error) {
	if path == "" {
		return tiledata.LoadRegistry()
	}
	return tiledata.LoadRegistryFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Run generates the world and presents it according to the configured mode.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	span.SetAttributes(
		attribute.String("game.mode", g.cfg.Mode.String()),
		attribute.Int("world.size", g.cfg.Size),
		attribute.Int("tiles.defined", g.tiles.Count()),
	)

	if err := g.world.Generate(ctx); err != nil {
		return err
	}

	switch g.cfg.Mode {
	case ModePrint:
		if _, err := g.world.WriteTo(g.out); err != nil {
			return fmt.Errorf("failed to print world: %w", err)
		}
		return nil
	case ModeView:
		return g.view(ctx)
	default:
		return fmt.Errorf("unsupported mode %v", g.cfg.Mode)
	}
}

// view runs the terminal loop until the user quits or ctx is done.
func (g *Game) view(ctx context.Context) error {
	screen, err := g.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	defer screen.Close()

	// Closing the screen unblocks PollEvent when ctx is cancelled.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			screen.Close()
		case <-stop:
		}
	}()

	renderer := ui.NewRenderer(screen, g.tiles)
	cols, rows := g.world.Size, g.world.Size+2 // world, blank row, status row

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := renderer.Render(g.world, g.status(screen.Fits(cols, rows))); err != nil {
			return err
		}

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case nil:
			return ctx.Err()
		}
	}
}

// status returns the line shown under the world.
func (g *Game) status(fits bool) string {
	if !fits {
		return fmt.Sprintf("terminal too small, need %dx%d", g.world.Size, g.world.Size+2)
	}
	return fmt.Sprintf("%dx%d world - q to quit", g.world.Size, g.world.Size)
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
