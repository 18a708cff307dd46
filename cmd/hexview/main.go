// Command hexview loads a procedurally generated hex map into the chunked
// mesh core and sweeps a simulated camera across it, standing in for the
// renderer and controller collaborators.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexview/internal/atlas"
	"github.com/talgya/hexview/internal/config"
	"github.com/talgya/hexview/internal/hexgrid"
	"github.com/talgya/hexview/internal/mapgen"
	"github.com/talgya/hexview/internal/mesh"
	"github.com/talgya/hexview/internal/scene"
	"github.com/talgya/hexview/internal/view"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "path to YAML config (empty = defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// ── Map data ──────────────────────────────────────────────────────
	genCfg := mapgen.DefaultGenConfig(cfg.Map.Width, cfg.Map.Height)
	genCfg.Seed = cfg.Map.Seed
	tiles := mapgen.Generate(genCfg)

	grid := hexgrid.NewTileGrid(cfg.Map.Width, cfg.Map.Height)
	grid.BulkLoad(tiles, cfg.Map.Width, cfg.Map.Height)
	slog.Info("map loaded",
		"width", cfg.Map.Width,
		"height", cfg.Map.Height,
		"tiles", humanize.Comma(int64(grid.Len())),
	)

	// ── Texture atlas ─────────────────────────────────────────────────
	at := loadAtlas(cfg.Atlas)

	// ── Scene + view ──────────────────────────────────────────────────
	graph, err := scene.NewGraph(scene.AllCapabilities())
	if err != nil {
		slog.Error("rendering environment unsupported", "error", err)
		os.Exit(1)
	}

	v := view.New(view.Config{
		ChunkSize:        cfg.Mesh.ChunkSize,
		VisibilityRange:  cfg.Mesh.VisibilityRange,
		SingleMeshCutoff: cfg.Mesh.SingleMeshCutoff,
	}, grid, at, graph)

	v.OnLoaded(func() {
		slog.Info("map view ready")
	})
	v.OnTileSelected(func(t *hexgrid.Tile) {
		slog.Info("selected",
			"q", t.Coord.Q, "r", t.Coord.R,
			"type", hexgrid.TypeName(t.Type),
		)
	})

	if err := v.Load(context.Background()); err != nil {
		slog.Error("failed to load map view", "error", err)
		os.Exit(1)
	}
	if cm, ok := v.Mesh().(*mesh.ChunkedMesh); ok {
		slog.Info("using chunked mesh", "chunks", cm.NumChunks())
	} else {
		slog.Info("using single mesh")
	}

	// ── Frame loop ────────────────────────────────────────────────────
	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		close(stop)
	}()

	runSweep(v, grid, cfg, stop)

	v.Mesh().WaitIdle()
	fmt.Printf("Swept %s tiles across %d frames. Attached nodes at exit: %d\n",
		humanize.Comma(int64(grid.Len())), cfg.Demo.Frames, graph.Len())
}

// runSweep drives per-frame ticks, moving the camera diagonally across the
// map and probing picks along the way.
func runSweep(v *view.View, grid *hexgrid.TileGrid, cfg *config.Config, stop <-chan struct{}) {
	interval := time.Second / time.Duration(cfg.Demo.FrameRate)
	maxWorld := hexgrid.AxialToWorld(grid.Width()-1, grid.Height()-1)

	pose := mesh.CameraPose{}
	for frame := 0; frame < cfg.Demo.Frames; frame++ {
		select {
		case <-stop:
			return
		default:
		}

		start := time.Now()

		progress := float64(frame) / float64(cfg.Demo.Frames)
		pose.Position.X = progress * maxWorld.X * cfg.Demo.SweepSpeed
		pose.Position.Y = progress * maxWorld.Y

		v.Tick(pose)

		// Probe the tile under the camera every second of sweep.
		if frame%cfg.Demo.FrameRate == 0 {
			if tile, ok := v.Pick(pose.Position.X, pose.Position.Y); ok {
				v.Select(tile)
			} else {
				slog.Debug("camera over empty space",
					"x", pose.Position.X, "y", pose.Position.Y)
			}
		}

		if elapsed := time.Since(start); elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
}

// loadAtlas reads the configured tileset from the asset database, falling
// back to the built-in atlas when no database is configured or readable.
func loadAtlas(cfg config.AtlasConfig) *atlas.Atlas {
	if cfg.Path == "" {
		return atlas.Builtin()
	}

	store, err := atlas.OpenStore(cfg.Path)
	if err != nil {
		slog.Warn("tileset db unavailable, using builtin atlas", "error", err)
		return atlas.Builtin()
	}
	defer store.Close()

	a, err := store.LoadAtlas(cfg.Tileset)
	if err != nil {
		slog.Warn("tileset not found, using builtin atlas",
			"tileset", cfg.Tileset, "error", err)
		return atlas.Builtin()
	}

	slog.Info("tileset loaded", "tileset", cfg.Tileset, "regions", a.Len())
	return a
}
