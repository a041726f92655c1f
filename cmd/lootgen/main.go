package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arpgcore/internal/config"
	"github.com/udisondev/arpgcore/internal/data"
	"github.com/udisondev/arpgcore/internal/db"
	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/loot"
	"github.com/udisondev/arpgcore/internal/model"
)

const ConfigPath = "config/arpg.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARPG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	set, err := loadData(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	slog.Info("lootgen starting",
		"items", cfg.Generator.Items,
		"workers", cfg.Generator.Workers,
		"seed", seed)

	var forced *affix.Rarity
	if cfg.Generator.Rarity != "" {
		r, err := affix.ParseRarity(cfg.Generator.Rarity)
		if err != nil {
			return fmt.Errorf("generator rarity: %w", err)
		}
		forced = &r
	}

	var repo *db.ItemRepository
	if cfg.Database.Enabled {
		version, err := db.RunMigrations(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN(), int32(cfg.Generator.Workers))
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		repo = db.NewItemRepository(database.Pool())
		slog.Info("item archive enabled", "schemaVersion", version)
	}

	start := time.Now()
	workers := cfg.Generator.Workers
	summaries := make([]loot.Summary, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		count := cfg.Generator.Items / workers
		if w < cfg.Generator.Items%workers {
			count++
		}

		dropper := loot.NewDropper(
			set.Bases.All(),
			set.Affixes.Pool,
			rand.New(rand.NewPCG(seed, uint64(w))),
			loot.RarityTable{Magic: cfg.Generator.MagicRate, Rare: cfg.Generator.RareRate},
		)
		if forced != nil {
			dropper.ForceRarity(*forced)
		}

		g.Go(func() error {
			for range count {
				if err := gctx.Err(); err != nil {
					return err
				}
				item, err := dropper.Drop(cfg.Generator.MinLevel, cfg.Generator.MaxLevel)
				if err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
				summaries[w].Add(item)
				logItem(item)

				if repo != nil {
					if _, err := repo.Save(gctx, item); err != nil {
						return fmt.Errorf("worker %d: archiving item: %w", w, err)
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("generating items: %w", err)
	}

	var total loot.Summary
	for _, s := range summaries {
		total.Merge(s)
	}
	report(total, time.Since(start))

	if repo != nil {
		counts, err := repo.CountByRarity(ctx)
		if err != nil {
			return fmt.Errorf("counting archived items: %w", err)
		}
		for r, n := range counts {
			slog.Info("archived", "rarity", r, "items", n)
		}
	}

	return nil
}

func loadData(dir string) (*data.Set, error) {
	if dir == "" {
		return data.LoadDefaults()
	}
	return data.LoadDir(dir)
}

func logItem(item *model.Item) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	affixes := make([]string, 0, len(item.Affixes()))
	for _, a := range item.Affixes() {
		affixes = append(affixes, a.String())
	}
	slog.Debug("item dropped",
		"name", item.Name(),
		"level", item.Level(),
		"rarity", item.Rarity(),
		"affixes", affixes)
}

func report(s loot.Summary, elapsed time.Duration) {
	slog.Info("generation complete",
		"items", s.Items,
		"affixes", s.Affixes,
		"affixesPerItem", fmt.Sprintf("%.2f", s.AffixesPerItem()),
		"elapsed", elapsed)

	for r, n := range s.ByRarity {
		slog.Info("rarity", "rarity", affix.Rarity(r), "items", n)
	}
	for tier := affix.MinTier; tier <= affix.MaxTier; tier++ {
		slog.Info("tier", "tier", tier, "affixes", s.ByTier[tier])
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
