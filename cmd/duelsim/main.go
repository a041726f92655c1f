package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/arpgcore/internal/config"
	"github.com/udisondev/arpgcore/internal/data"
	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/game/arena"
	"github.com/udisondev/arpgcore/internal/game/combat"
	"github.com/udisondev/arpgcore/internal/game/loot"
	"github.com/udisondev/arpgcore/internal/game/stat"
	"github.com/udisondev/arpgcore/internal/model"
)

const ConfigPath = "config/arpg.yaml"

// Unarmed stats of both duelists before gear.
var baseStats = map[stat.Kind]float64{
	stat.MaxHealth:      250,
	stat.MaxMana:        50,
	stat.PhysicalDamage: 6,
	stat.CritChance:     5,
	stat.CritMultiplier: 150,
	stat.MoveSpeed:      100,
	stat.AttackSpeed:    100,
}

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

	var set *data.Set
	if cfg.DataDir != "" {
		set, err = data.LoadDir(cfg.DataDir)
	} else {
		set, err = data.LoadDefaults()
	}
	if err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	slog.Info("duelsim starting", "seed", seed, "itemLevel", cfg.Duel.ItemLevel)

	gearRng := rand.New(rand.NewPCG(seed, 1))
	dropper := loot.NewDropper(set.Bases.All(), set.Affixes.Pool, gearRng, loot.RarityTable{})

	red := model.NewCharacter("red", baseStats)
	blue := model.NewCharacter("blue", baseStats)
	blue.SetPosition(3, 0)
	for _, c := range []*model.Character{red, blue} {
		if err := outfit(c, set.Bases, dropper, gearRng, cfg.Duel.ItemLevel); err != nil {
			return fmt.Errorf("outfitting %s: %w", c.Name(), err)
		}
		slog.Info("duelist ready",
			"name", c.Name(),
			"health", c.MaxHealth(),
			"physical", c.Value(stat.PhysicalDamage),
			"armor", c.Value(stat.Armor),
			"fireResist", c.Value(stat.FireResist),
			"skills", c.Equipment().Skills())
	}

	calc := combat.NewCalculator(rand.New(rand.NewPCG(seed, 2)))
	observer := combat.ObserverFunc(func(h combat.Hit) {
		slog.Info("hit",
			"attacker", h.Attacker,
			"target", h.Target,
			"damage", fmt.Sprintf("%.1f", h.Damage),
			"crit", h.Snapshot.IsCrit(),
			"killed", h.Killed)
	})

	duel := arena.New(set.Skills.Registry, calc, observer, int32(cfg.Duel.TickMs))
	res := duel.Run(arena.NewFighter(red), arena.NewFighter(blue), cfg.Duel.MaxRounds)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	winner := "draw"
	if res.Winner != nil {
		winner = res.Winner.Name()
	}
	slog.Info("duel finished",
		"winner", winner,
		"rounds", res.Rounds,
		"hits", res.Hits,
		"redDamage", fmt.Sprintf("%.1f", res.Damage[0]),
		"blueDamage", fmt.Sprintf("%.1f", res.Damage[1]))

	return nil
}

// outfit equips one rare item in every slot that has a base.
func outfit(c *model.Character, bases *data.BaseData, dropper *loot.Dropper, rng *rand.Rand, level int) error {
	for slot := affix.Slot(0); slot < affix.SlotCount; slot++ {
		candidates := bases.ForSlot(slot)
		if len(candidates) == 0 {
			continue
		}
		item, err := dropper.DropBase(candidates[rng.IntN(len(candidates))], level, affix.RarityRare)
		if err != nil {
			return fmt.Errorf("dropping %s: %w", slot, err)
		}
		c.Equip(item)
		slog.Debug("equipped", "character", c.Name(), "item", item.String())
	}
	c.Revive()
	return nil
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
