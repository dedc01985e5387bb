package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"swipedeck/app"
	"swipedeck/audio"
	"swipedeck/config"
	"swipedeck/metrics"
	"swipedeck/photo"
	"swipedeck/profile"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var (
		snapshotDir string
		showStats   bool
	)

	root := &cobra.Command{
		Use:          "swipedeck",
		Short:        "Swipe through profile cards in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, logFile := setupLogging(cfg.Debug)
			if logFile != nil {
				defer logFile.Close()
			}
			cfg.Seed = sessionSeed(cmd.Flags().Changed("seed"), cfg.Seed, time.Now())
			logger.Info("session seed", "seed", cfg.Seed)
			return run(cmd.Context(), cfg, snapshotDir, showStats, logger)
		},
	}

	f := root.Flags()
	f.Float64Var(&cfg.SwipeThreshold, "swipe-threshold", cfg.SwipeThreshold, "horizontal drag in pixels that commits a decision")
	f.Float64Var(&cfg.TapThreshold, "tap-threshold", cfg.TapThreshold, "movement in pixels below which a release is a tap")
	f.Float64Var(&cfg.LabelEpsilon, "label-epsilon", cfg.LabelEpsilon, "drag in pixels before the LIKE/NOPE stamp appears")
	f.DurationVar(&cfg.ExitDuration, "exit-duration", cfg.ExitDuration, "length of the exit animation")
	f.DurationVar(&cfg.ResetDuration, "reset-duration", cfg.ResetDuration, "length of the snap-back animation")
	f.DurationVar(&cfg.NavLockDuration, "nav-lock", cfg.NavLockDuration, "debounce between photo changes")
	f.Float64Var(&cfg.CellWidthPx, "cell-width", cfg.CellWidthPx, "pixel width of one terminal cell")
	f.Float64Var(&cfg.CellHeightPx, "cell-height", cfg.CellHeightPx, "pixel height of one terminal cell")
	f.Float64Var(&cfg.MatchProbability, "match-probability", cfg.MatchProbability, "chance that a like is reciprocated")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for simulated matches (default from the clock, set to replay a session)")
	f.StringVar(&cfg.DeckPath, "deck", "", "JSON deck file (default built-in profiles)")
	f.StringVar(&cfg.PhotoDir, "photos", "", "directory holding profile photos")
	f.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound cues")
	f.BoolVar(&cfg.Debug, "debug", false, "write debug logs to logs/swipedeck.log")
	f.StringVar(&snapshotDir, "snapshots", "snapshots", "directory for webp card snapshots")
	f.BoolVar(&showStats, "stats", false, "print session counters on exit")

	root.AddCommand(newCheckCmd())
	return root
}

// newCheckCmd validates a deck file without starting the UI
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <deck.json>",
		Short: "Validate a deck file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := profile.LoadDeck(args[0], nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d profiles\n", len(profiles))
			for _, p := range profiles {
				note := ""
				if err := p.Validate(); err != nil {
					note = "  (" + err.Error() + ")"
				}
				fmt.Fprintf(out, "  %-36s %-20s %d photos%s\n", p.ID, p.Name, p.ImageCount(), note)
			}
			return nil
		},
	}
}

// sessionSeed keeps an explicit --seed for replay, otherwise each session draws its own
func sessionSeed(explicit bool, seed uint64, now time.Time) uint64 {
	if explicit {
		return seed
	}
	return uint64(now.UnixNano())
}

func loadProfiles(cfg config.Config, logger *slog.Logger) ([]profile.Profile, error) {
	if cfg.DeckPath == "" {
		return profile.Builtin(), nil
	}
	profiles, err := profile.LoadDeck(cfg.DeckPath, logger)
	if err != nil {
		return nil, fmt.Errorf("load deck %s: %w", cfg.DeckPath, err)
	}
	return profiles, nil
}

func run(ctx context.Context, cfg config.Config, snapshotDir string, showStats bool, logger *slog.Logger) error {
	profiles, err := loadProfiles(cfg, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSWIPEDECK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	audioCfg := audio.LoadConfig()
	audioCfg.Enabled = audioCfg.Enabled && cfg.Sound
	sounds := audio.NewSoundManager(audioCfg, logger)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the deck works without sound
		logger.Warn("audio initialization failed", "error", err)
	}

	m := metrics.New()
	a, err := app.New(screen, app.Options{
		Config:      cfg,
		Profiles:    profiles,
		Photos:      photo.NewCache(cfg.PhotoDir, logger),
		Cues:        sounds,
		Metrics:     m,
		Logger:      logger,
		SnapshotDir: snapshotDir,
	})
	if err != nil {
		screen.Fini()
		sounds.Cleanup()
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := a.Run(ctx)
	sounds.Cleanup()
	screen.Fini()

	logger.Info("session ended", "liked", len(a.Queue().Liked()), "disliked", len(a.Queue().Disliked()), "matches", len(a.Queue().Matches()))
	if showStats {
		fmt.Print(m.Format())
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}
