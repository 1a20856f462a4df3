package cmd

import (
	"fmt"
	"os"

	"github.com/skilylabs/skily/internal/app"
	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/explain"
	"github.com/skilylabs/skily/internal/llm"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	sounds := audio.NewEngine(audio.BellSink{})
	profile := stats.NewStore(stats.Seed(), stats.WithEventRepo(eventRepo))
	sounds.SetEnabled(profile.Stats().SfxEnabled)

	opts := app.Options{
		Stats:     profile,
		EventRepo: eventRepo,
		Sounds:    sounds,
		Music:     audio.NewTrackPlayer(audio.SilentSink{}),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quizzes and the tutor will be unavailable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		opts.Explainer = explain.NewService(provider, explain.DefaultConfig())
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(opts)
}
