package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/app"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/coach"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/llm"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
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
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The coach will be unavailable; interviews still run.")
	}
	// A nil provider degrades the coach to failure strings instead of
	// disabling the whole app.
	opts.Coach = coach.NewService(provider, llm.ConfigFromEnv().Retry)

	return app.Run(opts)
}
