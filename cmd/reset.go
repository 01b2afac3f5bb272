package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe stored interview history",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes all interview history and LLM logs.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		for _, model := range []any{&store.AnswerEvent{}, &store.InterviewEvent{}, &store.LLMRequestEvent{}} {
			if err := s.DB().Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear table: %w", err)
			}
		}

		fmt.Println("Interview history cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion without prompting")
}
