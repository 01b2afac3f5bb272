package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anirbanax014/Interview-PrepBot-AI/internal/interview"
	"github.com/anirbanax014/Interview-PrepBot-AI/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show interview statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		overall, err := s.EventRepo().Overall(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if overall.Attempts == 0 {
			fmt.Println("No interviews recorded yet.")
			return nil
		}

		fmt.Println("Overall")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("Interviews:       %d\n", overall.Attempts)
		fmt.Printf("Questions:        %d answered / %d asked\n",
			overall.QuestionsAnswered, overall.QuestionsAsked)
		fmt.Printf("Avg completion:   %.0f%%\n", overall.AvgCompletion)
		fmt.Printf("Time in answers:  %s\n", interview.FormatClock(overall.TotalTimeSecs))

		categories, err := s.EventRepo().StatsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("query category stats: %w", err)
		}

		if len(categories) > 0 {
			fmt.Println()
			fmt.Println("By Category")
			fmt.Println(strings.Repeat("─", 64))
			fmt.Printf("%-18s  %8s  %10s  %12s\n",
				"Category", "Attempts", "Answered", "Completion")
			fmt.Println(strings.Repeat("─", 64))
			for _, c := range categories {
				fmt.Printf("%-18s  %8d  %4d/%-5d  %11.0f%%\n",
					c.Category, c.Attempts, c.QuestionsAnswered, c.QuestionsAsked, c.AvgCompletion)
			}
		}

		recent, err := s.EventRepo().RecentInterviews(ctx, 10)
		if err != nil {
			return fmt.Errorf("query recent interviews: %w", err)
		}

		if len(recent) > 0 {
			fmt.Println()
			fmt.Println("Recent Interviews")
			fmt.Println(strings.Repeat("─", 64))
			for _, ev := range recent {
				fmt.Printf("%s  %-16s %-12s  %d/%d answered  %.0f%%\n",
					ev.CreatedAt.Local().Format("2006-01-02 15:04"),
					ev.Category, ev.Difficulty,
					ev.AnsweredCount, ev.NumQuestions, ev.CompletionPercent)
			}
		}

		return nil
	},
}
