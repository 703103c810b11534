package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notqc/helpmate/internal/pdftext"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <test-result.pdf>",
	Short: "Analyze a test result PDF and track weak topics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		path := args[0]

		text, err := pdftext.ExtractFile(path)
		if err != nil {
			return fmt.Errorf("extract text: %w", err)
		}

		sc, st, err := openStudyContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println("Analyzing test result...")
		result, err := sc.IngestAnalysis(ctx, filepath.Base(path), text)
		if err != nil {
			return err
		}

		fmt.Println("\nAnalysis")
		fmt.Println("--------")
		fmt.Printf("Questions:  %s\n", result.Stats.TotalQuestions)
		fmt.Printf("Correct:    %s\n", result.Stats.CorrectAnswers)
		fmt.Printf("Incorrect:  %s\n", result.Stats.IncorrectAnswers)
		if result.Stats.AccuracyPercentage.Valid {
			fmt.Printf("Accuracy:   %s%%\n", result.Stats.AccuracyPercentage)
		} else {
			fmt.Printf("Accuracy:   %s\n", result.Stats.AccuracyPercentage)
		}

		if len(result.Questions) > 0 {
			fmt.Println("\nQuestion review")
			for i, q := range result.Questions {
				mark := "✗"
				if q.Correct {
					mark = "✓"
				}
				fmt.Printf("  %2d. %s [%s] %s\n", i+1, mark, q.Topic, q.Question)
				if !q.Correct && q.Explanation != "" {
					fmt.Printf("      %s\n", q.Explanation)
				}
			}
		}

		if len(result.WeakTopics) > 0 {
			fmt.Println("\nWeak topics:", strings.Join(result.WeakTopics, ", "))
			fmt.Println("Future quizzes will focus more on these.")
		}
		if result.Summary != "" {
			fmt.Println("\nSummary:", result.Summary)
		}

		saveStudyContext(ctx, sc)
		return nil
	},
}
