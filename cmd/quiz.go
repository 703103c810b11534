package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notqc/helpmate/internal/app"
	"github.com/notqc/helpmate/internal/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic>",
	Short: "Take an AI-generated quiz on a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		topic := strings.Join(args, " ")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")

		sc, st, err := openStudyContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Printf("Generating a %s quiz on %q...\n", difficulty, topic)
		session, err := sc.StartQuiz(ctx, topic, difficulty, count)
		if err != nil {
			return err
		}

		runQuizLoop(ctx, sc, session, bufio.NewScanner(os.Stdin))
		saveStudyContext(ctx, sc)
		return nil
	},
}

func init() {
	quizCmd.Flags().StringP("difficulty", "d", "medium", "Quiz difficulty (easy, medium, hard)")
	quizCmd.Flags().IntP("count", "n", 5, "Number of questions")
}

func runQuizLoop(ctx context.Context, sc *app.StudyContext, session *quiz.Session, in *bufio.Scanner) {
	printQuestion(session)

	for !session.Completed() {
		fmt.Print("> ")
		if !in.Scan() {
			fmt.Println("\nQuiz abandoned.")
			return
		}
		input := strings.TrimSpace(strings.ToLower(in.Text()))

		switch input {
		case "q", "quit":
			fmt.Println("Quiz abandoned.")
			return
		case "s", "skip":
			if err := sc.SkipQuestion(ctx); err != nil {
				fmt.Println(err)
				continue
			}
			if !session.Completed() {
				printQuestion(session)
			}
		case "b", "bookmark":
			on, err := sc.ToggleBookmark(ctx)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if on {
				fmt.Println("Question bookmarked.")
			} else {
				fmt.Println("Bookmark removed.")
			}
		case "n", "next":
			if err := sc.NextQuestion(ctx); err != nil {
				if errors.Is(err, quiz.ErrNotAnswered) {
					fmt.Println("Answer or skip the question first.")
				} else {
					fmt.Println(err)
				}
				continue
			}
			if !session.Completed() {
				printQuestion(session)
			}
		case "":
			continue
		default:
			choice, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("Enter a choice number, 's' to skip, 'b' to bookmark, 'n' for next, 'q' to quit.")
				continue
			}
			submitAnswer(ctx, sc, session, choice-1)
		}
	}

	printSummary(session, sc)
}

func submitAnswer(ctx context.Context, sc *app.StudyContext, session *quiz.Session, choice int) {
	question, _ := session.Current()
	result, err := sc.SubmitAnswer(ctx, choice)
	if err != nil {
		switch {
		case errors.Is(err, quiz.ErrChoiceOutOfRange):
			fmt.Printf("Pick a choice between 1 and %d.\n", len(question.Choices))
		case errors.Is(err, quiz.ErrAlreadyFinalized):
			fmt.Println("Already answered. Type 'n' for the next question.")
		default:
			fmt.Println(err)
		}
		return
	}

	if result.Correct {
		fmt.Println("Correct!")
	} else {
		fmt.Printf("Incorrect. The answer is %d. %s\n",
			result.CorrectIndex+1, question.Choices[result.CorrectIndex])
	}
	fmt.Println()
	fmt.Println("Explanation:", question.Explanation.Steps)

	fmt.Println("Searching for solutions...")
	videoURL, pageURL := sc.SolutionLinks(ctx, question.Text)
	if videoURL == "" {
		videoURL = question.Explanation.VideoURL
	}
	if videoURL != "" {
		fmt.Println("Video solution:", videoURL)
	}
	if pageURL != "" {
		fmt.Println("Textual solution:", pageURL)
	}

	fmt.Println("\nType 'n' for the next question or 'b' to bookmark this one.")
}

func printQuestion(session *quiz.Session) {
	question, idx := session.Current()
	fmt.Printf("\nQuestion %d of %d\n\n", idx+1, session.Len())
	fmt.Println(question.Text)
	fmt.Println()
	for i, choice := range question.Choices {
		fmt.Printf("  %d. %s\n", i+1, choice)
	}
	fmt.Println()
}

func printSummary(session *quiz.Session, sc *app.StudyContext) {
	fmt.Println("\nQuiz complete!")
	fmt.Printf("Score: %d/%d", session.Score(), session.Len())
	if acc, ok := session.Accuracy(); ok {
		fmt.Printf(" (%.0f%% of attempted)", acc*100)
	}
	fmt.Println()
	if skipped := session.Skipped(); skipped > 0 {
		fmt.Printf("Skipped: %d\n", skipped)
	}
	fmt.Printf("Current streak: %d days\n", sc.Streak().Current())
}
