package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with your study buddy",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		sc, st, err := openStudyContext(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println("Chat with your study buddy. Type 'exit' to leave.")

		in := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nyou> ")
			if !in.Scan() {
				break
			}
			message := strings.TrimSpace(in.Text())
			if message == "" {
				continue
			}
			if message == "exit" || message == "quit" {
				break
			}

			reply, err := sc.Chat(ctx, message)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			fmt.Println("\nbuddy>", reply)
		}

		saveStudyContext(ctx, sc)
		return nil
	},
}
