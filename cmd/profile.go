package cmd

import (
	"context"
	"fmt"

	"github.com/notqc/helpmate/internal/app"
	"github.com/notqc/helpmate/internal/profile"
	"github.com/notqc/helpmate/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your study profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// The profile is read-only; no provider needed.
		sc := app.New(app.Deps{
			Events:    st.EventRepo(),
			Snapshots: st.SnapshotRepo(),
		})
		if err := sc.Load(ctx); err != nil {
			return fmt.Errorf("load study state: %w", err)
		}

		fmt.Print(profile.Render(sc.Profile()))
		return nil
	},
}
