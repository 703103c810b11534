package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/notqc/helpmate/internal/app"
	"github.com/notqc/helpmate/internal/llm"
	"github.com/notqc/helpmate/internal/lookup"
	"github.com/notqc/helpmate/internal/store"
	"github.com/spf13/cobra"
)

// openStudyContext opens the store, builds the provider and rehydrates
// a StudyContext. The caller must Close the returned store.
func openStudyContext(ctx context.Context, cmd *cobra.Command) (*app.StudyContext, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		st.Close()
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		return nil, nil, fmt.Errorf("configure a provider API key (e.g. GEMINI_API_KEY) to use AI features")
	}

	deps := app.Deps{
		Provider:  provider,
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
		Solutions: lookup.NewSolutionFinder(),
	}
	if key := lookup.YouTubeAPIKeyFromEnv(); key != "" {
		deps.Videos = lookup.NewVideoFinder(key)
	}

	sc := app.New(deps)
	if err := sc.Load(ctx); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load study state: %w", err)
	}
	return sc, st, nil
}

// saveStudyContext persists a snapshot, reporting rather than failing
// the command when it cannot.
func saveStudyContext(ctx context.Context, sc *app.StudyContext) {
	if err := sc.Save(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save progress:", err)
	}
}
