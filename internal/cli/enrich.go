package cli

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/mavenly/guru/internal/enrich"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/observability"
	"github.com/mavenly/guru/internal/progress"
	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run the persona enrichment pipeline for a business profile",
	RunE:  runEnrich,
}

var (
	flagRecordID string
	flagLevel    string
)

func init() {
	enrichCmd.Flags().StringVar(&flagRecordID, "id", "", "Enrichment record id (a new one is generated when omitted)")
	enrichCmd.Flags().StringVar(&flagLevel, "level", "quick", "Enrichment level: quick, strategic, complete")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	cfg, log := setup()
	ctx := cmd.Context()

	level := enrich.Level(flagLevel)
	switch level {
	case enrich.LevelQuick, enrich.LevelStrategic, enrich.LevelComplete:
	default:
		return fmt.Errorf("invalid level %q: must be quick, strategic, or complete", flagLevel)
	}

	tp, err := observability.InitTracer(ctx, "guru", Version)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	if tp != nil {
		defer tp.Shutdown(ctx)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	recordID := flagRecordID
	if recordID == "" {
		recordID = ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	}
	if err := st.EnsureRecord(ctx, recordID); err != nil {
		return err
	}

	pipe := enrich.NewPipeline(
		llm.NewClient(),
		research.NewPerplexityClient(cfg.PerplexityAPIKey),
		research.NewYouTubeClient(cfg.YouTubeAPIKey),
		st, log)

	// Progress bar on stdout unless debug logging would interleave with it.
	if !flagVerbose {
		r := progress.NewBarRenderer(os.Stdout)
		defer r.Finish()
		pipe.OnProgress = r.Handle
	}

	res := pipe.Run(ctx, recordID, profileFromFlags(), level)

	fmt.Printf("\nEnrichment %s finished for record %s\n", res.JobID, recordID)
	fmt.Printf("  level:          %s\n", res.Level)
	fmt.Printf("  modules:        %d\n", len(res.Modules))
	fmt.Printf("  videos found:   %d\n", len(res.Videos))
	fmt.Printf("  pain points:    %d\n", len(res.Base.PainPoints))
	fmt.Printf("  goals:          %d\n", len(res.Base.Goals))
	return nil
}
