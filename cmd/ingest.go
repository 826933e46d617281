package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/ingest"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load the Jeopardy CSV dump into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		maxValue, _ := cmd.Flags().GetInt("max-value")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		config.InitLogger(cfg.LogLevel)

		dsn := cfg.DatabaseDSN
		if d, _ := cmd.Flags().GetString("dsn"); d != "" {
			dsn = d
		}

		f, err := os.Open(csvPath)
		if err != nil {
			return fmt.Errorf("CSV file not found at %s: %w", csvPath, err)
		}
		defer f.Close()

		if err := config.Connect(cmd.Context(), dsn); err != nil {
			return fmt.Errorf("failed to connect to DB: %w", err)
		}

		stats, err := ingest.New(trivia.NewRepository(config.DB)).Run(cmd.Context(), f, ingest.Options{
			MaxValue:  maxValue,
			BatchSize: batchSize,
		})
		if err != nil {
			return fmt.Errorf("data ingestion failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Total records loaded: %d\n", stats.Read)
		fmt.Fprintf(cmd.OutOrStdout(), "Records with values up to $%d: %d\n", maxValue, stats.Kept)
		fmt.Fprintf(cmd.OutOrStdout(), "Inserted: %d (table now holds %d)\n", stats.Inserted, stats.Total)
		return nil
	},
}

func init() {
	ingestCmd.Flags().String("csv", "data/JEOPARDY_CSV.csv", "Path to the Jeopardy CSV file")
	ingestCmd.Flags().Int("max-value", ingest.DefaultMaxValue, "Highest clue value to keep")
	ingestCmd.Flags().Int("batch-size", ingest.DefaultBatchSize, "Rows per INSERT batch")
	ingestCmd.Flags().String("dsn", "", "Database DSN (overrides DATABASE_DSN / DATABASE_URL)")
}
