package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quiz-coach/internal/app"
	"quiz-coach/internal/logger"
	"quiz-coach/internal/service"
)

// NewBatchCmd pre-generates questions for every configured batch topic.
func NewBatchCmd() *cobra.Command {
	var (
		count       int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate and store questions for the configured batch topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cmd.Flags().Changed("count") {
				cfg.Batch.Count = count
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Batch.Concurrency = concurrency
			}

			ctx := cmd.Context()
			storage, err := app.OpenStorage(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer storage.Close()

			pipeline, err := app.NewPipeline(ctx, cfg)
			if err != nil {
				return err
			}
			svc := service.NewBatchService(pipeline, storage.Questions, cfg.Batch, logger.Get())
			return runBatch(ctx, cmd.OutOrStdout(), svc)
		},
	}
	cmd.Flags().IntVar(&count, "count", 0, "questions per topic (overrides batch.count)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "model calls in flight (overrides batch.concurrency)")
	return cmd
}

func runBatch(ctx context.Context, w io.Writer, svc service.BatchService) error {
	summary, err := svc.GenerateNewQuestionsAndSave(ctx)
	if err != nil {
		logger.Get().Error("Batch run aborted", zap.Error(err))
		return err
	}
	_, err = fmt.Fprintf(w, "generated=%d skipped=%d failed=%d\n", summary.Generated, summary.Skipped, summary.Failed)
	return err
}
