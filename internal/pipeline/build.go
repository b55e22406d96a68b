package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/corpustools/freqpipe/internal/freqdict"
	"github.com/corpustools/freqpipe/internal/store"
	"github.com/corpustools/freqpipe/pkg/logger"
	"github.com/corpustools/freqpipe/pkg/metrics"
)

// MergeFromStore builds a merged frequency file for one language from the
// most recent count table of every source in the store. The build is recorded
// as a run, so a partial or failed merge is visible after the fact. m may be
// nil.
func MergeFromStore(ctx context.Context, st *store.Store, language, output string, opts freqdict.MergeOptions, m *metrics.Metrics) error {
	log := logger.FromContext(ctx).With("component", "pipeline", "language", language)

	ids, err := st.LatestTableIDs(ctx, language)
	if err != nil {
		return err
	}
	runID, err := st.BeginRun(ctx, language, len(ids))
	if err != nil {
		return err
	}
	ctx = logger.WithRun(ctx, fmt.Sprintf("run-%d", runID))
	log = logger.FromContext(ctx).With("component", "pipeline", "language", language)

	merged, err := mergeStoredTables(ctx, st, ids, opts, m)
	if err != nil {
		if finishErr := st.FinishRun(ctx, runID, "failed", 0); finishErr != nil {
			log.Error("failed to record failed run", "run_id", runID, "error", finishErr)
		}
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating frequency file %s: %w", output, err)
	}
	defer out.Close()
	if err := freqdict.Write(out, merged); err != nil {
		if finishErr := st.FinishRun(ctx, runID, "failed", 0); finishErr != nil {
			log.Error("failed to record failed run", "run_id", runID, "error", finishErr)
		}
		return err
	}

	if err := st.FinishRun(ctx, runID, "succeeded", len(merged)); err != nil {
		return err
	}
	log.Info("stored sources merged",
		"run_id", runID,
		"sources", len(ids),
		"vocabulary", len(merged),
		"output", output,
	)
	return nil
}

func mergeStoredTables(ctx context.Context, st *store.Store, ids []int64, opts freqdict.MergeOptions, m *metrics.Metrics) (freqdict.Mapping, error) {
	dicts := make([]freqdict.Mapping, 0, len(ids))
	for _, id := range ids {
		dict, err := st.LoadFrequencies(ctx, id)
		if err != nil {
			return nil, err
		}
		dicts = append(dicts, dict)
	}
	return mergeObserved(dicts, opts, m)
}
