// This file implements a generic, batched loader that slices a row set into
// fixed-size batches and hands each one to the repository's bulk insert.
//
// Logging: on every successful flush, a concise progress line is emitted with
// running totals and instantaneous rows/sec since the previous flush.
package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"rawg2ttl/internal/metrics"
)

// LoadBatches inserts rows into table in batches of batchSize and returns the
// total number of rows the backend reported inserted, plus the first error
// encountered. The export is strictly sequential; batching exists to bound
// statement size, not for parallelism.
func LoadBatches(
	ctx context.Context,
	repo Repository,
	job, table string,
	columns []string,
	rows [][]any,
	batchSize int,
) (int64, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batchSize must be > 0")
	}

	var (
		total       int64
		batches     int64
		lastFlushTS = time.Now()
	)

	for start := 0; start < len(rows); start += batchSize {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		n, err := repo.CopyFrom(ctx, table, columns, rows[start:end])
		total += n
		if err != nil {
			log.Printf("export: %s batch failed after=%d total=%d err=%v", table, n, total, err)
			return total, err
		}

		batches++
		metrics.RecordBatches(job, 1)

		now := time.Now()
		sinceLast := now.Sub(lastFlushTS)
		rps := float64(0)
		if sinceLast > 0 {
			rps = float64(n) / sinceLast.Seconds()
		}
		log.Printf("export: %s batch #%d rps=%.0f inserted=%d total=%d", table, batches, rps, n, total)
		lastFlushTS = now
	}

	return total, nil
}
