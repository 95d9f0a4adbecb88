package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
)

// ClassifyAll classifies transactions in parallel. Results are returned in
// input order. onDone, if set, is called once per finished transaction from
// the worker goroutines.
func (e *Engine) ClassifyAll(ctx context.Context, txns []model.TransactionInput, onDone func()) ([]model.ClassificationResult, error) {
	if len(txns) == 0 {
		return nil, common.ErrNoTransactions
	}

	workChan := make(chan int, len(txns))
	for i := range txns {
		workChan <- i
	}
	close(workChan)

	workers := min(e.workers, len(txns))
	results := make([]model.ClassificationResult, len(txns))

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				results[i] = e.Classify(ctx, txns[i])
				if onDone != nil {
					onDone()
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classification interrupted: %w", err)
	}

	e.logger.Debug("Batch classified", "transactions", len(txns), "workers", workers)
	return results, nil
}
