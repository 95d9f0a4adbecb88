package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/ml"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAll_PreservesOrder(t *testing.T) {
	e := NewWithConfig(rules.MustDefault(), ml.Unavailable{}, Config{ParallelWorkers: 4})

	txns := make([]model.TransactionInput, 0, 100)
	for i := 0; i < 100; i++ {
		desc := fmt.Sprintf("MERCHANT %d", i)
		if i%3 == 0 {
			desc = "INTERMARCHE"
		}
		txns = append(txns, model.TransactionInput{Description: desc})
	}

	var done atomic.Int64
	results, err := e.ClassifyAll(context.Background(), txns, func() { done.Add(1) })
	require.NoError(t, err)
	require.Len(t, results, len(txns))
	assert.Equal(t, int64(len(txns)), done.Load())

	for i, r := range results {
		if i%3 == 0 {
			assert.Equal(t, "R076", r.RuleIDOrEmpty(), "index %d", i)
		} else {
			assert.True(t, r.IsUnknown(), "index %d", i)
		}
	}
}

func TestClassifyAll_Empty(t *testing.T) {
	e := New(rules.MustDefault(), nil)

	_, err := e.ClassifyAll(context.Background(), nil, nil)
	require.ErrorIs(t, err, common.ErrNoTransactions)
}

func TestClassifyAll_Cancelled(t *testing.T) {
	e := New(rules.MustDefault(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ClassifyAll(ctx, []model.TransactionInput{{Description: "PASS"}}, nil)
	require.ErrorIs(t, err, context.Canceled)
}
