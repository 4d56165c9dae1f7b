package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreaks_MultiplesOfPageHeight(t *testing.T) {
	m := MeasurerFunc(func(ctx context.Context) (int, error) { return 2500, nil })

	breaks, err := ComputeBreaks(context.Background(), m, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1000, 2000}, breaks)
}

func TestComputeBreaks_ExactMultipleHasNoTrailingBreak(t *testing.T) {
	m := MeasurerFunc(func(ctx context.Context) (int, error) { return 2000, nil })

	breaks, err := ComputeBreaks(context.Background(), m, 1000, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1000}, breaks)
}

func TestComputeBreaks_SecondMeasurementWins(t *testing.T) {
	heights := []int{1200, 3100}
	calls := 0
	m := MeasurerFunc(func(ctx context.Context) (int, error) {
		h := heights[calls]
		calls++
		return h, nil
	})

	breaks, err := ComputeBreaks(context.Background(), m, 1000, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{1000, 2000, 3000}, breaks)
}

func TestComputeBreaks_ContextCancelledDuringSettle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := MeasurerFunc(func(ctx context.Context) (int, error) { return 500, nil })

	_, err := ComputeBreaks(ctx, m, 1000, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComputeBreaks_MeasureError(t *testing.T) {
	m := MeasurerFunc(func(ctx context.Context) (int, error) { return 0, errors.New("not mounted") })

	_, err := ComputeBreaks(context.Background(), m, 1000, 0)
	assert.Error(t, err)
}

func TestComputeBreaks_InvalidPageHeight(t *testing.T) {
	m := MeasurerFunc(func(ctx context.Context) (int, error) { return 100, nil })
	_, err := ComputeBreaks(context.Background(), m, 0, 0)
	assert.Error(t, err)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(1000, 1000))
	assert.Equal(t, 2, PageCount(1001, 1000))
	// Slightly more than double the page height needs three pages
	assert.Equal(t, 3, PageCount(2050, 1000))
	assert.Equal(t, 0, PageCount(0, 1000))
}
