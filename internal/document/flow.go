package document

import (
	"context"
	"time"

	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
)

// Measurer reports the rendered height of continuously flowing content
// in pixels. The height may change between calls while async content
// such as images finishes loading.
type Measurer interface {
	MeasureHeight(ctx context.Context) (int, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(ctx context.Context) (int, error)

func (f MeasurerFunc) MeasureHeight(ctx context.Context) (int, error) { return f(ctx) }

// ComputeBreaks determines the continuous-flow page-break offsets:
// one break at every whole multiple of pageHeight below the content
// height. The content is measured, allowed to settle for the given
// delay, and measured again; the second measurement is authoritative.
func ComputeBreaks(ctx context.Context, m Measurer, pageHeight int, settle time.Duration) ([]int, error) {
	if pageHeight <= 0 {
		return nil, apperrors.NewValidationError("page height must be positive")
	}

	if _, err := m.MeasureHeight(ctx); err != nil {
		return nil, err
	}

	if settle > 0 {
		timer := time.NewTimer(settle)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	height, err := m.MeasureHeight(ctx)
	if err != nil {
		return nil, err
	}

	var breaks []int
	for offset := pageHeight; offset < height; offset += pageHeight {
		breaks = append(breaks, offset)
	}
	return breaks, nil
}

// PageCount returns how many pages a content height occupies.
func PageCount(height, pageHeight int) int {
	if height <= 0 || pageHeight <= 0 {
		return 0
	}
	return (height + pageHeight - 1) / pageHeight
}
