package query

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
	"github.com/tair/disease-surveillance/pkg/logger"
)

// GetTrendQuery represents the query for a monthly registration trend
type GetTrendQuery struct {
	Kind   domain.TrendKind
	Months int
}

// GetTrendHandler handles get trend query
type GetTrendHandler struct {
	store domain.CountStore
	clock domain.Clock
}

// NewGetTrendHandler creates a new get trend handler
func NewGetTrendHandler(store domain.CountStore, clock domain.Clock) *GetTrendHandler {
	return &GetTrendHandler{store: store, clock: clock}
}

// MonthBuckets returns the calendar-month ranges ending at now's month, oldest first.
// The last range is closed at now. months is clamped to MaxTrendMonths.
func MonthBuckets(now time.Time, months int) []domain.TimeRange {
	if months < 1 {
		return nil
	}
	if months > domain.MaxTrendMonths {
		months = domain.MaxTrendMonths
	}
	current := domain.MonthStart(now)
	buckets := make([]domain.TimeRange, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		if i == 0 {
			buckets = append(buckets, domain.TimeRange{Start: start, End: now, InclusiveEnd: true})
			continue
		}
		buckets = append(buckets, domain.TimeRange{Start: start, End: start.AddDate(0, 1, 0)})
	}
	return buckets
}

// Handle executes the get trend query
func (h *GetTrendHandler) Handle(ctx context.Context, q GetTrendQuery) (domain.ChartSeries, error) {
	if q.Months < 1 || q.Months > domain.MaxTrendMonths {
		return domain.ChartSeries{}, domain.NewValidationError("months", strconv.Itoa(q.Months),
			fmt.Sprintf("must be between 1 and %d", domain.MaxTrendMonths))
	}

	logger.Debug(ctx).
		Str("kind", q.Kind.String()).
		Int("months", q.Months).
		Msg("Fetching registration trend")

	buckets := MonthBuckets(h.clock.Now(), q.Months)
	series := domain.NewChartSeries(domain.SeriesTime, len(buckets))
	for _, bucket := range buckets {
		n, err := h.store.CountCreatedIn(ctx, q.Kind, bucket)
		if err != nil {
			return domain.ChartSeries{}, fmt.Errorf("failed to count %s registrations for %s: %w",
				q.Kind, bucket.Start.Format(domain.TrendLabelLayout), err)
		}
		series.Add(bucket.Start.Format(domain.TrendLabelLayout), n)
	}
	return series, nil
}
