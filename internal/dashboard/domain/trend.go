package domain

import (
	"fmt"
	"time"
)

// TrendKind selects the collection a registration trend is computed over
type TrendKind int

const (
	TrendUsers TrendKind = iota
	TrendFarms
	TrendDiseaseReports
)

// AllTrendKinds lists every trend kind
var AllTrendKinds = []TrendKind{TrendUsers, TrendFarms, TrendDiseaseReports}

// String returns the kind's name for logs and spans
func (k TrendKind) String() string {
	switch k {
	case TrendUsers:
		return "user"
	case TrendFarms:
		return "farm"
	case TrendDiseaseReports:
		return "disease-report"
	}
	panic(fmt.Sprintf("domain: unknown trend kind %d", int(k)))
}

// DefaultTrendMonths is the lookback used when the caller does not specify one
const DefaultTrendMonths = 6

// MaxTrendMonths bounds the lookback. Each month is one range query.
const MaxTrendMonths = 120

// TrendLabelLayout formats bucket labels, e.g. "Jun 2025"
const TrendLabelLayout = "Jan 2006"

// TimeRange is a creation-time window. Start is inclusive.
// End is exclusive unless InclusiveEnd is set.
type TimeRange struct {
	Start        time.Time
	End          time.Time
	InclusiveEnd bool
}

// Contains reports whether t falls inside r
func (r TimeRange) Contains(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	if r.InclusiveEnd {
		return !t.After(r.End)
	}
	return t.Before(r.End)
}

// MonthStart returns midnight on the first day of t's month, in t's location
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
