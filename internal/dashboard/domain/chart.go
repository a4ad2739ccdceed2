package domain

import "encoding/json"

// SeriesKind distinguishes categorical breakdowns from time series
type SeriesKind int

const (
	SeriesCategory SeriesKind = iota
	SeriesTime
)

// ChartType is the rendering hint sent to the dashboard
func (k SeriesKind) ChartType() string {
	if k == SeriesTime {
		return "line"
	}
	return "pie"
}

// ChartSeries is a labelled sequence of counts. Labels and Values are parallel.
type ChartSeries struct {
	Labels []string
	Values []int64
	Kind   SeriesKind
}

// NewChartSeries returns an empty series of the given kind with room for n points
func NewChartSeries(kind SeriesKind, n int) ChartSeries {
	return ChartSeries{
		Labels: make([]string, 0, n),
		Values: make([]int64, 0, n),
		Kind:   kind,
	}
}

// Add appends a point
func (c *ChartSeries) Add(label string, value int64) {
	c.Labels = append(c.Labels, label)
	c.Values = append(c.Values, value)
}

// Len returns the number of points
func (c ChartSeries) Len() int {
	return len(c.Labels)
}

type chartSeriesJSON struct {
	Labels    []string `json:"labels"`
	Data      []int64  `json:"data"`
	ChartType string   `json:"chartType"`
}

// MarshalJSON keeps empty series as [] rather than null
func (c ChartSeries) MarshalJSON() ([]byte, error) {
	out := chartSeriesJSON{
		Labels:    c.Labels,
		Data:      c.Values,
		ChartType: c.Kind.ChartType(),
	}
	if out.Labels == nil {
		out.Labels = []string{}
	}
	if out.Data == nil {
		out.Data = []int64{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON
func (c *ChartSeries) UnmarshalJSON(b []byte) error {
	var in chartSeriesJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	c.Labels = in.Labels
	c.Values = in.Data
	c.Kind = SeriesCategory
	if in.ChartType == "line" {
		c.Kind = SeriesTime
	}
	return nil
}
