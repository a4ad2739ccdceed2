package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartSeriesJSON(t *testing.T) {
	t.Run("category series", func(t *testing.T) {
		series := NewChartSeries(SeriesCategory, 2)
		series.Add("Active", 3)
		series.Add("Inactive", 1)

		b, err := json.Marshal(series)
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":["Active","Inactive"],"data":[3,1],"chartType":"pie"}`, string(b))
	})

	t.Run("empty series encodes empty arrays", func(t *testing.T) {
		b, err := json.Marshal(ChartSeries{Kind: SeriesTime})
		require.NoError(t, err)
		assert.JSONEq(t, `{"labels":[],"data":[],"chartType":"line"}`, string(b))
	})

	t.Run("decodes the chart type", func(t *testing.T) {
		var series ChartSeries
		require.NoError(t, json.Unmarshal([]byte(`{"labels":["Jan 2024"],"data":[4],"chartType":"line"}`), &series))
		assert.Equal(t, SeriesTime, series.Kind)
		assert.Equal(t, 1, series.Len())
	})
}

func TestDistrictBreakdownKeepsInsertionOrder(t *testing.T) {
	var b DistrictBreakdown
	b.Set("Gampaha", 2)
	b.Set("Colombo", 5)
	b.Set("Kalutara", 1)
	b.Set("Gampaha", 3)

	assert.Equal(t, []string{"Gampaha", "Colombo", "Kalutara"}, b.Names())
	assert.Equal(t, int64(9), b.Total())

	out, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `{"Gampaha":3,"Colombo":5,"Kalutara":1}`, string(out))

	empty, err := json.Marshal(DistrictBreakdown{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestProvinceDistributionJSON(t *testing.T) {
	var b DistrictBreakdown
	b.Set("Colombo", 2)
	dist := ProvinceDistribution{
		Province:          ProvinceWestern,
		DisplayName:       ProvinceWestern.DisplayName(),
		UserCount:         3,
		DistrictBreakdown: b,
	}

	out, err := json.Marshal(dist)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"province":"WESTERN","displayName":"Western Province","userCount":3,"districtBreakdown":{"Colombo":2}}`,
		string(out))
}

func TestTimeRangeContains(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	open := TimeRange{Start: start, End: end}
	assert.True(t, open.Contains(start))
	assert.False(t, open.Contains(end))
	assert.False(t, open.Contains(start.Add(-time.Nanosecond)))

	closed := TimeRange{Start: start, End: end, InclusiveEnd: true}
	assert.True(t, closed.Contains(end))
	assert.False(t, closed.Contains(end.Add(time.Nanosecond)))
}

func TestUserSummaryOmitsCredentials(t *testing.T) {
	district := DistrictColombo
	u := User{ID: 7, Username: "kamal", Password: "hash", Role: RoleAdmin, Active: true, District: &district}

	out, err := json.Marshal(u.Summary())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "hash")
	assert.NotContains(t, string(out), "password")
	assert.Contains(t, string(out), `"district":"COLOMBO"`)

	assert.NotNil(t, Summaries(nil))
}
