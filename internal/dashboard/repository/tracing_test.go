package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/disease-surveillance/internal/dashboard/domain"
)

type brokenAnimals struct {
	domain.CountStore
}

func (brokenAnimals) CountAnimals(context.Context) (int64, error) {
	return 0, errors.New("boom")
}

func TestTracedCountStore(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics := NewQueryMetrics(reg)

	inner := NewInMemory()
	inner.AddUsers(domain.User{Username: "a", Role: domain.RoleAdmin, Active: true})
	store := NewTracedCountStore(brokenAnimals{inner}, metrics)

	n, err := store.CountUsers(ctx, domain.UserFilter{Active: domain.Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.CountAnimals(ctx)
	assert.EqualError(t, err, "boom")

	assert.Equal(t, 2, testutil.CollectAndCount(reg, "dashboard_store_query_duration_seconds"))
}

func TestTracedCountStoreWithoutMetrics(t *testing.T) {
	store := NewTracedCountStore(NewInMemory(), nil)

	rows, err := store.CountFarmsByType(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}
