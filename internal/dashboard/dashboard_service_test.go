package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepository struct {
	headcountFn func(ctx context.Context) ([]StatusCount, error)
	payrollFn   func(ctx context.Context, month string) ([]CurrencyTotal, error)
	eobiFn      func(ctx context.Context, month string) (float64, error)
	opdFn       func(ctx context.Context, month string) (OPDTotals, error)
	pendingFn   func(ctx context.Context) (int64, error)

	warehouseHits int
}

func (f *fakeDashboardRepository) HeadcountByStatus(ctx context.Context) ([]StatusCount, error) {
	f.warehouseHits++
	if f.headcountFn != nil {
		return f.headcountFn(ctx)
	}
	return []StatusCount{{Status: "Active", Count: 120}}, nil
}

func (f *fakeDashboardRepository) PayrollTotals(ctx context.Context, month string) ([]CurrencyTotal, error) {
	if f.payrollFn != nil {
		return f.payrollFn(ctx, month)
	}
	return []CurrencyTotal{{Currency: "PKR", Gross: 30_000_000, Net: 26_000_000}}, nil
}

func (f *fakeDashboardRepository) EOBITotal(ctx context.Context, month string) (float64, error) {
	if f.eobiFn != nil {
		return f.eobiFn(ctx, month)
	}
	return 266_400, nil
}

func (f *fakeDashboardRepository) OPDTotals(ctx context.Context, month string) (OPDTotals, error) {
	if f.opdFn != nil {
		return f.opdFn(ctx, month)
	}
	return OPDTotals{Contributed: 500_000, Claimed: 120_000}, nil
}

func (f *fakeDashboardRepository) PendingOnboarding(ctx context.Context) (int64, error) {
	if f.pendingFn != nil {
		return f.pendingFn(ctx)
	}
	return 3, nil
}

func TestSummaryRejectsMalformedMonth(t *testing.T) {
	svc := NewService(&fakeDashboardRepository{}, nil)

	_, err := svc.Summary(context.Background(), "2025/06")

	assert.Error(t, err)
}

func TestSummaryServesFromCache(t *testing.T) {
	cached := Summary{Month: "2025-06", EOBITotal: 999, GeneratedAt: time.Now().UTC()}
	raw, _ := json.Marshal(cached)

	db, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:summary:2025-06").SetVal(string(raw))

	repo := &fakeDashboardRepository{}
	svc := NewService(repo, db)

	res, err := svc.Summary(context.Background(), "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, float64(999), res.EOBITotal)
	assert.Zero(t, repo.warehouseHits, "cache hit must not touch the warehouse")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryCacheMissAggregatesAndStores(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:summary:2025-06").RedisNil()
	mock.Regexp().ExpectSet("dashboard:summary:2025-06", `.*`, cacheTTL).SetVal("OK")

	repo := &fakeDashboardRepository{}
	svc := NewService(repo, db)

	res, err := svc.Summary(context.Background(), "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, "2025-06", res.Month)
	assert.Equal(t, int64(3), res.PendingOnboarding)
	assert.Equal(t, 1, repo.warehouseHits)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryCacheErrorFallsThrough(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet("dashboard:summary:2025-06").SetErr(errors.New("redis down"))
	mock.Regexp().ExpectSet("dashboard:summary:2025-06", `.*`, cacheTTL).SetErr(errors.New("redis down"))

	repo := &fakeDashboardRepository{}
	svc := NewService(repo, db)

	res, err := svc.Summary(context.Background(), "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, int64(120), res.Headcount[0].Count)
}

func TestSummaryWarehouseErrorSurfaces(t *testing.T) {
	boom := errors.New("warehouse down")
	repo := &fakeDashboardRepository{
		headcountFn: func(ctx context.Context) ([]StatusCount, error) {
			return nil, boom
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.Summary(context.Background(), "2025-06")

	assert.ErrorIs(t, err, boom)
}
