package dashboard

import (
	"context"
	"encoding/json"
	"time"

	dashboarderrors "hradmin/internal/dashboard/errors"
	"hradmin/internal/shared/dateutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 5 * time.Minute

type Summary struct {
	Month             string          `json:"month"`
	Headcount         []StatusCount   `json:"headcount"`
	PayrollTotals     []CurrencyTotal `json:"payroll_totals"`
	EOBITotal         float64         `json:"eobi_total"`
	OPD               OPDTotals       `json:"opd"`
	PendingOnboarding int64           `json:"pending_onboarding"`
	GeneratedAt       time.Time       `json:"generated_at"`
}

type Service interface {
	Summary(ctx context.Context, month string) (Summary, error)
}

type service struct {
	repo   Repository
	cache  redis.Cmdable
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache redis.Cmdable, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, cache: cache, logger: l}
}

// Summary serves from Redis when possible. Cache errors fall through to the
// warehouse, and concurrent misses for the same month are collapsed into one
// aggregation run.
func (s *service) Summary(ctx context.Context, month string) (Summary, error) {
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}
	if _, _, err := dateutil.MonthBounds(month); err != nil {
		return Summary{}, dashboarderrors.ErrInvalidMonth
	}

	key := "dashboard:summary:" + month

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var cached Summary
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
			s.logger.Warn("cached summary unreadable", zap.String("key", key))
		} else if err != redis.Nil {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.aggregate(ctx, month, key)
	})
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func (s *service) aggregate(ctx context.Context, month, key string) (Summary, error) {
	headcount, err := s.repo.HeadcountByStatus(ctx)
	if err != nil {
		return Summary{}, err
	}
	payroll, err := s.repo.PayrollTotals(ctx, month)
	if err != nil {
		return Summary{}, err
	}
	eobiTotal, err := s.repo.EOBITotal(ctx, month)
	if err != nil {
		return Summary{}, err
	}
	opdTotals, err := s.repo.OPDTotals(ctx, month)
	if err != nil {
		return Summary{}, err
	}
	pending, err := s.repo.PendingOnboarding(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Month:             month,
		Headcount:         headcount,
		PayrollTotals:     payroll,
		EOBITotal:         eobiTotal,
		OPD:               opdTotals,
		PendingOnboarding: pending,
		GeneratedAt:       time.Now().UTC(),
	}

	if s.cache != nil {
		raw, err := json.Marshal(summary)
		if err == nil {
			if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
				s.logger.Warn("summary cache write failed", zap.Error(err))
			}
		}
	}
	return summary, nil
}
