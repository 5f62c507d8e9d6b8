// Package scheduler periodically re-evaluates active strategies and
// recomputes the ones whose time-based adjustment trigger has fired.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"debtpilot/internal/models"
	"debtpilot/internal/payoff"
	"debtpilot/internal/services"
)

// Result counts the outcome of one review pass.
type Result struct {
	Checked   int
	Refreshed int
	Failed    int
}

// Reviewer runs strategy reviews on a cron schedule.
type Reviewer struct {
	cron       *cron.Cron
	strategies services.StrategyServicer
	planner    services.PlannerServicer
	log        *zap.SugaredLogger
	baseCtx    context.Context
	now        func() time.Time
}

// New creates a Reviewer. Scheduled runs use baseCtx.
func New(baseCtx context.Context, strategies services.StrategyServicer, planner services.PlannerServicer, log *zap.SugaredLogger) *Reviewer {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Reviewer{
		cron:       cron.New(cron.WithSeconds()),
		strategies: strategies,
		planner:    planner,
		log:        log,
		baseCtx:    baseCtx,
		now:        time.Now,
	}
}

// Schedule registers the review job under a cron spec such as "@daily" or
// "0 0 3 * * *".
func (r *Reviewer) Schedule(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		r.RunOnce(r.baseCtx)
	})
	return err
}

// Start begins running scheduled reviews in the background.
func (r *Reviewer) Start() {
	r.log.Info("strategy reviewer started")
	r.cron.Start()
}

// Stop waits for a running review to finish and stops the schedule.
func (r *Reviewer) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info("strategy reviewer stopped")
}

// RunOnce reviews every active strategy and refreshes the stale ones. A
// failure on one strategy does not stop the pass.
func (r *Reviewer) RunOnce(ctx context.Context) Result {
	var result Result

	strategies, err := r.strategies.ListActiveStrategies()
	if err != nil {
		r.log.Errorw("failed to list active strategies", "error", err)
		return result
	}

	asOf := r.now()
	for _, strategy := range strategies {
		if ctx.Err() != nil {
			r.log.Warnw("strategy review interrupted", "error", ctx.Err(), "checked", result.Checked)
			break
		}
		result.Checked++
		if !Due(strategy, asOf) {
			continue
		}

		refreshed, err := r.planner.RefreshStrategy(ctx, strategy)
		if err != nil {
			result.Failed++
			r.log.Errorw("failed to refresh strategy",
				"error", err,
				"strategy_id", strategy.ID,
				"user_id", strategy.UserID,
			)
			continue
		}
		result.Refreshed++
		r.log.Infow("strategy refreshed",
			"strategy_id", strategy.ID,
			"new_strategy_id", refreshed.ID,
			"user_id", strategy.UserID,
		)
	}

	r.log.Infow("strategy review finished",
		"checked", result.Checked,
		"refreshed", result.Refreshed,
		"failed", result.Failed,
	)
	return result
}

// Due reports whether a strategy's time-based trigger has fired at asOf.
// Income and expense triggers need fresh figures from the user and are
// evaluated on request instead.
func Due(strategy models.DebtStrategy, asOf time.Time) bool {
	triggers := models.AdjustmentTriggers{TimeBasedDays: strategy.AdjustmentTriggers.Data().TimeBasedDays}
	var unchanged payoff.FinancialSnapshot
	return len(payoff.ShouldAdjust(triggers, unchanged, unchanged, services.ComputedAt(strategy), asOf)) > 0
}
