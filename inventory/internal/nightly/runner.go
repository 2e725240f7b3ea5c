// Package nightly ages the shop's stored stock once per day.
package nightly

import (
	"context"
	"time"

	"shelf_life/inventory/internal/logic"
	"shelf_life/inventory/internal/store"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/juju/loggo"
)

//go:generate mockgen -destination=mocks_test.go -package=nightly . ItemRepository,Ledger,ReportPublisher

// DateLayout keys the ledger; one aging pass per calendar date.
const DateLayout = "2006-01-02"

var logger = loggo.GetLogger("inventory.nightly")

// ItemRepository ages the stored stock atomically: age is applied between a
// locked read and the write-back.
type ItemRepository interface {
	AgeStock(ctx context.Context, age func(items []logic.Item)) ([]store.StockItem, error)
}

// Ledger remembers which dates have been aged.
type Ledger interface {
	TryMarkDayAged(ctx context.Context, date string) (bool, error)
	ReleaseDay(ctx context.Context, date string) error
	SaveDayReport(ctx context.Context, report store.DayReport) error
}

type ReportPublisher interface {
	PublishDayReport(report store.DayReport) error
}

type Runner struct {
	items     ItemRepository
	ledger    Ledger
	publisher ReportPublisher
	now       func() time.Time
}

func NewRunner(items ItemRepository, ledger Ledger, publisher ReportPublisher) *Runner {
	return &Runner{
		items:     items,
		ledger:    ledger,
		publisher: publisher,
		now:       time.Now,
	}
}

// RunOnce ages every stored item by one day for the given date, keyed by
// its UTC calendar day. Each date is aged at most once unless force is set;
// a second unforced run returns an AlreadyExists error and changes nothing.
func (r *Runner) RunOnce(ctx context.Context, date time.Time, force bool) (*store.DayReport, error) {
	key := date.UTC().Format(DateLayout)

	claimed, err := r.ledger.TryMarkDayAged(ctx, key)
	if err != nil {
		return nil, err
	}
	if !claimed && !force {
		return nil, errors.AlreadyExistsf("aging for %s", key)
	}

	stock, err := r.items.AgeStock(ctx, logic.AdvanceOneDay)
	if err != nil {
		r.release(ctx, key, claimed)
		return nil, err
	}

	report := store.DayReport{
		RunID:  uuid.NewString(),
		Date:   key,
		AgedAt: r.now().UTC(),
		Items:  stock,
	}
	logger.Infof("aged stock date=%s run_id=%s items=%d forced=%t", key, report.RunID, len(stock), force)

	if err := r.ledger.SaveDayReport(ctx, report); err != nil {
		logger.Warningf("failed to cache report date=%s err=%v", key, err)
	}
	if err := r.publisher.PublishDayReport(report); err != nil {
		logger.Warningf("failed to publish report date=%s err=%v", key, err)
	}
	return &report, nil
}

// Start runs an aging pass for the current date on every tick until ctx is
// cancelled.
func (r *Runner) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Infof("nightly aging active interval=%s", interval)
	for {
		select {
		case <-ctx.Done():
			logger.Infof("nightly aging stopped")
			return
		case <-ticker.C:
			r.runScheduled(ctx)
		}
	}
}

func (r *Runner) runScheduled(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	_, err := r.RunOnce(runCtx, r.now(), false)
	switch {
	case errors.Is(err, errors.AlreadyExists):
		logger.Debugf("skipping scheduled run: %v", err)
	case err != nil:
		logger.Errorf("scheduled aging failed: %v", err)
	}
}

func (r *Runner) release(ctx context.Context, key string, claimed bool) {
	if !claimed {
		return
	}
	if err := r.ledger.ReleaseDay(ctx, key); err != nil {
		logger.Errorf("failed to release date=%s after failed run err=%v", key, err)
	}
}
