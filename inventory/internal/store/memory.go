package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/juju/errors"
	"github.com/redis/go-redis/v9"
)

const (
	claimTTL  = 48 * time.Hour
	reportTTL = 7 * 24 * time.Hour
)

// DayReport is the shop's stock right after one nightly aging pass.
type DayReport struct {
	RunID  string      `json:"run_id"`
	Date   string      `json:"date"`
	AgedAt time.Time   `json:"aged_at"`
	Items  []StockItem `json:"items"`
}

// MemoryStore keeps the nightly ledger in redis: which dates have been aged
// and the report each run produced.
type MemoryStore struct {
	client *redis.Client
}

// NewMemoryStore creates a redis client for the ledger.
func NewMemoryStore(addr string, password string, db int) *MemoryStore {
	return &MemoryStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping verifies connectivity and credentials.
func (m *MemoryStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

// Close releases the redis connection pool.
func (m *MemoryStore) Close() error {
	return m.client.Close()
}

// TryMarkDayAged claims a date using SETNX semantics. It returns false when
// the date was already claimed.
func (m *MemoryStore) TryMarkDayAged(ctx context.Context, date string) (bool, error) {
	ok, err := m.client.SetNX(ctx, date+":aged", time.Now().UTC().Format(time.RFC3339), claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim date %s: %w", date, err)
	}
	return ok, nil
}

// ReleaseDay drops a claim so the date can be aged again.
func (m *MemoryStore) ReleaseDay(ctx context.Context, date string) error {
	if err := m.client.Del(ctx, date+":aged").Err(); err != nil {
		return fmt.Errorf("failed to release date %s: %w", date, err)
	}
	return nil
}

// SaveDayReport caches a report with a bounded ttl.
func (m *MemoryStore) SaveDayReport(ctx context.Context, report DayReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	// Key: date:report
	return m.client.Set(ctx, report.Date+":report", data, reportTTL).Err()
}

// GetDayReport loads the cached report for a date.
func (m *MemoryStore) GetDayReport(ctx context.Context, date string) (*DayReport, error) {
	val, err := m.client.Get(ctx, date+":report").Result()
	if err == redis.Nil {
		return nil, errors.NotFoundf("report for %s", date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report for %s: %w", date, err)
	}
	var report DayReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report for %s: %w", date, err)
	}
	return &report, nil
}
