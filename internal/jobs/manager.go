package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PendingExpirer cancels pending enrollments older than the given age.
type PendingExpirer interface {
	ExpirePendingOlderThan(ctx context.Context, ttl time.Duration) (int64, error)
}

// Manager schedules the background maintenance jobs.
type Manager struct {
	cron        *cron.Cron
	enrollments PendingExpirer
	pendingTTL  time.Duration
	expirySpec  string
	logger      zerolog.Logger
}

// NewManager creates a Manager. expirySpec is a six-field cron expression
// with seconds precision, e.g. "0 */10 * * * *".
func NewManager(enrollments PendingExpirer, pendingTTL time.Duration, expirySpec string, logger zerolog.Logger) *Manager {
	return &Manager{
		cron:        cron.New(cron.WithSeconds()),
		enrollments: enrollments,
		pendingTTL:  pendingTTL,
		expirySpec:  expirySpec,
		logger:      logger,
	}
}

// Start registers the jobs and starts the scheduler.
func (m *Manager) Start() error {
	if _, err := m.cron.AddFunc(m.expirySpec, m.runPendingExpiry); err != nil {
		return err
	}

	m.cron.Start()
	m.logger.Info().
		Str("expirySpec", m.expirySpec).
		Dur("pendingTTL", m.pendingTTL).
		Msg("Background jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info().Msg("Background jobs stopped")
}

// runPendingExpiry cancels manual applications that sat in PENDING longer
// than the configured TTL. Each run carries its own one-minute deadline.
func (m *Manager) runPendingExpiry() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	expired, err := m.enrollments.ExpirePendingOlderThan(ctx, m.pendingTTL)
	if err != nil {
		m.logger.Error().Err(err).Msg("Pending enrollment expiry failed")
		return
	}
	if expired > 0 {
		m.logger.Info().Int64("expired", expired).Msg("Expired stale pending enrollments")
	}
}
