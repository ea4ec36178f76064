package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nkraeva/task-tracker-api/internal/repo"
)

const pingTimeout = 5 * time.Second

// Monitor в фоне следит за доступностью хранилища и логирует переходы
// потеряно/восстановлено. Диагностическая страница делает собственную живую
// проверку, монитор ведет только журнал эксплуатации.
type Monitor struct {
	users    repo.UserRepository
	logger   *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	healthy bool

	wg   sync.WaitGroup
	stop chan struct{}
}

func New(users repo.UserRepository, logger *zap.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		users:    users,
		logger:   logger,
		interval: interval,
		healthy:  true,
		stop:     make(chan struct{}),
	}
}

func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Starting store monitor", zap.Duration("interval", m.interval))

	m.wg.Add(1)
	go m.run(ctx)
}

func (m *Monitor) Stop() {
	m.logger.Info("Stopping store monitor...")
	close(m.stop)
	m.wg.Wait()
	m.logger.Info("Store monitor stopped")
}

// Healthy возвращает результат последней проверки.
func (m *Monitor) Healthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.healthy
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *Monitor) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := m.users.Ping(pingCtx)

	m.mu.Lock()
	wasHealthy := m.healthy
	m.healthy = err == nil
	m.mu.Unlock()

	switch {
	case err != nil && wasHealthy:
		m.logger.Warn("store connection lost", zap.Error(err))
	case err == nil && !wasHealthy:
		m.logger.Info("store connection restored")
	}
}
