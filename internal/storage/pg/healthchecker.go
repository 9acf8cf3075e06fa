package pg

import "context"

// HealthChecker reports whether the summary database answers a ping.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	return hc.pool != nil && hc.pool.Ping(ctx) == nil
}
