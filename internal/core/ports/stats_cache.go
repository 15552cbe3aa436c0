package ports

import "context"

// PostStats are the dashboard aggregates computed on every listing. They are
// cheap to serve stale, so the service caches them briefly.
type PostStats struct {
	TotalPosts          int64
	LastMonthPostsCount int64
}

// StatsCache is a short-TTL cache for dashboard aggregates. A miss returns
// ok=false with a nil error; errors are reserved for backend failures.
type StatsCache interface {
	GetPostStats(ctx context.Context) (PostStats, bool, error)
	SetPostStats(ctx context.Context, stats PostStats) error
}
