package errorlog

import (
	"context"
	"time"
)

// Service builds entries for failed requests and stores them.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Record stores an entry for a response with the given status. Statuses
// outside [400,600) are ignored.
func (s *Service) Record(ctx context.Context, ip, url string, status int) error {
	if !IsError(status) {
		return nil
	}
	return s.repo.Insert(ctx, &Entry{
		Time:       s.now().UnixMilli(),
		IPAddress:  ip,
		URL:        url,
		StatusCode: status,
	})
}
