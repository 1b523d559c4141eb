package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/robotstore/robot-store/backend/go-services/internal/errorlog"
	"github.com/robotstore/robot-store/backend/go-services/pkg/logger"
	"github.com/robotstore/robot-store/backend/go-services/pkg/metrics"
)

// ErrorRecorder stores a failed request.
type ErrorRecorder interface {
	Record(ctx context.Context, ip, url string, status int) error
}

// ErrorLogger records every response with status in [400,600). Writes run in
// the background once the handler chain has returned, so the client never
// waits on the store. Wait drains the writes still in flight.
type ErrorLogger struct {
	rec     ErrorRecorder
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewErrorLogger(rec ErrorRecorder, timeout time.Duration) *ErrorLogger {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ErrorLogger{rec: rec, timeout: timeout}
}

// Handler returns the middleware. Handlers never call the recorder directly.
func (l *ErrorLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if !errorlog.IsError(status) {
			return
		}
		ip := c.ClientIP()
		url := c.Request.URL.RequestURI()
		// the client may already be gone; the entry is written regardless
		ctx := context.WithoutCancel(c.Request.Context())

		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.write(ctx, ip, url, status)
		}()
	}
}

func (l *ErrorLogger) write(parent context.Context, ip, url string, status int) {
	ctx, cancel := context.WithTimeout(parent, l.timeout)
	defer cancel()

	if err := l.rec.Record(ctx, ip, url, status); err != nil {
		metrics.ErrorLogWrites.WithLabelValues("failed").Inc()
		logger.Warnf("error not logged (status=%d url=%s): %v", status, url, err)
		return
	}
	metrics.ErrorLogWrites.WithLabelValues("ok").Inc()
	logger.Debugf("error logged in database (status=%d url=%s)", status, url)
}

// Wait blocks until every pending write has finished or timed out.
func (l *ErrorLogger) Wait() {
	l.wg.Wait()
}
