package server

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

var _ http.ResponseWriter = &codeWatcher{}

// codeWatcher is a http.ResponseWriter that captures the status code for logging.
type codeWatcher struct {
	code *int
	w    http.ResponseWriter
}

func (cw *codeWatcher) Header() http.Header {
	return cw.w.Header()
}

func (cw *codeWatcher) Write(b []byte) (int, error) {
	return cw.w.Write(b)
}

func (cw *codeWatcher) WriteHeader(statusCode int) {
	if cw.code == nil {
		cw.code = &statusCode
	}
	cw.w.WriteHeader(statusCode)
}

func (cw *codeWatcher) Code() int {
	if cw.code != nil {
		return *cw.code
	}
	return http.StatusOK
}

func remoteAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}

// requestLogger writes one access log line per request.
type requestLogger struct {
	next  http.Handler
	log   *zap.Logger
	clock clockwork.Clock
}

func newRequestLogger(log *zap.Logger, clock clockwork.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return &requestLogger{next: next, log: log, clock: clock}
	}
}

func (rl *requestLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := rl.clock.Now()
	path := r.URL.Path
	ww := &codeWatcher{w: w}
	rl.next.ServeHTTP(ww, r)

	fields := []zap.Field{
		zap.Int("status", ww.Code()),
		zap.String("method", r.Method),
		zap.String("remote", remoteAddr(r)),
		zap.String("path", path),
		zap.Duration("duration", rl.clock.Since(start)),
	}
	if target := Rewrite(path); target != path {
		fields = append(fields, zap.String("target", target))
	}
	rl.log.Info("access", fields...)
}
