package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"flyweight-registry/pkg/logging/logging"
)

// Timeout cancels the request context after d and returns 504 if the handler
// has not written a response by then.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case p := <-panicked:
				// re-raise on the serving goroutine so Recoverer sees it
				panic(p)
			case <-ctx.Done():
				tw.mu.Lock()
				started := tw.wroteHeader
				if !started {
					tw.timedOut = true
					logging.L(ctx).Warn("request timeout", zap.Duration("timeout", d))
					writeError(w, http.StatusGatewayTimeout, "gateway_timeout")
				}
				tw.mu.Unlock()

				// a response already in flight is left to finish
				if started {
					select {
					case <-done:
					case p := <-panicked:
						panic(p)
					}
				}
			}
		})
	}
}

// timeoutWriter buffers the handler's headers in its own map and drops
// writes from a handler that outlived its deadline. The buffered headers
// reach the real writer only from the handler's own goroutine, before the
// timeout has fired.
type timeoutWriter struct {
	w http.ResponseWriter
	h http.Header

	mu          sync.Mutex
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.h
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.writeHeaderLocked(http.StatusOK)
	}
	return tw.w.Write(b)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	dst := tw.w.Header()
	for k, vv := range tw.h {
		dst[k] = append([]string(nil), vv...)
	}
	tw.wroteHeader = true
	tw.w.WriteHeader(code)
}
