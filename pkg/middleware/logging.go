package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/leora-investor/investor-os-api/pkg/apiErrors"
	"github.com/leora-investor/investor-os-api/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra uma linha por requisição com o ator, a rota e os campos
// que o router e os handlers anexaram (snapshot_id, session_id, agent_id).
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx = log.WithRequestSlot(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}).Debug("→ Requisição recebida")

			next.ServeHTTP(lrw, r.WithContext(ctx))

			elapsed := time.Since(startTime)
			logger := log.L.WithFields(requestFields(ctx, r, lrw.statusCode, elapsed))
			message := fmt.Sprintf("%s %s %s em %s", statusSymbol(lrw.statusCode), r.Method, r.URL.Path, formatDuration(elapsed))

			switch {
			case lrw.statusCode >= http.StatusInternalServerError:
				logger.Error(message)
			case lrw.statusCode >= http.StatusBadRequest:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

// requestFields junta os campos fixos da requisição aos anexados durante o atendimento.
func requestFields(ctx context.Context, r *http.Request, status int, elapsed time.Duration) log.Fields {
	fields := log.RequestFields(ctx)
	fields["correlation_id"] = log.GetCorrelationID(ctx)
	fields["method"] = r.Method
	fields["path"] = r.URL.Path
	fields["status_code"] = status
	fields["duration_ms"] = elapsed.Milliseconds()
	fields["actor"] = actorOrAnonymous(ctx)
	return fields
}

func actorOrAnonymous(ctx context.Context) string {
	if actor := log.GetActor(ctx); actor != "" {
		return actor
	}
	return "anonymous"
}

func statusSymbol(status int) string {
	if status >= http.StatusBadRequest {
		return "✗"
	}
	return "✓"
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status code enviado
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic no erro interno padrão da API.
// O cliente nunca recebe o stack trace.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					ctx := r.Context()
					logger := log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(ctx),
						"actor":          actorOrAnonymous(ctx),
						"method":         r.Method,
						"path":           r.URL.Path,
						"error":          err,
					})
					logger.Error("❌ PANIC na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
					} else {
						logger.WithField("stack_trace", string(stack)).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
