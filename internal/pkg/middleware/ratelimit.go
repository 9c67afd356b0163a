package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"museum/internal/pkg/cache"
	"museum/internal/pkg/logger"
)

// RateLimiter limita o número de requisições por IP dentro da janela informada.
// O contador vive no Redis com TTL igual à janela.
func RateLimiter(client cache.Client, limit int, duration time.Duration, prefix string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + prefix + ":" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			if errors.Is(err, cache.ErrCacheMiss) {
				if err := client.Set(ctx, key, 1, duration); err != nil {
					log.Error("Falha ao iniciar contador de rate limit.", err)
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			} else if err != nil {
				log.Error("Falha ao ler contador de rate limit.", err)
				http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
				return
			}

			if count >= limit {
				log.Warn("Limite de requisições excedido.", map[string]interface{}{"ip": ip, "path": r.URL.Path, "count": count})
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				http.Error(w, "Muitas tentativas. Tente novamente mais tarde.", http.StatusTooManyRequests)
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Error("Falha ao incrementar contador de rate limit.", err)
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
