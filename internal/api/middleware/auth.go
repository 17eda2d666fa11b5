package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/authservice"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "невалидный токен авторизации"
)

type requesterContextKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TokenResolver разрешает auth-токен в пользователя
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*authservice.Requester, error)
}

// Auth middleware аутентификации по Bearer-токену
// Разрешенный пользователь кладется в контекст запроса
func Auth(resolver TokenResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				log.Warn("%s %s - Missing authorization token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			requester, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, authservice.ErrTokenInvalid) {
					log.Warn("%s %s - Invalid authorization token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				log.Error("%s %s - Failed to resolve token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), requesterContextKey{}, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequesterFromContext достает аутентифицированного пользователя из контекста
func RequesterFromContext(ctx context.Context) (*authservice.Requester, bool) {
	requester, ok := ctx.Value(requesterContextKey{}).(*authservice.Requester)
	return requester, ok
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}
