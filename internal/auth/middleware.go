package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID ctxKey = "usuarioID"
	CtxNome   ctxKey = "usuarioNome"
	CtxPerfil ctxKey = "usuarioPerfil"
	CtxClaims ctxKey = "usuarioClaims"
)

// MiddlewareAutenticacao exige bearer token válido e anexa as claims ao
// contexto da requisição.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxNome, claims.Nome)
		ctx = context.WithValue(ctx, CtxPerfil, claims.Perfil)
		ctx = context.WithValue(ctx, CtxClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermissao gera um middleware que bloqueia com 403 quem não tem a
// permissão da área. Deve ser aplicado depois de MiddlewareAutenticacao.
func RequirePermissao(perm Permissao) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(CtxClaims).(*Claims)
			if !ok || !TemPermissao(claims, perm) {
				http.Error(w, "Acesso negado", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoot restringe a rota ao perfil root.
func RequireRoot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perfil, _ := r.Context().Value(CtxPerfil).(string)
		if perfil != PerfilRoot {
			http.Error(w, "Acesso negado (somente root)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
