package auth

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret []byte
	secretOne sync.Once
)

func secret() []byte {
	secretOne.Do(func() {
		s := os.Getenv("JWT_SECRET")
		if s == "" {
			log.Fatal("JWT_SECRET não definida")
		}
		jwtSecret = []byte(s)
	})
	return jwtSecret
}

// Claims carregadas no token: identidade, perfil e o mapa de permissões
// calculado no momento do login.
type Claims struct {
	UserID     uint            `json:"userId"`
	Nome       string          `json:"nome"`
	Perfil     string          `json:"perfil"`
	Permissoes map[string]bool `json:"permissoes"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 24h.
func GerarToken(userID uint, nome, perfil string, permissoes map[string]bool) (string, error) {
	claims := &Claims{
		UserID:     userID,
		Nome:       nome,
		Perfil:     perfil,
		Permissoes: permissoes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ValidarToken valida assinatura e expiração e retorna as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
