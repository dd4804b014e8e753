package usuario

import (
	"time"

	"gorm.io/gorm"
)

type Usuario struct {
	gorm.Model
	Nome                  string          `gorm:"size:180;not null" json:"nome"`
	Email                 string          `gorm:"size:180;unique;not null" json:"email"`
	Senha                 string          `json:"-"`
	Perfil                string          `gorm:"size:20;not null;default:vendedor" json:"perfil"`
	Permissoes            map[string]bool `gorm:"serializer:json" json:"permissoes"`
	PrecisaRedefinirSenha bool            `json:"-"`
	TokenRecuperacao      string          `gorm:"size:40" json:"-"`
	TokenExpiraEm         *time.Time      `json:"-"`
}
