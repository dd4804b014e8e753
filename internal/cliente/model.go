package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente é o cadastro de comprador. Criado manualmente ou como efeito
// colateral de uma venda com CPF/CNPJ informado; a união é pelo documento.
type Cliente struct {
	gorm.Model
	Nome         string     `gorm:"size:180;not null" json:"nome"`
	Documento    string     `gorm:"size:18;index" json:"documento"`
	Telefone     string     `gorm:"size:20" json:"telefone"`
	Email        string     `gorm:"size:180" json:"email"`
	UltimaCompra *time.Time `json:"ultimaCompra"`
}
