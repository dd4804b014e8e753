package servico

import "gorm.io/gorm"

// Servico é um item de catálogo sem conceito de estoque (conserto de tela,
// troca de bateria etc.).
type Servico struct {
	gorm.Model
	Nome         string   `gorm:"size:180;not null" json:"nome"`
	Categoria    string   `gorm:"size:100;index" json:"categoria"`
	Marca        string   `gorm:"size:100" json:"marca"`
	Fornecedor   string   `gorm:"size:140" json:"fornecedor"`
	Tecnico      string   `gorm:"size:140" json:"tecnico"`
	PrecoCusto   float64  `gorm:"type:decimal(12,2);default:0" json:"precoCusto"`
	PrecoFinal   float64  `gorm:"type:decimal(12,2);default:0" json:"precoFinal"`
	GarantiaDias int      `gorm:"default:0" json:"garantiaDias"`
	Destaque     bool     `gorm:"default:false" json:"destaque"`
	Historico    []string `gorm:"serializer:json" json:"historico"`
}
