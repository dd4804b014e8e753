package produto

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Produto struct {
	gorm.Model
	Nome          string   `gorm:"size:180;not null" json:"nome"`
	Categoria     string   `gorm:"size:100;index" json:"categoria"`
	Marca         string   `gorm:"size:100" json:"marca"`
	Fornecedor    string   `gorm:"size:140" json:"fornecedor"`
	EstoqueAtual  int      `gorm:"not null;default:0" json:"estoqueAtual"`
	EstoqueMinimo int      `gorm:"not null;default:0" json:"estoqueMinimo"`
	PrecoCusto    float64  `gorm:"type:decimal(12,2);default:0" json:"precoCusto"`
	PrecoFinal    float64  `gorm:"type:decimal(12,2);default:0" json:"precoFinal"`
	MargemLucro   float64  `gorm:"type:decimal(6,2);default:0" json:"margemLucro"`
	Imagem        string   `json:"imagem"`
	GarantiaDias  int      `gorm:"default:0" json:"garantiaDias"`
	Destaque      bool     `gorm:"default:false" json:"destaque"`
	Historico     []string `gorm:"serializer:json" json:"historico"`
}

// EstoqueDisponivel é o estoque vendável: o que passa do mínimo, nunca
// negativo.
func (p *Produto) EstoqueDisponivel() int {
	disp := p.EstoqueAtual - p.EstoqueMinimo
	if disp < 0 {
		return 0
	}
	return disp
}

// EmAlertaDeEstoque indica que o estoque chegou ao nível mínimo e não há
// mais unidades vendáveis.
func (p *Produto) EmAlertaDeEstoque() bool {
	return p.EstoqueAtual <= p.EstoqueMinimo
}

// RegistrarHistorico anexa uma entrada datada ao histórico do produto.
func (p *Produto) RegistrarHistorico(evento string) {
	entrada := fmt.Sprintf("%s - %s", time.Now().Format("02/01/2006 15:04"), evento)
	p.Historico = append(p.Historico, entrada)
}
