package venda

import (
	"time"

	"gorm.io/gorm"
)

// Formas de pagamento aceitas no caixa.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoPix           = "pix"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoTransferencia = "transferencia"
)

var formasPagamento = []string{
	PagamentoDinheiro, PagamentoPix, PagamentoCartaoCredito,
	PagamentoCartaoDebito, PagamentoTransferencia,
}

// FormaPagamentoValida responde se a forma está na enumeração fixa.
func FormaPagamentoValida(f string) bool {
	for _, fp := range formasPagamento {
		if fp == f {
			return true
		}
	}
	return false
}

// Venda é o registro imutável de um checkout: nunca é alterada nem
// excluída depois de criada.
type Venda struct {
	gorm.Model
	Codigo             string     `gorm:"size:20;uniqueIndex;not null" json:"codigo"`
	Data               time.Time  `gorm:"index" json:"data"`
	Itens              []ItemVenda `gorm:"foreignKey:VendaID" json:"itens"`
	Subtotal           float64    `gorm:"type:decimal(12,2)" json:"subtotal"`
	DescontoPercentual float64    `gorm:"type:decimal(6,2)" json:"descontoPercentual"`
	DescontoValor      float64    `gorm:"type:decimal(12,2)" json:"descontoValor"`
	Total              float64    `gorm:"type:decimal(12,2)" json:"total"`
	FormaPagamento     string     `gorm:"size:30;not null" json:"formaPagamento"`
	NomeCliente        string     `gorm:"size:180" json:"nomeCliente"`
	DocumentoCliente   string     `gorm:"size:18" json:"documentoCliente"`
	TelefoneCliente    string     `gorm:"size:20" json:"telefoneCliente"`
	EmailCliente       string     `gorm:"size:180" json:"emailCliente"`
	Vendedor           string     `gorm:"size:180" json:"vendedor"`
	VendedorID         uint       `gorm:"index" json:"vendedorId"`
	ClienteID          *uint      `gorm:"index" json:"clienteId"`
}

// Tipos de item vendável.
const (
	TipoProduto = "produto"
	TipoServico = "servico"
)

// ItemVenda é o retrato do item no momento da venda. Preço e custo são
// congelados aqui para que edições posteriores de catálogo não alterem
// vendas nem relatórios passados.
type ItemVenda struct {
	gorm.Model
	VendaID       uint    `gorm:"index;not null" json:"-"`
	ItemID        uint    `gorm:"not null" json:"itemId"`
	Tipo          string  `gorm:"size:10;not null" json:"tipo"`
	Nome          string  `gorm:"size:180" json:"nome"`
	Categoria     string  `gorm:"size:100" json:"categoria"`
	PrecoUnitario float64 `gorm:"type:decimal(12,2)" json:"precoUnitario"`
	PrecoCusto    float64 `gorm:"type:decimal(12,2)" json:"precoCusto"`
	Quantidade    int     `gorm:"not null" json:"quantidade"`
	GarantiaDias  int     `json:"garantiaDias"`
}
