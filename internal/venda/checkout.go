package venda

import (
	"fmt"
	"math"
	"time"

	"github.com/Boycell/api-vendas/internal/utils"
	"github.com/Boycell/api-vendas/internal/validacao"
)

// ItemCheckout é uma linha do carrinho enviada pelo front.
type ItemCheckout struct {
	ItemID     uint   `json:"itemId"`
	Tipo       string `json:"tipo"`
	Quantidade int    `json:"quantidade"`
}

// CheckoutRequest é o payload do POST /api/sales: o carrinho inteiro em
// uma única chamada.
type CheckoutRequest struct {
	Itens              []ItemCheckout `json:"itens"`
	NomeCliente        string         `json:"nomeCliente"`
	DocumentoCliente   string         `json:"documentoCliente"`
	TelefoneCliente    string         `json:"telefoneCliente"`
	EmailCliente       string         `json:"emailCliente"`
	DescontoPercentual float64        `json:"descontoPercentual"`
	FormaPagamento     string         `json:"formaPagamento"`
}

// Validar confere os pré-requisitos do checkout antes de tocar no banco.
// Retorna mensagem vazia quando o payload está ok.
func (req *CheckoutRequest) Validar() string {
	if len(req.Itens) == 0 {
		return "carrinho vazio"
	}
	for _, item := range req.Itens {
		if item.ItemID == 0 {
			return "item sem identificador"
		}
		if item.Tipo != TipoProduto && item.Tipo != TipoServico {
			return "tipo de item inválido: " + item.Tipo
		}
		if item.Quantidade < 1 {
			return "quantidade deve ser no mínimo 1"
		}
	}
	if req.DescontoPercentual < 0 || req.DescontoPercentual > 100 {
		return "desconto deve estar entre 0 e 100"
	}
	if !FormaPagamentoValida(req.FormaPagamento) {
		return "forma de pagamento inválida"
	}
	if req.DocumentoCliente != "" && !validacao.ValidarDocumento(req.DocumentoCliente) {
		return "CPF/CNPJ inválido"
	}
	if req.TelefoneCliente != "" && !validacao.ValidarTelefone(req.TelefoneCliente) {
		return "telefone inválido"
	}
	return ""
}

// round2 arredonda para centavos.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalcularTotais aplica a regra de preço do caixa:
// subtotal = Σ(preço × qtd); desconto = subtotal × pct/100;
// total = subtotal − desconto, nunca negativo.
func CalcularTotais(itens []ItemVenda, descontoPercentual float64) (subtotal, descontoValor, total float64) {
	for _, item := range itens {
		subtotal += item.PrecoUnitario * float64(item.Quantidade)
	}
	subtotal = round2(subtotal)
	descontoValor = round2(subtotal * descontoPercentual / 100)
	total = round2(subtotal - descontoValor)
	if total < 0 {
		total = 0
	}
	return subtotal, descontoValor, total
}

// GerarCodigo monta o código legível do comprovante: BC-YYYYMMDD-XXXX.
func GerarCodigo(quando time.Time) (string, error) {
	sufixo, err := utils.CodigoAleatorio(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BC-%s-%s", quando.Format("20060102"), sufixo), nil
}
