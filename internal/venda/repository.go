package venda

import (
	"errors"
	"fmt"
	"time"

	"github.com/Boycell/api-vendas/internal/cliente"
	"github.com/Boycell/api-vendas/internal/produto"
	"github.com/Boycell/api-vendas/internal/servico"
	"gorm.io/gorm"
)

var (
	// ErrEstoqueInsuficiente indica que a quantidade pedida passa do
	// estoque vendável (estoque atual menos o mínimo) no momento da venda.
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	// ErrItemNaoEncontrado indica linha de carrinho apontando para item
	// inexistente.
	ErrItemNaoEncontrado = errors.New("item não encontrado")
)

type Repository interface {
	Criar(db *gorm.DB, req *CheckoutRequest, vendedorID uint, vendedor string) (*Venda, []produto.Produto, error)
	ListarTodas(db *gorm.DB) ([]Venda, error)
	ListarPorPeriodo(db *gorm.DB, inicio, fim time.Time) ([]Venda, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Criar executa o checkout completo como uma única transação: congela os
// itens, decrementa estoque com guarda no WHERE, faz o upsert do cliente
// pelo documento e grava a venda com código de comprovante único. Qualquer
// falha desfaz tudo; não existe aplicação parcial.
//
// Retorna também os produtos que atingiram o estoque mínimo, para o
// chamador disparar alertas depois do commit.
func (r *repositoryImpl) Criar(db *gorm.DB, req *CheckoutRequest, vendedorID uint, vendedor string) (*Venda, []produto.Produto, error) {
	quando := time.Now()

	var v *Venda
	var emAlerta []produto.Produto

	err := db.Transaction(func(tx *gorm.DB) error {
		codigo, err := codigoDisponivel(tx, quando)
		if err != nil {
			return err
		}

		itens := make([]ItemVenda, 0, len(req.Itens))
		emAlerta = emAlerta[:0]

		for _, linha := range req.Itens {
			switch linha.Tipo {
			case TipoProduto:
				var p produto.Produto
				if err := tx.First(&p, linha.ItemID).Error; err != nil {
					return fmt.Errorf("%w: produto %d", ErrItemNaoEncontrado, linha.ItemID)
				}

				// Decremento guardado: a condição no WHERE garante que duas
				// vendas concorrentes não vendam o mesmo estoque.
				res := tx.Model(&produto.Produto{}).
					Where("id = ? AND estoque_atual - estoque_minimo >= ?", p.ID, linha.Quantidade).
					UpdateColumn("estoque_atual", gorm.Expr("estoque_atual - ?", linha.Quantidade))
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return fmt.Errorf("%w: %s", ErrEstoqueInsuficiente, p.Nome)
				}

				if err := tx.First(&p, p.ID).Error; err != nil {
					return err
				}
				p.RegistrarHistorico(fmt.Sprintf("venda %s: -%d unidade(s)", codigo, linha.Quantidade))
				if err := tx.Model(&p).Update("historico", p.Historico).Error; err != nil {
					return err
				}
				if p.EmAlertaDeEstoque() {
					emAlerta = append(emAlerta, p)
				}

				itens = append(itens, ItemVenda{
					ItemID:        p.ID,
					Tipo:          TipoProduto,
					Nome:          p.Nome,
					Categoria:     p.Categoria,
					PrecoUnitario: p.PrecoFinal,
					PrecoCusto:    p.PrecoCusto,
					Quantidade:    linha.Quantidade,
					GarantiaDias:  p.GarantiaDias,
				})

			case TipoServico:
				var s servico.Servico
				if err := tx.First(&s, linha.ItemID).Error; err != nil {
					return fmt.Errorf("%w: serviço %d", ErrItemNaoEncontrado, linha.ItemID)
				}
				itens = append(itens, ItemVenda{
					ItemID:        s.ID,
					Tipo:          TipoServico,
					Nome:          s.Nome,
					Categoria:     s.Categoria,
					PrecoUnitario: s.PrecoFinal,
					PrecoCusto:    s.PrecoCusto,
					Quantidade:    linha.Quantidade,
					GarantiaDias:  s.GarantiaDias,
				})
			}
		}

		subtotal, descontoValor, total := CalcularTotais(itens, req.DescontoPercentual)

		nova := Venda{
			Codigo:             codigo,
			Data:               quando,
			Itens:              itens,
			Subtotal:           subtotal,
			DescontoPercentual: req.DescontoPercentual,
			DescontoValor:      descontoValor,
			Total:              total,
			FormaPagamento:     req.FormaPagamento,
			NomeCliente:        req.NomeCliente,
			DocumentoCliente:   req.DocumentoCliente,
			TelefoneCliente:    req.TelefoneCliente,
			EmailCliente:       req.EmailCliente,
			Vendedor:           vendedor,
			VendedorID:         vendedorID,
		}

		if req.DocumentoCliente != "" {
			c, err := cliente.Upsert(tx, req.NomeCliente, req.DocumentoCliente, req.TelefoneCliente, req.EmailCliente, quando)
			if err != nil {
				return err
			}
			nova.ClienteID = &c.ID
		}

		if err := tx.Create(&nova).Error; err != nil {
			return err
		}

		v = &nova
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return v, emAlerta, nil
}

// codigoDisponivel gera um código de comprovante que ainda não existe.
// Uma colisão residual entre transações concorrentes bate no índice único
// e falha o checkout inteiro, sem aplicação parcial.
func codigoDisponivel(tx *gorm.DB, quando time.Time) (string, error) {
	for tentativa := 0; tentativa < 3; tentativa++ {
		codigo, err := GerarCodigo(quando)
		if err != nil {
			return "", err
		}
		var n int64
		if err := tx.Model(&Venda{}).Where("codigo = ?", codigo).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return codigo, nil
		}
	}
	return "", errors.New("não foi possível gerar código de comprovante único")
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Venda, error) {
	var vendas []Venda
	err := db.Preload("Itens").Order("data DESC").Find(&vendas).Error
	return vendas, err
}

func (r *repositoryImpl) ListarPorPeriodo(db *gorm.DB, inicio, fim time.Time) ([]Venda, error) {
	var vendas []Venda
	err := db.Preload("Itens").
		Where("data >= ? AND data < ?", inicio, fim).
		Order("data DESC").
		Find(&vendas).Error
	return vendas, err
}
