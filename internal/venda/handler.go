package venda

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Boycell/api-vendas/internal/auth"
	"github.com/Boycell/api-vendas/internal/notificacao"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler cria um novo handler de vendas
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar registra uma venda (checkout). O vendedor vem do token; o servidor
// é o único escritor: valida, persiste e devolve a venda canônica.
// POST /api/sales
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	vendedorID, _ := r.Context().Value(auth.CtxUserID).(uint)
	vendedor, _ := r.Context().Value(auth.CtxNome).(string)

	v, emAlerta, err := h.Repository.Criar(h.DB, &req, vendedorID, vendedor)
	if err != nil {
		switch {
		case errors.Is(err, ErrEstoqueInsuficiente):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrItemNaoEncontrado):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, "erro ao registrar venda", http.StatusInternalServerError)
		}
		return
	}

	for _, p := range emAlerta {
		go notificacao.EnviarAlertaEstoqueBaixo(p.Nome, p.EstoqueAtual, p.EstoqueMinimo)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Listar retorna o histórico de vendas, mais recente primeiro.
// GET /api/sales
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vendas)
}
