package servico

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type servicoRequest struct {
	Nome         string  `json:"nome"`
	Categoria    string  `json:"categoria"`
	Marca        string  `json:"marca"`
	Fornecedor   string  `json:"fornecedor"`
	Tecnico      string  `json:"tecnico"`
	PrecoCusto   float64 `json:"precoCusto"`
	PrecoFinal   float64 `json:"precoFinal"`
	GarantiaDias int     `json:"garantiaDias"`
	Destaque     bool    `json:"destaque"`
}

// GET /api/services
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	servicos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar serviços", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(servicos)
}

// POST /api/services
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req servicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if req.PrecoCusto < 0 || req.PrecoFinal < 0 {
		http.Error(w, "preço não pode ser negativo", http.StatusBadRequest)
		return
	}

	s := Servico{
		Nome:         req.Nome,
		Categoria:    req.Categoria,
		Marca:        req.Marca,
		Fornecedor:   req.Fornecedor,
		Tecnico:      req.Tecnico,
		PrecoCusto:   req.PrecoCusto,
		PrecoFinal:   req.PrecoFinal,
		GarantiaDias: req.GarantiaDias,
		Destaque:     req.Destaque,
	}
	if err := h.Repo.Create(&s); err != nil {
		http.Error(w, "erro ao salvar serviço", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// PUT /api/services/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return
	}

	var req servicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	existente.Nome = req.Nome
	existente.Categoria = req.Categoria
	existente.Marca = req.Marca
	existente.Fornecedor = req.Fornecedor
	existente.Tecnico = req.Tecnico
	existente.PrecoCusto = req.PrecoCusto
	existente.PrecoFinal = req.PrecoFinal
	existente.GarantiaDias = req.GarantiaDias
	existente.Destaque = req.Destaque

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar serviço", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /api/services/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir serviço", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("serviço excluído com sucesso"))
}
