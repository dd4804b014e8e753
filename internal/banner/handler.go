package banner

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

type bannerRequest struct {
	Titulo string `json:"titulo"`
	Texto  string `json:"texto"`
	Imagem string `json:"imagem"`
	Link   string `json:"link"`
	Ativo  *bool  `json:"ativo"`
	Ordem  int    `json:"ordem"`
}

// GET /api/banners?ativos=1
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	somenteAtivos := r.URL.Query().Get("ativos") == "1"
	banners, err := h.Repo.ListAll(somenteAtivos)
	if err != nil {
		http.Error(w, "erro ao listar banners", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(banners)
}

// POST /api/banners
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req bannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Titulo) == "" {
		http.Error(w, "título é obrigatório", http.StatusBadRequest)
		return
	}

	b := Banner{Titulo: req.Titulo, Texto: req.Texto, Imagem: req.Imagem, Link: req.Link, Ordem: req.Ordem, Ativo: true}
	if req.Ativo != nil {
		b.Ativo = *req.Ativo
	}
	if err := h.Repo.Create(&b); err != nil {
		http.Error(w, "erro ao salvar banner", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(b)
}

// PUT /api/banners/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "banner não encontrado", http.StatusNotFound)
		return
	}

	var req bannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	existente.Titulo = req.Titulo
	existente.Texto = req.Texto
	existente.Imagem = req.Imagem
	existente.Link = req.Link
	existente.Ordem = req.Ordem
	if req.Ativo != nil {
		existente.Ativo = *req.Ativo
	}

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar banner", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /api/banners/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir banner", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("banner excluído com sucesso"))
}
