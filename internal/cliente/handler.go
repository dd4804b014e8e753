package cliente

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Boycell/api-vendas/internal/validacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type clienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
	Telefone  string `json:"telefone"`
	Email     string `json:"email"`
}

func (req *clienteRequest) validar() string {
	if strings.TrimSpace(req.Nome) == "" {
		return "nome é obrigatório"
	}
	if req.Documento != "" && !validacao.ValidarDocumento(req.Documento) {
		return "CPF/CNPJ inválido"
	}
	if req.Telefone != "" && !validacao.ValidarTelefone(req.Telefone) {
		return "telefone inválido"
	}
	return ""
}

// GET /api/clients
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// GET /api/clients/search?cpf=
func (h *Handler) BuscarPorDocumento(w http.ResponseWriter, r *http.Request) {
	doc := strings.TrimSpace(r.URL.Query().Get("cpf"))
	if doc == "" {
		http.Error(w, "parâmetro cpf é obrigatório", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.FindByDocumento(doc)
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// POST /api/clients
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if req.Documento != "" {
		if _, err := h.Repo.FindByDocumento(req.Documento); err == nil {
			http.Error(w, "já existe cliente com esse documento", http.StatusConflict)
			return
		}
	}

	c := Cliente{Nome: req.Nome, Documento: req.Documento, Telefone: req.Telefone, Email: req.Email}
	if err := h.Repo.Create(&c); err != nil {
		http.Error(w, "erro ao salvar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// PUT /api/clients/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}

	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	existente.Nome = req.Nome
	existente.Documento = req.Documento
	existente.Telefone = req.Telefone
	existente.Email = req.Email

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /api/clients/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente excluído com sucesso"))
}
