package produto

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

type produtoRequest struct {
	Nome          string  `json:"nome"`
	Categoria     string  `json:"categoria"`
	Marca         string  `json:"marca"`
	Fornecedor    string  `json:"fornecedor"`
	EstoqueAtual  int     `json:"estoqueAtual"`
	EstoqueMinimo int     `json:"estoqueMinimo"`
	PrecoCusto    float64 `json:"precoCusto"`
	PrecoFinal    float64 `json:"precoFinal"`
	MargemLucro   float64 `json:"margemLucro"`
	Imagem        string  `json:"imagem"`
	GarantiaDias  int     `json:"garantiaDias"`
	Destaque      bool    `json:"destaque"`
}

func (req *produtoRequest) validar() string {
	if strings.TrimSpace(req.Nome) == "" {
		return "nome é obrigatório"
	}
	if req.EstoqueAtual < 0 || req.EstoqueMinimo < 0 {
		return "estoque não pode ser negativo"
	}
	if req.PrecoCusto < 0 || req.PrecoFinal < 0 {
		return "preço não pode ser negativo"
	}
	return ""
}

// GET /api/products
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.Repo.ListAll()
	if err != nil {
		http.Error(w, "erro ao listar produtos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(produtos)
}

// GET /api/products/search?q=
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "parâmetro q é obrigatório", http.StatusBadRequest)
		return
	}
	produtos, err := h.Repo.Search(q)
	if err != nil {
		http.Error(w, "erro ao buscar produtos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(produtos)
}

// GET /api/products/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "produto não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// POST /api/products
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req produtoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	p := Produto{
		Nome:          req.Nome,
		Categoria:     req.Categoria,
		Marca:         req.Marca,
		Fornecedor:    req.Fornecedor,
		EstoqueAtual:  req.EstoqueAtual,
		EstoqueMinimo: req.EstoqueMinimo,
		PrecoCusto:    req.PrecoCusto,
		PrecoFinal:    req.PrecoFinal,
		MargemLucro:   req.MargemLucro,
		Imagem:        req.Imagem,
		GarantiaDias:  req.GarantiaDias,
		Destaque:      req.Destaque,
	}
	p.RegistrarHistorico("produto cadastrado")

	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "erro ao salvar produto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// PUT /api/products/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "produto não encontrado", http.StatusNotFound)
		return
	}

	var req produtoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := req.validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if req.EstoqueAtual != existente.EstoqueAtual {
		existente.RegistrarHistorico(
			"estoque ajustado de " + strconv.Itoa(existente.EstoqueAtual) + " para " + strconv.Itoa(req.EstoqueAtual))
	}

	existente.Nome = req.Nome
	existente.Categoria = req.Categoria
	existente.Marca = req.Marca
	existente.Fornecedor = req.Fornecedor
	existente.EstoqueAtual = req.EstoqueAtual
	existente.EstoqueMinimo = req.EstoqueMinimo
	existente.PrecoCusto = req.PrecoCusto
	existente.PrecoFinal = req.PrecoFinal
	existente.MargemLucro = req.MargemLucro
	existente.Imagem = req.Imagem
	existente.GarantiaDias = req.GarantiaDias
	existente.Destaque = req.Destaque

	if err := h.Repo.Update(existente); err != nil {
		http.Error(w, "erro ao atualizar produto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /api/products/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Delete(uint(id)); err != nil {
		http.Error(w, "erro ao excluir produto", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("produto excluído com sucesso"))
}
