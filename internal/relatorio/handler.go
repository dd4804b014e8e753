package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Boycell/api-vendas/internal/venda"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Vendas venda.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:     db,
		Vendas: venda.NewRepository(),
	}
}

// VendasPorVendedor responde o resumo de produção por vendedor.
// GET /api/reports/sales-by-user
func (h *Handler) VendasPorVendedor(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.Vendas.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao carregar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarVendasPorVendedor(vendas))
}

// DRE responde o demonstrativo do período pedido em ?inicio=&fim=
// (formato 2006-01-02; fim é inclusivo).
// GET /api/reports/dre
func (h *Handler) DRE(w http.ResponseWriter, r *http.Request) {
	inicioStr := r.URL.Query().Get("inicio")
	fimStr := r.URL.Query().Get("fim")

	inicio, err := time.ParseInLocation("2006-01-02", inicioStr, time.Local)
	if err != nil {
		http.Error(w, "parâmetro inicio inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	fim, err := time.ParseInLocation("2006-01-02", fimStr, time.Local)
	if err != nil {
		http.Error(w, "parâmetro fim inválido (use AAAA-MM-DD)", http.StatusBadRequest)
		return
	}
	if fim.Before(inicio) {
		http.Error(w, "fim não pode ser anterior ao início", http.StatusBadRequest)
		return
	}

	vendas, err := h.Vendas.ListarPorPeriodo(h.DB, inicio, fim.AddDate(0, 0, 1))
	if err != nil {
		http.Error(w, "erro ao carregar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarDRE(vendas, inicio, fim))
}

// Dashboard responde os rollups da tela inicial.
// GET /api/reports/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	vendas, err := h.Vendas.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "erro ao carregar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarDashboard(vendas, time.Now()))
}
