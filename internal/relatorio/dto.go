package relatorio

// VendasPorVendedorDTO resume a produção de um vendedor.
type VendasPorVendedorDTO struct {
	VendedorID uint    `json:"vendedorId"`
	Vendedor   string  `json:"vendedor"`
	Vendas     int     `json:"vendas"`
	Unidades   int     `json:"unidades"`
	Faturado   float64 `json:"faturado"`
}

// DREDTO é o demonstrativo de resultado bruto do período.
type DREDTO struct {
	Inicio         string  `json:"inicio"`
	Fim            string  `json:"fim"`
	Vendas         int     `json:"vendas"`
	ReceitaBruta   float64 `json:"receitaBruta"`
	Descontos      float64 `json:"descontos"`
	ReceitaLiquida float64 `json:"receitaLiquida"`
	CMV            float64 `json:"cmv"`
	LucroBruto     float64 `json:"lucroBruto"`
	MargemBruta    float64 `json:"margemBruta"`
}

// ItemMaisVendidoDTO é uma posição do ranking por unidades.
type ItemMaisVendidoDTO struct {
	ItemID   uint   `json:"itemId"`
	Tipo     string `json:"tipo"`
	Nome     string `json:"nome"`
	Unidades int    `json:"unidades"`
}

// PeriodoDTO resume um intervalo do dashboard.
type PeriodoDTO struct {
	Vendas   int     `json:"vendas"`
	Faturado float64 `json:"faturado"`
}

// DashboardDTO é o rollup consumido pela tela inicial do back office.
type DashboardDTO struct {
	Hoje              PeriodoDTO           `json:"hoje"`
	Ultimos7Dias      PeriodoDTO           `json:"ultimos7Dias"`
	Ultimos30Dias     PeriodoDTO           `json:"ultimos30Dias"`
	MaisVendidos      []ItemMaisVendidoDTO `json:"maisVendidos"`
	PorFormaPagamento map[string]float64   `json:"porFormaPagamento"`
	PorCategoria      map[string]float64   `json:"porCategoria"`
}
