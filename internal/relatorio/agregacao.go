package relatorio

import (
	"math"
	"sort"
	"time"

	"github.com/Boycell/api-vendas/internal/venda"
)

// Reduções puras sobre o histórico de vendas em memória. Nenhum estado
// intermediário é persistido; tudo é recalculado a cada chamada a partir
// do conjunto carregado do banco.

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MontarVendasPorVendedor agrupa contagem, unidades e faturamento por
// vendedor.
func MontarVendasPorVendedor(vendas []venda.Venda) []VendasPorVendedorDTO {
	porVendedor := map[uint]*VendasPorVendedorDTO{}
	for _, v := range vendas {
		dto, ok := porVendedor[v.VendedorID]
		if !ok {
			dto = &VendasPorVendedorDTO{VendedorID: v.VendedorID, Vendedor: v.Vendedor}
			porVendedor[v.VendedorID] = dto
		}
		dto.Vendas++
		dto.Faturado = round2(dto.Faturado + v.Total)
		for _, item := range v.Itens {
			dto.Unidades += item.Quantidade
		}
	}

	out := make([]VendasPorVendedorDTO, 0, len(porVendedor))
	for _, dto := range porVendedor {
		out = append(out, *dto)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Faturado > out[j].Faturado })
	return out
}

// MontarDRE calcula o demonstrativo bruto do período: receita, descontos,
// CMV (custo congelado no item, somente produtos) e lucro bruto.
func MontarDRE(vendas []venda.Venda, inicio, fim time.Time) DREDTO {
	dre := DREDTO{
		Inicio: inicio.Format("2006-01-02"),
		Fim:    fim.Format("2006-01-02"),
	}
	for _, v := range vendas {
		dre.Vendas++
		dre.ReceitaBruta += v.Subtotal
		dre.Descontos += v.DescontoValor
		for _, item := range v.Itens {
			if item.Tipo == venda.TipoProduto {
				dre.CMV += item.PrecoCusto * float64(item.Quantidade)
			}
		}
	}
	dre.ReceitaBruta = round2(dre.ReceitaBruta)
	dre.Descontos = round2(dre.Descontos)
	dre.CMV = round2(dre.CMV)
	dre.ReceitaLiquida = round2(dre.ReceitaBruta - dre.Descontos)
	dre.LucroBruto = round2(dre.ReceitaLiquida - dre.CMV)
	if dre.ReceitaLiquida > 0 {
		dre.MargemBruta = round2(dre.LucroBruto / dre.ReceitaLiquida * 100)
	}
	return dre
}

// MontarDashboard monta os rollups da tela inicial a partir do histórico.
func MontarDashboard(vendas []venda.Venda, agora time.Time) DashboardDTO {
	dash := DashboardDTO{
		MaisVendidos:      []ItemMaisVendidoDTO{},
		PorFormaPagamento: map[string]float64{},
		PorCategoria:      map[string]float64{},
	}

	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	seteDias := hoje.AddDate(0, 0, -6)
	trintaDias := hoje.AddDate(0, 0, -29)

	type chaveItem struct {
		id   uint
		tipo string
	}
	unidades := map[chaveItem]*ItemMaisVendidoDTO{}

	for _, v := range vendas {
		if !v.Data.Before(hoje) {
			dash.Hoje.Vendas++
			dash.Hoje.Faturado = round2(dash.Hoje.Faturado + v.Total)
		}
		if !v.Data.Before(seteDias) {
			dash.Ultimos7Dias.Vendas++
			dash.Ultimos7Dias.Faturado = round2(dash.Ultimos7Dias.Faturado + v.Total)
		}
		if !v.Data.Before(trintaDias) {
			dash.Ultimos30Dias.Vendas++
			dash.Ultimos30Dias.Faturado = round2(dash.Ultimos30Dias.Faturado + v.Total)
		}

		dash.PorFormaPagamento[v.FormaPagamento] = round2(dash.PorFormaPagamento[v.FormaPagamento] + v.Total)

		for _, item := range v.Itens {
			cat := item.Categoria
			if cat == "" {
				cat = "sem categoria"
			}
			dash.PorCategoria[cat] = round2(dash.PorCategoria[cat] + item.PrecoUnitario*float64(item.Quantidade))

			k := chaveItem{item.ItemID, item.Tipo}
			pos, ok := unidades[k]
			if !ok {
				pos = &ItemMaisVendidoDTO{ItemID: item.ItemID, Tipo: item.Tipo, Nome: item.Nome}
				unidades[k] = pos
			}
			pos.Unidades += item.Quantidade
		}
	}

	ranking := make([]ItemMaisVendidoDTO, 0, len(unidades))
	for _, pos := range unidades {
		ranking = append(ranking, *pos)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Unidades != ranking[j].Unidades {
			return ranking[i].Unidades > ranking[j].Unidades
		}
		return ranking[i].Nome < ranking[j].Nome
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	dash.MaisVendidos = ranking

	return dash
}
