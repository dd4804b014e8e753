package auth

// Perfis de acesso do sistema.
const (
	PerfilRoot     = "root"
	PerfilAdmin    = "admin"
	PerfilVendedor = "vendedor"
)

// Permissao identifica uma área funcional do back office.
type Permissao string

const (
	PermProdutos   Permissao = "produtos"
	PermServicos   Permissao = "servicos"
	PermVendas     Permissao = "vendas"
	PermClientes   Permissao = "clientes"
	PermUsuarios   Permissao = "usuarios"
	PermBanners    Permissao = "banners"
	PermRelatorios Permissao = "relatorios"
)

// Permissoes enumera todas as permissões conhecidas.
var Permissoes = []Permissao{
	PermProdutos, PermServicos, PermVendas, PermClientes,
	PermUsuarios, PermBanners, PermRelatorios,
}

// tabelaPermissoes define, por permissão, os perfis autorizados.
// root não aparece: tem todas implicitamente.
var tabelaPermissoes = map[Permissao][]string{
	PermProdutos:   {PerfilAdmin},
	PermServicos:   {PerfilAdmin},
	PermVendas:     {PerfilAdmin, PerfilVendedor},
	PermClientes:   {PerfilAdmin, PerfilVendedor},
	PermUsuarios:   {PerfilAdmin},
	PermBanners:    {PerfilAdmin},
	PermRelatorios: {PerfilAdmin},
}

// PermissoesPara calcula o mapa de permissões padrão de um perfil.
// O mapa é gravado no cadastro do usuário e pode ser sobrescrito flag a
// flag pelo root; o perfil root nunca consulta o mapa.
func PermissoesPara(perfil string) map[string]bool {
	out := make(map[string]bool, len(Permissoes))
	for _, p := range Permissoes {
		out[string(p)] = false
		for _, pf := range tabelaPermissoes[p] {
			if pf == perfil {
				out[string(p)] = true
				break
			}
		}
	}
	return out
}

// TemPermissao responde se as claims autorizam a área informada.
func TemPermissao(c *Claims, perm Permissao) bool {
	if c.Perfil == PerfilRoot {
		return true
	}
	return c.Permissoes[string(perm)]
}
