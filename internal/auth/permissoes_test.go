package auth

import "testing"

func TestPermissoesParaVendedor(t *testing.T) {
	perms := PermissoesPara(PerfilVendedor)

	if !perms[string(PermVendas)] || !perms[string(PermClientes)] {
		t.Error("vendedor deveria ter vendas e clientes")
	}
	if perms[string(PermProdutos)] || perms[string(PermUsuarios)] || perms[string(PermRelatorios)] {
		t.Error("vendedor não deveria ter produtos, usuários nem relatórios")
	}
	if len(perms) != len(Permissoes) {
		t.Errorf("mapa com %d chaves, esperado %d (todas as permissões sempre presentes)", len(perms), len(Permissoes))
	}
}

func TestPermissoesParaAdmin(t *testing.T) {
	perms := PermissoesPara(PerfilAdmin)
	for _, p := range Permissoes {
		if !perms[string(p)] {
			t.Errorf("admin deveria ter %s", p)
		}
	}
}

func TestRootTemTodasAsPermissoes(t *testing.T) {
	// root nem consulta o mapa armazenado
	c := &Claims{Perfil: PerfilRoot, Permissoes: map[string]bool{}}
	for _, p := range Permissoes {
		if !TemPermissao(c, p) {
			t.Errorf("root deveria ter %s implicitamente", p)
		}
	}
}

func TestTemPermissaoUsaMapaDasClaims(t *testing.T) {
	// sobrescrita do root: vendedor com produtos liberado
	c := &Claims{Perfil: PerfilVendedor, Permissoes: map[string]bool{
		string(PermProdutos): true,
	}}
	if !TemPermissao(c, PermProdutos) {
		t.Error("flag sobrescrita deveria valer")
	}
	if TemPermissao(c, PermRelatorios) {
		t.Error("flag ausente no mapa nega acesso")
	}
}
