package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Boycell/api-vendas/internal/auth"
	"github.com/Boycell/api-vendas/internal/banner"
	"github.com/Boycell/api-vendas/internal/cliente"
	"github.com/Boycell/api-vendas/internal/produto"
	"github.com/Boycell/api-vendas/internal/relatorio"
	"github.com/Boycell/api-vendas/internal/servico"
	"github.com/Boycell/api-vendas/internal/usuario"
	"github.com/Boycell/api-vendas/internal/utils"
	"github.com/Boycell/api-vendas/internal/utils/db"
	"github.com/Boycell/api-vendas/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&produto.Produto{},
		&servico.Servico{},
		&venda.Venda{},
		&venda.ItemVenda{},
		&cliente.Cliente{},
		&usuario.Usuario{},
		&banner.Banner{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := seedRoot(database); err != nil {
		log.Fatal("Erro ao criar usuário root:", err)
	}

	// Handlers
	produtoHandler := produto.NewHandler(database)
	servicoHandler := servico.NewHandler(database)
	vendaHandler := venda.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	usuarioHandler := usuario.NewHandler(database)
	bannerHandler := banner.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database)

	// proteger encadeia autenticação + permissão de área em uma rota.
	proteger := func(perm auth.Permissao, fn http.HandlerFunc) http.Handler {
		return auth.MiddlewareAutenticacao(auth.RequirePermissao(perm)(fn))
	}
	somenteRoot := func(fn http.HandlerFunc) http.Handler {
		return auth.MiddlewareAutenticacao(auth.RequireRoot(fn))
	}

	// Router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Autenticação
	api.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")
	api.HandleFunc("/auth/recover", usuarioHandler.Recover).Methods("POST")
	api.HandleFunc("/auth/recover/confirm", usuarioHandler.RecoverConfirm).Methods("POST")

	// Catálogo público (vitrine)
	api.HandleFunc("/products", produtoHandler.Listar).Methods("GET")
	api.HandleFunc("/products/search", produtoHandler.Buscar).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", produtoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/services", servicoHandler.Listar).Methods("GET")
	api.HandleFunc("/banners", bannerHandler.Listar).Methods("GET")

	// Produtos (back office)
	api.Handle("/products", proteger(auth.PermProdutos, produtoHandler.Criar)).Methods("POST")
	api.Handle("/products/{id:[0-9]+}", proteger(auth.PermProdutos, produtoHandler.Atualizar)).Methods("PUT")
	api.Handle("/products/{id:[0-9]+}", proteger(auth.PermProdutos, produtoHandler.Deletar)).Methods("DELETE")

	// Serviços
	api.Handle("/services", proteger(auth.PermServicos, servicoHandler.Criar)).Methods("POST")
	api.Handle("/services/{id:[0-9]+}", proteger(auth.PermServicos, servicoHandler.Atualizar)).Methods("PUT")
	api.Handle("/services/{id:[0-9]+}", proteger(auth.PermServicos, servicoHandler.Deletar)).Methods("DELETE")

	// Vendas
	api.Handle("/sales", proteger(auth.PermVendas, vendaHandler.Criar)).Methods("POST")
	api.Handle("/sales", proteger(auth.PermVendas, vendaHandler.Listar)).Methods("GET")

	// Clientes
	api.Handle("/clients", proteger(auth.PermClientes, clienteHandler.Listar)).Methods("GET")
	api.Handle("/clients/search", proteger(auth.PermClientes, clienteHandler.BuscarPorDocumento)).Methods("GET")
	api.Handle("/clients", proteger(auth.PermClientes, clienteHandler.Criar)).Methods("POST")
	api.Handle("/clients/{id:[0-9]+}", proteger(auth.PermClientes, clienteHandler.Atualizar)).Methods("PUT")
	api.Handle("/clients/{id:[0-9]+}", proteger(auth.PermClientes, clienteHandler.Deletar)).Methods("DELETE")

	// Usuários
	api.Handle("/users/register", proteger(auth.PermUsuarios, usuarioHandler.Registrar)).Methods("POST")
	api.Handle("/users", proteger(auth.PermUsuarios, usuarioHandler.Listar)).Methods("GET")
	api.Handle("/users/{id:[0-9]+}", proteger(auth.PermUsuarios, usuarioHandler.Atualizar)).Methods("PUT")
	api.Handle("/users/{id:[0-9]+}", somenteRoot(usuarioHandler.Deletar)).Methods("DELETE")
	api.Handle("/users/{id:[0-9]+}/reset-password", proteger(auth.PermUsuarios, usuarioHandler.ResetPassword)).Methods("POST")
	api.Handle("/users/{id:[0-9]+}/permissions", somenteRoot(usuarioHandler.AtualizarPermissoes)).Methods("PUT")

	// Relatórios
	api.Handle("/reports/sales-by-user", proteger(auth.PermRelatorios, relatorioHandler.VendasPorVendedor)).Methods("GET")
	api.Handle("/reports/dre", proteger(auth.PermRelatorios, relatorioHandler.DRE)).Methods("GET")
	api.Handle("/reports/dashboard", proteger(auth.PermRelatorios, relatorioHandler.Dashboard)).Methods("GET")

	// Banners (back office)
	api.Handle("/banners", proteger(auth.PermBanners, bannerHandler.Criar)).Methods("POST")
	api.Handle("/banners/{id:[0-9]+}", proteger(auth.PermBanners, bannerHandler.Atualizar)).Methods("PUT")
	api.Handle("/banners/{id:[0-9]+}", proteger(auth.PermBanners, bannerHandler.Deletar)).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// seedRoot garante um usuário root no primeiro boot. A senha vem de
// ROOT_SENHA; sem ela, gera uma temporária e loga uma única vez.
func seedRoot(database *gorm.DB) error {
	var total int64
	if err := database.Model(&usuario.Usuario{}).Where("perfil = ?", auth.PerfilRoot).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	email := os.Getenv("ROOT_EMAIL")
	if email == "" {
		email = "root@boycell.com.br"
	}
	senha := os.Getenv("ROOT_SENHA")
	gerada := false
	if senha == "" {
		var err error
		senha, err = utils.GerarSenhaTemporaria()
		if err != nil {
			return err
		}
		gerada = true
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}

	root := usuario.Usuario{
		Nome:       "Root",
		Email:      email,
		Senha:      hash,
		Perfil:     auth.PerfilRoot,
		Permissoes: auth.PermissoesPara(auth.PerfilRoot),
	}
	if err := database.Create(&root).Error; err != nil {
		return err
	}
	if gerada {
		log.Printf("usuário root criado (%s) com senha temporária: %s", email, senha)
	} else {
		log.Printf("usuário root criado (%s)", email)
	}
	return nil
}
