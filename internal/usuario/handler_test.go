package usuario

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/Boycell/api-vendas/internal/auth"
	"github.com/Boycell/api-vendas/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "segredo-de-teste")
	os.Exit(m.Run())
}

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Usuario{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func criarUsuarioTeste(t *testing.T, db *gorm.DB, nome, email, senha, perfil string) *Usuario {
	t.Helper()
	hash, err := utils.HashSenha(senha)
	if err != nil {
		t.Fatal(err)
	}
	u := Usuario{Nome: nome, Email: email, Senha: hash, Perfil: perfil, Permissoes: auth.PermissoesPara(perfil)}
	if err := db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
	return &u
}

func TestLogin(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(LoginRequest{Email: "maria@boycell.com.br", Password: "senha123"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	claims, err := auth.ValidarToken(resp.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Perfil != auth.PerfilVendedor || !claims.Permissoes[string(auth.PermVendas)] {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginSenhaErrada(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(LoginRequest{Email: "maria@boycell.com.br", Password: "outra"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401", rec.Code)
	}
}

func TestRegistrarCalculaPermissoesDoPerfil(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)

	body, _ := json.Marshal(map[string]string{
		"nome": "João", "email": "joao@boycell.com.br", "senha": "senha123", "perfil": auth.PerfilVendedor,
	})
	req := httptest.NewRequest("POST", "/api/users/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Registrar(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	u, err := h.Repository.BuscarPorEmail(db, "joao@boycell.com.br")
	if err != nil {
		t.Fatal(err)
	}
	if !u.Permissoes[string(auth.PermVendas)] || u.Permissoes[string(auth.PermUsuarios)] {
		t.Errorf("permissões seeded incorretamente: %+v", u.Permissoes)
	}
}

func TestRegistrarEmailDuplicado(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	criarUsuarioTeste(t, db, "João", "joao@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]string{
		"nome": "Outro João", "email": "joao@boycell.com.br", "senha": "senha456", "perfil": auth.PerfilVendedor,
	})
	req := httptest.NewRequest("POST", "/api/users/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Registrar(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, esperado 409 para e-mail já cadastrado", rec.Code)
	}
}

func TestAtualizarAdminNaoPromoveParaRoot(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]string{"perfil": auth.PerfilRoot})
	req := httptest.NewRequest("PUT", "/api/users/"+strconv.Itoa(int(u.ID)), bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), auth.CtxPerfil, auth.PerfilAdmin))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, esperado 403: %s", rec.Code, rec.Body.String())
	}
	recarregado, _ := h.Repository.BuscarPorID(db, u.ID)
	if recarregado.Perfil != auth.PerfilVendedor {
		t.Errorf("perfil = %q, deveria continuar vendedor", recarregado.Perfil)
	}
}

func TestAtualizarAdminNaoAlteraUsuarioRoot(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Dono", "dono@boycell.com.br", "senha123", auth.PerfilRoot)

	body, _ := json.Marshal(map[string]string{"nome": "Outro Nome"})
	req := httptest.NewRequest("PUT", "/api/users/"+strconv.Itoa(int(u.ID)), bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), auth.CtxPerfil, auth.PerfilAdmin))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, esperado 403", rec.Code)
	}
}

func TestAtualizarRootPromovePerfil(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]string{"perfil": auth.PerfilRoot})
	req := httptest.NewRequest("PUT", "/api/users/"+strconv.Itoa(int(u.ID)), bytes.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), auth.CtxPerfil, auth.PerfilRoot))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.Atualizar(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	recarregado, _ := h.Repository.BuscarPorID(db, u.ID)
	if recarregado.Perfil != auth.PerfilRoot {
		t.Errorf("perfil = %q, esperado root", recarregado.Perfil)
	}
}

func TestRecuperacaoDeSenha(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]string{"email": "maria@boycell.com.br"})
	req := httptest.NewRequest("POST", "/api/auth/recover", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Recover(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	recarregado, err := h.Repository.BuscarPorID(db, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if recarregado.TokenRecuperacao == "" || recarregado.TokenExpiraEm == nil {
		t.Fatal("token de recuperação não gravado")
	}

	// confirma com o token e troca a senha
	body, _ = json.Marshal(map[string]string{"token": recarregado.TokenRecuperacao, "novaSenha": "novaSenha1"})
	req = httptest.NewRequest("POST", "/api/auth/recover/confirm", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	h.RecoverConfirm(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("confirm: status = %d: %s", rec.Code, rec.Body.String())
	}
	recarregado, _ = h.Repository.BuscarPorID(db, u.ID)
	if !utils.VerificarSenha(recarregado.Senha, "novaSenha1") {
		t.Error("senha não trocada")
	}
	if recarregado.TokenRecuperacao != "" {
		t.Error("token deveria ser consumido")
	}
}

func TestRecuperacaoTokenExpirado(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	expirado := time.Now().Add(-1 * time.Minute)
	u.TokenRecuperacao = "token-antigo"
	u.TokenExpiraEm = &expirado
	if err := db.Save(u).Error; err != nil {
		t.Fatal(err)
	}

	body, _ := json.Marshal(map[string]string{"token": "token-antigo", "novaSenha": "novaSenha1"})
	req := httptest.NewRequest("POST", "/api/auth/recover/confirm", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.RecoverConfirm(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401 para token expirado", rec.Code)
	}
}

func TestResetPassword(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	req := httptest.NewRequest("POST", "/api/users/"+strconv.Itoa(int(u.ID))+"/reset-password", bytes.NewReader([]byte("{}")))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.ResetPassword(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		SenhaTemporaria string `json:"senhaTemporaria"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.SenhaTemporaria == "" {
		t.Fatal("senha temporária não retornada")
	}

	recarregado, _ := h.Repository.BuscarPorID(db, u.ID)
	if !recarregado.PrecisaRedefinirSenha {
		t.Error("usuário deveria estar marcado para redefinir senha")
	}
	if !utils.VerificarSenha(recarregado.Senha, resp.SenhaTemporaria) {
		t.Error("senha temporária não confere com o hash gravado")
	}
}

func TestAtualizarPermissoes(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]map[string]bool{
		"permissoes": {string(auth.PermProdutos): true},
	})
	req := httptest.NewRequest("PUT", "/api/users/1/permissions", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.AtualizarPermissoes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	recarregado, _ := h.Repository.BuscarPorID(db, u.ID)
	if !recarregado.Permissoes[string(auth.PermProdutos)] {
		t.Error("sobrescrita de permissão não gravada")
	}
	// o resto do mapa continua com os padrões do perfil
	if recarregado.Permissoes[string(auth.PermUsuarios)] {
		t.Error("demais flags não deveriam mudar")
	}
}

func TestAtualizarPermissoesChaveDesconhecida(t *testing.T) {
	db := novoBancoTeste(t)
	h := NewHandler(db)
	u := criarUsuarioTeste(t, db, "Maria", "maria@boycell.com.br", "senha123", auth.PerfilVendedor)

	body, _ := json.Marshal(map[string]map[string]bool{
		"permissoes": {"superpoderes": true},
	})
	req := httptest.NewRequest("PUT", "/api/users/1/permissions", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(int(u.ID))})
	rec := httptest.NewRecorder()
	h.AtualizarPermissoes(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, esperado 400 para permissão desconhecida", rec.Code)
	}
}
