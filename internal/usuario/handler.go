package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Boycell/api-vendas/internal/auth"
	"github.com/Boycell/api-vendas/internal/notificacao"
	"github.com/Boycell/api-vendas/internal/utils"
	"github.com/google/uuid"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"`
}

type recoverRequest struct {
	Email string `json:"email"`
}

type recoverConfirmRequest struct {
	Token     string `json:"token"`
	NovaSenha string `json:"novaSenha"`
}

type resetPasswordRequest struct {
	NovaSenha string `json:"novaSenha"`
}

type permissoesRequest struct {
	Permissoes map[string]bool `json:"permissoes"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

func perfilValido(p string) bool {
	return p == auth.PerfilRoot || p == auth.PerfilAdmin || p == auth.PerfilVendedor
}

// Login gera um JWT para credenciais válidas.
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.Nome, user.Perfil, user.Permissoes)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"token":                 token,
		"usuario":               user,
		"precisaRedefinirSenha": user.PrecisaRedefinirSenha,
	})
}

// Recover inicia a recuperação de senha: gera um token com validade de 30
// minutos e dispara a notificação. A resposta é sempre genérica para não
// revelar quais e-mails existem.
// POST /api/auth/recover
func (h *Handler) Recover(w http.ResponseWriter, r *http.Request) {
	var req recoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if user, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		expira := time.Now().Add(30 * time.Minute)
		user.TokenRecuperacao = uuid.NewString()
		user.TokenExpiraEm = &expira
		if err := h.Repository.Salvar(h.DB, user); err == nil {
			go notificacao.EnviarRecuperacaoSenha(user.Email, user.TokenRecuperacao)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"mensagem": "se o e-mail existir, as instruções de recuperação foram enviadas",
	})
}

// RecoverConfirm troca a senha a partir de um token de recuperação válido.
// POST /api/auth/recover/confirm
func (h *Handler) RecoverConfirm(w http.ResponseWriter, r *http.Request) {
	var req recoverConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Token == "" || len(req.NovaSenha) < 6 {
		http.Error(w, "token e senha de no mínimo 6 caracteres são obrigatórios", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorTokenRecuperacao(h.DB, req.Token)
	if err != nil || user.TokenExpiraEm == nil || time.Now().After(*user.TokenExpiraEm) {
		http.Error(w, "token de recuperação inválido ou expirado", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	user.Senha = hash
	user.TokenRecuperacao = ""
	user.TokenExpiraEm = nil
	user.PrecisaRedefinirSenha = false

	if err := h.Repository.Salvar(h.DB, user); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("senha redefinida com sucesso"))
}

// Registrar cadastra novo usuário com as permissões padrão do perfil.
// POST /api/users/register
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Email) == "" {
		http.Error(w, "nome e e-mail são obrigatórios", http.StatusBadRequest)
		return
	}
	if len(req.Senha) < 6 {
		http.Error(w, "senha deve ter no mínimo 6 caracteres", http.StatusBadRequest)
		return
	}
	if req.Perfil == "" {
		req.Perfil = auth.PerfilVendedor
	}
	if !perfilValido(req.Perfil) {
		http.Error(w, "perfil inválido", http.StatusBadRequest)
		return
	}
	// somente root cria outro root
	if req.Perfil == auth.PerfilRoot {
		if perfil, _ := r.Context().Value(auth.CtxPerfil).(string); perfil != auth.PerfilRoot {
			http.Error(w, "somente root pode criar usuário root", http.StatusForbidden)
			return
		}
	}

	if _, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		http.Error(w, "já existe usuário com esse e-mail", http.StatusConflict)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:       req.Nome,
		Email:      req.Email,
		Senha:      hash,
		Perfil:     req.Perfil,
		Permissoes: auth.PermissoesPara(req.Perfil),
	}
	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Listar retorna todos os usuários.
// GET /api/users
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(usuarios)
}

// Atualizar altera nome, e-mail e perfil. Mudança de perfil recalcula as
// permissões a partir da tabela padrão.
// PUT /api/users/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	// somente root mexe em usuário root ou promove alguém a root
	if existente.Perfil == auth.PerfilRoot || req.Perfil == auth.PerfilRoot {
		if perfil, _ := r.Context().Value(auth.CtxPerfil).(string); perfil != auth.PerfilRoot {
			http.Error(w, "somente root pode alterar usuário root", http.StatusForbidden)
			return
		}
	}
	if req.Nome != "" {
		existente.Nome = req.Nome
	}
	if req.Email != "" {
		existente.Email = req.Email
	}
	if req.Perfil != "" && req.Perfil != existente.Perfil {
		if !perfilValido(req.Perfil) {
			http.Error(w, "perfil inválido", http.StatusBadRequest)
			return
		}
		existente.Perfil = req.Perfil
		existente.Permissoes = auth.PermissoesPara(req.Perfil)
	}

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// Deletar remove um usuário. Somente root.
// DELETE /api/users/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	userID, _ := r.Context().Value(auth.CtxUserID).(uint)
	if uint(id) == userID {
		http.Error(w, "não é possível excluir o próprio usuário", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("usuário excluído com sucesso"))
}

// ResetPassword gera uma senha temporária e marca o usuário para redefinir
// no próximo login.
// POST /api/users/{id}/reset-password
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	user, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	var req resetPasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	senha := req.NovaSenha
	if senha == "" {
		senha, err = utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha", http.StatusInternalServerError)
			return
		}
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	user.Senha = hash
	user.PrecisaRedefinirSenha = true

	if err := h.Repository.Salvar(h.DB, user); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"senhaTemporaria": senha})
}

// AtualizarPermissoes sobrescreve flags individuais de um usuário não-root.
// Somente root. As flags valem a partir do próximo login.
// PUT /api/users/{id}/permissions
func (h *Handler) AtualizarPermissoes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	user, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	if user.Perfil == auth.PerfilRoot {
		http.Error(w, "permissões de root não podem ser alteradas", http.StatusBadRequest)
		return
	}

	var req permissoesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if user.Permissoes == nil {
		user.Permissoes = auth.PermissoesPara(user.Perfil)
	}
	for chave, valor := range req.Permissoes {
		conhecida := false
		for _, p := range auth.Permissoes {
			if string(p) == chave {
				conhecida = true
				break
			}
		}
		if !conhecida {
			http.Error(w, "permissão desconhecida: "+chave, http.StatusBadRequest)
			return
		}
		user.Permissoes[chave] = valor
	}

	if err := h.Repository.Salvar(h.DB, user); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
