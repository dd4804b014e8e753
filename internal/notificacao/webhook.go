package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
)

func enviar(payload map[string]string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// EnviarAlertaEstoqueBaixo avisa que um produto ficou abaixo do estoque
// mínimo após uma venda.
func EnviarAlertaEstoqueBaixo(produto string, estoqueAtual, estoqueMinimo int) {
	enviar(map[string]string{
		"tipo":     "estoque_baixo",
		"mensagem": "Alerta: produto atingiu o estoque mínimo",
		"produto":  produto,
		"estoque":  strconv.Itoa(estoqueAtual),
		"minimo":   strconv.Itoa(estoqueMinimo),
	})
}

// EnviarRecuperacaoSenha encaminha o token de recuperação para o canal de
// notificação configurado.
func EnviarRecuperacaoSenha(email, token string) {
	enviar(map[string]string{
		"tipo":     "recuperacao_senha",
		"mensagem": "Solicitação de recuperação de senha",
		"email":    email,
		"token":    token,
	})
}
