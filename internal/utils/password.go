package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// HashSenha produz o hash bcrypt (custo padrão) que vai para o banco.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha responde se a senha em texto puro bate com o hash gravado.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// GerarSenhaTemporaria gera uma senha aleatória segura de 12 caracteres.
func GerarSenhaTemporaria() (string, error) {
	return CodigoAleatorio(12)
}

// CodigoAleatorio gera uma sequência alfanumérica aleatória via crypto/rand.
func CodigoAleatorio(tamanho int) (string, error) {
	const chars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	result := make([]byte, tamanho)
	for i := 0; i < tamanho; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}
