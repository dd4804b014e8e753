package validacao

import "strings"

// somenteDigitos descarta máscara (pontos, traços, barras) e mantém 0-9.
func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidarDocumento aceita CPF (11 dígitos, com dígitos verificadores) ou
// CNPJ (14 dígitos). Qualquer outro tamanho é rejeitado.
func ValidarDocumento(doc string) bool {
	d := somenteDigitos(doc)
	switch len(d) {
	case 11:
		return validarCPF(d)
	case 14:
		return true
	default:
		return false
	}
}

// validarCPF aplica o cálculo de módulo 11 dos dois dígitos verificadores.
// CPFs com todos os dígitos iguais (111.111.111-11 etc.) passam no cálculo
// mas são inválidos na Receita, então são rejeitados explicitamente.
func validarCPF(d string) bool {
	iguais := true
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			iguais = false
			break
		}
	}
	if iguais {
		return false
	}

	digito := func(tam int) int {
		soma := 0
		for i := 0; i < tam; i++ {
			soma += int(d[i]-'0') * (tam + 1 - i)
		}
		resto := (soma * 10) % 11
		if resto == 10 {
			resto = 0
		}
		return resto
	}

	return digito(9) == int(d[9]-'0') && digito(10) == int(d[10]-'0')
}

// ValidarTelefone aceita números com DDD: 10 dígitos (fixo) ou 11 (celular).
func ValidarTelefone(tel string) bool {
	d := somenteDigitos(tel)
	return len(d) == 10 || len(d) == 11
}
