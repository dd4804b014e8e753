package validacao

import "testing"

func TestValidarDocumentoCPF(t *testing.T) {
	casos := []struct {
		doc string
		ok  bool
	}{
		{"529.982.247-25", true},  // CPF válido com máscara
		{"52998224725", true},     // mesmo CPF sem máscara
		{"111.111.111-11", false}, // dígitos repetidos
		{"00000000000", false},
		{"529.982.247-26", false}, // dígito verificador errado
		{"123", false},
		{"", false},
	}
	for _, c := range casos {
		if got := ValidarDocumento(c.doc); got != c.ok {
			t.Errorf("ValidarDocumento(%q) = %v, esperado %v", c.doc, got, c.ok)
		}
	}
}

func TestValidarDocumentoCNPJ(t *testing.T) {
	// CNPJ: qualquer sequência de 14 dígitos é aceita.
	if !ValidarDocumento("12.345.678/0001-90") {
		t.Error("CNPJ de 14 dígitos deveria ser aceito")
	}
	if ValidarDocumento("12.345.678/0001") {
		t.Error("documento de 12 dígitos deveria ser rejeitado")
	}
}

func TestValidarTelefone(t *testing.T) {
	casos := []struct {
		tel string
		ok  bool
	}{
		{"(11) 98765-4321", true},
		{"1187654321", true},
		{"987654321", false},
		{"", false},
	}
	for _, c := range casos {
		if got := ValidarTelefone(c.tel); got != c.ok {
			t.Errorf("ValidarTelefone(%q) = %v, esperado %v", c.tel, got, c.ok)
		}
	}
}
