package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName_AccentAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, Name("sao paulo"), Name("São Paulo"))
	assert.Equal(t, "gremio", Name("GRÊMIO"))
	assert.Equal(t, "atletico mineiro", Name("Atlético Mineiro"))
	assert.Equal(t, "penarol", Name("Peñarol"))
	assert.Equal(t, "ceara", Name("Ceará"))
}

func TestName_Idempotent(t *testing.T) {
	for _, in := range []string{"São Paulo", "Vitória", "Bayern München", "", "  Red Bull Bragantino "} {
		once := Name(in)
		assert.Equal(t, once, Name(once), "input %q", in)
	}
}

func TestName_KeepsSpacing(t *testing.T) {
	// Name não mexe em espaços: a comparação de conjuntos usa o nome inteiro
	assert.Equal(t, "vasco da gama", Name("Vasco da Gama"))
	assert.Equal(t, " vasco", Name(" Vasco"))
}

func TestKey_CollapsesWhitespaceAndCompatForms(t *testing.T) {
	assert.Equal(t, "sao paulo", Key("  São   Paulo "))
	assert.Equal(t, Key("Paris Saint-Germain"), Key("Paris Saint‑Germain"))
	assert.Equal(t, Key(Key("Olympique de Marseille")), Key("Olympique de Marseille"))
}
