// Pacote normalize canoniza nomes de times para comparação:
// - remove diacríticos (NFD + descarte de marcas combinantes)
// - converte para minúsculas
// Nomes de exibição nunca são comparados diretamente; as fontes divergem em acentuação e caixa.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Name remove acentos e caixa: "São Paulo" -> "sao paulo".
// Idempotente: Name(Name(x)) == Name(x).
func Name(s string) string {
	// transform.Chain mantém estado, por isso é criado a cada chamada
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	return strings.ToLower(apply(t, s))
}

// Key é a forma usada nas chaves de deduplicação: além de Name, aplica
// compatibilidade (NFKD), troca qualquer traço por "-" e colapsa espaços.
func Key(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Map(dash), norm.NFC)
	return strings.Join(strings.Fields(strings.ToLower(apply(t, s))), " ")
}

func apply(t transform.Transformer, s string) string {
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func dash(r rune) rune {
	if unicode.Is(unicode.Pd, r) {
		return '-'
	}
	return r
}
