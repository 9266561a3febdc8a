// Pacote registry mantém os times "de interesse" de uma execução:
// elenco da liga principal (dinâmico, com reserva estático), clubes populares e
// a tabela de tradução das seleções. Montado uma vez e só lido depois.
package registry

import (
	"strings"

	"go-football-fixtures/internal/model"
	"go-football-fixtures/internal/normalize"
)

// Origem do elenco principal.
const (
	SourceDynamic = "dynamic"
	SourceStatic  = "static"
)

// Registry é imutável após New.
type Registry struct {
	primary map[string]struct{}
	popular map[string]struct{}
	tracked []model.TrackedTeam
	source  string
}

// New normaliza os nomes uma vez; source indica de onde veio o elenco principal.
func New(primary, popular []string, tracked []model.TrackedTeam, source string) *Registry {
	return &Registry{
		primary: toSet(primary),
		popular: toSet(append(append([]string(nil), popular...), nationalNames(tracked)...)),
		tracked: append([]model.TrackedTeam(nil), tracked...),
		source:  source,
	}
}

// nationalNames inclui canônico e localizado, também das seleções sem ID.
func nationalNames(tracked []model.TrackedTeam) []string {
	out := make([]string, 0, 2*len(tracked))
	for _, t := range tracked {
		out = append(out, t.Name, t.Localized)
	}
	return out
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if k := normalize.Name(strings.TrimSpace(n)); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

// IsTracked: nome normalizado no elenco principal ou na lista de populares/seleções.
func (r *Registry) IsTracked(display string) bool {
	k := normalize.Name(strings.TrimSpace(display))
	if k == "" {
		return false
	}
	if _, ok := r.primary[k]; ok {
		return true
	}
	_, ok := r.popular[k]
	return ok
}

// Translate troca o nome canônico (igualdade sem caixa) pelo localizado.
func (r *Registry) Translate(display string) string {
	for _, t := range r.tracked {
		if t.Localized != "" && strings.EqualFold(t.Name, display) {
			return t.Localized
		}
	}
	return display
}

// Tracked devolve as seleções com ID resolvido, na ordem do catálogo.
func (r *Registry) Tracked() []model.TrackedTeam {
	var out []model.TrackedTeam
	for _, t := range r.tracked {
		if t.Resolved() {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) Source() string { return r.source }

// Stats devolve os tamanhos dos conjuntos (para log).
func (r *Registry) Stats() (primary, popular, tracked int) {
	return len(r.primary), len(r.popular), len(r.tracked)
}
