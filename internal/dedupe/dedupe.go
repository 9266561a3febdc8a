// Pacote dedupe suprime o mesmo jogo vindo de fontes diferentes
// (placar de várias competições/datas e eventos de seleções).
package dedupe

import (
	"time"

	"go-football-fixtures/internal/model"
	"go-football-fixtures/internal/normalize"
)

// Key identifica um jogo real: início (UTC, segundos) + mandante + visitante normalizados.
type Key struct {
	Start int64
	Home  string
	Away  string
}

// KeyOf é determinística; usa os nomes já traduzidos.
func KeyOf(f model.Fixture) Key {
	return Key{
		Start: f.StartDate.UTC().Truncate(time.Second).Unix(),
		Home:  normalize.Key(f.HomeTeam.Name),
		Away:  normalize.Key(f.AwayTeam.Name),
	}
}

// Seen é o conjunto de chaves de uma execução. Não é seguro para uso concorrente:
// só o orquestrador mexe nele.
type Seen struct {
	keys map[Key]struct{}
}

func New() *Seen {
	return &Seen{keys: make(map[Key]struct{})}
}

// IsNew devolve true na primeira vez de uma chave (e a marca); depois, false.
func (s *Seen) IsNew(f model.Fixture) bool {
	k := KeyOf(f)
	if _, ok := s.keys[k]; ok {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

func (s *Seen) Len() int { return len(s.keys) }
