// Pacote extract converte um evento bruto da ESPN no Fixture canônico:
// mandante/visitante, escudos, competição, transmissão e horário, com tradução dos nomes de seleções.
package extract

import (
	"strings"
	"time"

	"go-football-fixtures/internal/espn"
	"go-football-fixtures/internal/model"
)

// Translator troca o nome de exibição pelo nome localizado (ou devolve o mesmo).
type Translator interface {
	Translate(display string) string
}

// Identity não traduz nada.
type Identity struct{}

func (Identity) Translate(s string) string { return s }

// layouts aceitos para a data do evento; a ESPN costuma omitir os segundos.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// Extract devolve (fixture, true) ou ausência quando falta competição,
// falta um dos lados, falta nome ou a data não é legível.
func Extract(ev espn.Event, tr Translator) (model.Fixture, bool) {
	if len(ev.Competitions) == 0 {
		return model.Fixture{}, false
	}
	comp := ev.Competitions[0]
	if len(comp.Competitors) < 2 {
		return model.Fixture{}, false
	}
	if tr == nil {
		tr = Identity{}
	}
	home, away := sides(comp.Competitors)
	f := model.Fixture{
		HomeTeam:    team(home.Team, tr),
		AwayTeam:    team(away.Team, tr),
		Competition: competitionLabel(ev.Leagues),
		Broadcast:   Broadcast(comp.Broadcasts, comp.GeoBroadcasts, ev.Broadcasts),
	}
	if !f.Valid() {
		return model.Fixture{}, false
	}
	raw := ev.Date
	if raw == "" {
		raw = comp.Date
	}
	start, ok := ParseTime(raw)
	if !ok {
		return model.Fixture{}, false
	}
	f.StartDate = start
	return f, true
}

// sides usa homeAway quando existe; senão a posição (0 = mandante, 1 = visitante).
func sides(cs []espn.Competitor) (home, away espn.Competitor) {
	hi, ai := -1, -1
	for i, c := range cs {
		switch strings.ToLower(c.HomeAway) {
		case "home":
			if hi < 0 {
				hi = i
			}
		case "away":
			if ai < 0 {
				ai = i
			}
		}
	}
	// sem marcação: posição, sem repetir o mesmo competidor nos dois lados
	if hi < 0 {
		hi = 0
		if ai == 0 {
			hi = 1
		}
	}
	if ai < 0 {
		ai = 1
		if hi == 1 {
			ai = 0
		}
	}
	return cs[hi], cs[ai]
}

func team(t espn.Team, tr Translator) model.Team {
	name := strings.TrimSpace(t.DisplayName)
	if name == "" {
		name = strings.TrimSpace(t.Name)
	}
	if name != "" {
		name = tr.Translate(name)
	}
	return model.Team{Name: name, Logo: logo(t)}
}

// logo: campo único, depois o primeiro da lista, senão vazio.
func logo(t espn.Team) string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}

func competitionLabel(leagues []espn.League) string {
	if len(leagues) == 0 {
		return ""
	}
	l := leagues[0]
	switch {
	case l.Name != "":
		return l.Name
	case l.ShortName != "":
		return l.ShortName
	default:
		return l.Abbreviation
	}
}

// Broadcast varre as listas na ordem recebida (competição antes de evento) e
// devolve o primeiro nome resolvível; canais concatenados ficam só com o primeiro.
func Broadcast(lists ...[]espn.Broadcast) string {
	for _, list := range lists {
		for _, b := range list {
			if name := broadcastName(b); name != "" {
				return firstChannel(name)
			}
		}
	}
	return ""
}

func broadcastName(b espn.Broadcast) string {
	if b.Media != nil {
		if s := strings.TrimSpace(b.Media.ShortName); s != "" {
			return s
		}
		if s := strings.TrimSpace(b.Media.Name); s != "" {
			return s
		}
	}
	for _, n := range b.Names {
		if s := strings.TrimSpace(n); s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(b.ShortName); s != "" {
		return s
	}
	return strings.TrimSpace(b.Name)
}

var channelSeparators = []string{"/", ",", "|", " e "}

func firstChannel(s string) string {
	cut := len(s)
	for _, sep := range channelSeparators {
		if i := strings.Index(s, sep); i > 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(s[:cut])
}

// ParseTime aceita RFC3339 e a precisão de minutos da ESPN; devolve UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
