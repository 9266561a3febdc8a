// Pacote model define o formato exportado (jogo/time/documento) e as seleções acompanhadas.
package model

import (
	"sort"
	"time"
)

// Team é um lado da partida.
type Team struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Fixture é a unidade canônica de saída: uma partida com times, competição e transmissão resolvidos.
type Fixture struct {
	StartDate   time.Time `json:"startDate"`
	HomeTeam    Team      `json:"homeTeam"`
	AwayTeam    Team      `json:"awayTeam"`
	Competition string    `json:"competition"`
	Broadcast   string    `json:"broadcast"`
}

// Valid exige os dois nomes preenchidos.
func (f Fixture) Valid() bool {
	return f.HomeTeam.Name != "" && f.AwayTeam.Name != ""
}

// TrackedTeam é uma seleção acompanhada. ExternalID <= 0 indica ID ainda não descoberto:
// a seleção continua valendo para tradução, mas não tem eventos buscados.
type TrackedTeam struct {
	ExternalID int    `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	Localized  string `yaml:"localized" json:"localized"`
}

// Resolved indica se a seleção tem ID utilizável.
func (t TrackedTeam) Resolved() bool { return t.ExternalID > 0 }

// Document é o topo do games.json.
type Document struct {
	Today  []Fixture `json:"today"`
	Future []Fixture `json:"future"`
}

// Flat concatena hoje + futuros (layout de lista simples).
func (d Document) Flat() []Fixture {
	out := make([]Fixture, 0, len(d.Today)+len(d.Future))
	out = append(out, d.Today...)
	return append(out, d.Future...)
}

// SortByStart ordena de forma estável por horário de início.
func SortByStart(list []Fixture) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
}
