// Pacote fallback é a fonte alternativa, mais estreita, usada só quando a varredura
// das competições não encontra nenhum jogo hoje: eventos agendados do dia, filtrados
// por um torneio fixo. Sem escudos nem transmissão; rótulo de competição fixo.
package fallback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-football-fixtures/internal/espn"
	"go-football-fixtures/internal/fetch"
	"go-football-fixtures/internal/model"
	"go-football-fixtures/internal/window"
)

type scheduled struct {
	Events []event `json:"events"`
}

type event struct {
	ID             int64      `json:"id"`
	StartTimestamp int64      `json:"startTimestamp"`
	Tournament     tournament `json:"tournament"`
	HomeTeam       side       `json:"homeTeam"`
	AwayTeam       side       `json:"awayTeam"`
}

type tournament struct {
	Name             string `json:"name"`
	UniqueTournament struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"uniqueTournament"`
}

type side struct {
	Name string `json:"name"`
}

// Provider consulta /api/v1/sport/football/scheduled-events/{data}.
type Provider struct {
	get          espn.Getter
	baseURL      string
	tournamentID int
	label        string
}

func New(get espn.Getter, baseURL string, tournamentID int, label string) *Provider {
	return &Provider{
		get:          get,
		baseURL:      strings.TrimRight(baseURL, "/"),
		tournamentID: tournamentID,
		label:        label,
	}
}

// Today devolve os jogos do torneio na data de referência da janela.
// Tudo o que vier é tratado como "hoje"; não passa pela janela de dias.
func (p *Provider) Today(ctx context.Context, w window.Window) ([]model.Fixture, fetch.Outcome) {
	u := fmt.Sprintf("%s/api/v1/sport/football/scheduled-events/%s", p.baseURL, w.ISODate(0))
	var s scheduled
	o := p.get.GetJSON(ctx, u, &s)
	if o.Absent() {
		return nil, o
	}
	var out []model.Fixture
	for _, ev := range s.Events {
		if ev.Tournament.UniqueTournament.ID != p.tournamentID {
			continue
		}
		f := model.Fixture{
			StartDate:   time.Unix(ev.StartTimestamp, 0).UTC(),
			HomeTeam:    model.Team{Name: strings.TrimSpace(ev.HomeTeam.Name)},
			AwayTeam:    model.Team{Name: strings.TrimSpace(ev.AwayTeam.Name)},
			Competition: p.label,
		}
		if !f.Valid() || ev.StartTimestamp <= 0 {
			continue
		}
		out = append(out, f)
	}
	model.SortByStart(out)
	return out, o
}
