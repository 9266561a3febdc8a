// Pacote espn monta as consultas à API pública da ESPN (site + core):
// placar por competição/data, eventos de um time num intervalo, detalhe de evento e elenco da liga.
// Cada chamada devolve o payload e um fetch.Outcome; ausência nunca é erro.
package espn

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go-football-fixtures/internal/fetch"
)

// Getter é o que o cliente precisa do transporte.
type Getter interface {
	GetJSON(ctx context.Context, rawURL string, target any) fetch.Outcome
}

type Client struct {
	get     Getter
	siteURL string
	coreURL string
}

// New recebe as bases (produção ou httptest).
func New(get Getter, siteURL, coreURL string) *Client {
	return &Client{
		get:     get,
		siteURL: strings.TrimRight(siteURL, "/"),
		coreURL: strings.TrimRight(coreURL, "/"),
	}
}

// Scoreboard consulta o placar de um slug numa data (YYYYMMDD).
func (c *Client) Scoreboard(ctx context.Context, slug, date string) (Scoreboard, fetch.Outcome) {
	u := fmt.Sprintf("%s/apis/site/v2/sports/soccer/%s/scoreboard?dates=%s",
		c.siteURL, url.PathEscape(slug), url.QueryEscape(date))
	var raw rawScoreboard
	o := c.get.GetJSON(ctx, u, &raw)
	if o.Absent() {
		return Scoreboard{}, o
	}
	return raw.decode(), o
}

// TeamEvents lista referências de eventos do time entre from e to (YYYY-MM-DD, inclusivo).
func (c *Client) TeamEvents(ctx context.Context, teamID int, from, to string) (RefList, fetch.Outcome) {
	q := url.Values{}
	q.Set("startDate", from)
	q.Set("endDate", to)
	u := fmt.Sprintf("%s/v2/sports/soccer/teams/%d/events?%s", c.coreURL, teamID, q.Encode())
	var refs RefList
	o := c.get.GetJSON(ctx, u, &refs)
	return refs, o
}

// EventDetail segue um $ref de evento.
func (c *Client) EventDetail(ctx context.Context, ref string) (Event, fetch.Outcome) {
	var ev Event
	o := c.get.GetJSON(ctx, ref, &ev)
	return ev, o
}

// LeagueTeams lista as referências dos times de uma liga.
func (c *Client) LeagueTeams(ctx context.Context, slug string) (RefList, fetch.Outcome) {
	u := fmt.Sprintf("%s/v2/sports/soccer/leagues/%s/teams?limit=300", c.coreURL, url.PathEscape(slug))
	var refs RefList
	o := c.get.GetJSON(ctx, u, &refs)
	return refs, o
}

// Team segue um $ref de time.
func (c *Client) Team(ctx context.Context, ref string) (TeamDetail, fetch.Outcome) {
	var t TeamDetail
	o := c.get.GetJSON(ctx, ref, &t)
	return t, o
}
