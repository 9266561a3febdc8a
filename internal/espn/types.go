package espn

import (
	"bytes"

	"github.com/bytedance/sonic"
)

// Formatos de resposta da ESPN. Só os campos lidos pelo extrator;
// o restante do payload é ignorado.

// Scoreboard traz os eventos que decodificaram; Malformed conta os que não.
type Scoreboard struct {
	Events    []Event `json:"events"`
	Malformed int     `json:"-"`
}

// rawScoreboard adia a decodificação de cada evento: um evento ruim não derruba o placar.
type rawScoreboard struct {
	Events []sonic.NoCopyRawMessage `json:"events"`
}

func (r rawScoreboard) decode() Scoreboard {
	sb := Scoreboard{Events: make([]Event, 0, len(r.Events))}
	for _, raw := range r.Events {
		var ev Event
		if err := sonic.Unmarshal(raw, &ev); err != nil {
			sb.Malformed++
			continue
		}
		sb.Events = append(sb.Events, ev)
	}
	return sb
}

// ID aceita string ou número (a ESPN usa os dois).
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*id = ID(data)
	default:
		*id = ""
	}
	return nil
}

// Broadcasts aceita lista; a core API manda {"$ref": ...}, que vira lista vazia.
type Broadcasts []Broadcast

func (b *Broadcasts) UnmarshalJSON(data []byte) error {
	var list []Broadcast
	if err := sonic.Unmarshal(data, &list); err != nil {
		*b = nil
		return nil
	}
	*b = list
	return nil
}

type Event struct {
	ID           ID            `json:"id"`
	Date         string        `json:"date"`
	Name         string        `json:"name"`
	Leagues      []League      `json:"leagues"`
	Competitions []Competition `json:"competitions"`
	Broadcasts   Broadcasts    `json:"broadcasts"`
}

type League struct {
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
}

type Competition struct {
	Date          string       `json:"date"`
	Competitors   []Competitor `json:"competitors"`
	Broadcasts    Broadcasts   `json:"broadcasts"`
	GeoBroadcasts Broadcasts   `json:"geoBroadcasts"`
}

type Competitor struct {
	HomeAway string `json:"homeAway"`
	Team     Team   `json:"team"`
}

type Team struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Logo        string `json:"logo"`
	Logos       []Logo `json:"logos"`
}

type Logo struct {
	Href string `json:"href"`
}

// Broadcast cobre os dois formatos vistos: placar do site (names[]) e
// geoBroadcasts/core API (media{shortName,name}).
type Broadcast struct {
	Media     *Media   `json:"media"`
	Names     []string `json:"names"`
	ShortName string   `json:"shortName"`
	Name      string   `json:"name"`
}

type Media struct {
	ShortName string `json:"shortName"`
	Name      string `json:"name"`
}

// RefList é a página de referências da core API ({"items":[{"$ref":...}]}).
type RefList struct {
	Count int   `json:"count"`
	Items []Ref `json:"items"`
}

type Ref struct {
	Ref string `json:"$ref"`
}

// Refs devolve os links não vazios.
func (l RefList) Refs() []string {
	out := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		if it.Ref != "" {
			out = append(out, it.Ref)
		}
	}
	return out
}

// TeamDetail é o time resolvido a partir de um $ref do elenco.
type TeamDetail struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Label prefere displayName.
func (t TeamDetail) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}
