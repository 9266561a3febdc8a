// Pacote catalog carrega as tabelas estáticas (catalog.yaml):
// competições (slug + rótulo), seleções acompanhadas, clubes populares e o elenco reserva da liga principal.
// Uma cópia padrão vai embutida no binário; -catalog/CATALOG substitui por um arquivo.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go-football-fixtures/internal/model"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Catalog reúne os dados estáticos injetados no registro e no orquestrador.
type Catalog struct {
	Competitions  []Competition       `yaml:"competitions"`
	NationalTeams []model.TrackedTeam `yaml:"national_teams"`
	PopularTeams  []string            `yaml:"popular_teams"`
	PrimaryRoster []string            `yaml:"primary_roster"`
}

// Competition é um slug consultado no placar da ESPN.
type Competition struct {
	Slug  string `yaml:"slug"`
	Label string `yaml:"label"`
}

// Default devolve o catálogo embutido.
func Default() (*Catalog, error) {
	c, err := parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Load lê um catalog.yaml do disco.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if len(c.Competitions) == 0 {
		return nil, errors.New("at least one competition is required")
	}
	for i, comp := range c.Competitions {
		if strings.TrimSpace(comp.Slug) == "" {
			return nil, fmt.Errorf("competitions[%d]: empty slug", i)
		}
	}
	return &c, nil
}

// Slugs devolve os slugs na ordem do arquivo (a ordem define qual fonte "vê" o jogo primeiro).
func (c *Catalog) Slugs() []string {
	out := make([]string, 0, len(c.Competitions))
	for _, comp := range c.Competitions {
		out = append(out, comp.Slug)
	}
	return out
}

// Label busca o rótulo do slug (sem diferenciar maiúsculas); vazio se não houver.
func (c *Catalog) Label(slug string) string {
	if c == nil || slug == "" {
		return ""
	}
	for _, comp := range c.Competitions {
		if comp.Slug == slug {
			return comp.Label
		}
	}
	lower := strings.ToLower(slug)
	for _, comp := range c.Competitions {
		if strings.ToLower(comp.Slug) == lower {
			return comp.Label
		}
	}
	return ""
}
