// Pacote config carrega e valida a configuração (settings.yaml),
// expondo Config com valores padrão e checagem por tags (validator).
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // America/Bahia mesmo em hosts sem zoneinfo

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	LayoutSplit = "split" // {today, future}
	LayoutFlat  = "flat"  // lista simples
)

// Mantém só os campos usados hoje (KISS/YAGNI).
type Config struct {
	Timezone      string      `yaml:"TIMEZONE" validate:"required"`
	LookaheadDays int         `yaml:"LOOKAHEAD_DAYS" validate:"gte=0,lte=30"`
	OutputLayout  string      `yaml:"OUTPUT_LAYOUT" validate:"oneof=split flat"`
	PrimaryLeague string      `yaml:"PRIMARY_LEAGUE" validate:"required"`
	Catalog       string      `yaml:"CATALOG"`
	ESPN          ESPN        `yaml:"ESPN"`
	Fallback      Fallback    `yaml:"FALLBACK"`
	Concurrency   Concurrency `yaml:"CONCURRENCY"`
	Proxy         Proxy       `yaml:"PROXY"`
	LogLevel      string      `yaml:"LOG_LEVEL"`
	LogFormat     string      `yaml:"LOG_FORMAT" validate:"oneof=text json pretty"`
	LogLocale     string      `yaml:"LOG_LOCALE"` // pt-BR|en
	LogColor      string      `yaml:"LOG_COLOR" validate:"oneof=auto always never"`
}

type ESPN struct {
	SiteURL string `yaml:"site_url" validate:"required,url"`
	CoreURL string `yaml:"core_url" validate:"required,url"`
}

// Fallback descreve a fonte alternativa usada quando a varredura não acha jogos hoje.
type Fallback struct {
	// Enabled é ponteiro para distinguir "ausente" (liga) de "false" explícito
	Enabled      *bool  `yaml:"enabled"`
	URL          string `yaml:"url" validate:"required,url"`
	TournamentID int    `yaml:"tournament_id" validate:"gt=0"`
	Label        string `yaml:"label"`
}

type Concurrency struct {
	Fetch   int           `yaml:"fetch" validate:"gte=1,lte=64"`
	Retry   int           `yaml:"retry" validate:"gte=0,lte=5"`
	Timeout time.Duration `yaml:"timeout"`
}

type Proxy struct {
	HTTP  string `yaml:"http" validate:"omitempty,url"`
	HTTPS string `yaml:"https" validate:"omitempty,url"`
}

var validate = validator.New()

// Load lê o YAML, aplica padrões e valida.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	// -1 marca LOOKAHEAD_DAYS ausente; yaml.v3 não toca em campos que não aparecem
	c := Config{LookaheadDays: -1}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// Default devolve a configuração padrão (sem arquivo).
func Default() *Config {
	c := &Config{LookaheadDays: -1}
	if err := c.Validate(); err != nil {
		// padrão inválido é bug de código, não de entrada
		panic(fmt.Sprintf("config: default settings invalid: %v", err))
	}
	return c
}

// Validate preenche padrões e valida; evita checagens espalhadas pelo código de negócio.
// LOOKAHEAD_DAYS < 0 é tratado como ausente (7); 0 é válido (só hoje).
func (c *Config) Validate() error {
	if c.Timezone == "" {
		c.Timezone = "America/Bahia"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	if c.LookaheadDays < 0 {
		c.LookaheadDays = 7
	}
	c.OutputLayout = strings.ToLower(strings.TrimSpace(c.OutputLayout))
	if c.OutputLayout == "" {
		c.OutputLayout = LayoutSplit
	}
	if c.PrimaryLeague == "" {
		c.PrimaryLeague = "bra.1"
	}
	if c.ESPN.SiteURL == "" {
		c.ESPN.SiteURL = "https://site.api.espn.com"
	}
	if c.ESPN.CoreURL == "" {
		c.ESPN.CoreURL = "https://sports.core.api.espn.com"
	}
	if c.Fallback.Enabled == nil {
		on := true
		c.Fallback.Enabled = &on
	}
	if c.Fallback.URL == "" {
		c.Fallback.URL = "https://api.sofascore.com"
	}
	if c.Fallback.TournamentID == 0 {
		c.Fallback.TournamentID = 325
	}
	if c.Fallback.Label == "" {
		c.Fallback.Label = "Brasileirão Série A"
	}
	if c.Concurrency.Fetch <= 0 {
		c.Concurrency.Fetch = 8
	}
	if c.Concurrency.Retry < 0 {
		c.Concurrency.Retry = 0
	}
	if c.Concurrency.Timeout <= 0 {
		c.Concurrency.Timeout = 25 * time.Second
	}
	if c.LogFormat == "" {
		c.LogFormat = "pretty"
	}
	if c.LogLocale == "" {
		c.LogLocale = "pt-BR"
	}
	if c.LogColor == "" {
		c.LogColor = "auto"
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// FallbackEnabled lê o ponteiro com padrão ligado.
func (c *Config) FallbackEnabled() bool {
	return c.Fallback.Enabled == nil || *c.Fallback.Enabled
}

// Location devolve o fuso de referência (já validado).
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
