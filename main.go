// Entrada de linha de comando:
// - lê settings.yaml (opcional) e o catálogo de competições/times
// - inicializa log e cliente HTTP (proxy e retentativas)
// - agrega os jogos e grava games.json
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"go-football-fixtures/internal/aggregate"
	"go-football-fixtures/internal/catalog"
	"go-football-fixtures/internal/config"
	"go-football-fixtures/internal/espn"
	"go-football-fixtures/internal/export"
	"go-football-fixtures/internal/fallback"
	"go-football-fixtures/internal/fetch"
	"go-football-fixtures/internal/logx"
	"go-football-fixtures/internal/registry"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to settings.yaml (empty: built-in defaults)")
		catalogPath = flag.String("catalog", "", "path to catalog.yaml (overrides CATALOG; empty: embedded)")
		exportPath  = flag.String("export", "games.json", "output json path")
		layout      = flag.String("layout", "", "output layout: split|flat (overrides OUTPUT_LAYOUT)")
		roster      = flag.String("roster", registry.SourceDynamic, "primary league roster: dynamic|static")
	)
	flag.Parse()

	// 1) configuração e catálogo
	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = c
	}
	if *layout != "" {
		cfg.OutputLayout = *layout
		if err := cfg.Validate(); err != nil {
			log.Fatalf("layout %q: %v", *layout, err)
		}
	}
	if *roster != registry.SourceDynamic && *roster != registry.SourceStatic {
		log.Fatalf("roster %q: want dynamic or static", *roster)
	}
	cat, err := loadCatalog(*catalogPath, cfg)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	// 2) log: nível/formato/idioma/cor
	logx.Init(cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)

	// 3) cliente HTTP (proxy, timeout, retentativas)
	cl, err := fetch.New(fetch.Options{
		ProxyHTTP:  cfg.Proxy.HTTP,
		ProxyHTTPS: cfg.Proxy.HTTPS,
		Timeout:    cfg.Concurrency.Timeout,
		Retry:      cfg.Concurrency.Retry,
	})
	if err != nil {
		log.Fatalf("http client: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var fb aggregate.Fallback
	if cfg.FallbackEnabled() {
		fb = fallback.New(cl, cfg.Fallback.URL, cfg.Fallback.TournamentID, cfg.Fallback.Label)
	}
	run := aggregate.New(cfg, cat, espn.New(cl, cfg.ESPN.SiteURL, cfg.ESPN.CoreURL), fb, aggregate.Options{
		StaticRoster: *roster == registry.SourceStatic,
	})

	// 4) agregação
	logx.Infof("iniciando: %d competições, %d dias à frente, fuso %s", len(cat.Competitions), cfg.LookaheadDays, cfg.Timezone)
	doc, err := run.Run(ctx)
	if err != nil {
		logx.Errorf("execução interrompida: %v", err)
		os.Exit(1)
	}
	logx.Debugf("estatísticas: %v", run.Stats())

	// 5) saída
	if err := export.ToJSON(doc, cfg.OutputLayout, *exportPath); err != nil {
		log.Fatalf("export json: %v", err)
	}
	logx.Infof("gerado %s: %d jogos hoje, %d futuros", filepath.Base(*exportPath), len(doc.Today), len(doc.Future))
}

// loadCatalog: flag > CATALOG da configuração > catálogo embutido.
func loadCatalog(flagPath string, cfg *config.Config) (*catalog.Catalog, error) {
	path := flagPath
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}
