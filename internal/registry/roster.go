package registry

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go-football-fixtures/internal/espn"
	"go-football-fixtures/internal/fetch"
	"go-football-fixtures/internal/logx"
	"go-football-fixtures/internal/workpool"
)

// RosterSource é a parte do cliente ESPN usada para montar o elenco.
type RosterSource interface {
	LeagueTeams(ctx context.Context, slug string) (espn.RefList, fetch.Outcome)
	Team(ctx context.Context, ref string) (espn.TeamDetail, fetch.Outcome)
}

// LoadPrimaryLeague busca o elenco atual da liga e resolve cada time em paralelo
// (pool limitado, espera todos). Falha de um time só o omite; falha da listagem
// ou elenco vazio devolvem o reserva estático. Nunca devolve erro.
func LoadPrimaryLeague(ctx context.Context, src RosterSource, slug string, fallback []string, workers int) ([]string, string) {
	refs, o := src.LeagueTeams(ctx, slug)
	if o.Absent() {
		logx.Warnf("elenco da liga %s indisponível, usando lista estática: %v", slug, o)
		return fallback, SourceStatic
	}
	names := resolveTeams(ctx, src, refs.Refs(), workers)
	if len(names) == 0 {
		logx.Warnf("elenco da liga %s veio vazio, usando lista estática", slug)
		return fallback, SourceStatic
	}
	logx.Infof("elenco da liga %s carregado: %d times", slug, len(names))
	return names, SourceDynamic
}

func resolveTeams(ctx context.Context, src RosterSource, refs []string, workers int) []string {
	var (
		mu  sync.Mutex
		set = make(map[string]struct{}, len(refs))
	)
	workpool.ForEach(workers, len(refs), func(i int) {
		t, o := src.Team(ctx, refs[i])
		if o.Absent() {
			logx.Debugf("time ignorado no elenco: %v", o)
			return
		}
		name := strings.TrimSpace(t.Label())
		if name == "" {
			return
		}
		mu.Lock()
		set[name] = struct{}{}
		mu.Unlock()
	})
	return sorted(set)
}

// sorted deixa a saída independente da ordem de conclusão.
func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
