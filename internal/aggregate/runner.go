// Pacote aggregate orquestra uma execução:
// - monta o registro de times (elenco dinâmico ou estático)
// - varre placares por competição × dia e filtra por times acompanhados
// - usa a fonte alternativa quando hoje fica vazio
// - agrega os jogos das seleções acompanhadas
package aggregate

import (
	"context"
	"fmt"
	"time"

	"go-football-fixtures/internal/catalog"
	"go-football-fixtures/internal/config"
	"go-football-fixtures/internal/dedupe"
	"go-football-fixtures/internal/espn"
	"go-football-fixtures/internal/extract"
	"go-football-fixtures/internal/fetch"
	"go-football-fixtures/internal/logx"
	"go-football-fixtures/internal/model"
	"go-football-fixtures/internal/registry"
	"go-football-fixtures/internal/window"
	"go-football-fixtures/internal/workpool"
)

// Upstream reúne as consultas à ESPN usadas numa execução.
type Upstream interface {
	registry.RosterSource
	Scoreboard(ctx context.Context, slug, date string) (espn.Scoreboard, fetch.Outcome)
	TeamEvents(ctx context.Context, teamID int, from, to string) (espn.RefList, fetch.Outcome)
	EventDetail(ctx context.Context, ref string) (espn.Event, fetch.Outcome)
}

// Fallback é a fonte alternativa de jogos do dia.
type Fallback interface {
	Today(ctx context.Context, w window.Window) ([]model.Fixture, fetch.Outcome)
}

// Options ajusta o Runner; zero-value usa relógio real e elenco dinâmico.
type Options struct {
	Now          func() time.Time
	StaticRoster bool
}

// Runner executa uma agregação por chamada de Run.
type Runner struct {
	cfg  *config.Config
	cat  *catalog.Catalog
	src  Upstream
	fb   Fallback // nil: desligada
	opts Options
	tl   tally
}

// New cria o Runner. fb pode ser nil.
func New(cfg *config.Config, cat *catalog.Catalog, src Upstream, fb Fallback, opts Options) *Runner {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Runner{cfg: cfg, cat: cat, src: src, fb: fb, opts: opts}
}

// Run produz o documento de saída. Falhas de fontes só reduzem o resultado;
// erro apenas quando o contexto é cancelado.
func (r *Runner) Run(ctx context.Context) (model.Document, error) {
	r.tl.update(func(s *Stats) { *s = Stats{} })
	// referência capturada uma vez, antes de qualquer chamada de rede
	w := window.New(r.opts.Now(), r.cfg.Location(), r.cfg.LookaheadDays)
	logx.Infof("referência %s (%s), janela de %d dias", w.ISODate(0), w.Location(), w.Lookahead())

	reg := r.loadRegistry(ctx)
	seen := dedupe.New()
	buf := NewBuckets()

	r.scanCompetitions(ctx, w, reg, seen, buf)
	if today, _ := buf.Counts(); today == 0 {
		r.useFallback(ctx, w, buf)
	}
	r.scanNationalTeams(ctx, w, reg, seen, buf)

	if err := ctx.Err(); err != nil {
		return model.Document{}, fmt.Errorf("aggregate: %w", err)
	}
	doc := buf.Snapshot()
	r.tl.update(func(s *Stats) {
		s.Today, s.Future = len(doc.Today), len(doc.Future)
		s.Unique = seen.Len()
	})
	logx.Infof("deduplicação: %d jogos distintos vistos", seen.Len())
	return doc, nil
}

// Stats devolve os contadores da última execução.
func (r *Runner) Stats() Stats {
	return r.tl.snapshot()
}

func (r *Runner) loadRegistry(ctx context.Context) *registry.Registry {
	primary, source := r.cat.PrimaryRoster, registry.SourceStatic
	if r.opts.StaticRoster {
		logx.Infof("elenco estático forçado (%d times)", len(primary))
	} else {
		primary, source = registry.LoadPrimaryLeague(ctx, countingRoster{r.src, &r.tl}, r.cfg.PrimaryLeague, r.cat.PrimaryRoster, r.cfg.Concurrency.Fetch)
	}
	reg := registry.New(primary, r.cat.PopularTeams, r.cat.NationalTeams, source)
	p, pop, tr := reg.Stats()
	logx.Infof("registro: principal=%d populares=%d seleções=%d origem=%s", p, pop, tr, source)
	r.tl.update(func(s *Stats) { s.Roster = source })
	return reg
}

type scoreboardJob struct {
	slug   string
	offset int
	board  espn.Scoreboard
	out    fetch.Outcome
	done   bool
}

// scanCompetitions busca todos os placares no pool e ingere na ordem (slug, dia),
// assim o primeiro visto na deduplicação não depende da ordem de conclusão.
func (r *Runner) scanCompetitions(ctx context.Context, w window.Window, reg *registry.Registry, seen *dedupe.Seen, buf *Buckets) {
	slugs := r.cat.Slugs()
	jobs := make([]scoreboardJob, 0, len(slugs)*(w.Lookahead()+1))
	for _, slug := range slugs {
		for off := 0; off <= w.Lookahead(); off++ {
			jobs = append(jobs, scoreboardJob{slug: slug, offset: off})
		}
	}
	workpool.ForEach(r.cfg.Concurrency.Fetch, len(jobs), func(i int) {
		j := &jobs[i]
		if ctx.Err() != nil {
			return
		}
		j.board, j.out = r.src.Scoreboard(ctx, j.slug, w.ScoreboardDate(j.offset))
		j.done = true
	})

	for _, j := range jobs {
		if !j.done {
			// contexto cancelado antes da chamada
			continue
		}
		r.tl.note(j.out)
		if j.out.Absent() {
			logx.Warnf("placar %s %s indisponível: %v", j.slug, w.ScoreboardDate(j.offset), j.out)
			continue
		}
		if n := j.board.Malformed; n > 0 {
			logx.Debugf("placar %s %s: %d eventos ilegíveis descartados", j.slug, w.ScoreboardDate(j.offset), n)
			r.tl.update(func(s *Stats) { s.Dropped += n })
		}
		bucket := window.Future
		if j.offset == 0 {
			bucket = window.Today
		}
		label := r.cat.Label(j.slug)
		kept := 0
		for _, ev := range j.board.Events {
			f, ok := extract.Extract(ev, reg)
			if !ok {
				logx.Debugf("evento %s descartado: dados incompletos", ev.ID)
				r.tl.update(func(s *Stats) { s.Dropped++ })
				continue
			}
			if !reg.IsTracked(f.HomeTeam.Name) && !reg.IsTracked(f.AwayTeam.Name) {
				r.tl.update(func(s *Stats) { s.Ignored++ })
				continue
			}
			if f.Competition == "" {
				f.Competition = label
			}
			if !seen.IsNew(f) {
				r.tl.update(func(s *Stats) { s.Repeated++ })
				continue
			}
			buf.Add(bucket, f)
			kept++
		}
		if kept > 0 {
			logx.Debugf("%s %s: %d jogos", j.slug, w.ScoreboardDate(j.offset), kept)
		}
	}
	today, future := buf.Counts()
	logx.Infof("varredura de competições: %d hoje, %d futuros (%d consultas)", today, future, len(jobs))
}

// useFallback só troca hoje quando a fonte alternativa trouxe algo.
// Esses jogos não entram no conjunto de vistos.
func (r *Runner) useFallback(ctx context.Context, w window.Window, buf *Buckets) {
	if r.fb == nil {
		logx.Infof("nenhum jogo hoje e fonte alternativa desligada")
		return
	}
	logx.Infof("nenhum jogo hoje nas competições, consultando fonte alternativa")
	list, o := r.fb.Today(ctx, w)
	r.tl.note(o)
	if o.Absent() {
		logx.Warnf("fonte alternativa indisponível: %v", o)
		return
	}
	if len(list) == 0 {
		logx.Infof("fonte alternativa sem jogos para %s", w.ISODate(0))
		return
	}
	buf.ReplaceToday(list)
	r.tl.update(func(s *Stats) { s.Fallback = true })
	logx.Infof("fonte alternativa: %d jogos hoje", len(list))
}

type detailJob struct {
	team  string
	ref   string
	event espn.Event
	out   fetch.Outcome
	done  bool
}

// scanNationalTeams segue referências de eventos de cada seleção com ID resolvido.
// Sem filtro de registro; o dia vem da data do próprio jogo.
func (r *Runner) scanNationalTeams(ctx context.Context, w window.Window, reg *registry.Registry, seen *dedupe.Seen, buf *Buckets) {
	teams := reg.Tracked()
	if len(teams) == 0 {
		return
	}
	from, to := w.ISODate(0), w.ISODate(w.Lookahead())
	var jobs []detailJob
	for _, t := range teams {
		if ctx.Err() != nil {
			return
		}
		refs, o := r.src.TeamEvents(ctx, t.ExternalID, from, to)
		r.tl.note(o)
		if o.Absent() {
			logx.Warnf("eventos de %s indisponíveis: %v", t.Name, o)
			continue
		}
		for _, ref := range refs.Refs() {
			jobs = append(jobs, detailJob{team: t.Name, ref: ref})
		}
	}

	workpool.ForEach(r.cfg.Concurrency.Fetch, len(jobs), func(i int) {
		j := &jobs[i]
		if ctx.Err() != nil {
			return
		}
		j.event, j.out = r.src.EventDetail(ctx, j.ref)
		j.done = true
	})

	added := 0
	for _, j := range jobs {
		if !j.done {
			continue
		}
		r.tl.note(j.out)
		if j.out.Absent() {
			logx.Warnf("detalhe de evento (%s) indisponível: %v", j.team, j.out)
			continue
		}
		f, ok := extract.Extract(j.event, reg)
		if !ok {
			logx.Debugf("evento %s de %s descartado: dados incompletos", j.event.ID, j.team)
			r.tl.update(func(s *Stats) { s.Dropped++ })
			continue
		}
		if !seen.IsNew(f) {
			r.tl.update(func(s *Stats) { s.Repeated++ })
			continue
		}
		if !buf.Add(w.Classify(f.StartDate), f) {
			r.tl.update(func(s *Stats) { s.Outside++ })
			continue
		}
		added++
	}
	logx.Infof("seleções: %d jogos novos de %d eventos", added, len(jobs))
}

// countingRoster registra as chamadas do elenco nas estatísticas.
type countingRoster struct {
	src registry.RosterSource
	tl  *tally
}

func (c countingRoster) LeagueTeams(ctx context.Context, slug string) (espn.RefList, fetch.Outcome) {
	l, o := c.src.LeagueTeams(ctx, slug)
	c.tl.note(o)
	return l, o
}

func (c countingRoster) Team(ctx context.Context, ref string) (espn.TeamDetail, fetch.Outcome) {
	t, o := c.src.Team(ctx, ref)
	c.tl.note(o)
	return t, o
}
