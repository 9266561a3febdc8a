package aggregate

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go-football-fixtures/internal/fetch"
)

// Stats resume uma execução para o log final.
type Stats struct {
	Calls    int
	Absent   map[fetch.Reason]int
	Dropped  int // eventos incompletos
	Ignored  int // nenhum lado acompanhado
	Repeated int
	Outside  int
	Unique   int // chaves distintas vistas
	Today    int
	Future   int
	Fallback bool
	Roster   string
}

func (s Stats) String() string {
	reasons := make([]string, 0, len(s.Absent))
	for r, n := range s.Absent {
		reasons = append(reasons, fmt.Sprintf("%s=%d", r, n))
	}
	sort.Strings(reasons)
	return fmt.Sprintf("chamadas=%d ausentes=[%s] incompletos=%d ignorados=%d repetidos=%d fora_da_janela=%d unicos=%d hoje=%d futuros=%d alternativa=%v elenco=%s",
		s.Calls, strings.Join(reasons, " "), s.Dropped, s.Ignored, s.Repeated, s.Outside, s.Unique, s.Today, s.Future, s.Fallback, s.Roster)
}

// tally conta chamadas; o elenco é resolvido em paralelo, por isso o mutex.
type tally struct {
	mu sync.Mutex
	st Stats
}

func (t *tally) note(o fetch.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.st.Calls++
	if o.Absent() {
		if t.st.Absent == nil {
			t.st.Absent = make(map[fetch.Reason]int)
		}
		t.st.Absent[o.Reason]++
	}
}

func (t *tally) update(fn func(*Stats)) {
	t.mu.Lock()
	fn(&t.st)
	t.mu.Unlock()
}

func (t *tally) snapshot() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.st
	s.Absent = make(map[fetch.Reason]int, len(t.st.Absent))
	for k, v := range t.st.Absent {
		s.Absent[k] = v
	}
	return s
}
