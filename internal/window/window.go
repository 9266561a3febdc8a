// Pacote window classifica jogos em hoje / próximos dias / fora da janela,
// sempre pelo calendário de um fuso fixo e por uma data de referência capturada uma única vez.
package window

import (
	"time"
)

// DefaultLookahead é a janela padrão em dias além de hoje.
const DefaultLookahead = 7

type Bucket int

const (
	OutOfWindow Bucket = iota
	Today
	Future
)

func (b Bucket) String() string {
	switch b {
	case Today:
		return "today"
	case Future:
		return "future"
	default:
		return "out"
	}
}

// Window é imutável; a data de referência é o dia civil de ref em loc.
type Window struct {
	loc       *time.Location
	ref       time.Time // meia-noite do dia de referência em loc
	lookahead int
}

// New fixa o fuso e a referência. loc nil vira UTC; lookahead negativo vira o padrão.
func New(ref time.Time, loc *time.Location, lookahead int) Window {
	if loc == nil {
		loc = time.UTC
	}
	if lookahead < 0 {
		lookahead = DefaultLookahead
	}
	y, m, d := ref.In(loc).Date()
	return Window{loc: loc, ref: time.Date(y, m, d, 0, 0, 0, 0, loc), lookahead: lookahead}
}

func (w Window) Lookahead() int           { return w.lookahead }
func (w Window) Location() *time.Location { return w.loc }

// DayDiff conta dias civis entre a referência e t (ambos em loc).
func (w Window) DayDiff(t time.Time) int {
	return daysBetween(w.ref, t.In(w.loc))
}

// Classify: 0 -> Today, 1..lookahead -> Future, resto -> OutOfWindow.
func (w Window) Classify(t time.Time) Bucket {
	switch diff := w.DayDiff(t); {
	case diff == 0:
		return Today
	case diff >= 1 && diff <= w.lookahead:
		return Future
	default:
		return OutOfWindow
	}
}

// Day devolve o dia civil referência+offset (meia-noite em loc).
func (w Window) Day(offset int) time.Time {
	y, m, d := w.ref.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, w.loc)
}

// ScoreboardDate formata o dia como YYYYMMDD.
func (w Window) ScoreboardDate(offset int) string { return w.Day(offset).Format("20060102") }

// ISODate formata o dia como YYYY-MM-DD.
func (w Window) ISODate(offset int) string { return w.Day(offset).Format("2006-01-02") }

// daysBetween compara só as datas civis (meio-dia UTC), imune a horário de verão.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ta := time.Date(ay, am, ad, 12, 0, 0, 0, time.UTC)
	tb := time.Date(by, bm, bd, 12, 0, 0, 0, time.UTC)
	return int(tb.Sub(ta).Hours() / 24)
}
