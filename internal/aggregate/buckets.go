package aggregate

import (
	"sync"

	"go-football-fixtures/internal/model"
	"go-football-fixtures/internal/window"
)

// Buckets acumula os jogos aceitos nos dois grupos de saída.
type Buckets struct {
	mu     sync.Mutex
	today  []model.Fixture
	future []model.Fixture
}

func NewBuckets() *Buckets {
	return &Buckets{}
}

// Add guarda f no grupo indicado; OutOfWindow é descartado e devolve false.
func (b *Buckets) Add(bucket window.Bucket, f model.Fixture) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch bucket {
	case window.Today:
		b.today = append(b.today, f)
	case window.Future:
		b.future = append(b.future, f)
	default:
		return false
	}
	return true
}

// ReplaceToday troca o grupo de hoje inteiro (fonte alternativa).
func (b *Buckets) ReplaceToday(list []model.Fixture) {
	b.mu.Lock()
	b.today = append([]model.Fixture(nil), list...)
	b.mu.Unlock()
}

func (b *Buckets) Counts() (today, future int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.today), len(b.future)
}

// Snapshot devolve cópias ordenadas por início (estável); listas vazias nunca são nil.
func (b *Buckets) Snapshot() model.Document {
	b.mu.Lock()
	defer b.mu.Unlock()
	doc := model.Document{
		Today:  append(make([]model.Fixture, 0, len(b.today)), b.today...),
		Future: append(make([]model.Fixture, 0, len(b.future)), b.future...),
	}
	model.SortByStart(doc.Today)
	model.SortByStart(doc.Future)
	return doc
}
