// Pacote workpool executa lotes limitados sobre um pool ants.
package workpool

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"go-football-fixtures/internal/logx"
)

// ForEach chama fn(i) para i em [0,n) num pool limitado e espera todos.
// fn escreve no próprio índice; quem chama lê os resultados na ordem dos índices.
func ForEach(workers, n int, fn func(i int)) {
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		logx.Warnf("pool indisponível (%v), seguindo em série", err)
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			fn(i)
		}); err != nil {
			// sem vaga no pool: roda aqui mesmo
			wg.Done()
			fn(i)
		}
	}
	wg.Wait()
}
