// Pacote export grava o documento final (games.json) com indentação.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-football-fixtures/internal/config"
	"go-football-fixtures/internal/model"
)

// ToJSON escreve doc em path, sobrescrevendo por completo.
// layout "flat" grava uma lista única (hoje seguido de futuros); qualquer outro, {today, future}.
// Escreve num temporário no mesmo diretório e renomeia, para não deixar arquivo pela metade.
func ToJSON(doc model.Document, layout, path string) error {
	if doc.Today == nil {
		doc.Today = []model.Fixture{}
	}
	if doc.Future == nil {
		doc.Future = []model.Fixture{}
	}
	var out any = doc
	if layout == config.LayoutFlat {
		out = doc.Flat()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	// no-op depois do rename
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		tmp.Close()
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
