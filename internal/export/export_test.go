package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-football-fixtures/internal/config"
	"go-football-fixtures/internal/model"
)

func sampleDoc() model.Document {
	kick := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)
	return model.Document{
		Today: []model.Fixture{{
			StartDate:   kick,
			HomeTeam:    model.Team{Name: "Brasil", Logo: "https://a.espncdn.com/i/teamlogos/countries/500/bra.png"},
			AwayTeam:    model.Team{Name: "Argentina"},
			Competition: "Eliminatórias",
			Broadcast:   "Globo",
		}},
		Future: []model.Fixture{{
			StartDate: kick.Add(48 * time.Hour),
			HomeTeam:  model.Team{Name: "Flamengo"},
			AwayTeam:  model.Team{Name: "River Plate"},
		}},
	}
}

func TestToJSON_SplitLayout(t *testing.T) {
	out := filepath.Join(t.TempDir(), "games.json")
	if err := os.WriteFile(out, []byte("old content that is longer than nothing"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := ToJSON(sampleDoc(), config.LayoutSplit, out); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, _ := os.ReadFile(out)
	if !strings.Contains(string(b), "\n  \"today\": [") {
		t.Fatalf("want two-space indent, got:\n%s", b)
	}
	if !strings.Contains(string(b), `"startDate": "2025-06-15T19:00:00Z"`) {
		t.Fatalf("want RFC3339 UTC startDate, got:\n%s", b)
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Today) != 1 || len(doc.Future) != 1 || doc.Today[0].Broadcast != "Globo" {
		t.Fatalf("doc mismatch: %+v", doc)
	}
	// nenhum temporário sobrando
	entries, _ := os.ReadDir(filepath.Dir(out))
	if len(entries) != 1 {
		t.Fatalf("leftover files: %d", len(entries))
	}
}

func TestToJSON_FlatLayout(t *testing.T) {
	out := filepath.Join(t.TempDir(), "games.json")
	if err := ToJSON(sampleDoc(), config.LayoutFlat, out); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, _ := os.ReadFile(out)
	var list []model.Fixture
	if err := json.Unmarshal(b, &list); err != nil {
		t.Fatalf("decode flat: %v", err)
	}
	if len(list) != 2 || list[0].HomeTeam.Name != "Brasil" || list[1].HomeTeam.Name != "Flamengo" {
		t.Fatalf("flat order: %+v", list)
	}
}

func TestToJSON_EmptyBucketsAreArrays(t *testing.T) {
	out := filepath.Join(t.TempDir(), "games.json")
	if err := ToJSON(model.Document{}, config.LayoutSplit, out); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, _ := os.ReadFile(out)
	s := strings.Join(strings.Fields(string(b)), "")
	if s != `{"today":[],"future":[]}` {
		t.Fatalf("got %s", s)
	}
}

func TestToJSON_MissingDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nope", "games.json")
	if err := ToJSON(sampleDoc(), config.LayoutSplit, out); err == nil {
		t.Fatalf("want error for missing directory")
	}
}
