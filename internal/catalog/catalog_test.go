package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Embedded(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "bra.1", c.Slugs()[0])
	assert.Equal(t, "Brasileirão Série A", c.Label("bra.1"))
	assert.Contains(t, c.PopularTeams, "Flamengo")
	assert.Len(t, c.PrimaryRoster, 20)

	for _, tt := range c.NationalTeams {
		if tt.Name == "Italy" || tt.Name == "Netherlands" {
			assert.False(t, tt.Resolved(), tt.Name)
		}
	}
}

func TestLabel_CaseInsensitiveAndMissing(t *testing.T) {
	c := &Catalog{Competitions: []Competition{{Slug: "Bra.1", Label: "Série A"}}}
	assert.Equal(t, "Série A", c.Label("bra.1"))
	assert.Equal(t, "", c.Label("eng.1"))
	var nilCat *Catalog
	assert.Equal(t, "", nilCat.Label("bra.1"))
}

func TestLoad_FileAndValidation(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(f, []byte(`competitions:
  - { slug: eng.1, label: Premier League }
national_teams:
  - { id: 205, name: Brazil, localized: Brasil }
  - { id: -1, name: Italy, localized: Itália }
popular_teams: [Arsenal]
`), 0o644))
	c, err := Load(f)
	require.NoError(t, err)
	assert.Equal(t, []string{"eng.1"}, c.Slugs())
	require.Len(t, c.NationalTeams, 2)
	assert.True(t, c.NationalTeams[0].Resolved())
	assert.Equal(t, "Itália", c.NationalTeams[1].Localized)

	require.NoError(t, os.WriteFile(f, []byte("competitions: []\n"), 0o644))
	_, err = Load(f)
	assert.Error(t, err, "empty competitions must be rejected")

	require.NoError(t, os.WriteFile(f, []byte("competitions:\n  - { label: x }\n"), 0o644))
	_, err = Load(f)
	assert.Error(t, err, "blank slug must be rejected")
}
