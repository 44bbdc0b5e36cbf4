package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SeedCounts(t *testing.T) {
	c := Default()

	assert.Len(t, c.Alerts(), 5)
	assert.Len(t, c.History(), 4)
	assert.Len(t, c.Breached(), 25)
	assert.Len(t, c.Secrets(), 5)
	assert.Len(t, c.Workflows(), 3)

	assert.Equal(t, "Alex Carter", c.User().Name)
	assert.Equal(t, TierTwo, c.User().Tier)
	assert.Equal(t, 1327, c.Stats().BreachedAccounts)
	assert.Equal(t, 84, c.Stats().SecretsFound)
}

func TestDefault_BreachedAccounts(t *testing.T) {
	accts := Default().Breached()

	first, last := accts[0], accts[24]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "user1@example.com", first.Email)
	assert.Equal(t, "DataLeakersInc", first.Source)
	assert.Equal(t, "2025-07-25", first.BreachDate)

	assert.Equal(t, "CorporateDB_v2", accts[1].Source)
	assert.Equal(t, "ForumLeak2025", accts[2].Source)
	assert.Equal(t, "DataLeakersInc", accts[3].Source)

	assert.Equal(t, "user25@example.com", last.Email)
	assert.Equal(t, "2025-07-01", last.BreachDate)

	for _, a := range accts {
		require.True(t, strings.HasSuffix(a.PasswordHash, "..."), a.PasswordHash)
		digest := strings.TrimSuffix(a.PasswordHash, "...")
		assert.NotEmpty(t, digest)
		assert.LessOrEqual(t, len(digest), 13)
	}
}

func TestDefault_DeterministicHashes(t *testing.T) {
	a, err := Parse(embeddedSeed)
	require.NoError(t, err)
	b, err := Parse(embeddedSeed)
	require.NoError(t, err)
	assert.Equal(t, a.Breached(), b.Breached())
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	alerts := c.Alerts()
	alerts[0].Agent = "tampered"
	assert.NotEqual(t, "tampered", c.Alerts()[0].Agent)

	g := c.Graph()
	g.Nodes[0].Label = "tampered"
	assert.NotEqual(t, "tampered", c.Graph().Nodes[0].Label)
}

func TestDefault_Graph(t *testing.T) {
	g := Default().Graph()
	assert.Equal(t, 6, g.TotalNodes)
	assert.Equal(t, 5, g.TotalEdges)
	hub, ok := g.Hub()
	require.True(t, ok)
	assert.Equal(t, "ShadowBroker", hub.Label)
}

func TestWithUser(t *testing.T) {
	base := Default()
	free := base.WithUser(User{Name: "Sam", Tier: TierFree})

	assert.Equal(t, TierFree, free.User().Tier)
	assert.Equal(t, TierTwo, base.User().Tier)
	assert.Equal(t, base.Breached(), free.Breached())
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}

func TestLoad_File(t *testing.T) {
	content := `
user: {name: Test, tier: Free}
breached: {count: 12, domain: corp.test, month: "2024-01", last_day: 20, sources: [A, B]}
secrets:
  - {id: 1, type: Key, value: abc, source: repo, date_found: "2024-01-01", severity: Low}
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Breached(), 12)
	assert.Equal(t, "user12@corp.test", c.Breached()[11].Email)
	assert.Equal(t, "B", c.Breached()[11].Source)
	assert.Equal(t, "2024-01-09", c.Breached()[11].BreachDate)
	assert.Empty(t, c.Alerts())
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("alerts: [unterminated"))
	assert.Error(t, err)

	_, err = Parse([]byte("breached: {count: 3}"))
	assert.ErrorContains(t, err, "source")

	_, err = Parse([]byte("breached: {count: -1, sources: [x]}"))
	assert.ErrorContains(t, err, "negative")
}

func TestSeverityKnown(t *testing.T) {
	assert.True(t, SeverityCritical.Known())
	assert.True(t, SeverityLow.Known())
	assert.False(t, Severity("Info").Known())
}
