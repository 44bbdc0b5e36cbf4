// Package catalog is the static data store behind every OSIRIS page. Records
// are seeded once from YAML and handed out as copies, so nothing downstream
// can mutate them.
package catalog

import (
	_ "embed"
	"fmt"
	"hash/fnv"
	"slices"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osiris-intel/osiris/internal/graph"
	"github.com/osiris-intel/osiris/internal/safefile"
)

//go:embed seed.yaml
var embeddedSeed []byte

// maxSeedBytes caps seed override files read from disk.
const maxSeedBytes = 1 << 20

type breachSpec struct {
	Count   int      `yaml:"count"`
	Domain  string   `yaml:"domain"`
	Month   string   `yaml:"month"`
	LastDay int      `yaml:"last_day"`
	Sources []string `yaml:"sources"`
}

type seed struct {
	User      User           `yaml:"user"`
	Stats     Stats          `yaml:"stats"`
	Alerts    []Alert        `yaml:"alerts"`
	History   []HistoryEntry `yaml:"history"`
	Breached  breachSpec     `yaml:"breached"`
	Secrets   []Secret       `yaml:"secrets"`
	Workflows []Workflow     `yaml:"workflows"`
	Graph     struct {
		Nodes []graph.NodeInput `yaml:"nodes"`
		Edges []graph.EdgeInput `yaml:"edges"`
	} `yaml:"graph"`
}

// Catalog is an immutable set of sample records.
type Catalog struct {
	user      User
	stats     Stats
	alerts    []Alert
	history   []HistoryEntry
	breached  []BreachedAccount
	secrets   []Secret
	workflows []Workflow
	graph     graph.Layout
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog built from the embedded seed. The embedded seed
// is part of the binary, so a parse failure is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedSeed)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded seed: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// Load returns the embedded catalog when path is empty, otherwise it parses
// the seed file at path.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := safefile.ReadFile(path, maxSeedBytes)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from seed YAML.
func Parse(data []byte) (*Catalog, error) {
	var s seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	if s.Breached.Count < 0 {
		return nil, fmt.Errorf("breached count %d is negative", s.Breached.Count)
	}
	if s.Breached.Count > 0 && len(s.Breached.Sources) == 0 {
		return nil, fmt.Errorf("breached accounts need at least one source")
	}

	return &Catalog{
		user:      s.User,
		stats:     s.Stats,
		alerts:    s.Alerts,
		history:   s.History,
		breached:  generateBreached(s.Breached),
		secrets:   s.Secrets,
		workflows: s.Workflows,
		graph:     graph.Build(s.Graph.Nodes, s.Graph.Edges),
	}, nil
}

// generateBreached expands the breach spec into accounts user1..userN. Sources
// rotate by index and breach dates count down from LastDay.
func generateBreached(b breachSpec) []BreachedAccount {
	out := make([]BreachedAccount, 0, b.Count)
	for i := range b.Count {
		email := fmt.Sprintf("user%d@%s", i+1, b.Domain)
		out = append(out, BreachedAccount{
			ID:           i + 1,
			Email:        email,
			PasswordHash: passwordDigest(email) + "...",
			Source:       b.Sources[i%len(b.Sources)],
			BreachDate:   fmt.Sprintf("%s-%02d", b.Month, b.LastDay-i),
		})
	}
	return out
}

// passwordDigest is a stable stand-in for a leaked hash prefix.
func passwordDigest(s string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	d := strconv.FormatUint(h.Sum64(), 36)
	if len(d) > 13 {
		d = d[:13]
	}
	return d
}

// WithUser returns a copy of the catalog with a different header profile.
// Record slices are shared; they are never written after Parse.
func (c *Catalog) WithUser(u User) *Catalog {
	cp := *c
	cp.user = u
	return &cp
}

func (c *Catalog) User() User   { return c.user }
func (c *Catalog) Stats() Stats { return c.stats }

func (c *Catalog) Alerts() []Alert             { return slices.Clone(c.alerts) }
func (c *Catalog) History() []HistoryEntry     { return slices.Clone(c.history) }
func (c *Catalog) Breached() []BreachedAccount { return slices.Clone(c.breached) }
func (c *Catalog) Secrets() []Secret           { return slices.Clone(c.secrets) }
func (c *Catalog) Workflows() []Workflow       { return slices.Clone(c.workflows) }

// Graph returns the sample entity graph.
func (c *Catalog) Graph() graph.Layout {
	g := c.graph
	g.Nodes = slices.Clone(g.Nodes)
	g.Edges = slices.Clone(g.Edges)
	return g
}

// Counts returns record totals keyed by list name, used for pagination and
// the CLI summary.
func (c *Catalog) Counts() map[string]int {
	return map[string]int{
		"alerts":    len(c.alerts),
		"history":   len(c.history),
		"breached":  len(c.breached),
		"secrets":   len(c.secrets),
		"workflows": len(c.workflows),
	}
}
