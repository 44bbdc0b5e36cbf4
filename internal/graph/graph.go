// Package graph holds the fixed entity graph drawn by the graph explorer
// placeholder. Pure computation, no imports from other internal packages.
package graph

// NodeInput is a seeded node with its drawing position in percent of the
// canvas and its radius in pixels.
type NodeInput struct {
	ID    string  `yaml:"id"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	R     int     `yaml:"r"`
}

// EdgeInput is a seeded directed link between two node IDs.
type EdgeInput struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Node is a positioned node with degree counts.
type Node struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	R         int     `json:"r"`
	InDegree  int     `json:"in_degree"`
	OutDegree int     `json:"out_degree"`
	Hub       bool    `json:"hub"`
}

// Degree is the total number of links touching the node.
func (n Node) Degree() int { return n.InDegree + n.OutDegree }

// Edge is a directed link with both endpoint coordinates resolved.
type Edge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// Layout is the complete drawable graph.
type Layout struct {
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
	TotalNodes int    `json:"total_nodes"`
	TotalEdges int    `json:"total_edges"`
}

// Build resolves edges against the node set, counts degrees and marks the hub.
// Edges referencing unknown nodes are dropped. Node order is preserved.
func Build(nodes []NodeInput, edges []EdgeInput) Layout {
	out := make([]Node, len(nodes))
	idx := make(map[string]int, len(nodes))
	for i, n := range nodes {
		out[i] = Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y, R: n.R}
		idx[n.ID] = i
	}

	resolved := make([]Edge, 0, len(edges))
	for _, e := range edges {
		fi, okFrom := idx[e.From]
		ti, okTo := idx[e.To]
		if !okFrom || !okTo {
			continue
		}
		out[fi].OutDegree++
		out[ti].InDegree++
		resolved = append(resolved, Edge{
			From: e.From,
			To:   e.To,
			X1:   out[fi].X,
			Y1:   out[fi].Y,
			X2:   out[ti].X,
			Y2:   out[ti].Y,
		})
	}

	if h := hubIndex(out); h >= 0 {
		out[h].Hub = true
	}

	return Layout{
		Nodes:      out,
		Edges:      resolved,
		TotalNodes: len(out),
		TotalEdges: len(resolved),
	}
}

// hubIndex returns the node with the highest total degree; the earliest node
// wins ties. Returns -1 when no node has any link.
func hubIndex(nodes []Node) int {
	best, bestDeg := -1, 0
	for i, n := range nodes {
		if d := n.Degree(); d > bestDeg {
			best, bestDeg = i, d
		}
	}
	return best
}

// Hub returns the highlighted node, if any.
func (l Layout) Hub() (Node, bool) {
	for _, n := range l.Nodes {
		if n.Hub {
			return n, true
		}
	}
	return Node{}, false
}

// Label returns the display label for a node ID, falling back to the ID.
func (l Layout) Label(id string) string {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n.Label
		}
	}
	return id
}
