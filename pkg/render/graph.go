package render

import "sort"

// Part is one placed component in the connectivity graph.
type Part struct {
	ID      string `json:"id" bson:"id"`         // reference designator, e.g. "R1"
	Label   string `json:"label" bson:"label"`   // display label, e.g. "R1\n10kΩ"
	Generic bool   `json:"generic" bson:"generic"` // lenient-fallback part, drawn dashed
}

// Net is one connectivity node shared by two or more component leads.
type Net struct {
	ID    string   `json:"id" bson:"id"`       // stable net name, e.g. "net3" or "+"
	Parts []string `json:"parts" bson:"parts"` // IDs of the parts touching this net
}

// Graph is the net-level connectivity view of a placed layout.
type Graph struct {
	Parts []Part `json:"parts" bson:"parts"`
	Nets  []Net  `json:"nets" bson:"nets"`
}

// AddPart appends a part, ignoring duplicates by ID.
func (g *Graph) AddPart(p Part) {
	for _, existing := range g.Parts {
		if existing.ID == p.ID {
			return
		}
	}
	g.Parts = append(g.Parts, p)
}

// AddNet appends a net, merging member lists when the ID already exists.
func (g *Graph) AddNet(n Net) {
	for i, existing := range g.Nets {
		if existing.ID == n.ID {
			g.Nets[i].Parts = mergeMembers(existing.Parts, n.Parts)
			return
		}
	}
	sort.Strings(n.Parts)
	g.Nets = append(g.Nets, n)
}

func mergeMembers(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, lists := range [][]string{a, b} {
		for _, m := range lists {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Shared returns the nets touched by at least two distinct parts. Singleton
// nets carry no connectivity information and clutter the diagram.
func (g *Graph) Shared() []Net {
	var out []Net
	for _, n := range g.Nets {
		if len(n.Parts) >= 2 {
			out = append(out, n)
		}
	}
	return out
}
