package board

import (
	"math"
	"testing"
)

func TestBreadboardValid(t *testing.T) {
	b := NewBreadboard(30)

	tests := []struct {
		name string
		addr BreadboardAddress
		want bool
	}{
		{"lower group", Grid('a', 1), true},
		{"upper group", Grid('j', 30), true},
		{"positive rail", RailAt(RailPositive, 15), true},
		{"negative rail", RailAt(RailNegative, 1), true},

		{"column zero", Grid('a', 0), false},
		{"column past end", Grid('a', 31), false},
		{"unknown row", Grid('k', 1), false},
		{"uppercase row", Grid('A', 1), false},
		{"rail column past end", RailAt(RailPositive, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Valid(tt.addr); got != tt.want {
				t.Errorf("Valid(%v) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestBreadboardSameNode(t *testing.T) {
	b := NewBreadboard(30)

	tests := []struct {
		name string
		x, y BreadboardAddress
		want bool
	}{
		{"same group same column", Grid('a', 5), Grid('e', 5), true},
		{"same group different column", Grid('a', 5), Grid('a', 6), false},
		{"split by center gap", Grid('e', 5), Grid('f', 5), false},
		{"same rail", RailAt(RailPositive, 1), RailAt(RailPositive, 30), true},
		{"different rails", RailAt(RailPositive, 5), RailAt(RailNegative, 5), false},
		{"rail vs grid", RailAt(RailPositive, 5), Grid('a', 5), false},
		{"invalid address", Grid('z', 5), Grid('a', 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.SameNode(tt.x, tt.y); got != tt.want {
				t.Errorf("SameNode(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBreadboardNode(t *testing.T) {
	b := NewBreadboard(30)

	t.Run("grid node spans letter group", func(t *testing.T) {
		node := b.Node(Grid('c', 7))
		if len(node) != 5 {
			t.Fatalf("node size = %d, want 5", len(node))
		}
		for i, want := range []byte{'a', 'b', 'c', 'd', 'e'} {
			if node[i].Row != want || node[i].Column != 7 {
				t.Errorf("node[%d] = %v, want %c7", i, node[i], want)
			}
		}
	})

	t.Run("rail node spans all columns", func(t *testing.T) {
		node := b.Node(RailAt(RailNegative, 3))
		if len(node) != 30 {
			t.Fatalf("node size = %d, want 30", len(node))
		}
		for i, a := range node {
			if a.Rail != RailNegative || a.Column != i+1 {
				t.Errorf("node[%d] = %v", i, a)
			}
		}
	})

	t.Run("invalid address has no node", func(t *testing.T) {
		if node := b.Node(Grid('z', 1)); node != nil {
			t.Errorf("node = %v, want nil", node)
		}
	})
}

func TestBreadboardXY(t *testing.T) {
	b := NewBreadboard(30)

	tests := []struct {
		name string
		addr BreadboardAddress
		x, y float64
	}{
		{"first grid hole", Grid('f', 1), 0, 2.5 * Pitch},
		{"column step", Grid('f', 2), Pitch, 2.5 * Pitch},
		{"row step", Grid('g', 1), 0, 3.5 * Pitch},
		{"across the gap", Grid('a', 1), 0, 8.5 * Pitch},
		{"positive rail", RailAt(RailPositive, 1), 0, 0},
		{"negative rail", RailAt(RailNegative, 1), 0, Pitch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.XY(tt.addr)
			if math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
				t.Errorf("XY(%v) = (%v, %v), want (%v, %v)", tt.addr, p.X, p.Y, tt.x, tt.y)
			}
		})
	}
}

func TestStripboardValid(t *testing.T) {
	s := NewStripboard(16, 39)

	tests := []struct {
		name string
		addr StripboardAddress
		want bool
	}{
		{"origin", At(0, 0), true},
		{"far corner", At(15, 38), true},
		{"row past end", At(16, 0), false},
		{"column past end", At(0, 39), false},
		{"negative row", At(-1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Valid(tt.addr); got != tt.want {
				t.Errorf("Valid(%v) = %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestStripboardSameNode(t *testing.T) {
	s := NewStripboard(16, 39)
	cuts := []TrackCut{{Row: 3, Column: 10}}

	tests := []struct {
		name string
		x, y StripboardAddress
		want bool
	}{
		{"same row no cut between", At(5, 2), At(5, 30), true},
		{"different rows", At(5, 2), At(6, 2), false},
		{"cut severs the strip", At(3, 2), At(3, 30), false},
		{"same side of cut", At(3, 2), At(3, 9), true},
		{"other side of cut", At(3, 11), At(3, 30), true},
		{"endpoint on cut", At(3, 10), At(3, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.SameNode(tt.x, tt.y, cuts); got != tt.want {
				t.Errorf("SameNode(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestStripboardXY(t *testing.T) {
	s := NewStripboard(16, 39)

	p := s.XY(At(3, 12))
	if math.Abs(p.X-12*Pitch) > 1e-9 || math.Abs(p.Y-3*Pitch) > 1e-9 {
		t.Errorf("XY = (%v, %v), want (%v, %v)", p.X, p.Y, 12*Pitch, 3*Pitch)
	}
}
