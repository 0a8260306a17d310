package board

import "strconv"

// Default stripboard dimensions.
const (
	DefaultStripboardRows    = 16
	DefaultStripboardColumns = 39
)

// StripboardAddress is a position on the segmented-strip surface. Rows and
// columns are zero-based indices; copper strips run along rows.
type StripboardAddress struct {
	Row    int `json:"row" bson:"row"`
	Column int `json:"column" bson:"column"`
}

// At returns a stripboard address.
func At(row, column int) StripboardAddress {
	return StripboardAddress{Row: row, Column: column}
}

// String renders the address as "r3c12".
func (a StripboardAddress) String() string {
	return "r" + strconv.Itoa(a.Row) + "c" + strconv.Itoa(a.Column)
}

// TrackCut marks an address at which a row's copper strip is deliberately
// severed. The hole at the cut is unusable; the strip halves on either side
// become separate nodes.
type TrackCut struct {
	Row    int `json:"row" bson:"row"`
	Column int `json:"column" bson:"column"`
}

// Stripboard is the segmented-strip surface topology.
type Stripboard struct {
	Rows    int
	Columns int
}

// NewStripboard returns a stripboard topology with the given dimensions.
// Zero or negative dimensions fall back to the defaults.
func NewStripboard(rows, columns int) *Stripboard {
	if rows <= 0 {
		rows = DefaultStripboardRows
	}
	if columns <= 0 {
		columns = DefaultStripboardColumns
	}
	return &Stripboard{Rows: rows, Columns: columns}
}

// Valid reports whether the address exists on this stripboard.
func (s *Stripboard) Valid(a StripboardAddress) bool {
	return a.Row >= 0 && a.Row < s.Rows && a.Column >= 0 && a.Column < s.Columns
}

// SameNode reports whether two addresses are electrically identical given
// the cut set. Connectivity runs along an entire row by default and is
// severed only at the cuts: two holes share a node when they are on the same
// row, neither sits on a cut, and no cut lies between them.
func (s *Stripboard) SameNode(x, y StripboardAddress, cuts []TrackCut) bool {
	if !s.Valid(x) || !s.Valid(y) || x.Row != y.Row {
		return false
	}

	lo, hi := x.Column, y.Column
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, c := range cuts {
		if c.Row != x.Row {
			continue
		}
		if c.Column >= lo && c.Column <= hi {
			return false
		}
	}
	return true
}

// XY projects the address to millimeter coordinates for rendering.
func (s *Stripboard) XY(a StripboardAddress) Point {
	return Point{X: float64(a.Column) * Pitch, Y: float64(a.Row) * Pitch}
}
