package board

import "strconv"

// Rail identifies a breadboard power rail.
type Rail string

// Power rails. RailNone marks a main-grid address.
const (
	RailNone     Rail = ""
	RailPositive Rail = "+"
	RailNegative Rail = "-"
)

// Breadboard row letters. Rows a-e and f-j form two disjoint letter groups
// separated by the center gap; the groups are never connected to each other.
const (
	upperRows = "fghij"
	lowerRows = "abcde"
)

// DefaultBreadboardColumns is the column count of a half-size breadboard,
// the default prototyping surface.
const DefaultBreadboardColumns = 30

// BreadboardAddress is a position on the continuous-strip surface: either a
// main-grid hole (Row + Column) or a rail hole (Rail + Column).
type BreadboardAddress struct {
	Row    byte `json:"row,omitempty" bson:"row,omitempty"`   // 'a'..'j', 0 for rail addresses
	Column int  `json:"column" bson:"column"`                 // 1-based
	Rail   Rail `json:"rail,omitempty" bson:"rail,omitempty"` // RailNone for grid addresses
}

// Grid returns a main-grid breadboard address.
func Grid(row byte, column int) BreadboardAddress {
	return BreadboardAddress{Row: row, Column: column}
}

// RailAt returns a rail breadboard address.
func RailAt(rail Rail, column int) BreadboardAddress {
	return BreadboardAddress{Rail: rail, Column: column}
}

// IsRail reports whether the address sits on a power rail.
func (a BreadboardAddress) IsRail() bool { return a.Rail != RailNone }

// String renders the address in the conventional "e12" or "+12" form.
func (a BreadboardAddress) String() string {
	if a.IsRail() {
		return string(a.Rail) + strconv.Itoa(a.Column)
	}
	return string(a.Row) + strconv.Itoa(a.Column)
}

// Breadboard is the continuous-strip surface topology.
type Breadboard struct {
	Columns int // columns per row and per rail
}

// NewBreadboard returns a breadboard topology with the given column count.
// Zero or negative columns fall back to DefaultBreadboardColumns.
func NewBreadboard(columns int) *Breadboard {
	if columns <= 0 {
		columns = DefaultBreadboardColumns
	}
	return &Breadboard{Columns: columns}
}

// rowGroup returns 0 for rows a-e, 1 for rows f-j, -1 otherwise.
func rowGroup(row byte) int {
	switch {
	case row >= 'a' && row <= 'e':
		return 0
	case row >= 'f' && row <= 'j':
		return 1
	default:
		return -1
	}
}

// Valid reports whether the address exists on this breadboard.
func (b *Breadboard) Valid(a BreadboardAddress) bool {
	if a.Column < 1 || a.Column > b.Columns {
		return false
	}
	if a.IsRail() {
		return (a.Rail == RailPositive || a.Rail == RailNegative) && a.Row == 0
	}
	return rowGroup(a.Row) >= 0
}

// SameNode reports whether two addresses are electrically identical.
//
// Grid holes share a node when they share a letter group and a column. Each
// rail is one node spanning all its columns. Rails and the two letter groups
// are never connected to each other.
func (b *Breadboard) SameNode(x, y BreadboardAddress) bool {
	if !b.Valid(x) || !b.Valid(y) {
		return false
	}
	if x.IsRail() || y.IsRail() {
		return x.Rail == y.Rail && x.Rail != RailNone
	}
	return rowGroup(x.Row) == rowGroup(y.Row) && x.Column == y.Column
}

// Node returns every address in the connectivity node containing a, in a
// fixed deterministic order. The node is derived on demand, never stored.
func (b *Breadboard) Node(a BreadboardAddress) []BreadboardAddress {
	if !b.Valid(a) {
		return nil
	}
	if a.IsRail() {
		out := make([]BreadboardAddress, 0, b.Columns)
		for c := 1; c <= b.Columns; c++ {
			out = append(out, RailAt(a.Rail, c))
		}
		return out
	}
	rows := lowerRows
	if rowGroup(a.Row) == 1 {
		rows = upperRows
	}
	out := make([]BreadboardAddress, 0, len(rows))
	for i := 0; i < len(rows); i++ {
		out = append(out, Grid(rows[i], a.Column))
	}
	return out
}

// Row vertical positions in hole pitches. The positive and negative rails
// sit above the grid; the center gap separates the two letter groups.
const (
	railPositiveY = 0.0
	railNegativeY = 1.0
	upperGroupY   = 2.5 // row f
	gapSpan       = 1.0 // center gap between rows j and a
)

// XY projects the address to millimeter coordinates for rendering.
// Columns grow rightward, rows downward.
func (b *Breadboard) XY(a BreadboardAddress) Point {
	x := float64(a.Column-1) * Pitch

	var y float64
	switch {
	case a.Rail == RailPositive:
		y = railPositiveY
	case a.Rail == RailNegative:
		y = railNegativeY
	case rowGroup(a.Row) == 1:
		y = upperGroupY + float64(a.Row-'f')
	default:
		y = upperGroupY + 5 + gapSpan + float64(a.Row-'a')
	}

	return Point{X: x, Y: y * Pitch}
}

