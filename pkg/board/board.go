// Package board models the addressing grammar and connectivity rules of the
// two supported prototyping surfaces.
//
// The breadboard is a continuous-strip surface: holes sharing a letter group
// and column are one electrical node, and each power rail is one node
// spanning its full length. The stripboard is a segmented-strip surface:
// copper strips run along entire rows and are severed only at explicit track
// cuts.
//
// The package also exposes the numeric coordinate projection used by
// downstream rendering. The projection formula is in scope here; drawing is
// not.
package board

// Pitch is the hole spacing in millimeters, shared by both surfaces.
const Pitch = 2.54

// Point is a projected 2D coordinate in millimeters.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}
