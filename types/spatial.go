package types

const (
	// Point2DSignature is the signature byte for a Point2D structure
	Point2DSignature = 0x58
	// Point3DSignature is the signature byte for a Point3D structure
	Point3DSignature = 0x59
)

// Point2D Represents a 2-dimensional point in a spatial reference system
type Point2D struct {
	SpatialRefID int64
	X            float64
	Y            float64
}

// Kind gets the classification tag for the value
func (Point2D) Kind() Kind { return KindPoint2D }

// Signature gets the signature byte for the struct
func (p Point2D) Signature() int { return Point2DSignature }

// AllFields gets the fields of the struct in wire order
func (p Point2D) AllFields() []interface{} {
	return []interface{}{p.SpatialRefID, p.X, p.Y}
}

func (p Point2D) coordinates() []float64 { return []float64{p.X, p.Y} }

// Point3D Represents a 3-dimensional point in a spatial reference system
type Point3D struct {
	SpatialRefID int64
	X            float64
	Y            float64
	Z            float64
}

// Kind gets the classification tag for the value
func (Point3D) Kind() Kind { return KindPoint3D }

// Signature gets the signature byte for the struct
func (p Point3D) Signature() int { return Point3DSignature }

// AllFields gets the fields of the struct in wire order
func (p Point3D) AllFields() []interface{} {
	return []interface{}{p.SpatialRefID, p.X, p.Y, p.Z}
}

func (p Point3D) coordinates() []float64 { return []float64{p.X, p.Y, p.Z} }
