package models

// GeoPoint is a GeoJSON point: coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from longitude and latitude.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// HasCoordinates reports whether the point carries a usable coordinate pair.
func (p GeoPoint) HasCoordinates() bool {
	return len(p.Coordinates) == 2
}

// Lng returns the longitude. Only meaningful when HasCoordinates is true.
func (p GeoPoint) Lng() float64 { return p.Coordinates[0] }

// Lat returns the latitude. Only meaningful when HasCoordinates is true.
func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }
