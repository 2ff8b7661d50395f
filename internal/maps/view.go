// README: Map view derived from a snapshot's merged locations.
package maps

import "vadi/internal/modules/location"

const DefaultZoom = 12

// DefaultCenter is shown when a reply carries no locations.
var DefaultCenter = location.Point{Name: "La Fortuna", Lat: 10.47, Lng: -84.64}

type View struct {
	Center  location.Point   `json:"center"`
	Zoom    int              `json:"zoom"`
	Markers []location.Point `json:"markers"`
}

// BuildView centers on the first location and zooms out far enough to keep
// the farthest marker in frame.
func BuildView(points []location.Point) View {
	if len(points) == 0 {
		return View{Center: DefaultCenter, Zoom: DefaultZoom, Markers: []location.Point{}}
	}
	markers := make([]location.Point, len(points))
	copy(markers, points)
	return View{
		Center:  points[0],
		Zoom:    zoomForSpan(location.MaxDistanceKm(points[0], points)),
		Markers: markers,
	}
}

func zoomForSpan(km float64) int {
	switch {
	case km <= 0:
		return DefaultZoom
	case km <= 2:
		return 14
	case km <= 5:
		return 13
	case km <= 10:
		return 12
	case km <= 25:
		return 11
	case km <= 50:
		return 10
	case km <= 100:
		return 9
	case km <= 200:
		return 8
	default:
		return 7
	}
}
