// README: Location point extracted from a model reply, as shown on the map.
package location

// Point is a named coordinate. JSON names follow the wire format the
// provider gateway emits and the front-end consumes.
type Point struct {
	Name string  `json:"lugar"`
	Lat  float64 `json:"latitud"`
	Lng  float64 `json:"longitud"`
}
