// README: Hemisphere correction and cross-model merge of location points.
package location

import (
	"fmt"
	"math"
	"strings"
)

// WesternHemisphere forces the longitude negative. Deployments are fixed to
// the Americas and models often drop the sign; a genuine eastern longitude is
// flipped too, so only apply this where that region assumption holds.
func WesternHemisphere(p Point) Point {
	p.Lng = -math.Abs(p.Lng)
	return p
}

// Key is the dedup identity: name plus coordinates rounded to 4 decimals.
func Key(p Point) string {
	return fmt.Sprintf("%s|%.4f|%.4f", strings.TrimSpace(p.Name), round4(p.Lat), round4(p.Lng))
}

func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		// Avoid "-0.0000" and "0.0000" producing distinct keys.
		return 0
	}
	return r
}

// Merge flattens the groups in order and drops repeats by Key; the first
// occurrence wins. The result is never nil.
func Merge(groups ...[]Point) []Point {
	seen := make(map[string]struct{})
	out := make([]Point, 0)
	for _, g := range groups {
		for _, p := range g {
			k := Key(p)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
