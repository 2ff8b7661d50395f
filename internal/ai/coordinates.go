// README: Splits a model answer at its CORDSLOC marker and extracts the listed places.
package ai

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"vadi/internal/modules/location"
)

var (
	sectionMarker = regexp.MustCompile(`(?i)#?\s*CORDS_?LOC`)
	jsonBlock     = regexp.MustCompile(`\{[\s\S]+?\}`)
	coordLine     = regexp.MustCompile(`[-•\s]*\*?\*?(?P<lugar>[^:\n]+):\s*(?P<lat>-?\d+\.\d+)°?\s*[Nn]?,?\s*(?P<lng>-?\d+\.\d+)°?\s*[Ww]?`)
)

// ParseCoordinates returns the text before the first CORDSLOC marker and the
// places listed after it. A JSON object mapping place to "lon, lat" wins over
// "place: lat, lng" lines. Without a marker, the whole text is the message.
func ParseCoordinates(text string) ParsedResponse {
	parts := sectionMarker.Split(text, 3)
	out := ParsedResponse{
		Mensaje:        strings.TrimSpace(parts[0]),
		Localizaciones: []location.Point{},
	}
	if len(parts) < 2 {
		return out
	}
	section := strings.TrimSpace(parts[1])

	if block := jsonBlock.FindString(section); block != "" {
		if points, ok := parseJSONBlock(block); ok {
			out.Localizaciones = points
			return out
		}
	}
	out.Localizaciones = parseLines(section)
	return out
}

func parseJSONBlock(block string) ([]location.Point, bool) {
	if !gjson.Valid(block) {
		return nil, false
	}
	obj := gjson.Parse(block)
	if !obj.IsObject() {
		return nil, false
	}
	points := []location.Point{}
	ok := true
	obj.ForEach(func(key, value gjson.Result) bool {
		lon, lat, err := splitPair(value.String())
		if err != nil {
			ok = false
			return false
		}
		points = append(points, location.Point{Name: strings.TrimSpace(key.String()), Lat: lat, Lng: lon})
		return true
	})
	return points, ok
}

func splitPair(s string) (first, second float64, err error) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, strconv.ErrSyntax
	}
	if first, err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return 0, 0, err
	}
	if second, err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func parseLines(section string) []location.Point {
	points := []location.Point{}
	nameIdx := coordLine.SubexpIndex("lugar")
	latIdx := coordLine.SubexpIndex("lat")
	lngIdx := coordLine.SubexpIndex("lng")
	for _, m := range coordLine.FindAllStringSubmatch(section, -1) {
		lat, err := strconv.ParseFloat(m[latIdx], 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(m[lngIdx], 64)
		if err != nil {
			continue
		}
		points = append(points, location.Point{
			Name: strings.Trim(m[nameIdx], " -*•"),
			Lat:  lat,
			Lng:  lng,
		})
	}
	return points
}
