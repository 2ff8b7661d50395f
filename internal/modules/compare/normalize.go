// README: Shape checks over raw model replies. Unknown shapes degrade to a JSON dump, never an error.
package compare

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"vadi/internal/modules/location"
)

var ErrMalformedReply = errors.New("malformed JSON reply")

// normalize turns a raw reply body into display text and locations.
func normalize(mode Mode, body []byte) (string, []location.Point, error) {
	if !gjson.ValidBytes(body) {
		return "", nil, ErrMalformedReply
	}
	root := gjson.ParseBytes(body)
	if mode == ModeVacation {
		return vacationText(root, body), vacationLocations(root), nil
	}
	return businessText(root, body), nil, nil
}

func vacationText(root gjson.Result, body []byte) string {
	for _, key := range []string{"message", "mensaje"} {
		if r := root.Get(key); r.Exists() && r.Type == gjson.String {
			return r.Str
		}
	}
	return dump(body)
}

func businessText(root gjson.Result, body []byte) string {
	for _, key := range []string{"results", "message", "mensaje"} {
		if r := root.Get(key); r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return dump(body)
}

func vacationLocations(root gjson.Result) []location.Point {
	arr := firstExisting(root, "locations", "localizaciones")
	out := []location.Point{}
	if !arr.IsArray() {
		return out
	}
	arr.ForEach(func(_, item gjson.Result) bool {
		lat := firstExisting(item, "latitud", "lat", "latitude")
		lng := firstExisting(item, "longitud", "lng", "longitude")
		if !lat.Exists() || !lng.Exists() {
			return true
		}
		p := location.Point{
			Name: strings.TrimSpace(firstExisting(item, "lugar", "name", "place").String()),
			Lat:  lat.Float(),
			Lng:  lng.Float(),
		}
		out = append(out, location.WesternHemisphere(p))
		return true
	})
	return out
}

func firstExisting(r gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// dump pretty-prints the payload with two-space indentation.
func dump(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

// Renormalize re-runs normalization on an envelope's own output. For any
// envelope produced by the orchestrator it returns an equal envelope.
func Renormalize(mode Mode, env Envelope) (Envelope, error) {
	var payload any
	if mode == ModeVacation {
		locs := env.Locations
		if locs == nil {
			locs = []location.Point{}
		}
		payload = map[string]any{"message": env.Text, "locations": locs}
	} else {
		payload = map[string]string{"results": env.Text}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	text, locs, err := normalize(mode, body)
	if err != nil {
		return Envelope{}, err
	}
	out := env
	out.Text = text
	out.Locations = locs
	return out, nil
}
