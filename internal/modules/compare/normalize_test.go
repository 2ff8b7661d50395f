package compare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vadi/internal/modules/location"
)

func TestNormalize_Business(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"results", `{"results": "## Idea 1"}`, "## Idea 1"},
		{"message fallback", `{"message": "hola"}`, "hola"},
		{"mensaje fallback", `{"mensaje": "hola"}`, "hola"},
		{"empty results skipped", `{"results": "", "message": "m"}`, "m"},
		{"empty object", `{}`, "{}"},
		{"unknown shape", `{"foo":1}`, "{\n  \"foo\": 1\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, locs, err := normalize(ModeBusiness, []byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
			assert.Nil(t, locs)
		})
	}
}

func TestNormalize_Vacation(t *testing.T) {
	body := `{"message": "Plan de viaje", "locations": [
		{"lugar": "Volcán Arenal", "latitud": 10.4630, "longitud": 84.7030},
		{"lugar": "Tabacón", "latitud": "10.4920", "longitud": "-84.7230"},
		{"lugar": "sin coordenadas"}
	]}`
	text, locs, err := normalize(ModeVacation, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Plan de viaje", text)
	require.Len(t, locs, 2)
	assert.Equal(t, location.Point{Name: "Volcán Arenal", Lat: 10.4630, Lng: -84.7030}, locs[0])
	assert.Equal(t, -84.7230, locs[1].Lng)
}

func TestNormalize_VacationSpanishKeys(t *testing.T) {
	body := `{"mensaje": "Plan", "localizaciones": [{"lugar": "Catarata", "latitud": 10.44, "longitud": 84.67}]}`
	text, locs, err := normalize(ModeVacation, []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Plan", text)
	require.Len(t, locs, 1)
	assert.Equal(t, -84.67, locs[0].Lng)
}

func TestNormalize_VacationNoLocations(t *testing.T) {
	_, locs, err := normalize(ModeVacation, []byte(`{"message": "x"}`))
	require.NoError(t, err)
	assert.NotNil(t, locs)
	assert.Empty(t, locs)
}

func TestNormalize_Malformed(t *testing.T) {
	_, _, err := normalize(ModeBusiness, []byte(`<html>`))
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestRenormalize_Idempotent(t *testing.T) {
	bodies := map[Mode][]string{
		ModeVacation: {
			`{"message": "Plan", "locations": [{"lugar": "Volcán Arenal", "latitud": 10.4630, "longitud": 84.7030}]}`,
			`{"locations": []}`,
		},
		ModeBusiness: {
			`{"results": "## Idea 1"}`,
			`{}`,
			`{"data": [1, 2]}`,
		},
	}
	for mode, list := range bodies {
		for _, body := range list {
			text, locs, err := normalize(mode, []byte(body))
			require.NoError(t, err)
			env := Envelope{ModelID: "m", ModelName: "M", Text: text, Locations: locs, ReceivedAt: time.Unix(1, 0)}

			again, err := Renormalize(mode, env)
			require.NoError(t, err)
			assert.Equal(t, env, again, "%s %s", mode, body)
		}
	}
}
