package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vadi/internal/modules/location"
)

func TestParseCoordinates_NoMarker(t *testing.T) {
	got := ParseCoordinates("  # Plan\n\nDía 1: volcán  ")
	assert.Equal(t, "# Plan\n\nDía 1: volcán", got.Mensaje)
	assert.NotNil(t, got.Localizaciones)
	assert.Empty(t, got.Localizaciones)
}

func TestParseCoordinates_JSONBlock(t *testing.T) {
	text := "# Plan\n\nDía 1\n\n# CORDSLOC\n```json\n{\n  \"Volcán Arenal\": \"-84.7030, 10.4630\",\n  \"Tabacón\": \"-84.7230, 10.4920\"\n}\n```"
	got := ParseCoordinates(text)
	assert.Equal(t, "# Plan\n\nDía 1", got.Mensaje)
	require.Len(t, got.Localizaciones, 2)
	assert.Equal(t, location.Point{Name: "Volcán Arenal", Lat: 10.4630, Lng: -84.7030}, got.Localizaciones[0])
	assert.Equal(t, "Tabacón", got.Localizaciones[1].Name)
}

func TestParseCoordinates_Lines(t *testing.T) {
	text := "Texto\n# cords_loc\n- **Volcán Arenal**: 10.4630° N, 84.7030° W\n- Catarata La Fortuna: 10.4400, -84.6700\n- sin coordenadas"
	got := ParseCoordinates(text)
	assert.Equal(t, "Texto", got.Mensaje)
	require.Len(t, got.Localizaciones, 2)
	assert.Equal(t, location.Point{Name: "Volcán Arenal", Lat: 10.4630, Lng: 84.7030}, got.Localizaciones[0])
	assert.Equal(t, location.Point{Name: "Catarata La Fortuna", Lat: 10.44, Lng: -84.67}, got.Localizaciones[1])
}

func TestParseCoordinates_BadJSONFallsBackToLines(t *testing.T) {
	text := "Texto\nCORDSLOC\n{\"Arenal\": \"no es coordenada\"}\nTabacón: 10.4920, -84.7230"
	got := ParseCoordinates(text)
	require.Len(t, got.Localizaciones, 1)
	assert.Equal(t, "Tabacón", got.Localizaciones[0].Name)
}
