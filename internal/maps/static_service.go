package maps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strings"

	"googlemaps.github.io/maps"
)

const staticMapSize = "600x500"

var ErrMapUnavailable = errors.New("map rendering is not configured")

// StaticService renders a View through the Google Static Maps API.
type StaticService struct {
	client *maps.Client
}

// NewStaticService creates a StaticService. An empty apiKey yields a service
// whose Render always returns ErrMapUnavailable.
func NewStaticService(apiKey string, httpClient *http.Client, opts ...maps.ClientOption) (*StaticService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return &StaticService{}, nil
	}
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	if httpClient != nil {
		opts = append(opts, maps.WithHTTPClient(httpClient))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &StaticService{client: client}, nil
}

func (s *StaticService) Enabled() bool { return s != nil && s.client != nil }

// Render returns the map as PNG bytes.
func (s *StaticService) Render(ctx context.Context, v View) ([]byte, error) {
	if !s.Enabled() {
		return nil, ErrMapUnavailable
	}
	r := &maps.StaticMapRequest{
		Center: fmt.Sprintf("%.6f,%.6f", v.Center.Lat, v.Center.Lng),
		Zoom:   v.Zoom,
		Size:   staticMapSize,
	}
	if len(v.Markers) > 0 {
		marker := maps.Marker{Color: "red"}
		for _, p := range v.Markers {
			marker.Location = append(marker.Location, maps.LatLng{Lat: p.Lat, Lng: p.Lng})
		}
		r.Markers = []maps.Marker{marker}
	}

	img, err := s.client.StaticMap(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("static map api error: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode static map: %w", err)
	}
	return buf.Bytes(), nil
}
