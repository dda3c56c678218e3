package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the point as "lat,lng", the form Google Maps accepts.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ParseCoordinates parses "lat,lng".
func ParseCoordinates(s string) (Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, fmt.Errorf("coordinates %q: want lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: latitude: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: longitude: %w", s, err)
	}
	c := Coordinates{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinates{}, fmt.Errorf("coordinates %q: out of range", s)
	}
	return c, nil
}

// TravelMode is a Distance Matrix travel mode.
type TravelMode string

const (
	ModeDriving   TravelMode = "driving"
	ModeTransit   TravelMode = "transit"
	ModeWalking   TravelMode = "walking"
	ModeBicycling TravelMode = "bicycling"
)

// Valid reports whether m is a mode the Distance Matrix API understands.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeDriving, ModeTransit, ModeWalking, ModeBicycling:
		return true
	}
	return false
}

// DistanceResult is one origin/destination element of a Distance Matrix response.
type DistanceResult struct {
	Origin          Coordinates `json:"origin"`
	Destination     Coordinates `json:"destination"`
	Mode            TravelMode  `json:"mode"`
	DistanceMeters  int         `json:"distance_meters"`
	DistanceText    string      `json:"distance_text"`
	DurationSeconds int         `json:"duration_seconds"`
	DurationText    string      `json:"duration_text"`
	Cached          bool        `json:"cached"`
}

// CommuteLeg is the result for one mode of a commute lookup.
// Exactly one of Result and Error is set.
type CommuteLeg struct {
	Result *DistanceResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// CommuteResult holds driving and transit legs between the same two points.
type CommuteResult struct {
	Driving CommuteLeg `json:"driving"`
	Transit CommuteLeg `json:"transit"`
}

// GeocodeResult is a single Geocoding API match.
type GeocodeResult struct {
	FormattedAddress string      `json:"formatted_address"`
	PlaceID          string      `json:"place_id"`
	Location         Coordinates `json:"location"`
}
