// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapview renders the Leaflet page that shows every found item on an
// OpenStreetMap layer.
package mapview

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/MKhiriev/campus-found/models"
)

//go:embed templates/map.html
var content embed.FS

// Marker colours by item status.
const (
	ColorStored  = "red"
	ColorClaimed = "yellow"
)

// notAvailable replaces unknown location names in popups.
const notAvailable = "N/A"

var mapTemplate = template.Must(template.ParseFS(content, "templates/map.html"))

// Marker is one item on the map. The JSON form feeds the page script; the
// popup text is rendered as escaped HTML.
type Marker struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Color         string  `json:"color"`
	Title         string  `json:"title"`
	Building      string  `json:"-"`
	SecurityPoint string  `json:"-"`
	Category      string  `json:"-"`
	Status        string  `json:"-"`
	Code          string  `json:"-"`
}

// View is the data rendered into the page.
type View struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Markers   []Marker
}

// NewMarker converts a stored item location into a map marker.
func NewMarker(m models.MapMarker) Marker {
	color := ColorStored
	if m.Status == models.ItemStatusClaimed {
		color = ColorClaimed
	}

	return Marker{
		Lat:           m.Latitude,
		Lon:           m.Longitude,
		Color:         color,
		Title:         m.Title,
		Building:      orNotAvailable(m.BuildingName),
		SecurityPoint: orNotAvailable(m.SecurityPointName),
		Category:      m.Category,
		Status:        string(m.Status),
		Code:          m.ItemCode,
	}
}

// Render writes the HTML page for view to w.
func Render(w io.Writer, view View) error {
	if view.Markers == nil {
		view.Markers = []Marker{}
	}
	if err := mapTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("error rendering map: %w", err)
	}
	return nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
