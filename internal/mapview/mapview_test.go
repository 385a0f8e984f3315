// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapview

import (
	"strings"
	"testing"

	"github.com/MKhiriev/campus-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarker(t *testing.T) {
	stored := NewMarker(models.MapMarker{
		ItemCode:          "FOUND-0A1B2C3D",
		Title:             "Wallet",
		Category:          "Accessories",
		Status:            models.ItemStatusStored,
		BuildingName:      "Library",
		SecurityPointName: "Library Front Desk",
	})
	assert.Equal(t, ColorStored, stored.Color)
	assert.Equal(t, "Library", stored.Building)

	claimed := NewMarker(models.MapMarker{Status: models.ItemStatusClaimed})
	assert.Equal(t, ColorClaimed, claimed.Color)
	assert.Equal(t, "N/A", claimed.Building)
	assert.Equal(t, "N/A", claimed.SecurityPoint)
}

func TestRender_EscapesUserText(t *testing.T) {
	var sb strings.Builder
	err := Render(&sb, View{
		CenterLat: 12.9716,
		CenterLon: 77.5946,
		Zoom:      15,
		Markers: []Marker{
			NewMarker(models.MapMarker{
				ItemCode:  "FOUND-0A1B2C3D",
				Title:     `<script>alert("x")</script>`,
				Category:  "Keys & Cards",
				Status:    models.ItemStatusStored,
				Latitude:  12.97,
				Longitude: 77.59,
			}),
		},
	})
	require.NoError(t, err)

	page := sb.String()
	assert.NotContains(t, page, `<script>alert("x")</script>`)
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, "Keys &amp; Cards")
	assert.Contains(t, page, "FOUND-0A1B2C3D")
	assert.Contains(t, page, "12.9716")
	assert.Contains(t, page, "77.5946")
	assert.Contains(t, page, `"color":"red"`)
	assert.Contains(t, page, "N/A")
}

func TestRender_NoMarkers(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Render(&sb, View{CenterLat: 1, CenterLon: 2, Zoom: 3}))

	page := sb.String()
	assert.Contains(t, page, "var markers = [];")
	assert.Contains(t, page, "leaflet")
}
