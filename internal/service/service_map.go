// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/campus-found/internal/config"
	"github.com/MKhiriev/campus-found/internal/logger"
	"github.com/MKhiriev/campus-found/internal/mapview"
	"github.com/MKhiriev/campus-found/internal/store"
)

type mapService struct {
	itemRepository store.ItemRepository
	view           config.Map
	logger         *logger.Logger
}

func NewMapService(itemRepository store.ItemRepository, view config.Map, logger *logger.Logger) MapService {
	return &mapService{
		itemRepository: itemRepository,
		view:           view,
		logger:         logger,
	}
}

// GenerateMap renders one marker per item centred on the configured campus
// coordinates.
func (s *mapService) GenerateMap(ctx context.Context, w io.Writer) error {
	locations, err := s.itemRepository.ListMapMarkers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "mapService.GenerateMap").Msg("error loading map markers")
		return fmt.Errorf("error loading map markers: %w", err)
	}

	markers := make([]mapview.Marker, 0, len(locations))
	for _, location := range locations {
		markers = append(markers, mapview.NewMarker(location))
	}

	return mapview.Render(w, mapview.View{
		CenterLat: s.view.CenterLat,
		CenterLon: s.view.CenterLon,
		Zoom:      s.view.Zoom,
		Markers:   markers,
	})
}
