// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemStatus is the lifecycle state of a found item.
type ItemStatus string

const (
	// ItemStatusStored means the item is kept at a security point.
	ItemStatusStored ItemStatus = "stored"

	// ItemStatusClaimed means a claim for the item has been verified.
	ItemStatusClaimed ItemStatus = "claimed"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	return s == ItemStatusStored || s == ItemStatusClaimed
}

// ItemCodePrefix starts every generated item code.
const ItemCodePrefix = "FOUND-"

// Item is a found object report.
//
// HiddenDetail is excluded from JSON on purpose: read endpoints must never
// leak it. The report endpoint returns [ReportedItem] instead.
type Item struct {
	ID              int64      `json:"id"`
	ItemCode        string     `json:"item_code"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	BuildingID      int64      `json:"building_id"`
	SecurityPointID int64      `json:"security_point_id"`
	PlaceDetails    string     `json:"place_details"`
	FoundAt         time.Time  `json:"found_at"`
	ReportedBy      *int64     `json:"reported_by"`
	HiddenDetail    string     `json:"-"`
	ImagePath       *string    `json:"image_path"`
	Status          ItemStatus `json:"status"`
	IsHighValue     bool       `json:"is_high_value"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ReportedItem is the response of POST /items/report, the only place where
// the hidden detail is echoed back to the reporter.
type ReportedItem struct {
	Item
	HiddenDetail string `json:"hidden_detail"`
}

// ReportItemRequest is the body of POST /items/report.
type ReportItemRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	BuildingID      int64   `json:"building_id"`
	SecurityPointID int64   `json:"security_point_id"`
	PlaceDetails    string  `json:"place_details"`

	// FoundAt is an ISO-8601 timestamp; a trailing "Z" means UTC.
	FoundAt      string `json:"found_at"`
	HiddenDetail string `json:"hidden_detail"`
	IsHighValue  bool   `json:"is_high_value"`

	// ReportedBy is filled from the bearer token, never from the body.
	ReportedBy *int64 `json:"-"`
}

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	Category        string
	BuildingID      int64
	SecurityPointID int64
	Status          ItemStatus
}

// MapMarker is an item joined with its location names for the map view.
type MapMarker struct {
	ItemCode          string
	Title             string
	Category          string
	Status            ItemStatus
	Latitude          float64
	Longitude         float64
	BuildingName      string
	SecurityPointName string
}
