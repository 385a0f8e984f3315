// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Building is a named campus location.
type Building struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Building model.
func (b Building) TableName() string {
	return "buildings"
}

// SecurityPoint is the staffed counter inside a building where found items
// are physically kept.
type SecurityPoint struct {
	ID         int64  `json:"id"`
	BuildingID int64  `json:"building_id"`
	Name       string `json:"name"`
}

// TableName returns the name of the database table
// associated with the SecurityPoint model.
func (s SecurityPoint) TableName() string {
	return "security_points"
}
