package models

import "time"

// Destination is a place the agency sells tours to. Read-mostly after seeding;
// only image_url is ever updated.
type Destination struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	State              string    `json:"state"`
	Description        string    `json:"description"`
	ImageURL           string    `json:"image_url"`
	PopularAttractions string    `json:"popular_attractions"`
	CreatedAt          time.Time `json:"created_at"`
}

// Package is a tour offering tied to at most one destination.
// Inclusions and highlights stay as flat comma-separated text; the store
// never restructures them.
type Package struct {
	ID            int64     `json:"id"`
	DestinationID *int64    `json:"destination_id"`
	Title         string    `json:"title"`
	Duration      string    `json:"duration"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	Inclusions    string    `json:"inclusions"`
	Highlights    string    `json:"highlights"`
	CreatedAt     time.Time `json:"created_at"`

	// Join fields, empty when the destination reference does not resolve.
	DestinationName string `json:"destination_name"`
	State           string `json:"state"`
	DestDescription string `json:"dest_description,omitempty"`
}
