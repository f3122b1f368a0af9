package models

// Route represents one vehicle/transport route and its driver.
type Route struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Driver string `json:"driver"`
}
