package dto

import "time"

// PlantResponse proyección de una planta del maestro ERP.
type PlantResponse struct {
	ID        int64  `json:"id"`
	PlantID   string `json:"plant_id"`
	Name      string `json:"name"`
	PlantType string `json:"plant_type"`
	Country   string `json:"country"`
	City      string `json:"city,omitempty"`

	ERPSystem    string `json:"erp_system"`
	ERPPlantCode string `json:"erp_plant_code,omitempty"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StorageLocationResponse proyección de una ubicación de almacenamiento.
type StorageLocationResponse struct {
	ID          int64     `json:"id"`
	PlantID     string    `json:"plant_id"`
	LocationID  string    `json:"location_id"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
