package entity

import "time"

// Plant es el maestro de plantas (centros logísticos/productivos) del ERP.
type Plant struct {
	ID        int64
	PlantID   string // código de planta (único por ERP)
	Name      string
	PlantType string // manufacturing, distribution, warehouse
	Country   string
	City      string

	ERPSystem    string
	ERPPlantCode string // opcional

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StorageLocation es una ubicación de almacenamiento dentro de una planta.
type StorageLocation struct {
	ID          int64
	PlantID     string
	LocationID  string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
