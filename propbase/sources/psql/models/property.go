// propbase/sources/psql/models/property.go
package models

import "time"

// Property is a researched real-estate record with geocoded coordinates.
// NominatimData holds the raw geocoder response verbatim; it is never
// parsed server-side, only stored and redisplayed.
type Property struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Address       string    `json:"address" gorm:"type:text;not null"`
	Latitude      float64   `json:"latitude" gorm:"not null"`
	Longitude     float64   `json:"longitude" gorm:"not null"`
	NominatimData *string   `json:"nominatim_data" gorm:"type:jsonb"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Property) TableName() string {
	return "properties"
}
