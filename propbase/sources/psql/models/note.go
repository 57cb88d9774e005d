// propbase/sources/psql/models/note.go
package models

import "time"

type Note struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"property_id" gorm:"not null;index"`
	Property   Property  `json:"-" gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
	Note       string    `json:"note" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Note) TableName() string {
	return "notes"
}
