// propbase/sources/psql/dao/dao.note.go
package dao

import (
	"context"

	"propbase/propbase/sources/psql/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) CreateNote(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

func (dao *NoteDAO) GetNotesByProperty(ctx context.Context, propertyID uint) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	err := dao.DB.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}
