// propbase/sources/psql/dao/dao.property.go
package dao

import (
	"context"
	"errors"

	"propbase/propbase/sources/psql/models"

	"gorm.io/gorm"
)

type PropertyDAO struct {
	DB *gorm.DB
}

func NewPropertyDAO(db *gorm.DB) *PropertyDAO {
	return &PropertyDAO{DB: db}
}

func (dao *PropertyDAO) CreateProperty(ctx context.Context, property *models.Property) error {
	return dao.DB.WithContext(ctx).Create(property).Error
}

// GetPropertyByID returns (nil, nil) when no row exists; "no such id"
// is an expected outcome, not an error.
func (dao *PropertyDAO) GetPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := dao.DB.WithContext(ctx).First(&property, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (dao *PropertyDAO) ListRecentProperties(ctx context.Context, limit int) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	err := dao.DB.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}
	return properties, nil
}
