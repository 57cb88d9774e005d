// propbase/controllers/properties.go
package controllers

import (
	"context"
	"encoding/json"
	"strings"

	"propbase/propbase/apperrors"
	"propbase/propbase/sources/psql/models"
)

// At most this many properties come back from RecentProperties.
const recentPropertiesLimit = 10

// PropertyStore is the persistence surface the controller needs for
// properties. Implemented by dao.PropertyDAO.
type PropertyStore interface {
	CreateProperty(ctx context.Context, property *models.Property) error
	GetPropertyByID(ctx context.Context, id uint) (*models.Property, error)
	ListRecentProperties(ctx context.Context, limit int) ([]models.Property, error)
}

// NoteStore is implemented by dao.NoteDAO.
type NoteStore interface {
	CreateNote(ctx context.Context, note *models.Note) error
	GetNotesByProperty(ctx context.Context, propertyID uint) ([]models.Note, error)
}

type PropertyController struct {
	properties PropertyStore
	notes      NoteStore
}

func NewPropertyController(properties PropertyStore, notes NoteStore) *PropertyController {
	return &PropertyController{properties: properties, notes: notes}
}

// SavePropertyInput is the decoded body of POST /api/save_property.
// Latitude/Longitude are pointers so that a missing field is
// distinguishable from a literal 0.
type SavePropertyInput struct {
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Latitude      *float64        `json:"latitude"`
	Longitude     *float64        `json:"longitude"`
	NominatimData json.RawMessage `json:"nominatim_data"`
}

// SaveProperty validates the input and inserts the property. Validation
// order: required fields, then latitude range, then longitude range.
func (c *PropertyController) SaveProperty(ctx context.Context, in SavePropertyInput) (*models.Property, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.NewValidation("name", "Name is required")
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, apperrors.NewValidation("address", "Address is required")
	}
	if in.Latitude == nil {
		return nil, apperrors.NewValidation("latitude", "Latitude is required")
	}
	if in.Longitude == nil {
		return nil, apperrors.NewValidation("longitude", "Longitude is required")
	}
	latitude, longitude := *in.Latitude, *in.Longitude
	if latitude < -90 || latitude > 90 {
		return nil, apperrors.NewValidation("latitude", "Invalid latitude value")
	}
	if longitude < -180 || longitude > 180 {
		return nil, apperrors.NewValidation("longitude", "Invalid longitude value")
	}

	property := &models.Property{
		Name:      name,
		Address:   address,
		Latitude:  latitude,
		Longitude: longitude,
	}
	// The geocoder payload is stored verbatim; a JSON null counts as absent.
	if len(in.NominatimData) > 0 && string(in.NominatimData) != "null" {
		payload := string(in.NominatimData)
		property.NominatimData = &payload
	}

	if err := c.properties.CreateProperty(ctx, property); err != nil {
		return nil, &apperrors.StorageError{Op: "create property", Err: err}
	}
	return property, nil
}

// GetProperty returns the property and its notes, most recent first.
func (c *PropertyController) GetProperty(ctx context.Context, id uint) (*models.Property, []models.Note, error) {
	property, err := c.properties.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, nil, &apperrors.StorageError{Op: "get property", Err: err}
	}
	if property == nil {
		return nil, nil, apperrors.ErrNotFound
	}

	notes, err := c.notes.GetNotesByProperty(ctx, id)
	if err != nil {
		return nil, nil, &apperrors.StorageError{Op: "list notes", Err: err}
	}
	return property, notes, nil
}

// AddNote inserts a note after checking the property exists. Note rows
// carry no declarative FK guarantee across environments, so the
// existence check happens here.
func (c *PropertyController) AddNote(ctx context.Context, propertyID uint, text string) (*models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidation("note", "Note content is required")
	}

	property, err := c.properties.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "get property", Err: err}
	}
	if property == nil {
		return nil, apperrors.ErrNotFound
	}

	note := &models.Note{PropertyID: propertyID, Note: text}
	if err := c.notes.CreateNote(ctx, note); err != nil {
		return nil, &apperrors.StorageError{Op: "create note", Err: err}
	}
	return note, nil
}

func (c *PropertyController) RecentProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := c.properties.ListRecentProperties(ctx, recentPropertiesLimit)
	if err != nil {
		return nil, &apperrors.StorageError{Op: "list recent properties", Err: err}
	}
	return properties, nil
}
