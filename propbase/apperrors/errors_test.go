package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMatchesAs(t *testing.T) {
	var err error = NewValidation("latitude", "Invalid latitude value")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatal("errors.As should match *ValidationError")
	}
	if validationErr.Field != "latitude" {
		t.Errorf("unexpected field %q", validationErr.Field)
	}
	if err.Error() != "Invalid latitude value" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStorageErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("handler: %w", &StorageError{Op: "create property", Err: cause})

	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatal("errors.As should match *StorageError through wrapping")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the driver error")
	}
	if storageErr.Error() != "create property: connection refused" {
		t.Errorf("unexpected message %q", storageErr.Error())
	}
}
