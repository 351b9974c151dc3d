package repository

import (
	"errors"
	"fmt"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

// translate maps gorm's not-found error onto model.ErrNotFound.
func translate(err error, what string, id any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, id, model.ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", what, id, err)
}
