package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cisnebranco/grooming-os/internal/httperr"
)

// mapNotFound converts gorm's record-not-found into a 404 domain error so
// usecases never see storage-level sentinels.
func mapNotFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundErr(entity, id)
	}
	return err
}
