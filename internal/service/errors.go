package service

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/seojacky/account-teacher/pkg/errors"
)

// ── shared business errors ──

var (
	ErrForbidden      = apperrors.Forbidden("доступ заборонено")
	ErrUserNotFound   = apperrors.NotFound("користувача не знайдено")
	ErrSlotTooLong    = apperrors.Validation("текст досягнення перевищує допустиму довжину")
	ErrStoreFailure   = apperrors.Unavailable("сховище даних недоступне", nil)
	ErrInvalidFormat  = apperrors.Validation("невідомий формат звіту")
	ErrFileTooLarge   = apperrors.Validation("файл завеликий")
	ErrGenerateReport = errors.New("не вдалося сформувати файл звіту")
)

// storeError wraps a repository failure as StoreUnavailable, keeping the cause.
func storeError(err error) error {
	return apperrors.Wrap(apperrors.ErrStoreUnavailable, ErrStoreFailure.Reason(), err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
