package postgres

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"task-tracker-api/domain/repositories"
)

// translateError maps ORM errors onto the repository sentinels and wraps
// everything else with op.
func translateError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, repositories.ErrDuplicate):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case isDuplicateKey(err):
		return repositories.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// drivers without a translator
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "SQLSTATE 23505")
}
