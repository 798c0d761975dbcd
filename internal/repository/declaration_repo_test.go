package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/N05TR4/gdt-sistema/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	t.Run("record not found", func(t *testing.T) {
		assert.ErrorIs(t, translate(fmt.Errorf("first: %w", gorm.ErrRecordNotFound)), ErrNotFound)
	})

	t.Run("open period index", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: "23505", ConstraintName: model.OpenPeriodIndex})
		assert.ErrorIs(t, err, ErrOpenPeriodTaken)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("other unique index", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: "23505", ConstraintName: "idx_declarations_filing_number"})
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NotErrorIs(t, err, ErrOpenPeriodTaken)
		assert.Contains(t, err.Error(), "idx_declarations_filing_number")
	})

	t.Run("other driver errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}
		err := translate(pgErr)
		assert.Same(t, pgErr, err)

		boom := errors.New("conn closed")
		assert.Same(t, boom, translate(boom))
	})
}
