package dberr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestWrapClassifiesStoreErrors(t *testing.T) {
	assert.Nil(t, Wrap("op", nil))

	err := Wrap("invoices.get", gorm.ErrRecordNotFound)
	assert.Equal(t, NotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = Wrap("invoices.list", errors.New("connection refused"))
	assert.Equal(t, StoreUnavailable, KindOf(err))
}

func TestWrapKeepsExistingKind(t *testing.T) {
	inner := E(DataIntegrity, "invoices.get", nil)
	err := Wrap("invoices.list", inner)
	assert.Equal(t, DataIntegrity, KindOf(err))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
