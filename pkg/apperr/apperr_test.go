package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	base := New(TableOccupied, "mesa ocupada")
	wrapped := fmt.Errorf("place order: %w", base)

	assert.Equal(t, TableOccupied, KindOf(wrapped))
	assert.Equal(t, "mesa ocupada", MessageOf(wrapped))
}

func TestKindOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Empty(t, MessageOf(errors.New("boom")))
}

func TestStatusMapping(t *testing.T) {
	cases := map[Kind]int{
		Validation:        http.StatusBadRequest,
		InconsistentState: http.StatusBadRequest,
		TableMismatch:     http.StatusBadRequest,
		TableOccupied:     http.StatusBadRequest,
		Conflict:          http.StatusBadRequest,
		NotFound:          http.StatusNotFound,
		Unauthorized:      http.StatusUnauthorized,
		Internal:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, Status(kind), string(kind))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Wrap(Internal, "Error al agregar el detalle a la orden", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad connection")
}
