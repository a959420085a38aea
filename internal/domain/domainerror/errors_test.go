package domainerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("invalid quantity on product: %s", "Lamp")

	assert.Equal(t, "invalid quantity on product: Lamp", err.Error())
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsConflict(err))
}

func TestConflict_Wrapped(t *testing.T) {
	err := fmt.Errorf("finalize purchase: %w", Conflict("payment not authorized"))

	assert.True(t, IsConflict(err))
	assert.False(t, IsInvalidInput(err))

	var de *Error
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "payment not authorized", de.Message)
}
