package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "no details",
			err:  NewValidationError("filter", "unknown name dough2"),
			want: "validation failed: filter: unknown name dough2",
		},
		{
			name: "details are listed",
			err: NewValidationError("recipes", "invalid recipes in menu.yaml",
				`recipe token "m" is already on the menu`,
				"recipe x: kind is required"),
			want: `validation failed: recipes: invalid recipes in menu.yaml: recipe token "m" is already on the menu; recipe x: kind is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConstructionError_Unwrap(t *testing.T) {
	cause := errors.New("oven is cold")
	err := NewConstructionError("1234", "m", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "order 1234 (m) could not be prepared: oven is cold", err.Error())
}

func TestConfigurationError_Error(t *testing.T) {
	assert.Equal(t, "configuration error (prompt): no order prompter configured",
		NewConfigurationError("prompt", "no order prompter configured", nil).Error())

	cause := errors.New("missing")
	err := NewConfigurationError("menu", "failed to load menu.yaml", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "configuration error (menu): failed to load menu.yaml: missing", err.Error())
}
