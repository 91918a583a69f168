package validator

import (
	"errors"
	"testing"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatError(t *testing.T) {
	t.Run("should transform validation errors to formatted errors", func(t *testing.T) {
		testValidator := gvalidator.New()

		type TestStruct struct {
			Endpoint string `validate:"required"`
		}

		err := testValidator.Struct(TestStruct{})
		require.Error(t, err)

		formattedErr := formatError(err)

		assert.ErrorIs(t, formattedErr, ErrValidationFailed)
		assert.Contains(t, formattedErr.Error(), "'Endpoint': value '' does not meet the requirements for the 'required' validation")
	})

	t.Run("should return original error when not validation error", func(t *testing.T) {
		originalErr := errors.New("connection refused")
		formattedErr := formatError(originalErr)

		assert.Equal(t, originalErr, formattedErr)
	})
}

func TestValidate(t *testing.T) {
	type Endpoints struct {
		HTTPEndpoint string `validate:"omitempty,url"`
		WSEndpoint   string `validate:"omitempty,url"`
	}

	t.Run("should pass when all fields meet their rules", func(t *testing.T) {
		err := Validate(Endpoints{
			HTTPEndpoint: "https://node.example.com:8545",
			WSEndpoint:   "wss://node.example.com:8546",
		})
		assert.NoError(t, err)
	})

	t.Run("should pass when optional fields are empty", func(t *testing.T) {
		err := Validate(Endpoints{})
		assert.NoError(t, err)
	})

	t.Run("should fail when a URL field is malformed", func(t *testing.T) {
		err := Validate(Endpoints{HTTPEndpoint: "not a url"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidationFailed)
		assert.Contains(t, err.Error(), "'HTTPEndpoint': value 'not a url' does not meet the requirements for the 'url' validation")
	})

	t.Run("should report every violation", func(t *testing.T) {
		err := Validate(Endpoints{
			HTTPEndpoint: "nope",
			WSEndpoint:   "also nope",
		})

		require.Error(t, err)
		errStr := err.Error()
		assert.Contains(t, errStr, "'HTTPEndpoint'")
		assert.Contains(t, errStr, "'WSEndpoint'")
	})

	t.Run("should fail when input is not struct", func(t *testing.T) {
		for _, input := range []any{"test string", 42, nil} {
			err := Validate(input)
			assert.Error(t, err)
		}
	})
}
