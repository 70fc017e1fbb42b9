package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivateSelectionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ActivateSelectionRequest
		wantErr error
	}{
		{
			name:    "valid product id",
			request: ActivateSelectionRequest{ProductID: "chocolate-cake"},
			wantErr: nil,
		},
		{
			name:    "empty product id",
			request: ActivateSelectionRequest{ProductID: ""},
			wantErr: ErrInvalidProductID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "weight", Message: "unrecognized weight option"}
	assert.Equal(t, "weight: unrecognized weight option", err.Error())
}
