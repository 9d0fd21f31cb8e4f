package validator

import (
	"testing"

	"printhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteRequest struct {
	ShopID    string `json:"shop_id" validate:"required,uuid"`
	PaperSize string `json:"paper_size" validate:"required,paper_size"`
	ColorMode string `json:"color_mode" validate:"required,color_mode"`
	Copies    int    `json:"copies" validate:"min=1"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,assignable_role"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{
			name:  "valid quote",
			input: &quoteRequest{ShopID: "7f1c2a52-8a8e-4c3e-a0bb-4d8e6d6a3b11", PaperSize: "a4", ColorMode: "color", Copies: 2},
		},
		{
			name:       "bad enums",
			input:      &quoteRequest{ShopID: "7f1c2a52-8a8e-4c3e-a0bb-4d8e6d6a3b11", PaperSize: "a5", ColorMode: "sepia", Copies: 1},
			wantFields: []string{"paper_size", "color_mode"},
		},
		{
			name:       "missing shop and zero copies",
			input:      &quoteRequest{PaperSize: "a4", ColorMode: "color"},
			wantFields: []string{"shop_id", "copies"},
		},
		{name: "assignable role", input: &roleRequest{Role: "shopkeeper"}},
		{name: "unknown is not assignable", input: &roleRequest{Role: "unknown"}, wantFields: []string{"role"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)

				return
			}

			var verr *Error
			require.True(t, errors.As(err, &verr))
			fields := verr.Fields()
			for _, name := range tt.wantFields {
				assert.Contains(t, fields, name)
				assert.Contains(t, verr.Error(), name)
			}
		})
	}
}
