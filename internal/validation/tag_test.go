package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid tag - short prefix",
			tag:     "IT-00042",
			wantErr: false,
		},
		{
			name:    "valid tag - long prefix",
			tag:     "LAPT-1234",
			wantErr: false,
		},
		{
			name:    "valid tag - six digits",
			tag:     "MON-123456",
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			tag:     "",
			wantErr: true,
			errMsg:  "asset tag cannot be empty",
		},
		{
			name:    "invalid - lowercase prefix",
			tag:     "it-00042",
			wantErr: true,
			errMsg:  "asset tag must look like",
		},
		{
			name:    "invalid - no dash",
			tag:     "IT00042",
			wantErr: true,
			errMsg:  "asset tag must look like",
		},
		{
			name:    "invalid - too few digits",
			tag:     "IT-042",
			wantErr: true,
			errMsg:  "asset tag must look like",
		},
		{
			name:    "invalid - scanner garbage",
			tag:     "]C1IT-00042",
			wantErr: true,
			errMsg:  "asset tag must look like",
		},
		{
			name:    "invalid - trailing whitespace",
			tag:     "IT-00042 ",
			wantErr: true,
			errMsg:  "asset tag must look like",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.tag)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
