package billing_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenerateReference(t *testing.T) {
	now := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

	t.Run("has prefix, date part and 4-character suffix", func(t *testing.T) {
		ref := billing.GenerateReference(now)

		require.Len(t, ref, 13)
		assert.Equal(t, "ADD250307", ref[:9])
		assert.NoError(t, billing.ValidateReference(ref))
	})

	t.Run("generated references pass validation across runs", func(t *testing.T) {
		for range 50 {
			assert.NoError(t, billing.ValidateReference(billing.GenerateReference(now)))
		}
	})
}

func Test_ValidateReference(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		wantErr   bool
	}{
		{"valid reference", "ADD250307AB12", false},
		{"valid all-digit suffix", "ADD2503070000", false},
		{"empty", "", true},
		{"wrong prefix", "BIL250307AB12", true},
		{"lowercase suffix", "ADD250307ab12", true},
		{"short suffix", "ADD250307AB1", true},
		{"long suffix", "ADD250307AB123", true},
		{"non-numeric date part", "ADDXXXXXXAB12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := billing.ValidateReference(tt.reference)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
