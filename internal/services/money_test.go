package services

import (
	"testing"

	"clubsphere_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		name string
		fee  float64
		want int64
	}{
		{"whole amount", 25.00, 2500},
		{"cents", 15.50, 1550},
		{"single cent", 0.01, 1},
		{"zero", 0, 0},
		{"binary float noise", 19.99, 1999},
		{"large fee", 1234.56, 123456},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MinorUnits(tc.fee)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinorUnits_RejectsFractionalCents(t *testing.T) {
	for _, fee := range []float64{10.005, 0.001, 99.999} {
		_, err := MinorUnits(fee)
		assert.ErrorIs(t, err, apperrors.ErrFractionalFee, "fee %v", fee)
	}
}

func TestMajorUnits(t *testing.T) {
	assert.Equal(t, 25.00, MajorUnits(2500))
	assert.Equal(t, 0.01, MajorUnits(1))
	assert.Equal(t, 0.0, MajorUnits(0))
}
