package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewRiskLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RiskLevel
		wantErr bool
	}{
		{"low", "low", RiskLow, false},
		{"medium", "medium", RiskMedium, false},
		{"high", "high", RiskHigh, false},
		{"critical", "critical", RiskCritical, false},
		{"uppercase", "HIGH", RiskHigh, false},
		{"whitespace", "  medium  ", RiskMedium, false},
		{"empty", "", RiskUnknown, false},
		{"invalid", "invalid", RiskLevel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := NewRiskLevel(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, level.Equals(tt.want))
			}
		})
	}
}

func Test_DeriveRiskLevel(t *testing.T) {
	tests := []struct {
		name       string
		likelihood int
		impact     int
		want       RiskLevel
		wantErr    bool
	}{
		{"minimum", 1, 1, RiskLow, false},
		{"low band", 1, 3, RiskLow, false},
		{"medium band", 2, 2, RiskMedium, false},
		{"high band", 2, 4, RiskHigh, false},
		{"critical band", 3, 5, RiskCritical, false},
		{"maximum", 5, 5, RiskCritical, false},
		{"likelihood too low", 0, 3, RiskLevel{}, true},
		{"likelihood too high", 6, 3, RiskLevel{}, true},
		{"impact too low", 3, 0, RiskLevel{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := DeriveRiskLevel(tt.likelihood, tt.impact)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, level.Equals(tt.want))
			}
		})
	}
}

func Test_RiskLevel_Ordering(t *testing.T) {
	assert.True(t, RiskCritical.IsHigherThan(RiskHigh))
	assert.True(t, RiskHigh.IsHigherThan(RiskMedium))
	assert.True(t, RiskMedium.IsHigherThan(RiskLow))
	assert.True(t, RiskHigh.IsHigherOrEqual(RiskHigh))
	assert.False(t, RiskLow.IsHigherOrEqual(RiskMedium))
}
