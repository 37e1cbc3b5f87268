package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressionState_Clone(t *testing.T) {
	s := ProgressionState{
		Harmony:           10,
		RewardsCollected:  []string{"a"},
		UpgradesPurchased: []string{"x"},
	}

	c := s.Clone()
	c.RewardsCollected[0] = "changed"
	c.UpgradesPurchased = append(c.UpgradesPurchased, "y")

	assert.Equal(t, []string{"a"}, s.RewardsCollected)
	assert.Equal(t, []string{"x"}, s.UpgradesPurchased)
	assert.NotNil(t, ProgressionState{}.Clone().RewardsCollected)
}

func TestValidatePlayerID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"local", true},
		{"Player_01-b", true},
		{"", false},
		{"../etc", false},
		{"has space", false},
		{strings.Repeat("a", MaxPlayerIDLength), true},
		{strings.Repeat("a", MaxPlayerIDLength+1), false},
	}

	for _, tt := range tests {
		err := ValidatePlayerID(tt.id)
		if tt.valid {
			assert.NoError(t, err, tt.id)
		} else {
			assert.ErrorIs(t, err, ErrInvalidPlayerID, tt.id)
		}
	}
}
