package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RogueMods_Go/internal/domain"
)

func TestValidator_SettingKey(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		req     ApplySettingRequest
		wantErr bool
	}{
		{"known key", ApplySettingRequest{Key: "SHINY", Option: 2}, false},
		{"lower case key", ApplySettingRequest{Key: "candy_cost_multiplier"}, false},
		{"unknown key", ApplySettingRequest{Key: "GOD_MODE"}, true},
		{"missing key", ApplySettingRequest{Option: 1}, true},
		{"negative option", ApplySettingRequest{Key: "SHINY", Option: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Party(t *testing.T) {
	v := GetValidator()

	party := make([]CreatureRequest, 7)
	for i := range party {
		party[i] = CreatureRequest{Species: 25, Level: 5}
	}

	assert.Error(t, v.ValidateStruct(OpenItemsRequest{Party: party}), "more than six members")
	assert.NoError(t, v.ValidateStruct(OpenItemsRequest{Party: party[:6]}))
	assert.Error(t, v.ValidateStruct(OpenItemsRequest{Party: []CreatureRequest{{Level: 5}}}), "species required")
	assert.Error(t, v.ValidateStruct(OpenItemsRequest{Party: []CreatureRequest{{
		Species: 25, Level: 5, Moveset: []domain.MoveID{1, 2, 3, 4, 5},
	}}}), "too many moves")
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(ApplySettingRequest{Key: "NOPE", Option: -2})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Unknown setting", fields["key"])
	assert.Equal(t, "Must be at least 0", fields["option"])

	err = GetValidator().ValidateStruct(OpenItemsRequest{Party: []CreatureRequest{{Species: 25, Level: 5}, {Species: 7}}})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"party[1].level": "Must be at least 1"}, FormatValidationError(err))

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
