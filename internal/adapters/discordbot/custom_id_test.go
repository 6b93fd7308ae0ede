package discordbot

import (
	"testing"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentID_RoundTrip(t *testing.T) {
	sessionID := uuid.New()

	for _, action := range []string{
		constants.ActionSelectCity,
		constants.ActionSelectPrice,
		constants.ActionSelectBedrooms,
		constants.ActionConfirm,
	} {
		raw := encodeComponentID(action, sessionID)
		assert.LessOrEqual(t, len(raw), 100, "custom_id limit")

		got, err := decodeComponentID(raw)
		require.NoError(t, err)
		assert.Equal(t, componentID{Action: action, SessionID: sessionID}, got)
	}
}

func TestDecodeComponentID_Rejects(t *testing.T) {
	tests := []string{
		"",
		"other:city:" + uuid.NewString(),
		"findhome:colour:" + uuid.NewString(),
		"findhome:city:not-a-uuid",
		"findhome:city",
	}
	for _, raw := range tests {
		_, err := decodeComponentID(raw)
		assert.Error(t, err, raw)
	}
}

func TestComponentID_FilterField(t *testing.T) {
	field, ok := componentID{Action: constants.ActionSelectPrice}.filterField()
	assert.True(t, ok)
	assert.Equal(t, domain.FieldMaxPrice, field)

	_, ok = componentID{Action: constants.ActionConfirm}.filterField()
	assert.False(t, ok)
}
