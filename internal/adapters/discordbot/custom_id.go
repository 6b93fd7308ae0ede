package discordbot

import (
	"fmt"
	"strings"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"

	"github.com/google/uuid"
)

// componentID - разобранный custom_id вида "findhome:<action>:<session uuid>"
type componentID struct {
	Action    string
	SessionID uuid.UUID
}

func encodeComponentID(action string, sessionID uuid.UUID) string {
	return constants.ComponentPrefix + ":" + action + ":" + sessionID.String()
}

func decodeComponentID(raw string) (componentID, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 || parts[0] != constants.ComponentPrefix {
		return componentID{}, fmt.Errorf("foreign custom_id %q", raw)
	}

	switch parts[1] {
	case constants.ActionSelectCity, constants.ActionSelectPrice, constants.ActionSelectBedrooms, constants.ActionConfirm:
	default:
		return componentID{}, fmt.Errorf("unknown component action %q", parts[1])
	}

	id, err := uuid.Parse(parts[2])
	if err != nil {
		return componentID{}, fmt.Errorf("bad session id in custom_id %q: %w", raw, err)
	}
	return componentID{Action: parts[1], SessionID: id}, nil
}

// filterField сопоставляет действие пикера полю фильтра
func (c componentID) filterField() (domain.FilterField, bool) {
	field, err := domain.ParseFilterField(c.Action)
	return field, err == nil
}
