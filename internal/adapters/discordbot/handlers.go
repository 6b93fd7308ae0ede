package discordbot

import (
	"context"
	"errors"
	"strings"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// chatAPI - методы *discordgo.Session, которые нужны обработчикам
type chatAPI interface {
	interactionAPI
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// newRequestContext - свой trace_id и логгер на каждое событие
func (a *DiscordGatewayAdapter) newRequestContext(fields port.Fields) (context.Context, port.LoggerPort) {
	traceID := uuid.New().String()

	logFields := port.Fields{"trace_id": traceID}
	for k, v := range fields {
		logFields[k] = v
	}
	reqLogger := a.logger.WithFields(logFields)

	ctx := contextkeys.ContextWithLogger(a.rootContext(), reqLogger)
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)
	return ctx, reqLogger
}

func (a *DiscordGatewayAdapter) isPrefixCommand(content string) bool {
	command := a.cfg.CommandPrefix + a.cfg.CommandName
	content = strings.TrimSpace(content)
	return content == command || strings.HasPrefix(content, command+" ")
}

// handleMessage открывает панель по префиксной команде
func (a *DiscordGatewayAdapter) handleMessage(api chatAPI, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || !a.isPrefixCommand(m.Content) {
		return
	}

	ctx, reqLogger := a.newRequestContext(port.Fields{
		"source":     "prefix_command",
		"user_id":    m.Author.ID,
		"channel_id": m.ChannelID,
	})

	panel, err := a.startUC.Execute(ctx, m.Author.ID, m.ChannelID)
	if err != nil {
		reqLogger.Error("Failed to open filter session", err, nil)
		return
	}

	_, err = api.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:    panel.Prompt,
		Components: buildPanelComponents(panel),
	}, discordgo.WithContext(ctx))
	if err != nil {
		reqLogger.Error("Failed to send filter panel", err, port.Fields{"session_id": panel.SessionID.String()})
	}
}

func (a *DiscordGatewayAdapter) handleInteraction(api chatAPI, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		a.handleSlashCommand(api, i)
	case discordgo.InteractionMessageComponent:
		a.handleComponent(api, i)
	}
}

func (a *DiscordGatewayAdapter) handleSlashCommand(api chatAPI, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != a.cfg.CommandName {
		return
	}

	userID := interactionUserID(i.Interaction)
	ctx, reqLogger := a.newRequestContext(port.Fields{
		"source":     "slash_command",
		"user_id":    userID,
		"channel_id": i.ChannelID,
	})

	panel, err := a.startUC.Execute(ctx, userID, i.ChannelID)
	if err != nil {
		reqLogger.Error("Failed to open filter session", err, nil)
		return
	}

	err = api.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    panel.Prompt,
			Components: buildPanelComponents(panel),
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		reqLogger.Error("Failed to send filter panel", err, port.Fields{"session_id": panel.SessionID.String()})
	}
}

func (a *DiscordGatewayAdapter) handleComponent(api chatAPI, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	id, err := decodeComponentID(data.CustomID)
	if err != nil {
		// чужой компонент, не наш
		a.logger.Debug("Ignoring component", port.Fields{"custom_id": data.CustomID, "reason": err.Error()})
		return
	}

	userID := interactionUserID(i.Interaction)
	ctx, reqLogger := a.newRequestContext(port.Fields{
		"source":     "component",
		"action":     id.Action,
		"user_id":    userID,
		"session_id": id.SessionID.String(),
	})
	responder := newInteractionResponder(api, i.Interaction)

	if id.Action == constants.ActionConfirm {
		// запрос к провайдеру дольше окна первичного ответа
		if err := responder.Defer(ctx); err != nil {
			reqLogger.Error("Failed to defer confirm interaction", err, nil)
			return
		}
		err = a.confirmUC.Execute(ctx, id.SessionID, userID, responder)
	} else {
		field, _ := id.filterField()
		value := ""
		if len(data.Values) > 0 {
			value = data.Values[0]
		}
		err = a.selectUC.Execute(ctx, id.SessionID, userID, field, value, responder)
	}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
		// панель неактивна: молча подтверждаем нажатие
		if ackErr := responder.Defer(ctx); ackErr != nil {
			reqLogger.Warn("Failed to acknowledge inactive panel", port.Fields{"error": ackErr.Error()})
		}
	default:
		reqLogger.Error("Component interaction failed", err, nil)
	}
}

func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
