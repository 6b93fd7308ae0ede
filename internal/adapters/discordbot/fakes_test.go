package discordbot

import (
	"context"
	"sync"

	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// fakeChatAPI запоминает все вызовы к Discord
type fakeChatAPI struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
	sent      []*discordgo.MessageSend
	sentTo    []string

	respondErr error
}

func (f *fakeChatAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.respondErr != nil {
		return f.respondErr
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeChatAPI) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeChatAPI) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	f.sentTo = append(f.sentTo, channelID)
	return &discordgo.Message{}, nil
}

type fakeStartUC struct {
	calls   int
	owner   string
	channel string
	panel   domain.FilterPanel
	err     error
}

func (f *fakeStartUC) Execute(_ context.Context, ownerID, channelID string) (domain.FilterPanel, error) {
	f.calls++
	f.owner, f.channel = ownerID, channelID
	return f.panel, f.err
}

type fakeSelectUC struct {
	calls     int
	sessionID uuid.UUID
	userID    string
	field     domain.FilterField
	value     string
	notice    string
	err       error
}

func (f *fakeSelectUC) Execute(ctx context.Context, sessionID uuid.UUID, userID string, field domain.FilterField, value string, responder port.ResponderPort) error {
	f.calls++
	f.sessionID, f.userID, f.field, f.value = sessionID, userID, field, value
	if f.err != nil {
		return f.err
	}
	return responder.Notice(ctx, f.notice)
}

type fakeConfirmUC struct {
	calls     int
	sessionID uuid.UUID
	userID    string
	err       error
}

func (f *fakeConfirmUC) Execute(ctx context.Context, sessionID uuid.UUID, userID string, responder port.ResponderPort) error {
	f.calls++
	f.sessionID, f.userID = sessionID, userID
	if f.err != nil {
		return f.err
	}
	if err := responder.Announce(ctx, "summary"); err != nil {
		return err
	}
	return responder.SendCard(ctx, domain.Card{Title: "card"})
}
