package discordbot

import (
	"context"
	"fmt"
	"sync"

	"findhome-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// interactionAPI - часть *discordgo.Session, через которую идут ответы на взаимодействия
type interactionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// InteractionResponder реализует port.ResponderPort для одного взаимодействия.
// Первое сообщение уходит как ответ на взаимодействие, все последующие - follow-up.
type InteractionResponder struct {
	api         interactionAPI
	interaction *discordgo.Interaction

	mu        sync.Mutex
	responded bool
}

func newInteractionResponder(api interactionAPI, interaction *discordgo.Interaction) *InteractionResponder {
	return &InteractionResponder{api: api, interaction: interaction}
}

// Defer подтверждает нажатие без видимого сообщения; дальше все ответы - follow-up
func (r *InteractionResponder) Defer(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.responded {
		return nil
	}
	err := r.api.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("defer interaction: %w", err)
	}
	r.responded = true
	return nil
}

func (r *InteractionResponder) Notice(ctx context.Context, text string) error {
	return r.send(ctx, text, nil, discordgo.MessageFlagsEphemeral)
}

func (r *InteractionResponder) Announce(ctx context.Context, text string) error {
	return r.send(ctx, text, nil, 0)
}

func (r *InteractionResponder) SendCard(ctx context.Context, card domain.Card) error {
	return r.send(ctx, "", []*discordgo.MessageEmbed{toEmbed(card)}, 0)
}

func (r *InteractionResponder) send(ctx context.Context, content string, embeds []*discordgo.MessageEmbed, flags discordgo.MessageFlags) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.responded {
		err := r.api.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Embeds:  embeds,
				Flags:   flags,
			},
		}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("respond to interaction: %w", err)
		}
		r.responded = true
		return nil
	}

	_, err := r.api.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
		Content: content,
		Embeds:  embeds,
		Flags:   flags,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send follow-up message: %w", err)
	}
	return nil
}
