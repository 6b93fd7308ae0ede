package discordbot

import (
	"testing"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() domain.FilterCatalog {
	return domain.FilterCatalog{
		Cities:     []string{"Toronto", "Calgary"},
		PriceTiers: []domain.PriceTier{{Label: "$750,000", Value: 750000}},
		Bedrooms:   []int{1, 2},
	}
}

func TestBuildPanelComponents(t *testing.T) {
	panel := domain.FilterPanel{SessionID: uuid.New(), Catalog: testCatalog()}

	rows := buildPanelComponents(panel)
	require.Len(t, rows, 4)

	menu := func(i int) discordgo.SelectMenu {
		row, ok := rows[i].(discordgo.ActionsRow)
		require.True(t, ok)
		require.Len(t, row.Components, 1)
		m, ok := row.Components[0].(discordgo.SelectMenu)
		require.True(t, ok)
		return m
	}

	city := menu(0)
	assert.Equal(t, discordgo.StringSelectMenu, city.MenuType)
	assert.Equal(t, constants.CityPlaceholder, city.Placeholder)
	assert.Equal(t, encodeComponentID(constants.ActionSelectCity, panel.SessionID), city.CustomID)
	assert.Equal(t, []discordgo.SelectMenuOption{
		{Label: "Toronto", Value: "Toronto"},
		{Label: "Calgary", Value: "Calgary"},
	}, city.Options)
	assert.Equal(t, 1, city.MaxValues)

	price := menu(1)
	assert.Equal(t, []discordgo.SelectMenuOption{{Label: "$750,000", Value: "750000"}}, price.Options)

	beds := menu(2)
	assert.Equal(t, encodeComponentID(constants.ActionSelectBedrooms, panel.SessionID), beds.CustomID)
	assert.Len(t, beds.Options, 2)

	buttonRow, ok := rows[3].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := buttonRow.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, constants.ConfirmButtonLabel, button.Label)
	assert.Equal(t, discordgo.SuccessButton, button.Style)
	assert.Equal(t, encodeComponentID(constants.ActionConfirm, panel.SessionID), button.CustomID)
}

func TestToEmbed(t *testing.T) {
	embed := toEmbed(domain.Card{
		Title:       "12 Queen St W",
		URL:         "https://www.realtor.ca/real-estate/1",
		Description: "$749,900",
		ImageURL:    "https://cdn/1.jpg",
		Fields:      []domain.CardField{{Name: "Bedrooms", Value: "3", Inline: true}},
	})

	assert.Equal(t, "12 Queen St W", embed.Title)
	assert.Equal(t, "https://www.realtor.ca/real-estate/1", embed.URL)
	assert.Equal(t, "$749,900", embed.Description)
	require.NotNil(t, embed.Image)
	assert.Equal(t, "https://cdn/1.jpg", embed.Image.URL)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, &discordgo.MessageEmbedField{Name: "Bedrooms", Value: "3", Inline: true}, embed.Fields[0])
}
