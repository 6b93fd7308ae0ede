package discordbot

import (
	"strconv"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

// buildPanelComponents - три пикера и кнопка, каждый в своей строке
func buildPanelComponents(panel domain.FilterPanel) []discordgo.MessageComponent {
	cities := make([]discordgo.SelectMenuOption, 0, len(panel.Catalog.Cities))
	for _, city := range panel.Catalog.Cities {
		cities = append(cities, discordgo.SelectMenuOption{Label: city, Value: city})
	}

	prices := make([]discordgo.SelectMenuOption, 0, len(panel.Catalog.PriceTiers))
	for _, tier := range panel.Catalog.PriceTiers {
		prices = append(prices, discordgo.SelectMenuOption{Label: tier.Label, Value: strconv.Itoa(tier.Value)})
	}

	bedrooms := make([]discordgo.SelectMenuOption, 0, len(panel.Catalog.Bedrooms))
	for _, n := range panel.Catalog.Bedrooms {
		v := strconv.Itoa(n)
		bedrooms = append(bedrooms, discordgo.SelectMenuOption{Label: v, Value: v})
	}

	return []discordgo.MessageComponent{
		selectRow(encodeComponentID(constants.ActionSelectCity, panel.SessionID), constants.CityPlaceholder, cities),
		selectRow(encodeComponentID(constants.ActionSelectPrice, panel.SessionID), constants.PricePlaceholder, prices),
		selectRow(encodeComponentID(constants.ActionSelectBedrooms, panel.SessionID), constants.BedroomsPlaceholder, bedrooms),
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    constants.ConfirmButtonLabel,
					Style:    discordgo.SuccessButton,
					CustomID: encodeComponentID(constants.ActionConfirm, panel.SessionID),
				},
			},
		},
	}
}

func selectRow(customID, placeholder string, options []discordgo.SelectMenuOption) discordgo.ActionsRow {
	minValues := 1
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID,
				Placeholder: placeholder,
				MinValues:   &minValues,
				MaxValues:   1,
				Options:     options,
			},
		},
	}
}

// toEmbed переводит карточку объявления в embed
func toEmbed(card domain.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		URL:         card.URL,
		Description: card.Description,
	}
	if card.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.ImageURL}
	}
	for _, f := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}
