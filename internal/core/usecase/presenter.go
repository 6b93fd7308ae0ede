package usecase

import (
	"context"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ResultPresenter превращает результат поиска в сообщения чата
type ResultPresenter struct {
	printer *message.Printer
}

func NewResultPresenter() *ResultPresenter {
	return &ResultPresenter{printer: message.NewPrinter(language.English)}
}

// FormatPrice форматирует цену с разделителями разрядов: 750000 -> "$750,000"
func (p *ResultPresenter) FormatPrice(price int) string {
	return p.printer.Sprintf("$%d", price)
}

// Summary - публичное сообщение с параметрами запроса
func (p *ResultPresenter) Summary(criteria domain.SearchCriteria) string {
	return fmt.Sprintf("🏠 Showing listings for **%s** under **%s** with at least **%d** bedrooms:",
		criteria.City, p.FormatPrice(criteria.MaxPrice), criteria.MinBedrooms)
}

// Card строит карточку одного объявления
func (p *ResultPresenter) Card(listing domain.Listing) domain.Card {
	image := listing.ImageURL
	if image == "" {
		image = domain.PlaceholderImageURL
	}
	return domain.Card{
		Title:       listing.Title,
		URL:         listing.URL,
		Description: listing.Price,
		ImageURL:    image,
		Fields: []domain.CardField{
			{Name: BedroomsFieldName, Value: listing.Bedrooms, Inline: true},
		},
	}
}

// Present отправляет сводку, а затем либо одно сообщение-заглушку, либо по карточке на объявление
func (p *ResultPresenter) Present(ctx context.Context, responder port.ResponderPort, criteria domain.SearchCriteria, result domain.FetchResult) error {
	if err := responder.Announce(ctx, p.Summary(criteria)); err != nil {
		return fmt.Errorf("present summary: %w", err)
	}

	if result.Failed() {
		if err := responder.Announce(ctx, ProviderDownMsg); err != nil {
			return fmt.Errorf("present provider failure: %w", err)
		}
		return nil
	}

	if len(result.Listings) == 0 {
		if err := responder.Announce(ctx, NoResultsMsg); err != nil {
			return fmt.Errorf("present empty result: %w", err)
		}
		return nil
	}

	for i, listing := range result.Listings {
		if err := responder.SendCard(ctx, p.Card(listing)); err != nil {
			return fmt.Errorf("present card %d of %d: %w", i+1, len(result.Listings), err)
		}
	}
	return nil
}
