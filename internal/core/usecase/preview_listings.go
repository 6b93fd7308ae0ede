package usecase

import (
	"context"
	"findhome-bot/internal/contextkeys"
	"findhome-bot/internal/core/domain"
	"findhome-bot/internal/core/port"
)

// PreviewListingsUseCase выполняет тот же поиск, что и кнопка в чате, но без сессии
type PreviewListingsUseCase struct {
	catalog domain.FilterCatalog
	fetcher port.ListingsFetcherPort
}

func NewPreviewListingsUseCase(catalog domain.FilterCatalog, fetcher port.ListingsFetcherPort) *PreviewListingsUseCase {
	return &PreviewListingsUseCase{catalog: catalog, fetcher: fetcher}
}

// Execute возвращает ошибку только для невалидных критериев;
// сбой провайдера отражается в FetchResult.
func (uc *PreviewListingsUseCase) Execute(ctx context.Context, criteria domain.SearchCriteria) (domain.SearchCriteria, domain.FetchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "PreviewListings"})

	checked, err := uc.catalog.CheckCriteria(criteria)
	if err != nil {
		logger.Info("Preview rejected", port.Fields{"error": err.Error()})
		return domain.SearchCriteria{}, domain.FetchResult{}, err
	}

	result := uc.fetcher.FetchListings(ctx, checked)
	logger.Info("Preview finished", port.Fields{
		"status":        result.Status.String(),
		"results_count": len(result.Listings),
	})
	return checked, result, nil
}
