package realtorfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"
)

// Config - параметры подключения к API realtor.ca
type Config struct {
	SearchURL string
	// Timeout - общий лимит на один HTTP-запрос; истечение = неудачный поиск
	Timeout time.Duration
	// RandomDelay - случайная задержка между запросами к провайдеру
	RandomDelay time.Duration
}

// RealtorFetcherAdapter отвечает за все взаимодействия с API realtor.ca
type RealtorFetcherAdapter struct {
	// родительский коллектор, клоны которого делят лимиты и HTTP-клиент.
	// Clone не копирует колбэки, поэтому они вешаются на каждый клон.
	collector *colly.Collector
	searchURL string
}

func NewRealtorFetcherAdapter(cfg Config) (*RealtorFetcherAdapter, error) {
	u, err := url.Parse(cfg.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("RealtorFetcherAdapter: invalid search URL %q: %w", cfg.SearchURL, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return nil, fmt.Errorf("RealtorFetcherAdapter: search URL %q must be absolute", cfg.SearchURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("RealtorFetcherAdapter: timeout must be positive")
	}

	c := colly.NewCollector(colly.AllowedDomains(u.Hostname()), colly.AllowURLRevisit())
	c.SetRequestTimeout(cfg.Timeout)

	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 2,
		RandomDelay: cfg.RandomDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("RealtorFetcherAdapter: failed to set limit rule: %w", err)
	}

	return &RealtorFetcherAdapter{
		collector: c,
		searchURL: u.String(),
	}, nil
}
