package domain

import "errors"

var (
	ErrIncompleteFilters = errors.New("not all filters are selected")
	ErrSessionExpired    = errors.New("filter session has expired")
	ErrSessionNotFound   = errors.New("filter session not found")
	ErrSearchInProgress  = errors.New("search is already in progress")
	ErrNotSessionOwner   = errors.New("session belongs to another user")
	ErrUnknownOption     = errors.New("option is not in the filter catalog")
	ErrUnknownField      = errors.New("unknown filter field")
	ErrInvalidCriteria   = errors.New("invalid search criteria")
)
