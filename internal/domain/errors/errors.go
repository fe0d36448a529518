package errors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
	ErrInvalidSlot      = errors.New("invalid calendar slot")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyServices    = errors.New("at least one service is required")
	ErrUnknownClient    = errors.New("unknown client")
	ErrUnknownService   = errors.New("unknown service")
	ErrUnknownDriver    = errors.New("unknown storage driver")
)
