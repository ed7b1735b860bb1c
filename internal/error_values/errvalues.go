package errorvalues

import "errors"

var (
	ErrItemNotFound     = errors.New("item doesn't exist")
	ErrTemplateNotFound = errors.New("template doesn't exist")
	ErrInvalidWeekday   = errors.New("invalid weekday name")
	ErrInvalidCategory  = errors.New("invalid item category")
	ErrEmptyFeed        = errors.New("calendar feed is empty")
	ErrValidation       = errors.New("request validation failed")
)
