package service

import "errors"

// Sentinel errors returned (optionally wrapped) by the managers.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateID   = errors.New("id already exists")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNoProducts    = errors.New("no products found")
)
