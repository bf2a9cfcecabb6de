package store

import "errors"

var (
	ErrTyreNotFound     = errors.New("tyre not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrLocationInUse    = errors.New("location still holds stock")
)
