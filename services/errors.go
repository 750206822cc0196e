package services

import "errors"

// Sentinel errors, matched with errors.Is in the controllers and mapped
// onto HTTP statuses there.
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrNotAMember       = errors.New("user not found in this group")

	ErrForbidden   = errors.New("forbidden")
	ErrEmptyCart   = errors.New("no item in cart")
	ErrStatusOnly  = errors.New("you can only update order status")
	ErrUserExists  = errors.New("username or email already registered")
	ErrBadLogin    = errors.New("invalid credentials")
)
