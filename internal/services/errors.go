package services

import (
	"errors"

	"socialgrowth/internal/pricing"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidUTR    = errors.New("transaction reference is too short")
	ErrEmptyPrompt   = errors.New("nothing to ask the assistant about")

	// Order input failures, shown inline to the customer.
	ErrInvalidLink         = pricing.ErrInvalidLink
	ErrQuantityOutOfRange  = pricing.ErrQuantityOutOfRange
	ErrInsufficientBalance = pricing.ErrInsufficientBalance
)
