package webhook

import "errors"

var (
	ErrInvalidURL           = errors.New("webhook: invalid URL")
	ErrInvalidPayload       = errors.New("webhook: invalid payload")
	ErrInvalidConfiguration = errors.New("webhook: invalid configuration")
	ErrDeliveryFailed       = errors.New("webhook: delivery failed")
)
