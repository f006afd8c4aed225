package vo

import "errors"

var ErrGiftCardRequired = errors.New("gift card number is required")
var ErrRejectionNotConfirmed = errors.New("rejection must be confirmed")
var ErrSelectionNotFound = errors.New("approval selection not found")
var ErrInvalidEntryIndex = errors.New("invalid withdrawal index")
