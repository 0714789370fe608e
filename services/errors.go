package services

import "errors"

// Validation failures are local and non-retriable; controllers map them to
// HTTP statuses with errors.Is.
var (
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrNotInRestaurant    = errors.New("menu item not in this restaurant")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrNoTableContext     = errors.New("missing table context")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidQRCode      = errors.New("unrecognized table QR code")
	ErrInvalidPercent     = errors.New("discount percent must be between 0 and 100")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// PromoNotFoundMessage is the user-visible message for a failed promo apply.
// A bad code is an expected input mistake, not an exceptional condition, so
// it travels next to the ok flag rather than as an error.
const PromoNotFoundMessage = "Invalid or expired promo code"
