package enum

// ── State machines ──

const (
	OrderStatusNew       = "New"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

const (
	PaymentStateIdle       = "idle"
	PaymentStateProcessing = "processing"
	PaymentStateSuccess    = "success"
)

// ── Closed value sets ──

const (
	OrderTypeDineIn   = "Dine in"
	OrderTypeTakeAway = "Take away"
	OrderTypeDelivery = "Delivery"
)

const (
	SizeSmall  = "Small"
	SizeMedium = "Medium"
	SizeLarge  = "Large"
)

const (
	CategoryCoffee    = "Coffee"
	CategoryNonCoffee = "Non Coffee"
	CategoryFood      = "Food"
	CategorySnack     = "Snack"
	CategoryDessert   = "Dessert"
)

const (
	PlatformUberEats = "UBER_EATS"
	PlatformDoorDash = "DOORDASH"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// IsValidOrderStatus reports whether s is a member of the order status set.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsValidOrderType reports whether s is a member of the order type set.
func IsValidOrderType(s string) bool {
	switch s {
	case OrderTypeDineIn, OrderTypeTakeAway, OrderTypeDelivery:
		return true
	}
	return false
}

// IsValidPaymentMethod reports whether s is a member of the payment method set.
func IsValidPaymentMethod(s string) bool {
	switch s {
	case PaymentMethodCard, PaymentMethodCash:
		return true
	}
	return false
}
