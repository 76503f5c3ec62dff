package model

// OrderStatus is the provider-reported lifecycle state of a checkout order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusApproved  OrderStatus = "APPROVED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusUnknown   OrderStatus = "UNKNOWN"
)

// ParseOrderStatus folds anything the provider may report outside the known
// set into UNKNOWN rather than carrying raw strings around.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case OrderStatusCreated, OrderStatusApproved, OrderStatusCompleted:
		return OrderStatus(s)
	default:
		return OrderStatusUnknown
	}
}

// Order is the provider-side record of an intended payment. It is ephemeral:
// identified only by the provider-issued token, never persisted locally.
type Order struct {
	ID          string
	Amount      string
	Currency    string
	Status      OrderStatus
	ApprovalURL string
}
