package entity

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
)

const (
	RoleOwner   = "owner"
	RoleKitchen = "kitchen"
	RoleGuest   = "guest"
)

// One canonical forward-only chain; each role advances along its own
// successor map. The kitchen has no accept gate, so it goes straight to
// preparing, and only the owner settles the bill.
var (
	ownerNext = map[OrderStatus]OrderStatus{
		StatusNew:       StatusAccepted,
		StatusAccepted:  StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusServed,
		StatusServed:    StatusPaid,
	}
	kitchenNext = map[OrderStatus]OrderStatus{
		StatusNew:       StatusPreparing,
		StatusAccepted:  StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusServed,
	}
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusAccepted, StatusPreparing, StatusReady, StatusServed, StatusPaid:
		return true
	}
	return false
}

// Active reports whether the order still needs attention at the table.
func (s OrderStatus) Active() bool {
	return s.Valid() && s != StatusServed && s != StatusPaid
}

// NextStatus returns the immediate successor of cur for the given role.
// ok is false when the role cannot advance an order in state cur.
func NextStatus(role string, cur OrderStatus) (next OrderStatus, ok bool) {
	switch role {
	case RoleOwner:
		next, ok = ownerNext[cur]
	case RoleKitchen:
		next, ok = kitchenNext[cur]
	}
	return next, ok
}
