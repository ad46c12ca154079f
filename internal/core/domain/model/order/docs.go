// Package order provides the Order aggregate, its line items, the status state
// machine and the request rules that guard every order mutation.
//
// Status lifecycle:
//
//	pending ──> preparing ──> out-for-delivery ──> delivered
//	   ^            │                 │
//	   └────────────┴─────────────────┘
//	  (any non-terminal label may follow any non-delivered status)
//
// Key business rules:
//   - a new order is always pending
//   - every order has at least one line item, each with a positive quantity
//   - a delivered order cannot be changed at all
//   - only a pending order can be deleted
package order
