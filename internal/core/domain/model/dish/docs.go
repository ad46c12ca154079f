// Package dish provides the Dish aggregate and the request rules that guard
// every dish mutation.
//
// A dish is a menu item: name, description, price in minor currency units and
// an image URL. All four fields are required and the price is a positive
// integer. The id is assigned at creation and never changes.
//
// Dishes are created and updated but never deleted.
package dish
