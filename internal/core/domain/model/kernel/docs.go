// Package kernel holds value objects shared by the dish and order aggregates.
//
// ID is the only shared value object: an opaque identifier assigned once,
// server side, when an entity is created. UUIDGenerator is the default source
// of new IDs.
package kernel
