// Package pricebook records the unit price of each traded item.
//
// Prices are arbitrary-precision decimals and are written once: an item that
// already has a price keeps it.
package pricebook
