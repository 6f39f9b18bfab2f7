// Package order contains the Order aggregate and its value objects.
// An order carries customer contact details, a serviced area label, the
// ordered items and a scheduled fulfillment time, and walks a strict
// lifecycle from pending to delivered.
package order
