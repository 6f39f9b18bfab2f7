// Package partner contains the DeliveryPartner aggregate and its value
// objects: the shift window that bounds a partner's daily availability and
// the operational status. The aggregate owns the concurrent load counter
// that the assignment pipeline checks and increments.
package partner
