package partner

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// MaxConcurrentLoad is the policy cap on the number of orders a partner may
// carry at once. The assignment pipeline rejects partners at or above it.
const MaxConcurrentLoad = 3

var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")

	// ErrLoadExceeded is returned when AcceptOrder is called on a partner
	// that already carries the maximum concurrent load.
	ErrLoadExceeded = errors.New("partner load exceeded")
)

// DeliveryPartner is the aggregate root for a courier working the dispatch area.
//
// Key responsibilities:
//   - Holding identity and contact details
//   - Declaring the set of geographic areas the partner serves
//   - Declaring the daily shift window during which the partner is eligible
//   - Tracking the current concurrent order load
//
// Business rules:
//   - A partner must serve at least one area
//   - Area membership is matched by exact, case-sensitive string equality
//   - The shift window is inclusive on both bounds
//   - AcceptOrder never raises the load above MaxConcurrentLoad, but a load
//     already above the cap (arriving through other mutation paths) is
//     tolerated and simply keeps the partner ineligible
type DeliveryPartner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the partner's display name
	name string
	// email is the partner's contact email, unique across partners
	email string
	// phone is the partner's contact phone number
	phone string
	// areas are the geographic zone labels the partner delivers to
	areas []string
	// shift is the daily hour-of-day availability window
	shift Shift
	// currentLoad counts concurrently assigned, not yet completed orders
	currentLoad int
	// status is the operational state, informational only
	status Status

	guard kernel.ConstructorGuard
}

// NewDeliveryPartner creates a partner with zero current load and Active status.
func NewDeliveryPartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	areas []string,
	shift Shift,
) (*DeliveryPartner, error) {
	partner := &DeliveryPartner{
		status: Active,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setAreas(areas),
		partner.setShift(shift),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// RestoreDeliveryPartner reconstructs a partner from persistent storage,
// including its current load and status.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	areas []string,
	shift Shift,
	currentLoad int,
	status Status,
) (*DeliveryPartner, error) {
	partner := &DeliveryPartner{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		partner.setID(id),
		partner.setName(name),
		partner.setEmail(email),
		partner.setPhone(phone),
		partner.setAreas(areas),
		partner.setShift(shift),
		partner.setCurrentLoad(currentLoad),
		partner.setStatus(status),
	); err != nil {
		return nil, err
	}

	return partner, nil
}

// Validate ensures the partner was created through one of the constructors.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// Email returns the partner's contact email.
func (p *DeliveryPartner) Email() string {
	return p.email
}

// Phone returns the partner's contact phone number.
func (p *DeliveryPartner) Phone() string {
	return p.phone
}

// Areas returns a copy of the served area labels.
func (p *DeliveryPartner) Areas() []string {
	out := make([]string, len(p.areas))
	copy(out, p.areas)
	return out
}

// Shift returns the daily availability window.
func (p *DeliveryPartner) Shift() Shift {
	return p.shift
}

// CurrentLoad returns the number of concurrently assigned orders.
func (p *DeliveryPartner) CurrentLoad() int {
	return p.currentLoad
}

// Status returns the operational state of the partner.
func (p *DeliveryPartner) Status() Status {
	return p.status
}

// Serves reports whether the partner delivers to the given area.
// Matching is exact and case-sensitive: a partner serving "north" does not
// serve "North".
func (p *DeliveryPartner) Serves(area string) bool {
	return slices.Contains(p.areas, area)
}

// IsOnShift reports whether the given hour of day falls inside the partner's
// shift window, inclusive on both bounds.
func (p *DeliveryPartner) IsOnShift(hour int) bool {
	return p.shift.Contains(hour)
}

// CanAcceptOrder reports whether the partner is below the concurrent load cap.
func (p *DeliveryPartner) CanAcceptOrder() bool {
	return p.currentLoad < MaxConcurrentLoad
}

// AcceptOrder increments the partner's load by one.
// Returns ErrLoadExceeded if the partner is already at or above
// MaxConcurrentLoad; the load is never raised past the cap by this method.
func (p *DeliveryPartner) AcceptOrder() error {
	if !p.CanAcceptOrder() {
		return ErrLoadExceeded
	}

	p.currentLoad++
	return nil
}

// UpdateContact replaces the partner's contact details.
// Empty arguments keep the current value, mirroring partial updates.
func (p *DeliveryPartner) UpdateContact(name, email, phone string) error {
	if name != "" {
		if err := p.setName(name); err != nil {
			return err
		}
	}
	if email != "" {
		if err := p.setEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := p.setPhone(phone); err != nil {
			return err
		}
	}
	return nil
}

// ChangeAreas replaces the served area set. The new set must be non-empty.
func (p *DeliveryPartner) ChangeAreas(areas []string) error {
	return p.setAreas(areas)
}

// ChangeShift replaces the daily availability window.
func (p *DeliveryPartner) ChangeShift(shift Shift) error {
	return p.setShift(shift)
}

// ChangeStatus flips the operational state of the partner.
func (p *DeliveryPartner) ChangeStatus(status Status) error {
	return p.setStatus(status)
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	p.email = email
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

// setAreas stores a deduplicated copy of the area labels, preserving order.
func (p *DeliveryPartner) setAreas(areas []string) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}

	deduped := make([]string, 0, len(areas))
	for _, area := range areas {
		if area == "" {
			return errs.NewValueIsRequiredError("area")
		}
		if !slices.Contains(deduped, area) {
			deduped = append(deduped, area)
		}
	}

	p.areas = deduped
	return nil
}

func (p *DeliveryPartner) setShift(shift Shift) error {
	if err := shift.Validate(); err != nil {
		return err
	}
	p.shift = shift
	return nil
}

func (p *DeliveryPartner) setCurrentLoad(currentLoad int) error {
	if currentLoad < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"currentLoad",
			fmt.Errorf("%d is negative", currentLoad),
		)
	}
	p.currentLoad = currentLoad
	return nil
}

func (p *DeliveryPartner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
