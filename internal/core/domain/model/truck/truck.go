// Package truck defines the Truck aggregate. A truck is a vehicle of the
// fleet, identified for dispatchers by its name and for enforcement by its
// globally unique license plate. Plate uniqueness is enforced by the storage
// layer; a violation surfaces as a conflict error at the boundary.
package truck

import (
	"errors"
	"strings"
	"time"

	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"
	"wastetrack/internal/pkg/guard"
)

// ErrTruckIsNotConstructed is returned when a Truck instance was not created
// through NewTruck or RestoreTruck.
var ErrTruckIsNotConstructed = errors.New(
	"Truck must be created via NewTruck or RestoreTruck constructors")

type Truck struct {
	id           kernel.UUID
	name         string
	licensePlate string
	active       bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewTruck creates an active truck. The plate is normalized to uppercase so
// the storage uniqueness check is case-insensitive in practice.
func NewTruck(name string, licensePlate string) (*Truck, error) {
	t := &Truck{
		id:        kernel.NewUUID(),
		active:    true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setName(name),
		t.setLicensePlate(licensePlate),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck hydrates a truck from persistence.
func RestoreTruck(id kernel.UUID, name string, licensePlate string, active bool, createdAt time.Time) (*Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	t := &Truck{
		id:        id,
		active:    active,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setName(name),
		t.setLicensePlate(licensePlate),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate ensures the Truck was created through a constructor.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) ID() kernel.UUID      { return t.id }
func (t *Truck) Name() string         { return t.name }
func (t *Truck) LicensePlate() string { return t.licensePlate }
func (t *Truck) IsActive() bool       { return t.active }
func (t *Truck) CreatedAt() time.Time { return t.createdAt }

// Deactivate takes the truck out of service without deleting its history.
func (t *Truck) Deactivate() {
	t.active = false
}

func (t *Truck) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = strings.TrimSpace(name)
	return nil
}

func (t *Truck) setLicensePlate(licensePlate string) error {
	plate := strings.ToUpper(strings.TrimSpace(licensePlate))
	if plate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	t.licensePlate = plate
	return nil
}
