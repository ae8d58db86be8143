package contract

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrShipmentIsNotConstructed is returned when using an improperly
// initialized Shipment.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is one carriage leg of a contract, identified by its position in
// the contract's shipment list. It carries an ordered list of item ids from
// the source address to the destination address on behalf of the carrying
// business. All mutation goes through the owning Contract so the approval
// reset rule cannot be bypassed.
type Shipment struct {
	status ShipmentStatus
	// carrier is the carrying business id
	carrier            kernel.UUID
	sourceAddress      kernel.Address
	destinationAddress kernel.Address
	receivingStatus    ReceivingStatus
	items              []kernel.UUID
	guard              guard.ConstructorGuard
}

// NewShipment creates a shipment awaiting carrier confirmation, not yet
// arrived, carrying the given items.
func NewShipment(
	carrier kernel.UUID,
	sourceAddress kernel.Address,
	destinationAddress kernel.Address,
	items []kernel.UUID,
) (*Shipment, error) {
	return RestoreShipment(ShipmentWaitingConfirmation, carrier,
		sourceAddress, destinationAddress, NotArrived, items)
}

// RestoreShipment reconstructs a Shipment from persistent storage.
func RestoreShipment(
	status ShipmentStatus,
	carrier kernel.UUID,
	sourceAddress kernel.Address,
	destinationAddress kernel.Address,
	receivingStatus ReceivingStatus,
	items []kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setStatus(status),
		s.setCarrier(carrier),
		s.setAddresses(sourceAddress, destinationAddress),
		s.setReceivingStatus(receivingStatus),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that the Shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// Status returns the carriage status of the shipment.
func (s *Shipment) Status() ShipmentStatus {
	return s.status
}

// Carrier returns the id of the carrying business.
func (s *Shipment) Carrier() kernel.UUID {
	return s.carrier
}

// SourceAddress returns where the carriage starts.
func (s *Shipment) SourceAddress() kernel.Address {
	return s.sourceAddress
}

// DestinationAddress returns where the carriage ends.
func (s *Shipment) DestinationAddress() kernel.Address {
	return s.destinationAddress
}

// ReceivingStatus returns whether the buyer has received the shipment.
func (s *Shipment) ReceivingStatus() ReceivingStatus {
	return s.receivingStatus
}

// Items returns a copy of the ordered item id list.
func (s *Shipment) Items() []kernel.UUID {
	return slices.Clone(s.items)
}

// assignCarrier reassigns the carrying business and sets the carriage status
// directly. This is a routing change, not a carriage transition; the owning
// contract resets both approvals afterwards.
func (s *Shipment) assignCarrier(carrier kernel.UUID, status ShipmentStatus) error {
	if err := errors.Join(carrier.Validate(), status.Validate()); err != nil {
		return err
	}

	s.carrier = carrier
	s.status = status
	return nil
}

// transition applies a carriage status transition.
func (s *Shipment) transition(next ShipmentStatus) error {
	status, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = status
	return nil
}

// markArrived records delivery to the buyer. A shipment arrives once.
func (s *Shipment) markArrived() error {
	if s.receivingStatus != NotArrived {
		return errs.NewInvalidStateTransitionError("shipment receiving",
			s.receivingStatus.String(), Arrived.String())
	}

	s.receivingStatus = Arrived
	return nil
}

func (s *Shipment) setStatus(status ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCarrier(carrier kernel.UUID) error {
	if err := carrier.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carryingBusiness", err)
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setAddresses(source, destination kernel.Address) error {
	if err := errors.Join(source.Validate(), destination.Validate()); err != nil {
		return err
	}
	s.sourceAddress = source
	s.destinationAddress = destination
	return nil
}

func (s *Shipment) setReceivingStatus(receivingStatus ReceivingStatus) error {
	if err := receivingStatus.Validate(); err != nil {
		return err
	}
	s.receivingStatus = receivingStatus
	return nil
}

func (s *Shipment) setItems(items []kernel.UUID) error {
	for _, itemID := range items {
		if err := itemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("items", err)
		}
	}
	s.items = slices.Clone(items)
	return nil
}
