// Package contract contains the Contract aggregate: the agreement between a
// buying and a selling business, its per-side approval pair, its requested
// item lines, and its embedded shipments.
//
// The aggregate is the single place where the lifecycle gates are enforced:
//
//   - Approval reset: any structural edit (item requests, shipments, carrier
//     assignment, arrival time) resets both approvals to WaitingConfirmation.
//   - Confirmation gate: status becomes Confirmed only when both approvals
//     are Confirmed and every shipment is Accepted.
//   - Completion gate: status becomes Completed only when both approvals are
//     Confirmed and every shipment has Arrived. Completed is terminal.
//   - Cancellation gate: Confirmed and Completed contracts cannot be
//     cancelled; each side records its cancellation independently and the
//     record is deleted only once both sides have cancelled.
//
// Custody of the shipped items is not handled here; the command layer drives
// the custody service whenever a shipment acceptance or arrival moves items
// between businesses.
package contract

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// Domain errors for contract operations.
var (
	// ErrContractIsNotConstructed is returned when using an improperly initialized Contract.
	ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")
	// ErrPartiesMustDiffer is returned when the buying and selling business are the same.
	ErrPartiesMustDiffer = errs.NewValueIsInvalidError("buying and selling business must differ")
	// ErrArrivalTimeIsRequired is returned when the arrival time is missing.
	ErrArrivalTimeIsRequired = errs.NewValueIsRequiredError("arrivalDateTime")
)

// newNotPartyError reports an acting business that is neither the buyer nor
// the seller of the contract.
func newNotPartyError(businessID kernel.UUID) error {
	return fmt.Errorf("%w: business %s is neither buyer nor seller", errs.ErrUnauthorized, businessID)
}

// Contract represents an agreement binding a buying and a selling business
// until both approve the terms, every shipment is delivered, and custody of
// the items has moved end to end.
type Contract struct {
	id kernel.UUID
	// buyerID and sellerID are the two contracting business ids; always distinct
	buyerID  kernel.UUID
	sellerID kernel.UUID
	// buyerApproval and sellerApproval form the approval pair
	buyerApproval  ApprovalStatus
	sellerApproval ApprovalStatus
	status         Status
	// arrivalAt is the advisory arrival deadline for the whole contract
	arrivalAt    time.Time
	itemRequests []ItemRequest
	shipments    []*Shipment
	guard        guard.ConstructorGuard
}

// NewContract opens a contract between a buying and a selling business with
// both sides waiting to confirm and no item requests or shipments yet.
func NewContract(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	arrivalAt time.Time,
) (*Contract, error) {
	return RestoreContract(id, buyerID, sellerID,
		ApprovalWaitingConfirmation, ApprovalWaitingConfirmation,
		WaitingConfirmation, arrivalAt, nil, nil)
}

// RestoreContract reconstructs a Contract from persistent storage with its
// item requests and shipments in persisted order.
func RestoreContract(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	buyerApproval ApprovalStatus,
	sellerApproval ApprovalStatus,
	status Status,
	arrivalAt time.Time,
	itemRequests []ItemRequest,
	shipments []*Shipment,
) (*Contract, error) {
	c := &Contract{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setParties(buyerID, sellerID),
		c.setApprovals(buyerApproval, sellerApproval),
		c.setStatus(status),
		c.setArrivalAt(arrivalAt),
		c.setItemRequests(itemRequests),
		c.setShipments(shipments),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the Contract was built through a constructor.
func (c *Contract) Validate() error {
	if c == nil {
		return ErrContractIsNotConstructed
	}
	return c.guard.Validate(ErrContractIsNotConstructed)
}

// IsEqual compares two contracts by their unique identifiers.
func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the unique identifier of the contract.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// BuyerID returns the buying business id.
func (c *Contract) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the selling business id.
func (c *Contract) SellerID() kernel.UUID {
	return c.sellerID
}

// BuyerApproval returns the buying side's approval status.
func (c *Contract) BuyerApproval() ApprovalStatus {
	return c.buyerApproval
}

// SellerApproval returns the selling side's approval status.
func (c *Contract) SellerApproval() ApprovalStatus {
	return c.sellerApproval
}

// Status returns the overall lifecycle status of the contract.
func (c *Contract) Status() Status {
	return c.status
}

// ArrivalAt returns the advisory arrival deadline.
func (c *Contract) ArrivalAt() time.Time {
	return c.arrivalAt
}

// ItemRequests returns a copy of the ordered requested-item lines.
func (c *Contract) ItemRequests() []ItemRequest {
	return slices.Clone(c.itemRequests)
}

// Shipments returns the ordered shipment list. Shipments are mutated only
// through the contract's own methods.
func (c *Contract) Shipments() []*Shipment {
	return slices.Clone(c.shipments)
}

// ShipmentAt returns the shipment at the given position.
func (c *Contract) ShipmentAt(index int) (*Shipment, error) {
	if index < 0 || index >= len(c.shipments) {
		return nil, errs.NewObjectNotFoundError("shipmentIndex", index)
	}
	return c.shipments[index], nil
}

// IsParty reports whether the given business is the buyer or the seller.
func (c *Contract) IsParty(businessID kernel.UUID) bool {
	return c.buyerID.IsEqual(businessID) || c.sellerID.IsEqual(businessID)
}

// AddItemRequest appends a requested-item line and resets both approvals.
func (c *Contract) AddItemRequest(request ItemRequest) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return err
	}

	c.itemRequests = append(c.itemRequests, request)
	c.resetApprovals()
	return nil
}

// RemoveItemRequests removes the lines at the given positions and resets
// both approvals. All indexes are bounds-checked before anything is removed.
func (c *Contract) RemoveItemRequests(indexes []int) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	for _, index := range indexes {
		if index < 0 || index >= len(c.itemRequests) {
			return errs.NewObjectNotFoundError("itemRequestIndex", index)
		}
	}

	// remove back to front so earlier positions stay valid
	for _, index := range sortedDescending(indexes) {
		c.itemRequests = slices.Delete(c.itemRequests, index, index+1)
	}

	c.resetApprovals()
	return nil
}

// UpdateItemRequest changes the quantity of the line at the given position
// and resets both approvals. The requested item type stays the same.
func (c *Contract) UpdateItemRequest(index int, quantity int) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if index < 0 || index >= len(c.itemRequests) {
		return errs.NewObjectNotFoundError("itemRequestIndex", index)
	}

	updated, err := NewItemRequest(c.itemRequests[index].ItemTypeID(), quantity)
	if err != nil {
		return err
	}

	c.itemRequests[index] = updated
	c.resetApprovals()
	return nil
}

// AddShipment appends a shipment and resets both approvals.
func (c *Contract) AddShipment(shipment *Shipment) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if err := shipment.Validate(); err != nil {
		return err
	}

	c.shipments = append(c.shipments, shipment)
	c.resetApprovals()
	return nil
}

// RemoveShipments removes the shipments at the given positions and resets
// both approvals. All indexes are bounds-checked before anything is removed.
func (c *Contract) RemoveShipments(indexes []int) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	for _, index := range indexes {
		if index < 0 || index >= len(c.shipments) {
			return errs.NewObjectNotFoundError("shipmentIndex", index)
		}
	}

	for _, index := range sortedDescending(indexes) {
		c.shipments = slices.Delete(c.shipments, index, index+1)
	}

	c.resetApprovals()
	return nil
}

// UpdateArrivalAt changes the advisory arrival deadline and resets both
// approvals.
func (c *Contract) UpdateArrivalAt(arrivalAt time.Time) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}
	if err := c.setArrivalAt(arrivalAt); err != nil {
		return err
	}

	c.resetApprovals()
	return nil
}

// SetShipmentCarrier reassigns the carrying business and carriage status of
// the shipment at the given position and resets both approvals. Routing only;
// no custody moves here.
func (c *Contract) SetShipmentCarrier(index int, carrier kernel.UUID, status ShipmentStatus) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	shipment, err := c.ShipmentAt(index)
	if err != nil {
		return err
	}
	if err := shipment.assignCarrier(carrier, status); err != nil {
		return err
	}

	c.resetApprovals()
	return nil
}

// TransitionShipment applies a carriage status transition to the shipment at
// the given position. Carriage progress is not a term edit, so approvals are
// left alone. When the transition is to Accepted the caller moves the
// shipment's items from the seller to the carrier through the custody
// service.
func (c *Contract) TransitionShipment(index int, next ShipmentStatus) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	shipment, err := c.ShipmentAt(index)
	if err != nil {
		return err
	}

	return shipment.transition(next)
}

// MarkShipmentArrived records delivery of the shipment at the given position
// to the buyer. The caller moves the shipment's items to the buyer through
// the custody service.
func (c *Contract) MarkShipmentArrived(index int) error {
	if err := c.ensureEditable(); err != nil {
		return err
	}

	shipment, err := c.ShipmentAt(index)
	if err != nil {
		return err
	}

	return shipment.markArrived()
}

// Approve records the acting business's confirmation of the current terms
// and evaluates the confirmation gate: when both sides are Confirmed and
// every shipment is Accepted the contract becomes Confirmed.
func (c *Contract) Approve(actingBusiness kernel.UUID) error {
	if c.status != WaitingConfirmation {
		return errs.NewInvalidStateTransitionError("contract", c.status.String(), Confirmed.String())
	}

	switch {
	case c.sellerID.IsEqual(actingBusiness):
		c.sellerApproval = ApprovalConfirmed
	case c.buyerID.IsEqual(actingBusiness):
		c.buyerApproval = ApprovalConfirmed
	default:
		return newNotPartyError(actingBusiness)
	}

	if c.confirmationGateHolds() {
		status, err := c.status.Confirm()
		if err != nil {
			return err
		}
		c.status = status
	}

	return nil
}

// Cancel records the acting business's withdrawal. The selling side is
// checked first, then the buying side. It returns true when both sides have
// now cancelled and the contract record should be deleted.
func (c *Contract) Cancel(actingBusiness kernel.UUID) (bool, error) {
	status, err := c.status.Cancel()
	if err != nil {
		return false, err
	}

	switch {
	case c.sellerID.IsEqual(actingBusiness):
		c.sellerApproval = ApprovalCancelled
	case c.buyerID.IsEqual(actingBusiness):
		c.buyerApproval = ApprovalCancelled
	default:
		return false, newNotPartyError(actingBusiness)
	}

	c.status = status
	return c.buyerApproval == ApprovalCancelled && c.sellerApproval == ApprovalCancelled, nil
}

// Complete evaluates the completion gate: both approvals Confirmed, status
// Confirmed, every shipment Arrived. On success the contract reaches its
// terminal Completed status.
func (c *Contract) Complete() error {
	status, err := c.status.Complete()
	if err != nil {
		return err
	}

	if c.buyerApproval != ApprovalConfirmed || c.sellerApproval != ApprovalConfirmed {
		return errs.NewInvalidStateTransitionErrorWithCause(
			"contract", c.status.String(), Completed.String(),
			fmt.Errorf("approvals are %s/%s", c.buyerApproval, c.sellerApproval))
	}

	for index, shipment := range c.shipments {
		if shipment.ReceivingStatus() != Arrived {
			return errs.NewInvalidStateTransitionErrorWithCause(
				"contract", c.status.String(), Completed.String(),
				fmt.Errorf("shipment %d has not arrived", index))
		}
	}

	c.status = status
	return nil
}

func (c *Contract) confirmationGateHolds() bool {
	if c.buyerApproval != ApprovalConfirmed || c.sellerApproval != ApprovalConfirmed {
		return false
	}
	for _, shipment := range c.shipments {
		if shipment.Status() != ShipmentAccepted {
			return false
		}
	}
	return true
}

// ensureEditable rejects every mutation of a completed contract.
func (c *Contract) ensureEditable() error {
	if c.status == Completed {
		return fmt.Errorf("%w: contract is %s and can no longer change",
			errs.ErrInvalidStateTransition, c.status)
	}
	return nil
}

func (c *Contract) resetApprovals() {
	c.buyerApproval = ApprovalWaitingConfirmation
	c.sellerApproval = ApprovalWaitingConfirmation
}

func sortedDescending(indexes []int) []int {
	sorted := slices.Clone(indexes)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })
	return slices.Compact(sorted)
}

func (c *Contract) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Contract) setParties(buyerID, sellerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyingBusiness", err)
	}
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellingBusiness", err)
	}
	if buyerID.IsEqual(sellerID) {
		return ErrPartiesMustDiffer
	}
	c.buyerID = buyerID
	c.sellerID = sellerID
	return nil
}

func (c *Contract) setApprovals(buyerApproval, sellerApproval ApprovalStatus) error {
	if err := errors.Join(buyerApproval.Validate(), sellerApproval.Validate()); err != nil {
		return err
	}
	c.buyerApproval = buyerApproval
	c.sellerApproval = sellerApproval
	return nil
}

func (c *Contract) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Contract) setArrivalAt(arrivalAt time.Time) error {
	if arrivalAt.IsZero() {
		return ErrArrivalTimeIsRequired
	}
	c.arrivalAt = arrivalAt
	return nil
}

func (c *Contract) setItemRequests(itemRequests []ItemRequest) error {
	for _, request := range itemRequests {
		if err := request.Validate(); err != nil {
			return err
		}
	}
	c.itemRequests = slices.Clone(itemRequests)
	return nil
}

func (c *Contract) setShipments(shipments []*Shipment) error {
	for _, shipment := range shipments {
		if err := shipment.Validate(); err != nil {
			return err
		}
	}
	c.shipments = slices.Clone(shipments)
	return nil
}
