// Package business contains the Business aggregate: a manufacturer, carrier,
// or distributor participating in the pharmaceutical supply chain. A business
// keeps an ordered staff roster and an ordered inventory of item ids.
//
// The inventory mirrors Item.CurrentOwner at all times. To keep that invariant
// in one place, inventory membership is changed only through the custody
// service in the domain services package; AcceptItem and SurrenderItem exist
// for that service and refuse calls that would desynchronize the two sides.
package business
