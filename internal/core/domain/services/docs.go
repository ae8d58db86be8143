// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the supply-chain system.
//
// The package includes:
//   - CustodyService: the single code path that moves item custody between
//     businesses while keeping inventories and item ownership consistent
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
