// Package kernel contains the shared value objects of the medledger domain:
// UUID identifiers and postal Addresses. Both are immutable, must be built
// through their constructors, and expose Validate for use by aggregates that
// embed them.
package kernel
