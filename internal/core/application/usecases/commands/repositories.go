// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackagingRepoFactory provides access to the packaging repository within a transaction.
	PackagingRepoFactory interface {
		PackagingRepository() ports.PackagingRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	// Every unit of work exposes it because state changes and the events that
	// describe them must commit together.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PackagingUoW manages transactions for packaging workflow operations.
	// Used when commands only modify packaging request records.
	PackagingUoW interface {
		TxManager
		PackagingRepoFactory
		OutboxRepoFactory
	}

	// PackagingUoWFactory creates new packaging unit of work instances.
	PackagingUoWFactory interface {
		Create() PackagingUoW
	}

	// DeliveryUoW manages transactions for delivery workflow operations.
	// Used when commands only modify delivery records.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OutboxRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// OutboxUoW manages transactions for outbox-only operations.
	// Used by the dispatch command, which reads pending events and flips their
	// dispatch state without touching workflow records.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW manages transactions across both workflow record types.
	// Used for commands that coordinate changes between packaging and delivery.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   packagingRepo := uow.PackagingRepository()
	//   deliveryRepo := uow.DeliveryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		PackagingRepoFactory
		DeliveryRepoFactory
		OutboxRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-workflow operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Factory function adapters let the composition root hand each handler the
// narrowest unit of work view of one shared factory.

// PackagingUoWFactoryFunc adapts a function to the PackagingUoWFactory interface.
type PackagingUoWFactoryFunc func() PackagingUoW

func (f PackagingUoWFactoryFunc) Create() PackagingUoW { return f() }

// DeliveryUoWFactoryFunc adapts a function to the DeliveryUoWFactory interface.
type DeliveryUoWFactoryFunc func() DeliveryUoW

func (f DeliveryUoWFactoryFunc) Create() DeliveryUoW { return f() }

// OutboxUoWFactoryFunc adapts a function to the OutboxUoWFactory interface.
type OutboxUoWFactoryFunc func() OutboxUoW

func (f OutboxUoWFactoryFunc) Create() OutboxUoW { return f() }

// UoWFactoryFunc adapts a function to the UoWFactory interface.
type UoWFactoryFunc func() UoW

func (f UoWFactoryFunc) Create() UoW { return f() }
