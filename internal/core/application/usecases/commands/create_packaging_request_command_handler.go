package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"
)

// CreatePackagingRequestCommandHandler handles the business logic for
// registering an order in the packaging workflow. Creates the request in NEW
// status with its arrival marker set, making it visible to warehouse pollers.
//
// Example:
//
//	handler := NewCreatePackagingRequestCommandHandler(uowFactory)
//	cmd, _ := NewCreatePackagingRequestCommand(orderID, products)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("packaging request creation failed: %w", err)
//	}
//	// The request now shows up in the new packaging request listing
type CreatePackagingRequestCommandHandler struct {
	uowFactory PackagingUoWFactory
}

// NewCreatePackagingRequestCommandHandler creates a handler for packaging request creation.
// Requires a PackagingUoWFactory for transactional persistence.
func NewCreatePackagingRequestCommandHandler(uowFactory PackagingUoWFactory) CreatePackagingRequestCommandHandler {
	return CreatePackagingRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packaging request creation command.
// Creates the request in NEW status stamped with the current time. An order
// that is already registered returns ObjectAlreadyExistsError untouched.
// Uses a transaction to ensure the request is properly persisted or rolled back on error.
func (h *CreatePackagingRequestCommandHandler) Handle(ctx context.Context, cmd CreatePackagingRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packagingRepo := uow.PackagingRepository()

	_, err := packagingRepo.Get(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("packaging request", cmd.OrderID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	request, err := packaging.NewRequest(cmd.OrderID(), cmd.Products(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = packagingRepo.Add(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
