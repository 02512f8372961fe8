package commands_test

import (
	"encoding/json"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFailDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewOrderID()
	cmd, err := commands.NewFailDeliveryCommand(id)
	require.NoError(t, err)

	shipment := newDeliveryInStatus(t, id, delivery.InProgress)

	repo := new(MockDeliveryRepository)
	outbox := new(MockOutboxRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(shipment, nil).Once(),
		repo.On("UpdateStatus", ctx, shipment, delivery.InProgress).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outbox).Once(),
		outbox.On("Add", ctx, mock.MatchedBy(singleDeliveryEvent)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, delivery.Failed, shipment.Status())

	recorded := outbox.Calls[0].Arguments[1].([]ports.OutboxEvent)[0]
	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorded.Payload, &payload))
	assert.Equal(t, "IN_PROGRESS", payload["from"])
	assert.Equal(t, "FAILED", payload["to"])

	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestFailDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.FailDeliveryCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	h := commands.NewFailDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFailDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestFailDeliveryCommandHandler_Handle_NotPickedUp(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewOrderID()
	cmd, _ := commands.NewFailDeliveryCommand(id)

	shipment := newDeliveryInStatus(t, id, delivery.New)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(shipment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, delivery.New, shipment.Status())
	repo.AssertNotCalled(t, "UpdateStatus", ctx, mock.Anything, mock.Anything)
}

func TestFailDeliveryCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewOrderID()
	cmd, _ := commands.NewFailDeliveryCommand(id)

	shipment := newDeliveryInStatus(t, id, delivery.Completed)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(shipment, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewFailDeliveryCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, delivery.Completed, shipment.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
