// Package natsconsumer registers announced orders for fulfillment. Order
// announcements arrive on the message transport; each one becomes a packaging
// request and a delivery keyed by the same order id.
package natsconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

const (
	// subjectOrderCreated is the subject order announcements arrive on.
	subjectOrderCreated = "orders.created"

	// queueGroup shares the subscription between service instances.
	queueGroup = "fulfillment"
)

// packagingRegistrar dispatches packaging request creation.
type packagingRegistrar interface {
	Handle(ctx context.Context, cmd commands.CreatePackagingRequestCommand) error
}

// deliveryRegistrar dispatches delivery creation.
type deliveryRegistrar interface {
	Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) error
}

// orderCreatedEvent is the wire form of an order announcement.
type orderCreatedEvent struct {
	OrderID  string        `json:"orderId"`
	Products []productLine `json:"products"`
	Address  eventAddress  `json:"address"`
}

type productLine struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type eventAddress struct {
	Name          string `json:"name"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// Consumer turns order announcements into fulfillment records. Announcements
// that cannot be decoded or validated are logged and dropped; replays of
// orders already registered are dropped without a second registration.
type Consumer struct {
	conn         *nats.Conn
	packaging    packagingRegistrar
	delivery     deliveryRegistrar
	logger       *slog.Logger
	subscription *nats.Subscription
}

// NewConsumer creates a consumer on an established NATS connection.
func NewConsumer(
	conn *nats.Conn,
	packagingHandler packagingRegistrar,
	deliveryHandler deliveryRegistrar,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		conn:      conn,
		packaging: packagingHandler,
		delivery:  deliveryHandler,
		logger:    logger.With("component", "order_consumer"),
	}
}

// Start subscribes to the order announcement subject. Instances sharing the
// queue group split the stream between them.
func (c *Consumer) Start() error {
	sub, err := c.conn.QueueSubscribe(subjectOrderCreated, queueGroup, c.handleMessage)
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", subjectOrderCreated, err)
	}

	c.subscription = sub
	c.logger.InfoContext(context.Background(), "Order consumer started", "subject", subjectOrderCreated)
	return nil
}

// Stop drains the subscription, letting in-flight announcements finish.
func (c *Consumer) Stop() error {
	if c.subscription == nil {
		return nil
	}
	return c.subscription.Drain()
}

// handleMessage registers one announced order. Both registrations run even
// when one side already exists, so a replay after a partial failure fills in
// the missing record instead of dropping it.
func (c *Consumer) handleMessage(msg *nats.Msg) {
	ctx := context.Background()

	var event orderCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		c.logger.ErrorContext(ctx, "Dropping undecodable order announcement", "error", err)
		return
	}

	packagingCmd, deliveryCmd, err := event.commands()
	if err != nil {
		c.logger.ErrorContext(ctx, "Dropping malformed order announcement",
			"order_id", event.OrderID, "error", err)
		return
	}

	packagingErr := c.packaging.Handle(ctx, packagingCmd)
	if packagingErr != nil && !errors.Is(packagingErr, errs.ErrObjectAlreadyExists) {
		c.logger.ErrorContext(ctx, "Packaging request registration failed",
			"order_id", event.OrderID, "error", packagingErr)
		return
	}

	deliveryErr := c.delivery.Handle(ctx, deliveryCmd)
	if deliveryErr != nil && !errors.Is(deliveryErr, errs.ErrObjectAlreadyExists) {
		c.logger.ErrorContext(ctx, "Delivery registration failed",
			"order_id", event.OrderID, "error", deliveryErr)
		return
	}

	if packagingErr != nil && deliveryErr != nil {
		c.logger.WarnContext(ctx, "Dropped replayed order announcement", "order_id", event.OrderID)
		return
	}

	c.logger.InfoContext(ctx, "Order registered for fulfillment", "order_id", event.OrderID)
}

// commands converts the announcement into the two registration commands.
// Lines without an explicit quantity default to one unit.
func (e orderCreatedEvent) commands() (commands.CreatePackagingRequestCommand, commands.CreateDeliveryCommand, error) {
	orderID, err := kernel.OrderIDFromString(e.OrderID)
	if err != nil {
		return commands.CreatePackagingRequestCommand{}, commands.CreateDeliveryCommand{}, err
	}

	products := make([]packaging.Product, 0, len(e.Products))
	for _, line := range e.Products {
		quantity := packaging.DefaultQuantity
		if line.Quantity != nil {
			quantity = *line.Quantity
		}

		product, err := packaging.NewProduct(line.ProductID, quantity)
		if err != nil {
			return commands.CreatePackagingRequestCommand{}, commands.CreateDeliveryCommand{}, err
		}
		products = append(products, product)
	}

	packagingCmd, err := commands.NewCreatePackagingRequestCommand(orderID, products)
	if err != nil {
		return commands.CreatePackagingRequestCommand{}, commands.CreateDeliveryCommand{}, err
	}

	address, err := delivery.NewAddress(e.Address.Name, e.Address.StreetAddress, e.Address.City, e.Address.Country)
	if err != nil {
		return commands.CreatePackagingRequestCommand{}, commands.CreateDeliveryCommand{}, err
	}

	deliveryCmd, err := commands.NewCreateDeliveryCommand(orderID, address)
	if err != nil {
		return commands.CreatePackagingRequestCommand{}, commands.CreateDeliveryCommand{}, err
	}

	return packagingCmd, deliveryCmd, nil
}
