package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler resolves the destination address of one delivery.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for the delivery lookup.
// Requires a GORM database connection.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no delivery
// exists for the order.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT address_name, address_street_address, address_city, address_country
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryQueryResponse{}, err
		}
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", query.OrderID())
	}

	var name, streetAddress, city, country string
	if err = rows.Scan(&name, &streetAddress, &city, &country); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	address, err := delivery.NewAddress(name, streetAddress, city, country)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return GetDeliveryQueryResponse{
		OrderID: query.OrderID(),
		Address: address,
	}, nil
}
