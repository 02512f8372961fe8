package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNewDeliveriesQueryHandler lists waiting deliveries straight from the
// database. The sparse is_new marker column narrows the scan to pending rows
// without touching deliveries that already left NEW.
//
// Example:
//
//	handler := NewGetNewDeliveriesQueryHandler(db)
//	query, _ := NewGetNewDeliveriesQuery(kernel.PageToken{}, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, item := range page.Deliveries {
//	    fmt.Printf("%s -> %s\n", item.OrderID, item.Address.City())
//	}
type GetNewDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetNewDeliveriesQueryHandler creates a handler for the NEW delivery
// listing. Requires a GORM database connection.
func NewGetNewDeliveriesQueryHandler(db *gorm.DB) GetNewDeliveriesQueryHandler {
	return GetNewDeliveriesQueryHandler{db: db}
}

// Handle executes one page of the listing.
// Fetches page-size+1 pending rows ordered by order id; the extra row only
// decides whether a continuation token is returned and never appears in the
// page itself.
func (h GetNewDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetNewDeliveriesQuery,
) (GetNewDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNewDeliveriesQueryResponse{}, err
	}

	after := query.PageToken().LastOrderID().Bytes() // nil uuid on the first page

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, address_name, address_street_address, address_city, address_country
		FROM deliveries
		WHERE is_new = TRUE
		  AND order_id > ?
		ORDER BY order_id
		LIMIT ?
	`, after, query.PageSize()+1).Rows()
	if err != nil {
		return GetNewDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]GetNewDeliveriesQueryItem, 0, query.PageSize()+1)
	for rows.Next() {
		var id uuid.UUID
		var name, streetAddress, city, country string

		if err = rows.Scan(&id, &name, &streetAddress, &city, &country); err != nil {
			return GetNewDeliveriesQueryResponse{}, err
		}

		orderID, idErr := kernel.OrderIDFromBytes(id[:])
		if idErr != nil {
			return GetNewDeliveriesQueryResponse{}, idErr
		}

		address, addrErr := delivery.NewAddress(name, streetAddress, city, country)
		if addrErr != nil {
			return GetNewDeliveriesQueryResponse{}, addrErr
		}

		items = append(items, GetNewDeliveriesQueryItem{
			OrderID: orderID,
			Address: address,
		})
	}

	if err = rows.Err(); err != nil {
		return GetNewDeliveriesQueryResponse{}, err
	}

	var next kernel.PageToken
	if len(items) > query.PageSize() {
		items = items[:query.PageSize()]
		if next, err = kernel.NewPageToken(items[len(items)-1].OrderID); err != nil {
			return GetNewDeliveriesQueryResponse{}, err
		}
	}

	return GetNewDeliveriesQueryResponse{
		Deliveries: items,
		NextToken:  next,
	}, nil
}
