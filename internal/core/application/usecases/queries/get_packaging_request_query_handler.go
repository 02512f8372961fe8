package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackagingRequestQueryHandler reads one packaging request straight from
// the database, joining the order's metadata row with its product line rows.
//
// Example:
//
//	handler := NewGetPackagingRequestQueryHandler(db)
//	query, _ := NewGetPackagingRequestQuery(orderID)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s with %d lines\n",
//	    detail.OrderID, detail.Status, len(detail.Products))
type GetPackagingRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetPackagingRequestQueryHandler creates a handler for packaging detail
// reads. Requires a GORM database connection.
func NewGetPackagingRequestQueryHandler(db *gorm.DB) GetPackagingRequestQueryHandler {
	return GetPackagingRequestQueryHandler{db: db}
}

// Handle executes the detail read.
// Scans every row stored under the order id: the metadata row contributes the
// status, the remaining rows become product lines with quantity defaulting
// to 1 when the column is NULL. Returns an ObjectNotFoundError when the order
// has no rows or its metadata row is missing.
func (h GetPackagingRequestQueryHandler) Handle(
	ctx context.Context,
	query GetPackagingRequestQuery,
) (GetPackagingRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackagingRequestQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, status, quantity
		FROM packaging_items
		WHERE order_id = ?
		ORDER BY product_id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetPackagingRequestQueryResponse{}, err
	}
	defer rows.Close()

	response := GetPackagingRequestQueryResponse{
		OrderID:  query.OrderID(),
		Products: make([]GetPackagingRequestQueryProduct, 0),
	}

	var statusSeen bool
	for rows.Next() {
		var productID string
		var status sql.NullString
		var quantity sql.NullInt64

		if err = rows.Scan(&productID, &status, &quantity); err != nil {
			return GetPackagingRequestQueryResponse{}, err
		}

		if productID == metadataProductID {
			parsed, statusErr := packaging.StatusFromString(status.String)
			if statusErr != nil {
				return GetPackagingRequestQueryResponse{}, statusErr
			}
			response.Status = parsed
			statusSeen = true
			continue
		}

		line := GetPackagingRequestQueryProduct{
			ProductID: productID,
			Quantity:  packaging.DefaultQuantity,
		}
		if quantity.Valid {
			line.Quantity = int(quantity.Int64)
		}
		response.Products = append(response.Products, line)
	}

	if err = rows.Err(); err != nil {
		return GetPackagingRequestQueryResponse{}, err
	}

	if !statusSeen {
		return GetPackagingRequestQueryResponse{},
			errs.NewObjectNotFoundError("packaging request", query.OrderID())
	}

	return response, nil
}
