package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// metadataProductID is the sort-key sentinel of the row holding a packaging
// request's workflow state. The same literal appears in the packaging_items
// table layout; everything else under an order id is a product line.
const metadataProductID = "__metadata"

// GetNewPackagingRequestIdsQueryHandler lists waiting packaging requests
// straight from the database. Pagination is keyset-based over the order id,
// so a poller walking pages sees each waiting order exactly once even while
// neighbouring rows transition.
//
// Example:
//
//	handler := NewGetNewPackagingRequestIdsQueryHandler(db)
//	query, _ := NewGetNewPackagingRequestIdsQuery(kernel.PageToken{}, 20)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, id := range page.PackagingRequestIDs {
//	    fmt.Println(id)
//	}
type GetNewPackagingRequestIdsQueryHandler struct {
	db *gorm.DB
}

// NewGetNewPackagingRequestIdsQueryHandler creates a handler for the NEW
// packaging request listing. Requires a GORM database connection.
func NewGetNewPackagingRequestIdsQueryHandler(db *gorm.DB) GetNewPackagingRequestIdsQueryHandler {
	return GetNewPackagingRequestIdsQueryHandler{db: db}
}

// Handle executes one page of the listing.
// Fetches page-size+1 metadata rows in NEW status ordered by order id; the
// extra row only decides whether a continuation token is returned and never
// appears in the page itself.
func (h GetNewPackagingRequestIdsQueryHandler) Handle(
	ctx context.Context,
	query GetNewPackagingRequestIdsQuery,
) (GetNewPackagingRequestIdsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNewPackagingRequestIdsQueryResponse{}, err
	}

	after := query.PageToken().LastOrderID().Bytes() // nil uuid on the first page

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id
		FROM packaging_items
		WHERE product_id = ?
		  AND status = ?
		  AND order_id > ?
		ORDER BY order_id
		LIMIT ?
	`, metadataProductID, packaging.New.String(), after, query.PageSize()+1).Rows()
	if err != nil {
		return GetNewPackagingRequestIdsQueryResponse{}, err
	}
	defer rows.Close()

	ids := make([]kernel.OrderID, 0, query.PageSize()+1)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return GetNewPackagingRequestIdsQueryResponse{}, err
		}

		orderID, idErr := kernel.OrderIDFromBytes(id[:])
		if idErr != nil {
			return GetNewPackagingRequestIdsQueryResponse{}, idErr
		}
		ids = append(ids, orderID)
	}

	if err = rows.Err(); err != nil {
		return GetNewPackagingRequestIdsQueryResponse{}, err
	}

	var next kernel.PageToken
	if len(ids) > query.PageSize() {
		ids = ids[:query.PageSize()]
		if next, err = kernel.NewPageToken(ids[len(ids)-1]); err != nil {
			return GetNewPackagingRequestIdsQueryResponse{}, err
		}
	}

	return GetNewPackagingRequestIdsQueryResponse{
		PackagingRequestIDs: ids,
		NextToken:           next,
	}, nil
}
