// Package packagingrepo provides data transfer objects and mapping functions for
// packaging request persistence. This package implements the repository pattern for
// the packaging domain aggregate, handling the conversion between domain entities
// and database representations.
package packagingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// metadataProductID is the sentinel product id of the row carrying the
// request's lifecycle fields. Product ids from the catalog never collide
// with it.
const metadataProductID = "__metadata"

// ItemDTO represents one row of the packaging_items table. A packaging request
// is persisted as a row set sharing the order id: one metadata row carrying
// status, modified date and the arrival marker, plus one row per product line
// carrying quantity.
type ItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    string    `gorm:"primaryKey"`
	Status       *string   `gorm:"index"`
	Quantity     *int
	ModifiedDate *time.Time
	NewDate      *time.Time
}

// TableName specifies the database table name for packaging rows.
// Overrides GORM's default naming convention to use "packaging_items".
func (ItemDTO) TableName() string {
	return "packaging_items"
}

// fromDomain converts a packaging request aggregate to its row set.
// The metadata row always comes first, followed by one row per product line.
func fromDomain(request *packaging.Request) []ItemDTO {
	status := request.Status().String()
	modified := request.ModifiedDate()

	rows := make([]ItemDTO, 0, len(request.Products())+1)
	rows = append(rows, ItemDTO{
		OrderID:      request.OrderID().Bytes(),
		ProductID:    metadataProductID,
		Status:       &status,
		ModifiedDate: &modified,
		NewDate:      request.NewDate(),
	})

	for _, product := range request.Products() {
		quantity := product.Quantity()
		rows = append(rows, ItemDTO{
			OrderID:   request.OrderID().Bytes(),
			ProductID: product.ProductID(),
			Quantity:  &quantity,
		})
	}

	return rows
}

// toDomain converts a row set back to a packaging request aggregate.
// Rows must be non-empty and share one order id. Line rows without a stored
// quantity restore with the default quantity. A row set without a complete
// metadata row does not represent a request and maps to not found.
func toDomain(rows []ItemDTO) (*packaging.Request, error) {
	orderID, err := kernel.OrderIDFromBytes(rows[0].OrderID[:])
	if err != nil {
		return nil, err
	}

	var metadata *ItemDTO
	products := make([]packaging.Product, 0, len(rows)-1)

	for i := range rows {
		if rows[i].ProductID == metadataProductID {
			metadata = &rows[i]
			continue
		}

		quantity := packaging.DefaultQuantity
		if rows[i].Quantity != nil {
			quantity = *rows[i].Quantity
		}

		product, productErr := packaging.NewProduct(rows[i].ProductID, quantity)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	if metadata == nil || metadata.Status == nil || metadata.ModifiedDate == nil {
		return nil, errs.NewObjectNotFoundError("packaging request", orderID.String())
	}

	status, err := packaging.StatusFromString(*metadata.Status)
	if err != nil {
		return nil, err
	}

	return packaging.RestoreRequest(orderID, products, status, *metadata.ModifiedDate, metadata.NewDate)
}
