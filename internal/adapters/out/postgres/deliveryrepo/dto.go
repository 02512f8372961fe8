// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. This package implements the repository pattern for the
// delivery domain aggregate, handling the conversion between domain entities and
// database representations.
package deliveryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The is_new column holds true exactly while the delivery waits for a driver and
// NULL afterwards, so the pending listing scans a sparse index instead of the
// whole table.
type DeliveryDTO struct {
	OrderID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status       string     `gorm:"index"`
	ModifiedDate time.Time
	IsNew        *bool `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded destination address within the deliveries table.
type AddressDTO struct {
	Name          string
	StreetAddress string
	City          string
	Country       string
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var isNew *bool
	if aggregate.IsNew() {
		marker := true
		isNew = &marker
	}

	return DeliveryDTO{
		OrderID: aggregate.OrderID().Bytes(),
		Address: AddressDTO{
			Name:          aggregate.Address().Name(),
			StreetAddress: aggregate.Address().StreetAddress(),
			City:          aggregate.Address().City(),
			Country:       aggregate.Address().Country(),
		},
		Status:       aggregate.Status().String(),
		ModifiedDate: aggregate.ModifiedDate(),
		IsNew:        isNew,
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including address and status using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	orderID, err := kernel.OrderIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	address, err := delivery.NewAddress(
		dto.Address.Name,
		dto.Address.StreetAddress,
		dto.Address.City,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(orderID, address, status, dto.ModifiedDate)
}
