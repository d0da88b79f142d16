// Package shipmentrepo persists carrier shipment records.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
// Address and parcel fields are flattened into the row; they never change
// after the label purchase.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string
	Carrier        string
	LabelURL       string
	AddrName       string
	AddrLine1      string
	AddrLine2      string
	AddrCity       string
	AddrState      string
	AddrPostalCode string
	AddrCountry    string
	AddrPhone      string
	ParcelLengthCm float64
	ParcelWidthCm  float64
	ParcelHeightCm float64
	ParcelWeightG  float64
	PurchasedAt    time.Time
	VoidedAt       *time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipments.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	address := aggregate.Address()
	parcel := aggregate.Parcel()

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		Carrier:        aggregate.Carrier(),
		LabelURL:       aggregate.LabelURL(),
		AddrName:       address.Name,
		AddrLine1:      address.Line1,
		AddrLine2:      address.Line2,
		AddrCity:       address.City,
		AddrState:      address.State,
		AddrPostalCode: address.PostalCode,
		AddrCountry:    address.Country,
		AddrPhone:      address.Phone,
		ParcelLengthCm: parcel.LengthCm,
		ParcelWidthCm:  parcel.WidthCm,
		ParcelHeightCm: parcel.HeightCm,
		ParcelWeightG:  parcel.WeightG,
		PurchasedAt:    aggregate.PurchasedAt(),
		VoidedAt:       aggregate.VoidedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	address := shipment.Address{
		Name:       dto.AddrName,
		Line1:      dto.AddrLine1,
		Line2:      dto.AddrLine2,
		City:       dto.AddrCity,
		State:      dto.AddrState,
		PostalCode: dto.AddrPostalCode,
		Country:    dto.AddrCountry,
		Phone:      dto.AddrPhone,
	}
	parcel := shipment.Parcel{
		LengthCm: dto.ParcelLengthCm,
		WidthCm:  dto.ParcelWidthCm,
		HeightCm: dto.ParcelHeightCm,
		WeightG:  dto.ParcelWeightG,
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		dto.TrackingNumber,
		dto.Carrier,
		dto.LabelURL,
		address,
		parcel,
		dto.PurchasedAt,
		dto.VoidedAt,
	)
}
