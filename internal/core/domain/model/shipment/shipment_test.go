package shipment_test

import (
	"testing"
	"time"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/kernel"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/domain/model/shipment"
	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() shipment.Address {
	return shipment.Address{
		Name:       "Ada Chen",
		Line1:      "500 Fabrication Way",
		City:       "Portland",
		State:      "OR",
		PostalCode: "97201",
		Country:    "US",
	}
}

func validParcel() shipment.Parcel {
	return shipment.Parcel{LengthCm: 30, WidthCm: 20, HeightCm: 10, WeightG: 1200}
}

func TestAddress_Validate(t *testing.T) {
	t.Run("complete address passes", func(t *testing.T) {
		require.NoError(t, validAddress().Validate())
	})

	t.Run("missing fields fail", func(t *testing.T) {
		addr := validAddress()
		addr.Line1 = ""
		addr.PostalCode = ""

		err := addr.Validate()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("country must be ISO 3166-1 alpha-2", func(t *testing.T) {
		addr := validAddress()
		addr.Country = "USA"
		require.Error(t, addr.Validate())
	})

	t.Run("line2 is optional", func(t *testing.T) {
		addr := validAddress()
		addr.Line2 = "Suite 12"
		require.NoError(t, addr.Validate())
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("positive dimensions pass", func(t *testing.T) {
		require.NoError(t, validParcel().Validate())
	})

	t.Run("zero weight fails", func(t *testing.T) {
		p := validParcel()
		p.WeightG = 0
		require.ErrorIs(t, p.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestShipment(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	newShipment := func(t *testing.T) *shipment.Shipment {
		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			"TRK123456789", "ups", "https://labels.example/TRK123456789.pdf",
			validAddress(), validParcel(), now)
		require.NoError(t, err)
		return s
	}

	t.Run("creates live shipment", func(t *testing.T) {
		s := newShipment(t)

		assert.False(t, s.IsVoided())
		assert.Nil(t, s.VoidedAt())
		assert.Equal(t, "TRK123456789", s.TrackingNumber())
	})

	t.Run("requires tracking number and carrier", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), "", "ups", "", validAddress(), validParcel(), now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(), "TRK1", "", "", validAddress(), validParcel(), now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("void stamps the timestamp once", func(t *testing.T) {
		s := newShipment(t)
		voidTime := now.Add(2 * time.Hour)

		require.NoError(t, s.Void(voidTime))
		assert.True(t, s.IsVoided())
		require.NotNil(t, s.VoidedAt())
		assert.Equal(t, voidTime, *s.VoidedAt())

		require.ErrorIs(t, s.Void(voidTime.Add(time.Minute)), shipment.ErrAlreadyVoided)
	})
}
