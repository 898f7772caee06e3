package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental/internal/models"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

func newVehicleFixture(t *testing.T) (*VehicleService, *fakeVehicles, *fakeObjectStore, models.Location) {
	t.Helper()
	locations := &fakeLocations{items: map[int64]models.Location{}}
	loc, err := locations.Create(context.Background(), models.Location{Name: "Airport", Address: "Terminal 1"})
	require.NoError(t, err)

	vehicles := &fakeVehicles{items: map[int64]models.Vehicle{}}
	store := newFakeObjectStore()
	return NewVehicleService(vehicles, locations, store, "vehicles-bucket", zerolog.Nop()), vehicles, store, loc
}

func TestVehicleCreateChecksPlateAndLocation(t *testing.T) {
	svc, _, _, loc := newVehicleFixture(t)
	ctx := context.Background()

	v := models.Vehicle{Name: "Onix", LicensePlate: "QWE1A23", LocationID: loc.ID, PricePerDay: decimal.NewNullDecimal(decimal.NewFromInt(150))}
	_, err := svc.Create(ctx, v)
	require.NoError(t, err)

	_, err = svc.Create(ctx, v)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Vehicle with license plate QWE1A23 already exists", ce.Message)

	v.LicensePlate = "ZZZ9Z99"
	v.LocationID = 77
	_, err = svc.Create(ctx, v)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Location", nf.Entity)
}

func TestVehicleUpdateKeepsUnsetPrices(t *testing.T) {
	svc, _, _, loc := newVehicleFixture(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Vehicle{
		Name: "Onix", LicensePlate: "QWE1A23", LocationID: loc.ID,
		PricePerDay:   decimal.NewNullDecimal(decimal.NewFromInt(150)),
		PricePerMonth: decimal.NewNullDecimal(decimal.NewFromInt(3000)),
	})
	require.NoError(t, err)

	day := decimal.RequireFromString("140.00")
	updated, err := svc.Update(ctx, created.ID, UpdateVehicleInput{PricePerDay: &day})
	require.NoError(t, err)
	assert.True(t, updated.PricePerDay.Decimal.Equal(day))
	assert.True(t, updated.PricePerMonth.Valid)
	assert.False(t, updated.PricePerYear.Valid)
	assert.Equal(t, "Onix", updated.Name)
}

func TestVehicleUploadImageStoresObject(t *testing.T) {
	svc, vehicles, store, loc := newVehicleFixture(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Vehicle{Name: "Onix", LicensePlate: "QWE1A23", LocationID: loc.ID})
	require.NoError(t, err)

	got, err := svc.UploadImage(ctx, created.ID, VehicleImageInput{Data: strings.NewReader(pngHeader), DeclaredType: "image/png"})
	require.NoError(t, err)
	require.Len(t, store.puts, 1)

	for key, mime := range store.mime {
		assert.Equal(t, "image/png", mime)
		assert.True(t, strings.HasPrefix(key, "vehicles-bucket/vehicles/1/"))
		assert.True(t, strings.HasSuffix(key, ".png"))
		assert.Equal(t, "http://objects.local/"+key, got.Image)
	}
	assert.Equal(t, got.Image, vehicles.items[created.ID].Image)
}

func TestVehicleUploadImageSanitizesSVG(t *testing.T) {
	svc, _, store, loc := newVehicleFixture(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Vehicle{Name: "Onix", LicensePlate: "QWE1A23", LocationID: loc.ID})
	require.NoError(t, err)

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script><rect onclick="x()" width="1"/></svg>`
	_, err = svc.UploadImage(ctx, created.ID, VehicleImageInput{Data: strings.NewReader(svg)})
	require.NoError(t, err)

	for _, data := range store.puts {
		assert.NotContains(t, string(data), "<script")
		assert.NotContains(t, string(data), "onclick")
	}
}

func TestVehicleUploadImageRejectsBadInput(t *testing.T) {
	svc, _, store, loc := newVehicleFixture(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, models.Vehicle{Name: "Onix", LicensePlate: "QWE1A23", LocationID: loc.ID})
	require.NoError(t, err)

	cases := map[string]VehicleImageInput{
		"empty":    {Data: bytes.NewReader(nil)},
		"unknown":  {Data: strings.NewReader("plain text, not a picture")},
		"mismatch": {Data: strings.NewReader(pngHeader), DeclaredType: "image/jpeg"},
		"too big":  {Data: bytes.NewReader(append([]byte(pngHeader), make([]byte, MaxVehicleImageBytes)...))},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UploadImage(ctx, created.ID, input)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, "file")
		})
	}
	assert.Empty(t, store.puts)

	_, err = svc.UploadImage(ctx, 404, VehicleImageInput{Data: strings.NewReader(pngHeader)})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestLocationUniqueNameAndAddress(t *testing.T) {
	locations := &fakeLocations{items: map[int64]models.Location{}}
	svc := NewLocationService(locations)
	ctx := context.Background()

	first, err := svc.Create(ctx, models.Location{Name: "Downtown", Address: "Main St 1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Location{Name: "Downtown", Address: "Main St 2"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.Location{Name: "Downtown", Address: "Main St 1"})
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)

	addr := "Main St 2"
	_, err = svc.Update(ctx, first.ID, UpdateLocationInput{Address: &addr})
	require.ErrorAs(t, err, &ce)

	var nf *NotFoundError
	assert.ErrorAs(t, svc.Delete(ctx, 99), &nf)
}
