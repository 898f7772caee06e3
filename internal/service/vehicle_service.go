package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"carrental/internal/ids"
	"carrental/internal/media"
	"carrental/internal/models"
)

// MaxVehicleImageBytes bounds uploaded vehicle pictures.
const MaxVehicleImageBytes = 10 << 20

type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
}

type UpdateVehicleInput struct {
	Name          *string
	Brand         *string
	Type          *string
	LicensePlate  *string
	Status        *string
	LocationID    *int64
	PricePerDay   *decimal.Decimal
	PricePerMonth *decimal.Decimal
	PricePerYear  *decimal.Decimal
}

type VehicleImageInput struct {
	Data         io.Reader
	DeclaredType string
}

type VehicleService struct {
	vehicles  VehicleStore
	locations LocationStore
	store     ObjectStore
	bucket    string
	log       zerolog.Logger
}

func NewVehicleService(vehicles VehicleStore, locations LocationStore, store ObjectStore, bucket string, log zerolog.Logger) *VehicleService {
	return &VehicleService{
		vehicles:  vehicles,
		locations: locations,
		store:     store,
		bucket:    bucket,
		log:       log,
	}
}

func plateTaken(plate string) error {
	return conflict("Vehicle with license plate %s already exists", plate)
}

func (s *VehicleService) Create(ctx context.Context, v models.Vehicle) (models.Vehicle, error) {
	if err := s.ensurePlateFree(ctx, v.LicensePlate, 0); err != nil {
		return models.Vehicle{}, err
	}
	if err := s.ensureLocation(ctx, v.LocationID); err != nil {
		return models.Vehicle{}, err
	}

	created, err := s.vehicles.Create(ctx, v)
	return created, translate(err, "Vehicle", nil, plateTaken(v.LicensePlate).Error())
}

func (s *VehicleService) Get(ctx context.Context, id int64) (models.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	return v, translate(err, "Vehicle", id, "")
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *VehicleService) Update(ctx context.Context, id int64, input UpdateVehicleInput) (models.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return models.Vehicle{}, translate(err, "Vehicle", id, "")
	}

	if input.LicensePlate != nil && *input.LicensePlate != v.LicensePlate {
		if err := s.ensurePlateFree(ctx, *input.LicensePlate, id); err != nil {
			return models.Vehicle{}, err
		}
		v.LicensePlate = *input.LicensePlate
	}
	if input.LocationID != nil && *input.LocationID != v.LocationID {
		if err := s.ensureLocation(ctx, *input.LocationID); err != nil {
			return models.Vehicle{}, err
		}
		v.LocationID = *input.LocationID
	}
	setString(&v.Name, input.Name)
	setString(&v.Brand, input.Brand)
	setString(&v.Type, input.Type)
	setString(&v.Status, input.Status)
	setPrice(&v.PricePerDay, input.PricePerDay)
	setPrice(&v.PricePerMonth, input.PricePerMonth)
	setPrice(&v.PricePerYear, input.PricePerYear)

	updated, err := s.vehicles.Update(ctx, v)
	return updated, translate(err, "Vehicle", id, plateTaken(v.LicensePlate).Error())
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	return translate(s.vehicles.Delete(ctx, id), "Vehicle", id, "")
}

// UploadImage stores a picture for the vehicle and records its public URL.
// The content type is sniffed from the bytes; SVGs are sanitized first.
func (s *VehicleService) UploadImage(ctx context.Context, id int64, input VehicleImageInput) (models.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return models.Vehicle{}, translate(err, "Vehicle", id, "")
	}
	if s.store == nil {
		return models.Vehicle{}, errors.New("object storage is not configured")
	}

	data, err := io.ReadAll(io.LimitReader(input.Data, MaxVehicleImageBytes+1))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return models.Vehicle{}, invalid("file", "must not be empty")
	}
	if len(data) > MaxVehicleImageBytes {
		return models.Vehicle{}, invalid("file", fmt.Sprintf("must be at most %d bytes", MaxVehicleImageBytes))
	}

	format, err := media.Sniff(data)
	if err != nil {
		return models.Vehicle{}, invalid("file", "unsupported image type")
	}
	if input.DeclaredType != "" && input.DeclaredType != format.MIME {
		return models.Vehicle{}, invalid("file", fmt.Sprintf("content type mismatch: declared %s, actual %s", input.DeclaredType, format.MIME))
	}

	if format.Kind == media.KindSVG {
		clean, err := media.SanitizeSVG(data)
		if err != nil {
			return models.Vehicle{}, invalid("file", "svg could not be sanitized")
		}
		data = clean
	}

	key := vehicleImageKey(id, string(format.Kind))
	if err := s.store.Put(ctx, s.bucket, key, data, format.MIME); err != nil {
		return models.Vehicle{}, fmt.Errorf("store image: %w", err)
	}

	v.Image = s.store.PublicURL(s.bucket, key)
	if err := s.vehicles.UpdateImage(ctx, id, v.Image); err != nil {
		return models.Vehicle{}, translate(err, "Vehicle", id, "")
	}

	s.log.Info().Int64("vehicle_id", id).Str("object", key).Msg("vehicle image stored")
	return v, nil
}

func vehicleImageKey(vehicleID int64, ext string) string {
	return path.Join("vehicles", fmt.Sprint(vehicleID), time.Now().UTC().Format("20060102"), ids.New()+"."+ext)
}

func (s *VehicleService) ensurePlateFree(ctx context.Context, plate string, id int64) error {
	taken, err := s.vehicles.ExistsByLicensePlate(ctx, plate, id)
	if err != nil {
		return fmt.Errorf("check license plate: %w", err)
	}
	if taken {
		return plateTaken(plate)
	}
	return nil
}

func (s *VehicleService) ensureLocation(ctx context.Context, id int64) error {
	if _, err := s.locations.GetByID(ctx, id); err != nil {
		return translate(err, "Location", id, "")
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setPrice(dst *decimal.NullDecimal, src *decimal.Decimal) {
	if src != nil {
		*dst = decimal.NewNullDecimal(*src)
	}
}
