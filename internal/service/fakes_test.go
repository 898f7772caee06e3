package service

import (
	"context"
	"sync"

	"carrental/internal/models"
	"carrental/internal/repository"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[int64]models.User)}
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return models.User{}, &repository.ConstraintError{Kind: repository.ErrDuplicate, Constraint: "users_email_key"}
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) List(context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.User, 0, len(f.byID))
	for id := int64(1); id <= f.nextID; id++ {
		if u, ok := f.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) ExistsByPhone(_ context.Context, phone string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.PhoneNumber != nil && *u.PhoneNumber == phone && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) Update(_ context.Context, u models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[u.ID]; !ok {
		return models.User{}, repository.ErrNotFound
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUsers) UpdateRole(_ context.Context, id, roleID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.RoleID = roleID
	f.byID[id] = u
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRoles struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Role
}

func newFakeRoles(names ...string) *fakeRoles {
	f := &fakeRoles{byID: make(map[int64]models.Role)}
	for _, n := range names {
		f.nextID++
		f.byID[f.nextID] = models.Role{ID: f.nextID, Name: n}
	}
	return f
}

func (f *fakeRoles) Create(_ context.Context, name string) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byID {
		if r.Name == name {
			return models.Role{}, repository.ErrDuplicate
		}
	}
	f.nextID++
	r := models.Role{ID: f.nextID, Name: name}
	f.byID[r.ID] = r
	return r, nil
}

func (f *fakeRoles) GetOrCreate(ctx context.Context, name string) (models.Role, error) {
	if r, err := f.GetByName(ctx, name); err == nil {
		return r, nil
	}
	return f.Create(ctx, name)
}

func (f *fakeRoles) GetByID(_ context.Context, id int64) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return models.Role{}, repository.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoles) GetByName(_ context.Context, name string) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.byID {
		if r.Name == name {
			return r, nil
		}
	}
	return models.Role{}, repository.ErrNotFound
}

func (f *fakeRoles) List(context.Context) ([]models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Role, 0, len(f.byID))
	for id := int64(1); id <= f.nextID; id++ {
		if r, ok := f.byID[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoles) Update(_ context.Context, r models.Role) (models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[r.ID]; !ok {
		return models.Role{}, repository.ErrNotFound
	}
	f.byID[r.ID] = r
	return r, nil
}

func (f *fakeRoles) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeRentals records which read path the service took.
type fakeRentals struct {
	items     []models.Rental
	listCalls int
	findCalls int
	lastFind  models.RentalFilter
}

func (f *fakeRentals) Create(_ context.Context, r models.Rental) (models.Rental, error) {
	r.ID = int64(len(f.items) + 1)
	f.items = append(f.items, r)
	return r, nil
}

func (f *fakeRentals) GetByID(_ context.Context, id int64) (models.Rental, error) {
	for _, r := range f.items {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Rental{}, repository.ErrNotFound
}

func (f *fakeRentals) List(context.Context) ([]models.Rental, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeRentals) Find(_ context.Context, flt models.RentalFilter) ([]models.Rental, error) {
	f.findCalls++
	f.lastFind = flt
	out := make([]models.Rental, 0)
	for _, r := range f.items {
		if flt.Status != "" && r.Status != flt.Status {
			continue
		}
		if flt.StartTime.From != nil && r.StartTime.Before(*flt.StartTime.From) {
			continue
		}
		if flt.StartTime.To != nil && r.StartTime.After(*flt.StartTime.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRentals) Update(_ context.Context, r models.Rental) (models.Rental, error) {
	for i := range f.items {
		if f.items[i].ID == r.ID {
			f.items[i] = r
			return r, nil
		}
	}
	return models.Rental{}, repository.ErrNotFound
}

func (f *fakeRentals) Delete(_ context.Context, id int64) error {
	for i, r := range f.items {
		if r.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeVehicles struct {
	items map[int64]models.Vehicle
}

func (f *fakeVehicles) Create(_ context.Context, v models.Vehicle) (models.Vehicle, error) {
	v.ID = int64(len(f.items) + 1)
	f.items[v.ID] = v
	return v, nil
}

func (f *fakeVehicles) GetByID(_ context.Context, id int64) (models.Vehicle, error) {
	v, ok := f.items[id]
	if !ok {
		return models.Vehicle{}, repository.ErrNotFound
	}
	return v, nil
}

func (f *fakeVehicles) List(context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicles) ExistsByLicensePlate(_ context.Context, plate string, excludeID int64) (bool, error) {
	for _, v := range f.items {
		if v.LicensePlate == plate && v.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVehicles) Update(_ context.Context, v models.Vehicle) (models.Vehicle, error) {
	if _, ok := f.items[v.ID]; !ok {
		return models.Vehicle{}, repository.ErrNotFound
	}
	f.items[v.ID] = v
	return v, nil
}

func (f *fakeVehicles) UpdateImage(_ context.Context, id int64, image string) error {
	v, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Image = image
	f.items[id] = v
	return nil
}

func (f *fakeVehicles) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeLocations struct {
	items map[int64]models.Location
}

func (f *fakeLocations) Create(_ context.Context, l models.Location) (models.Location, error) {
	l.ID = int64(len(f.items) + 1)
	f.items[l.ID] = l
	return l, nil
}

func (f *fakeLocations) GetByID(_ context.Context, id int64) (models.Location, error) {
	l, ok := f.items[id]
	if !ok {
		return models.Location{}, repository.ErrNotFound
	}
	return l, nil
}

func (f *fakeLocations) List(context.Context) ([]models.Location, error) {
	out := make([]models.Location, 0, len(f.items))
	for _, l := range f.items {
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeLocations) ExistsByNameAndAddress(_ context.Context, name, address string, excludeID int64) (bool, error) {
	for _, l := range f.items {
		if l.Name == name && l.Address == address && l.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLocations) Update(_ context.Context, l models.Location) (models.Location, error) {
	if _, ok := f.items[l.ID]; !ok {
		return models.Location{}, repository.ErrNotFound
	}
	f.items[l.ID] = l
	return l, nil
}

func (f *fakeLocations) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakePayments struct {
	items []models.Payment
}

func (f *fakePayments) Create(_ context.Context, p models.Payment) (models.Payment, error) {
	p.ID = int64(len(f.items) + 1)
	f.items = append(f.items, p)
	return p, nil
}

func (f *fakePayments) GetByID(_ context.Context, id int64) (models.Payment, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, repository.ErrNotFound
}

func (f *fakePayments) List(context.Context) ([]models.Payment, error) {
	return f.items, nil
}

func (f *fakePayments) Find(_ context.Context, flt models.PaymentFilter) ([]models.Payment, error) {
	out := make([]models.Payment, 0)
	for _, p := range f.items {
		if flt.PaymentDate.From != nil && p.PaymentDate.Before(*flt.PaymentDate.From) {
			continue
		}
		if flt.PaymentDate.To != nil && p.PaymentDate.After(*flt.PaymentDate.To) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePayments) Update(_ context.Context, p models.Payment) (models.Payment, error) {
	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items[i] = p
			return p, nil
		}
	}
	return models.Payment{}, repository.ErrNotFound
}

func (f *fakePayments) Delete(_ context.Context, id int64) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type recordedEvent struct {
	Type    string
	Payload any
}

type fakeEmitter struct {
	events []recordedEvent
}

func (f *fakeEmitter) Emit(_ context.Context, eventType string, payload any) {
	f.events = append(f.events, recordedEvent{Type: eventType, Payload: payload})
}

type fakeObjectStore struct {
	puts map[string][]byte
	mime map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{puts: make(map[string][]byte), mime: make(map[string]string)}
}

func (f *fakeObjectStore) Put(_ context.Context, bucket, key string, data []byte, contentType string) error {
	f.puts[bucket+"/"+key] = data
	f.mime[bucket+"/"+key] = contentType
	return nil
}

func (f *fakeObjectStore) PublicURL(bucket, key string) string {
	return "http://objects.local/" + bucket + "/" + key
}

type fakeReviews struct {
	items     []models.Review
	listCalls int
	findCalls int
}

func (f *fakeReviews) Create(_ context.Context, rv models.Review) (models.Review, error) {
	rv.ID = int64(len(f.items) + 1)
	f.items = append(f.items, rv)
	return rv, nil
}

func (f *fakeReviews) GetByID(_ context.Context, id int64) (models.Review, error) {
	for _, rv := range f.items {
		if rv.ID == id {
			return rv, nil
		}
	}
	return models.Review{}, repository.ErrNotFound
}

func (f *fakeReviews) List(context.Context) ([]models.Review, error) {
	f.listCalls++
	return f.items, nil
}

func (f *fakeReviews) Find(_ context.Context, flt models.ReviewFilter) ([]models.Review, error) {
	f.findCalls++
	out := make([]models.Review, 0)
	for _, rv := range f.items {
		if flt.Rating.From != nil && rv.Rating < *flt.Rating.From {
			continue
		}
		if flt.Rating.To != nil && rv.Rating > *flt.Rating.To {
			continue
		}
		out = append(out, rv)
	}
	return out, nil
}

func (f *fakeReviews) Update(_ context.Context, rv models.Review) (models.Review, error) {
	for i := range f.items {
		if f.items[i].ID == rv.ID {
			f.items[i] = rv
			return rv, nil
		}
	}
	return models.Review{}, repository.ErrNotFound
}

func (f *fakeReviews) Delete(_ context.Context, id int64) error {
	for i, rv := range f.items {
		if rv.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
