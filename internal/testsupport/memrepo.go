// Package testsupport provides in-memory repositories for service and
// router tests. They follow the Postgres semantics the services rely on:
// generated ids, FK checks, unique usernames and delete cascades.
package testsupport

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"restaurant-reservation/internal/data/entity"
	"restaurant-reservation/internal/data/repository"
	"restaurant-reservation/pkg/utils"
)

// Store holds every table behind the fake repositories.
type Store struct {
	mu sync.Mutex

	users        map[int64]entity.User
	restaurants  map[int64]entity.Restaurant
	dishes       map[int64]entity.Dish
	reservations map[int64]entity.Reservation
	seq          map[string]int64

	calls map[string]int

	// Err, when set, is returned by every repository call.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:        map[int64]entity.User{},
		restaurants:  map[int64]entity.Restaurant{},
		dishes:       map[int64]entity.Dish{},
		reservations: map[int64]entity.Reservation{},
		seq:          map[string]int64{},
		calls:        map[string]int{},
	}
}

// Repository wires the fakes the same way repository.NewRepository wires
// the Postgres implementations.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:        &userRepo{s},
		Restaurant:  &restaurantRepo{s},
		Dish:        &dishRepo{s},
		Reservation: &reservationRepo{s},
	}
}

// Calls reports how many times a method ran, e.g. Calls("Dish.FindByID").
func (s *Store) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls sums the calls of every method.
func (s *Store) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

// enter locks the store and records the call, callers must unlock.
func (s *Store) enter(method string) error {
	s.mu.Lock()
	s.calls[method]++
	return s.Err
}

func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// SeedUser inserts a user directly, bypassing counters.
func (s *Store) SeedUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.next("users")
	s.users[user.ID] = *user
}

func (s *Store) SeedRestaurant(restaurant *entity.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restaurant.ID = s.next("restaurants")
	s.restaurants[restaurant.ID] = *restaurant
}

func (s *Store) SeedDish(dish *entity.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dish.ID = s.next("dishes")
	s.dishes[dish.ID] = *dish
}

func (s *Store) SeedReservation(reservation *entity.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reservation.ID = s.next("reservations")
	s.reservations[reservation.ID] = *reservation
}

// Counts returns the number of rows per table.
func (s *Store) Counts() (users, restaurants, dishes, reservations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.restaurants), len(s.dishes), len(s.reservations)
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func missingReference() error {
	return utils.Invalid("referenced entity does not exist", nil)
}

// ---------------- users ----------------

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.s.enter("User.Create"); err != nil {
		r.s.mu.Unlock()
		return err
	}
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return utils.Conflict("username already registered")
		}
	}
	user.ID = r.s.next("users")
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if err := r.s.enter("User.FindByID"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := r.s.enter("User.FindByUsername"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	if err := r.s.enter("User.Update"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Username != nil {
		for otherID, other := range r.s.users {
			if otherID != id && other.Username == *patch.Username {
				return nil, utils.Conflict("username already registered")
			}
		}
		u.Username = *patch.Username
	}
	if patch.HashedPassword != nil {
		u.HashedPassword = *patch.HashedPassword
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	r.s.users[id] = u
	return &u, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.s.enter("User.Delete"); err != nil {
		r.s.mu.Unlock()
		return false, err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	for rid, res := range r.s.reservations {
		if res.UserID == id {
			delete(r.s.reservations, rid)
		}
	}
	return true, nil
}

// ---------------- restaurants ----------------

type restaurantRepo struct{ s *Store }

func (r *restaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	if err := r.s.enter("Restaurant.Create"); err != nil {
		r.s.mu.Unlock()
		return err
	}
	defer r.s.mu.Unlock()

	restaurant.ID = r.s.next("restaurants")
	r.s.restaurants[restaurant.ID] = *restaurant
	return nil
}

func (r *restaurantRepo) FindByID(ctx context.Context, id int64) (*entity.Restaurant, error) {
	if err := r.s.enter("Restaurant.FindByID"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	restaurant, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	return &restaurant, nil
}

func (r *restaurantRepo) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	if err := r.s.enter("Restaurant.FindAll"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	var out []*entity.Restaurant
	for _, id := range sortedKeys(r.s.restaurants) {
		restaurant := r.s.restaurants[id]
		out = append(out, &restaurant)
	}
	return out, nil
}

func (r *restaurantRepo) Update(ctx context.Context, id int64, patch entity.RestaurantPatch) (*entity.Restaurant, error) {
	if err := r.s.enter("Restaurant.Update"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	restaurant, ok := r.s.restaurants[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		restaurant.Name = *patch.Name
	}
	if patch.Address != nil {
		restaurant.Address = *patch.Address
	}
	if patch.Description != nil {
		restaurant.Description = *patch.Description
	}
	r.s.restaurants[id] = restaurant
	return &restaurant, nil
}

func (r *restaurantRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.s.enter("Restaurant.Delete"); err != nil {
		r.s.mu.Unlock()
		return false, err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[id]; !ok {
		return false, nil
	}
	delete(r.s.restaurants, id)
	for did, dish := range r.s.dishes {
		if dish.RestaurantID == id {
			delete(r.s.dishes, did)
		}
	}
	for rid, res := range r.s.reservations {
		if res.RestaurantID == id {
			delete(r.s.reservations, rid)
		}
	}
	return true, nil
}

// ---------------- dishes ----------------

type dishRepo struct{ s *Store }

func (r *dishRepo) Create(ctx context.Context, dish *entity.Dish) error {
	if err := r.s.enter("Dish.Create"); err != nil {
		r.s.mu.Unlock()
		return err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.restaurants[dish.RestaurantID]; !ok {
		return missingReference()
	}
	dish.ID = r.s.next("dishes")
	dish.Price = numeric2(dish.Price)
	r.s.dishes[dish.ID] = *dish
	return nil
}

func (r *dishRepo) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	if err := r.s.enter("Dish.FindByID"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	dish, ok := r.s.dishes[id]
	if !ok {
		return nil, nil
	}
	return &dish, nil
}

func (r *dishRepo) FindAll(ctx context.Context, category *entity.DishCategory) ([]*entity.Dish, error) {
	if err := r.s.enter("Dish.FindAll"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	return r.filter(func(d entity.Dish) bool {
		return category == nil || d.Category == *category
	}), nil
}

func (r *dishRepo) FindByRestaurant(ctx context.Context, restaurantID int64, category *entity.DishCategory) ([]*entity.Dish, error) {
	if err := r.s.enter("Dish.FindByRestaurant"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	return r.filter(func(d entity.Dish) bool {
		return d.RestaurantID == restaurantID && (category == nil || d.Category == *category)
	}), nil
}

func (r *dishRepo) filter(keep func(entity.Dish) bool) []*entity.Dish {
	var out []*entity.Dish
	for _, id := range sortedKeys(r.s.dishes) {
		dish := r.s.dishes[id]
		if keep(dish) {
			out = append(out, &dish)
		}
	}
	return out
}

func (r *dishRepo) Update(ctx context.Context, id int64, patch entity.DishPatch) (*entity.Dish, error) {
	if err := r.s.enter("Dish.Update"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	dish, ok := r.s.dishes[id]
	if !ok {
		return nil, nil
	}
	if patch.RestaurantID != nil {
		if _, ok := r.s.restaurants[*patch.RestaurantID]; !ok {
			return nil, missingReference()
		}
		dish.RestaurantID = *patch.RestaurantID
	}
	if patch.Category != nil {
		dish.Category = *patch.Category
	}
	if patch.DishName != nil {
		dish.DishName = *patch.DishName
	}
	if patch.Description != nil {
		dish.Description = *patch.Description
	}
	if patch.Price != nil {
		dish.Price = numeric2(*patch.Price)
	}
	r.s.dishes[id] = dish
	return &dish, nil
}

func (r *dishRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.s.enter("Dish.Delete"); err != nil {
		r.s.mu.Unlock()
		return false, err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.dishes[id]; !ok {
		return false, nil
	}
	delete(r.s.dishes, id)
	return true, nil
}

// ---------------- reservations ----------------

type reservationRepo struct{ s *Store }

func (r *reservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if err := r.s.enter("Reservation.Create"); err != nil {
		r.s.mu.Unlock()
		return err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[reservation.UserID]; !ok {
		return missingReference()
	}
	if _, ok := r.s.restaurants[reservation.RestaurantID]; !ok {
		return missingReference()
	}
	reservation.ID = r.s.next("reservations")
	reservation.DateReserv = timestamptz(reservation.DateReserv)
	r.s.reservations[reservation.ID] = *reservation
	return nil
}

func (r *reservationRepo) FindByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	if err := r.s.enter("Reservation.FindByID"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *reservationRepo) FindByRestaurant(ctx context.Context, restaurantID int64) ([]*entity.Reservation, error) {
	if err := r.s.enter("Reservation.FindByRestaurant"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	return r.filter(func(res entity.Reservation) bool { return res.RestaurantID == restaurantID }), nil
}

func (r *reservationRepo) FindByUser(ctx context.Context, userID int64) ([]*entity.Reservation, error) {
	if err := r.s.enter("Reservation.FindByUser"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	return r.filter(func(res entity.Reservation) bool { return res.UserID == userID }), nil
}

func (r *reservationRepo) filter(keep func(entity.Reservation) bool) []*entity.Reservation {
	var out []*entity.Reservation
	for _, id := range sortedKeys(r.s.reservations) {
		res := r.s.reservations[id]
		if keep(res) {
			out = append(out, &res)
		}
	}
	return out
}

func (r *reservationRepo) Update(ctx context.Context, id int64, patch entity.ReservationPatch) (*entity.Reservation, error) {
	if err := r.s.enter("Reservation.Update"); err != nil {
		r.s.mu.Unlock()
		return nil, err
	}
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, nil
	}
	if patch.UserID != nil {
		if _, ok := r.s.users[*patch.UserID]; !ok {
			return nil, missingReference()
		}
		res.UserID = *patch.UserID
	}
	if patch.RestaurantID != nil {
		if _, ok := r.s.restaurants[*patch.RestaurantID]; !ok {
			return nil, missingReference()
		}
		res.RestaurantID = *patch.RestaurantID
	}
	if patch.DateReserv != nil {
		res.DateReserv = timestamptz(*patch.DateReserv)
	}
	if patch.GuestCount != nil {
		res.GuestCount = *patch.GuestCount
	}
	if patch.Status != nil {
		res.Status = *patch.Status
	}
	if patch.Comment != nil {
		res.Comment = patch.Comment
	}
	r.s.reservations[id] = res
	return &res, nil
}

func (r *reservationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.s.enter("Reservation.Delete"); err != nil {
		r.s.mu.Unlock()
		return false, err
	}
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[id]; !ok {
		return false, nil
	}
	delete(r.s.reservations, id)
	return true, nil
}

// Ping stands in for the database health check.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Err
}

// numeric2 stores a price the way a NUMERIC(10,2) column does.
func numeric2(v float64) float64 {
	return math.Round(v*100) / 100
}

// timestamptz keeps microseconds and reads back in UTC like the Postgres repository.
func timestamptz(t time.Time) time.Time {
	return t.Truncate(time.Microsecond).UTC()
}
