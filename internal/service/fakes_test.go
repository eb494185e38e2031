package service

import (
	"context"
	"sync"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/events"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/repository"
)

// memUserRepository is an in-memory store enforcing email uniqueness.
type memUserRepository struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
	calls  int

	// Optional overrides.
	existsFn func(ctx context.Context, email string) (bool, error)
	createFn func(ctx context.Context, user *domain.User) error
	getFn    func(ctx context.Context) (*domain.User, error)
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{byID: map[int64]*domain.User{}}
}

func (r *memUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.createFn != nil {
		return r.createFn(ctx, user)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *memUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.existsFn != nil {
		return r.existsFn(ctx, email)
	}
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.getFn != nil {
		return r.getFn(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *memUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.Email == email })
}

func (r *memUserRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domain.User, error) {
	return r.find(ctx, func(u *domain.User) bool { return u.DocumentNumber == documentNumber })
}

func (r *memUserRepository) find(ctx context.Context, match func(*domain.User) bool) (*domain.User, error) {
	if r.getFn != nil {
		return r.getFn(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// put stores a record directly, keeping its id.
func (r *memUserRepository) put(u domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID > r.nextID {
		r.nextID = u.ID
	}
	r.byID[u.ID] = &u
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]events.EventType, 0, len(d.published))
	for _, e := range d.published {
		out = append(out, e.Type)
	}
	return out
}
