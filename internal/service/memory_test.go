package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dkovacic/devlink/internal/domain"
)

// In-memory repositories for unit tests. The cascade fakes additionally
// record their deletions on a shared journal so tests can assert order.

type memUserRepo struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*domain.User
	journal *deleteJournal
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	r.journal.record("user")
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.Profile
	users    *memUserRepo
	journal  *deleteJournal
}

func newMemProfileRepo(users *memUserRepo) *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile), users: users}
}

func (r *memProfileRepo) GetByUser(_ context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[userID]; ok {
		return copyProfile(p), nil
	}
	return nil, nil
}

func (r *memProfileRepo) GetByUserJoined(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := r.GetByUser(ctx, userID)
	if p == nil || err != nil {
		return nil, err
	}
	if r.users != nil {
		if u, _ := r.users.GetByID(ctx, userID); u != nil {
			p.Owner = &domain.ProfileOwner{Name: u.Name, Avatar: u.Avatar}
		}
	}
	return p, nil
}

func (r *memProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	r.mu.Lock()
	ids := make([]uuid.UUID, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	out := []domain.Profile{}
	for _, id := range ids {
		p, err := r.GetByUserJoined(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) Upsert(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = copyProfile(profile)
	return nil
}

func (r *memProfileRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	r.journal.record("profile")
	return nil
}

type memPostRepo struct {
	mu      sync.Mutex
	posts   map[uuid.UUID]*domain.Post
	journal *deleteJournal
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*domain.Post)}
}

func (r *memPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *post
	r.posts[post.ID] = &p
	return nil
}

func (r *memPostRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, p := range r.posts {
		if p.UserID == userID {
			delete(r.posts, id)
		}
	}
	r.journal.record("posts")
	return nil
}

type deleteJournal struct {
	mu    sync.Mutex
	steps []string
}

func (j *deleteJournal) record(step string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.steps = append(j.steps, step)
}

func copyProfile(p *domain.Profile) *domain.Profile {
	copied := *p
	copied.Skills = append([]string(nil), p.Skills...)
	copied.Experience = append([]domain.Experience(nil), p.Experience...)
	copied.Education = append([]domain.Education(nil), p.Education...)
	return &copied
}
