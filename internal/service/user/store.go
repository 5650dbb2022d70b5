package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/store"
)

// Store implements Service on top of the persistence gateway. A single mutex
// covers both the user and review collections because AddReview reads one and
// writes the other.
type Store struct {
	mu      sync.Mutex
	gateway store.Gateway
	now     func() time.Time
}

// NewStore creates a gateway-backed user service.
func NewStore(gateway store.Gateway) *Store {
	return &Store{gateway: gateway, now: time.Now}
}

// Register creates an account. Email addresses are normalized to lower case
// and must be unique across the collection.
func (s *Store) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	role := params.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	email := strings.ToLower(strings.TrimSpace(params.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.gateway.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrAlreadyExists
		}
	}

	u := domain.User{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(params.Name),
		Email:          email,
		Role:           role,
		Phone:          strings.TrimSpace(params.Phone),
		Address:        strings.TrimSpace(params.Address),
		ContactHistory: []string{},
		Favorites:      []string{},
		CreatedAt:      s.now().UTC(),
	}
	users = append(users, u)
	if err := s.gateway.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	return &u, nil
}

// Get returns an account by id.
func (s *Store) Get(ctx context.Context, id string) (*domain.User, error) {
	users, err := s.gateway.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// LookupByEmail returns an account by its normalized email address.
func (s *Store) LookupByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	users, err := s.gateway.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes an account. The user's reviews stay; published ratings
// outlive the account that wrote them.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.gateway.Users(ctx)
	if err != nil {
		return err
	}

	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return ErrNotFound
	}
	return s.gateway.SaveUsers(ctx, kept)
}

// AddContact records that the user reached out to a listing. Repeat contacts
// are absorbed; history holds each listing at most once.
func (s *Store) AddContact(ctx context.Context, userID, listingID string) (*domain.User, error) {
	return s.mutate(ctx, userID, func(u *domain.User) {
		if !u.HasContacted(listingID) {
			u.ContactHistory = append(u.ContactHistory, listingID)
		}
	})
}

// ToggleFavorite flips the listing's membership in the user's favorites.
func (s *Store) ToggleFavorite(ctx context.Context, userID, listingID string) (*domain.User, error) {
	return s.mutate(ctx, userID, func(u *domain.User) {
		if u.IsFavorite(listingID) {
			kept := u.Favorites[:0]
			for _, id := range u.Favorites {
				if id != listingID {
					kept = append(kept, id)
				}
			}
			u.Favorites = kept
			return
		}
		u.Favorites = append(u.Favorites, listingID)
	})
}

// AddReview publishes a review. The author must have contacted the listing
// and must not have reviewed it before.
func (s *Store) AddReview(ctx context.Context, params ReviewParams) (*domain.Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.gateway.Users(ctx)
	if err != nil {
		return nil, err
	}
	var author *domain.User
	for i := range users {
		if users[i].ID == params.UserID {
			author = &users[i]
			break
		}
	}
	if author == nil {
		return nil, ErrNotFound
	}
	if !author.HasContacted(params.ProfessionalID) {
		return nil, ErrNotEligible
	}

	reviews, err := s.gateway.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		if r.UserID == params.UserID && r.ProfessionalID == params.ProfessionalID {
			return nil, ErrAlreadyReviewed
		}
	}

	review := domain.Review{
		ID:             uuid.NewString(),
		UserID:         params.UserID,
		ProfessionalID: params.ProfessionalID,
		Rating:         params.Rating,
		Comment:        strings.TrimSpace(params.Comment),
		CreatedAt:      s.now().UTC(),
	}
	reviews = append(reviews, review)
	if err := s.gateway.SaveReviews(ctx, reviews); err != nil {
		return nil, err
	}
	return &review, nil
}

// ReviewsFor returns every review written about one listing.
func (s *Store) ReviewsFor(ctx context.Context, listingID string) ([]domain.Review, error) {
	reviews, err := s.gateway.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.ProfessionalID == listingID {
			out = append(out, r)
		}
	}
	return out, nil
}

// PendingReviews returns the listings the user contacted but has not reviewed
// yet, in contact order.
func (s *Store) PendingReviews(ctx context.Context, userID string) ([]string, error) {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.gateway.Reviews(ctx)
	if err != nil {
		return nil, err
	}
	reviewed := make(map[string]struct{}, len(reviews))
	for _, r := range reviews {
		if r.UserID == userID {
			reviewed[r.ProfessionalID] = struct{}{}
		}
	}
	pending := make([]string, 0, len(u.ContactHistory))
	for _, id := range u.ContactHistory {
		if _, ok := reviewed[id]; !ok {
			pending = append(pending, id)
		}
	}
	return pending, nil
}

// mutate loads the user collection, applies fn to one account and saves.
func (s *Store) mutate(ctx context.Context, userID string, fn func(*domain.User)) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.gateway.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			fn(&users[i])
			if err := s.gateway.SaveUsers(ctx, users); err != nil {
				return nil, err
			}
			updated := users[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

var _ Service = (*Store)(nil)
