package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/prospot/prospot-api/internal/domain"
)

// Firestore collection names.
const (
	listingsCollection = "listings"
	adsCollection      = "ads"
	usersCollection    = "users"
	reviewsCollection  = "reviews"
)

// FirestoreStore implements Gateway against the authoritative remote store.
// Saves replace the whole collection: documents absent from the new state are
// deleted, everything else is overwritten.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed gateway.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Listings loads all listing documents.
func (s *FirestoreStore) Listings(ctx context.Context) ([]domain.Listing, error) {
	var out []domain.Listing
	err := s.loadAll(ctx, listingsCollection, func(doc *firestore.DocumentSnapshot) error {
		var l domain.Listing
		if err := doc.DataTo(&l); err != nil {
			return err
		}
		out = append(out, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveListings replaces the listings collection.
func (s *FirestoreStore) SaveListings(ctx context.Context, listings []domain.Listing) error {
	ids := make(map[string]any, len(listings))
	for _, l := range listings {
		ids[l.ID] = l
	}
	return s.replaceAll(ctx, listingsCollection, ids)
}

// Ads loads all advertisement documents.
func (s *FirestoreStore) Ads(ctx context.Context) ([]domain.Advertisement, error) {
	var out []domain.Advertisement
	err := s.loadAll(ctx, adsCollection, func(doc *firestore.DocumentSnapshot) error {
		var a domain.Advertisement
		if err := doc.DataTo(&a); err != nil {
			return err
		}
		out = append(out, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveAds replaces the ads collection.
func (s *FirestoreStore) SaveAds(ctx context.Context, ads []domain.Advertisement) error {
	ids := make(map[string]any, len(ads))
	for _, a := range ads {
		ids[a.ID] = a
	}
	return s.replaceAll(ctx, adsCollection, ids)
}

// Users loads all user documents.
func (s *FirestoreStore) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := s.loadAll(ctx, usersCollection, func(doc *firestore.DocumentSnapshot) error {
		var u domain.User
		if err := doc.DataTo(&u); err != nil {
			return err
		}
		out = append(out, u)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveUsers replaces the users collection.
func (s *FirestoreStore) SaveUsers(ctx context.Context, users []domain.User) error {
	ids := make(map[string]any, len(users))
	for _, u := range users {
		ids[u.ID] = u
	}
	return s.replaceAll(ctx, usersCollection, ids)
}

// Reviews loads all review documents.
func (s *FirestoreStore) Reviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := s.loadAll(ctx, reviewsCollection, func(doc *firestore.DocumentSnapshot) error {
		var r domain.Review
		if err := doc.DataTo(&r); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveReviews replaces the reviews collection.
func (s *FirestoreStore) SaveReviews(ctx context.Context, reviews []domain.Review) error {
	ids := make(map[string]any, len(reviews))
	for _, r := range reviews {
		ids[r.ID] = r
	}
	return s.replaceAll(ctx, reviewsCollection, ids)
}

func (s *FirestoreStore) loadAll(ctx context.Context, collection string, visit func(*firestore.DocumentSnapshot) error) error {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if status.Code(err) == codes.NotFound {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading %s: %w", collection, err)
		}
		if err := visit(doc); err != nil {
			return fmt.Errorf("decoding %s/%s: %w", collection, doc.Ref.ID, err)
		}
	}
}

// replaceAll overwrites every document in the new state and deletes documents
// that are no longer present.
func (s *FirestoreStore) replaceAll(ctx context.Context, collection string, byID map[string]any) error {
	coll := s.client.Collection(collection)

	existing, err := coll.DocumentRefs(ctx).GetAll()
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("listing %s: %w", collection, err)
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make(map[string]*firestore.BulkWriterJob, len(byID))
	for _, ref := range existing {
		if _, ok := byID[ref.ID]; !ok {
			job, err := bw.Delete(ref)
			if err != nil {
				return fmt.Errorf("deleting %s/%s: %w", collection, ref.ID, err)
			}
			jobs[ref.ID] = job
		}
	}
	for id, data := range byID {
		job, err := bw.Set(coll.Doc(id), data)
		if err != nil {
			return fmt.Errorf("writing %s/%s: %w", collection, id, err)
		}
		jobs[id] = job
	}
	bw.End()

	// Enqueueing only checks arguments; the write itself can still be
	// rejected, and Results is the sole place that surfaces it.
	for id, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("replacing %s/%s: %w", collection, id, err)
		}
	}
	return nil
}

// Compile-time interface check
var _ Gateway = (*FirestoreStore)(nil)
