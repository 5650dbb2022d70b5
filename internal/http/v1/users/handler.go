package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/prospot/prospot-api/internal/domain"
	usersvc "github.com/prospot/prospot-api/internal/service/user"
)

// Register registers user and review endpoints.
func Register(api huma.API, svc usersvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Register an account",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *UserRegisterInput) (*UserRegisterOutput, error) {
		u, err := svc.Register(ctx, usersvc.RegisterParams{
			Name:    input.Body.Name,
			Email:   input.Body.Email,
			Role:    domain.Role(input.Body.Role),
			Phone:   input.Body.Phone,
			Address: input.Body.Address,
		})
		if err != nil {
			return nil, mapUserError(err)
		}
		return &UserRegisterOutput{
			Location: prefix + "/users/" + u.ID,
			Body:     toHTTPUser(u),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get an account",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *UserGetInput) (*UserGetOutput, error) {
		u, err := svc.Get(ctx, input.ID)
		if err != nil {
			return nil, mapUserError(err)
		}
		return &UserGetOutput{Body: toHTTPUser(u)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/users/{id}",
		Summary:       "Delete an account",
		Description:   "Removes the account. Reviews written by the account survive.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *UserDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapUserError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-contact",
		Method:      http.MethodPost,
		Path:        "/users/{id}/contacts/{listingID}",
		Summary:     "Record a listing contact",
		Description: "Appends the listing to the user's contact history. Repeat contacts are absorbed.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *ContactInput) (*ContactOutput, error) {
		u, err := svc.AddContact(ctx, input.ID, input.ListingID)
		if err != nil {
			return nil, mapUserError(err)
		}
		return &ContactOutput{Body: toHTTPUser(u)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-favorite",
		Method:      http.MethodPost,
		Path:        "/users/{id}/favorites/{listingID}",
		Summary:     "Toggle a favorite",
		Description: "Adds the listing to the user's favorites, or removes it when already present.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *FavoriteInput) (*FavoriteOutput, error) {
		u, err := svc.ToggleFavorite(ctx, input.ID, input.ListingID)
		if err != nil {
			return nil, mapUserError(err)
		}
		return &FavoriteOutput{Body: toHTTPUser(u)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-pending-reviews",
		Method:      http.MethodGet,
		Path:        "/users/{id}/pending-reviews",
		Summary:     "List pending reviews",
		Description: "Lists the listings the user contacted but has not reviewed yet.",
		Tags:        []string{"Users"},
	}, func(ctx context.Context, input *PendingReviewsInput) (*PendingReviewsOutput, error) {
		ids, err := svc.PendingReviews(ctx, input.ID)
		if err != nil {
			return nil, mapUserError(err)
		}
		return &PendingReviewsOutput{Body: PendingReviewsData{ListingIDs: ids}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-review",
		Method:        http.MethodPost,
		Path:          "/reviews",
		Summary:       "Publish a review",
		Description:   "Publishes a review for a contacted listing. One review per user and listing.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ReviewCreateInput) (*ReviewCreateOutput, error) {
		review, err := svc.AddReview(ctx, usersvc.ReviewParams{
			UserID:         input.Body.UserID,
			ProfessionalID: input.Body.ProfessionalID,
			Rating:         input.Body.Rating,
			Comment:        input.Body.Comment,
		})
		if err != nil {
			return nil, mapUserError(err)
		}
		return &ReviewCreateOutput{Body: toHTTPReview(review)}, nil
	})
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, usersvc.ErrNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, usersvc.ErrAlreadyExists):
		return huma.Error409Conflict("email already registered")
	case errors.Is(err, usersvc.ErrInvalidRole):
		return huma.Error422UnprocessableEntity("unknown role")
	case errors.Is(err, usersvc.ErrInvalidRating):
		return huma.Error422UnprocessableEntity("rating out of range")
	case errors.Is(err, usersvc.ErrAlreadyReviewed):
		return huma.Error409Conflict("listing already reviewed")
	case errors.Is(err, usersvc.ErrNotEligible):
		return huma.Error422UnprocessableEntity("listing was never contacted")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
