package listings

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/prospot/prospot-api/internal/domain"
	"github.com/prospot/prospot-api/internal/platform/pagination"
	"github.com/prospot/prospot-api/internal/ranking"
	catalogsvc "github.com/prospot/prospot-api/internal/service/catalog"
	usersvc "github.com/prospot/prospot-api/internal/service/user"
)

const cursorType = "listing"

// Register registers listing endpoints.
func Register(api huma.API, catalog catalogsvc.Service, users usersvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "search-listings",
		Method:      http.MethodGet,
		Path:        "/listings",
		Summary:     "Search listings",
		Description: "Runs the ranked search: category and department filters, free-text matching on name and tags, then ordering by promotion, proximity to the optional origin, and rating. Returns a cursor-paginated page.",
		Tags:        []string{"Listings"},
	}, func(ctx context.Context, input *ListingsSearchInput) (*ListingsSearchOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		origin := input.Origin()
		ranked, err := catalog.Search(ctx, ranking.Filters{
			Category:   domain.Category(input.Category),
			Department: input.Department,
			Query:      input.Query,
		}, origin)
		if err != nil {
			return nil, huma.Error500InternalServerError("search failed")
		}

		query := url.Values{}
		if input.Category != "" {
			query.Set("category", input.Category)
		}
		if input.Department != "" {
			query.Set("department", input.Department)
		}
		if input.Query != "" {
			query.Set("q", input.Query)
		}
		if origin != nil {
			query.Set("lat", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
			query.Set("lon", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
		}

		result := pagination.Paginate(
			toHTTPListings(ranked),
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(l Listing) string { return l.ID },
			prefix+"/listings",
			query,
		)

		return &ListingsSearchOutput{
			Link: result.LinkHeader,
			Body: SearchData{
				Listings: result.Items,
				Total:    result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/listings/{id}",
		Summary:     "Get a listing",
		Tags:        []string{"Listings"},
	}, func(ctx context.Context, input *ListingGetInput) (*ListingGetOutput, error) {
		listing, err := catalog.Get(ctx, input.ID)
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ListingGetOutput{Body: toHTTPListing(*listing)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/listings",
		Summary:       "Publish a listing",
		Tags:          []string{"Listings"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ListingCreateInput) (*ListingCreateOutput, error) {
		listing, err := catalog.Create(ctx, catalogsvc.CreateParams{
			Name:         input.Body.Name,
			Title:        input.Body.Title,
			Category:     domain.Category(input.Body.Category),
			Location:     input.Body.Location,
			Department:   input.Body.Department,
			Latitude:     input.Body.Latitude,
			Longitude:    input.Body.Longitude,
			Description:  input.Body.Description,
			PriceRange:   input.Body.PriceRange,
			ImageURL:     input.Body.ImageURL,
			Tags:         input.Body.Tags,
			Availability: input.Body.Availability,
			Email:        input.Body.Email,
			WhatsApp:     input.Body.WhatsApp,
		})
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ListingCreateOutput{
			Location: prefix + "/listings/" + listing.ID,
			Body:     toHTTPListing(*listing),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPut,
		Path:        "/listings/{id}",
		Summary:     "Update a listing",
		Description: "Updates fields on a listing. Only provided fields are changed.",
		Tags:        []string{"Listings"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ListingUpdateInput) (*ListingUpdateOutput, error) {
		var category *domain.Category
		if input.Body.Category != nil {
			c := domain.Category(*input.Body.Category)
			category = &c
		}
		listing, err := catalog.Update(ctx, input.ID, catalogsvc.UpdateParams{
			Name:         input.Body.Name,
			Title:        input.Body.Title,
			Category:     category,
			Location:     input.Body.Location,
			Department:   input.Body.Department,
			Latitude:     input.Body.Latitude,
			Longitude:    input.Body.Longitude,
			Description:  input.Body.Description,
			PriceRange:   input.Body.PriceRange,
			ImageURL:     input.Body.ImageURL,
			Tags:         input.Body.Tags,
			Availability: input.Body.Availability,
			Email:        input.Body.Email,
			WhatsApp:     input.Body.WhatsApp,
			IsVerified:   input.Body.IsVerified,
			IsPromoted:   input.Body.IsPromoted,
		})
		if err != nil {
			return nil, mapCatalogError(err)
		}
		return &ListingUpdateOutput{Body: toHTTPListing(*listing)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-listing",
		Method:        http.MethodDelete,
		Path:          "/listings/{id}",
		Summary:       "Delete a listing",
		Tags:          []string{"Listings"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ListingDeleteInput) (*struct{}, error) {
		if err := catalog.Delete(ctx, input.ID); err != nil {
			return nil, mapCatalogError(err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-listing-reviews",
		Method:      http.MethodGet,
		Path:        "/listings/{id}/reviews",
		Summary:     "List reviews for a listing",
		Tags:        []string{"Listings"},
	}, func(ctx context.Context, input *ListingReviewsInput) (*ListingReviewsOutput, error) {
		if _, err := catalog.Get(ctx, input.ID); err != nil {
			return nil, mapCatalogError(err)
		}
		reviews, err := users.ReviewsFor(ctx, input.ID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &ListingReviewsOutput{
			Body: ReviewsData{
				Reviews: toHTTPReviews(reviews),
				Total:   len(reviews),
			},
		}, nil
	})
}

func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalogsvc.ErrNotFound):
		return huma.Error404NotFound("listing not found")
	case errors.Is(err, catalogsvc.ErrInvalidCategory):
		return huma.Error422UnprocessableEntity("unknown category")
	case errors.Is(err, catalogsvc.ErrInvalidDepartment):
		return huma.Error422UnprocessableEntity("unknown department")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
