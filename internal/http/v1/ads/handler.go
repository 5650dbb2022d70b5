package ads

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/prospot/prospot-api/internal/domain"
	adsvc "github.com/prospot/prospot-api/internal/service/ads"
)

// ListData is the response body for the inventory listing.
type ListData struct {
	Ads   []Advertisement `json:"ads"   doc:"Advertisements"`
	Total int             `json:"total" doc:"Number of advertisements" example:"2"`
}

// AdsListOutput for GET /ads
type AdsListOutput struct {
	Body ListData
}

// AdCreateOutput for POST /ads (201 Created)
type AdCreateOutput struct {
	Location string `header:"Location" doc:"URL of created advertisement"`
	Body     Advertisement
}

// AdUpdateOutput for PUT /ads/{id}
type AdUpdateOutput struct {
	Body Advertisement
}

// Register registers advertisement endpoints.
func Register(api huma.API, svc adsvc.Service, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-ads",
		Method:      http.MethodGet,
		Path:        "/ads",
		Summary:     "List advertisements",
		Description: "Returns the advertisement inventory, optionally restricted to one display slot.",
		Tags:        []string{"Ads"},
	}, func(ctx context.Context, input *AdsListInput) (*AdsListOutput, error) {
		var (
			list []domain.Advertisement
			err  error
		)
		if input.Position != "" {
			list, err = svc.ForPosition(ctx, domain.AdPosition(input.Position))
		} else {
			list, err = svc.List(ctx)
		}
		if err != nil {
			return nil, mapAdError(err)
		}
		return &AdsListOutput{
			Body: ListData{
				Ads:   toHTTPAds(list),
				Total: len(list),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-ad",
		Method:        http.MethodPost,
		Path:          "/ads",
		Summary:       "Publish an advertisement",
		Tags:          []string{"Ads"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *AdCreateInput) (*AdCreateOutput, error) {
		ad, err := svc.Create(ctx, adsvc.CreateParams{
			Title:          input.Body.Title,
			AdvertiserName: input.Body.AdvertiserName,
			ImageURL:       input.Body.ImageURL,
			LinkURL:        input.Body.LinkURL,
			Position:       domain.AdPosition(input.Body.Position),
		})
		if err != nil {
			return nil, mapAdError(err)
		}
		return &AdCreateOutput{
			Location: prefix + "/ads/" + ad.ID,
			Body:     toHTTPAd(*ad),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-ad",
		Method:      http.MethodPut,
		Path:        "/ads/{id}",
		Summary:     "Update an advertisement",
		Tags:        []string{"Ads"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *AdUpdateInput) (*AdUpdateOutput, error) {
		var position *domain.AdPosition
		if input.Body.Position != nil {
			p := domain.AdPosition(*input.Body.Position)
			position = &p
		}
		ad, err := svc.Update(ctx, input.ID, adsvc.UpdateParams{
			Title:          input.Body.Title,
			AdvertiserName: input.Body.AdvertiserName,
			ImageURL:       input.Body.ImageURL,
			LinkURL:        input.Body.LinkURL,
			Position:       position,
		})
		if err != nil {
			return nil, mapAdError(err)
		}
		return &AdUpdateOutput{Body: toHTTPAd(*ad)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-ad",
		Method:        http.MethodDelete,
		Path:          "/ads/{id}",
		Summary:       "Delete an advertisement",
		Tags:          []string{"Ads"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *AdDeleteInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, mapAdError(err)
		}
		return nil, nil
	})
}

func mapAdError(err error) error {
	switch {
	case errors.Is(err, adsvc.ErrNotFound):
		return huma.Error404NotFound("advertisement not found")
	case errors.Is(err, adsvc.ErrInvalidPosition):
		return huma.Error422UnprocessableEntity("unknown ad position")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
