// Package assist exposes the AI helper endpoints. Both endpoints always
// answer 200: the service degrades to a local heuristic instead of failing.
package assist

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	assistsvc "github.com/prospot/prospot-api/internal/service/assist"
)

// ClassifyInput for POST /assist/classify
type ClassifyInput struct {
	Body struct {
		Query string `json:"query" minLength:"1" maxLength:"500" required:"true" doc:"What the user is looking for" example:"se me rompió el auto"`
	}
}

// Classification is the category suggestion for a query.
type Classification struct {
	TargetCategory      string   `json:"targetCategory"      doc:"Suggested category" example:"Automotriz"`
	Reasoning           string   `json:"reasoning"           doc:"One-sentence justification"`
	RecommendedKeywords []string `json:"recommendedKeywords" doc:"Keywords to refine the search"`
}

// ClassifyOutput for POST /assist/classify
type ClassifyOutput struct {
	Body Classification
}

// DescribeInput for POST /assist/describe
type DescribeInput struct {
	Body struct {
		Name     string `json:"name"     minLength:"1" maxLength:"200" required:"true" doc:"Business name" example:"Taller Norte"`
		Category string `json:"category" minLength:"1" maxLength:"100" required:"true" doc:"Service category" example:"Automotriz"`
		Title    string `json:"title"    minLength:"1" maxLength:"200" required:"true" doc:"Offered service" example:"Mecánica integral"`
	}
}

// Copy is generated marketing text for a listing.
type Copy struct {
	Description string   `json:"description" doc:"Marketing description"`
	Tags        []string `json:"tags"        doc:"Suggested tags"`
}

// DescribeOutput for POST /assist/describe
type DescribeOutput struct {
	Body Copy
}

// Register registers assist endpoints.
func Register(api huma.API, svc assistsvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "assist-classify",
		Method:      http.MethodPost,
		Path:        "/assist/classify",
		Summary:     "Classify a search query",
		Description: "Maps a free-text need onto the category enum and suggests keywords.",
		Tags:        []string{"Assist"},
	}, func(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
		result, err := svc.Classify(ctx, input.Body.Query)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &ClassifyOutput{
			Body: Classification{
				TargetCategory:      string(result.TargetCategory),
				Reasoning:           result.Reasoning,
				RecommendedKeywords: result.RecommendedKeywords,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "assist-describe",
		Method:      http.MethodPost,
		Path:        "/assist/describe",
		Summary:     "Generate listing copy",
		Description: "Writes a Spanish marketing description and tags for a new listing.",
		Tags:        []string{"Assist"},
	}, func(ctx context.Context, input *DescribeInput) (*DescribeOutput, error) {
		result, err := svc.Describe(ctx, input.Body.Name, input.Body.Category, input.Body.Title)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &DescribeOutput{
			Body: Copy{
				Description: result.Description,
				Tags:        result.Tags,
			},
		}, nil
	})
}
