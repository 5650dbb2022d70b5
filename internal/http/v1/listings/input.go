package listings

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/prospot/prospot-api/internal/geo"
	"github.com/prospot/prospot-api/internal/platform/pagination"
)

// ListingsSearchInput defines query parameters for the ranked search.
type ListingsSearchInput struct {
	pagination.Params
	Category   string  `query:"category"   doc:"Filter by category"   example:"Automotriz" enum:"Todos,Reparaciones del Hogar,Automotriz,Tecnología,Negocios y Tiendas,Salud y Bienestar,Educación,Eventos"`
	Department string  `query:"department" doc:"Filter by department" example:"Godoy Cruz" enum:"Todos,Capital,General Alvear,Godoy Cruz,Guaymallén,Junín,La Paz,Las Heras,Lavalle,Luján de Cuyo,Maipú,Malargüe,Rivadavia,San Carlos,San Martín,San Rafael,Santa Rosa,Tunuyán,Tupungato"`
	Query      string  `query:"q"          doc:"Free-text search over name and tags" example:"plomero"`
	Latitude   float64 `query:"lat"        doc:"Search origin latitude"  minimum:"-90"  maximum:"90"  example:"-32.8908"`
	Longitude  float64 `query:"lon"        doc:"Search origin longitude" minimum:"-180" maximum:"180" example:"-68.8458"`

	hasOrigin bool
}

// Resolve records whether the client supplied both origin coordinates. Zero
// is a valid coordinate, so presence cannot be read off the field values.
func (i *ListingsSearchInput) Resolve(ctx huma.Context) []error {
	i.hasOrigin = ctx.Query("lat") != "" && ctx.Query("lon") != ""
	return nil
}

// Origin returns the search origin, or nil when the request carried no
// complete lat/lon pair.
func (i *ListingsSearchInput) Origin() *geo.Point {
	if !i.hasOrigin {
		return nil
	}
	return &geo.Point{Latitude: i.Latitude, Longitude: i.Longitude}
}

var _ huma.Resolver = (*ListingsSearchInput)(nil)

// ListingGetInput for GET /listings/{id}
type ListingGetInput struct {
	ID string `path:"id" doc:"Listing identifier" example:"cap-1"`
}

// ListingCreateInput for POST /listings
type ListingCreateInput struct {
	Body struct {
		Name         string   `json:"name"     minLength:"1" maxLength:"200" required:"true" doc:"Provider or business name"`
		Title        string   `json:"title"    minLength:"1" maxLength:"200" required:"true" doc:"Offered service"`
		Category     string   `json:"category" required:"true" doc:"Service category" enum:"Reparaciones del Hogar,Automotriz,Tecnología,Negocios y Tiendas,Salud y Bienestar,Educación,Eventos"`
		Location     string   `json:"location,omitempty" maxLength:"200" doc:"Human-readable location"`
		Department   string   `json:"department" required:"true" doc:"Administrative region" enum:"Capital,General Alvear,Godoy Cruz,Guaymallén,Junín,La Paz,Las Heras,Lavalle,Luján de Cuyo,Maipú,Malargüe,Rivadavia,San Carlos,San Martín,San Rafael,Santa Rosa,Tunuyán,Tupungato"`
		Latitude     *float64 `json:"latitude,omitempty"  minimum:"-90"  maximum:"90"  doc:"WGS84 latitude"`
		Longitude    *float64 `json:"longitude,omitempty" minimum:"-180" maximum:"180" doc:"WGS84 longitude"`
		Description  string   `json:"description,omitempty"  maxLength:"2000" doc:"Marketing description"`
		PriceRange   string   `json:"priceRange,omitempty"   doc:"Price band" enum:"$,$$,$$$,$$$$" example:"$$"`
		ImageURL     string   `json:"imageUrl,omitempty"     maxLength:"500" doc:"Cover image URL"`
		Tags         []string `json:"tags,omitempty"         maxItems:"20" doc:"Search tags"`
		Availability string   `json:"availability,omitempty" maxLength:"200" doc:"Availability note"`
		Email        string   `json:"email,omitempty"        format:"email" doc:"Contact email"`
		WhatsApp     string   `json:"whatsapp,omitempty"     maxLength:"30" doc:"Contact WhatsApp number"`
	}
}

// ListingUpdateInput for PUT /listings/{id}
type ListingUpdateInput struct {
	ID   string `path:"id" doc:"Listing identifier" example:"cap-1"`
	Body struct {
		Name         *string  `json:"name,omitempty"        minLength:"1" maxLength:"200" doc:"Provider or business name"`
		Title        *string  `json:"title,omitempty"       minLength:"1" maxLength:"200" doc:"Offered service"`
		Category     *string  `json:"category,omitempty"    doc:"Service category" enum:"Reparaciones del Hogar,Automotriz,Tecnología,Negocios y Tiendas,Salud y Bienestar,Educación,Eventos"`
		Location     *string  `json:"location,omitempty"    maxLength:"200" doc:"Human-readable location"`
		Department   *string  `json:"department,omitempty"  doc:"Administrative region" enum:"Capital,General Alvear,Godoy Cruz,Guaymallén,Junín,La Paz,Las Heras,Lavalle,Luján de Cuyo,Maipú,Malargüe,Rivadavia,San Carlos,San Martín,San Rafael,Santa Rosa,Tunuyán,Tupungato"`
		Latitude     *float64 `json:"latitude,omitempty"    minimum:"-90"  maximum:"90"  doc:"WGS84 latitude"`
		Longitude    *float64 `json:"longitude,omitempty"   minimum:"-180" maximum:"180" doc:"WGS84 longitude"`
		Description  *string  `json:"description,omitempty" maxLength:"2000" doc:"Marketing description"`
		PriceRange   *string  `json:"priceRange,omitempty"  doc:"Price band" enum:"$,$$,$$$,$$$$"`
		ImageURL     *string  `json:"imageUrl,omitempty"    maxLength:"500" doc:"Cover image URL"`
		Tags         []string `json:"tags,omitempty"        maxItems:"20" doc:"Search tags"`
		Availability *string  `json:"availability,omitempty" maxLength:"200" doc:"Availability note"`
		Email        *string  `json:"email,omitempty"       format:"email" doc:"Contact email"`
		WhatsApp     *string  `json:"whatsapp,omitempty"    maxLength:"30" doc:"Contact WhatsApp number"`
		IsVerified   *bool    `json:"isVerified,omitempty"  doc:"Identity verified"`
		IsPromoted   *bool    `json:"isPromoted,omitempty"  doc:"Paid promotion active"`
	}
}

// ListingDeleteInput for DELETE /listings/{id}
type ListingDeleteInput struct {
	ID string `path:"id" doc:"Listing identifier" example:"cap-1"`
}

// ListingReviewsInput for GET /listings/{id}/reviews
type ListingReviewsInput struct {
	ID string `path:"id" doc:"Listing identifier" example:"cap-1"`
}
