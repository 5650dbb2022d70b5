package pagination

// Params is embedded in list-endpoint inputs to pick up the paging query
// parameters.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from previous response"`
	Limit  int    `query:"limit"  doc:"Maximum items per page"                          default:"20" minimum:"1" maximum:"100"`
}

// DefaultLimit returns the requested page size, or 20 when the client sent
// none.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 {
		return 20
	}
	return p.Limit
}
