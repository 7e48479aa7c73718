package models

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page carries list pagination, bound from the `skip` and `limit` query
// parameters.
type Page struct {
	Skip  int `json:"skip" query:"skip" validate:"min=0"`
	Limit int `json:"limit" query:"limit" validate:"min=1,max=1000"`
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}
