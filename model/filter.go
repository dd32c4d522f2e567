package model

// FilterCriteria is one full set of product filter values. Neutral values mean "unset".
type FilterCriteria struct {
	Title            string  `json:"title"`
	MinPrice         float64 `json:"minPrice"`
	MaxPrice         float64 `json:"maxPrice"`
	OrderInitialDate int     `json:"orderInitialDate"`
	OrderCloseDate   int     `json:"orderCloseDate"`
}

// FilterDraft is a partial update of the draft criteria; nil fields are left untouched.
type FilterDraft struct {
	Title            *string  `json:"title,omitempty" validate:"omitempty,max=120"`
	MinPrice         *float64 `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice         *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	OrderInitialDate *int     `json:"orderInitialDate,omitempty" validate:"omitempty,oneof=-1 1"`
	OrderCloseDate   *int     `json:"orderCloseDate,omitempty" validate:"omitempty,oneof=-1 1"`
}

type FilterPill struct {
	Dimension string `json:"dimension"`
	Label     string `json:"label"`
}

type FilterStateView struct {
	Draft   FilterCriteria `json:"draft"`
	Active  FilterCriteria `json:"active"`
	Warning string         `json:"warning,omitempty"`
	Pills   []FilterPill   `json:"pills"`
}

// FilterState is the persisted draft/active pair of one client.
type FilterState struct {
	Draft  FilterCriteria `json:"draft"`
	Active FilterCriteria `json:"active"`
}
