package filter

import (
	"fmt"
	"strconv"

	"github.com/muhammadheryan/el-rastro/constant"
	"github.com/muhammadheryan/el-rastro/model"
	validatorx "github.com/muhammadheryan/el-rastro/utils/validator"
)

// Store holds the draft criteria being edited and the active criteria used for the listing query.
// Editing the draft never changes the active criteria until Apply.
type Store struct {
	Draft  model.FilterCriteria
	Active model.FilterCriteria
}

// NewStore returns a store with every dimension at its neutral sentinel.
func NewStore() Store {
	return Store{Draft: neutral(), Active: neutral()}
}

// FromState restores a persisted store. A nil state yields a neutral store.
func FromState(state *model.FilterState) Store {
	if state == nil {
		return NewStore()
	}
	return Store{Draft: state.Draft, Active: state.Active}
}

func (s Store) State() *model.FilterState {
	return &model.FilterState{Draft: s.Draft, Active: s.Active}
}

func neutral() model.FilterCriteria {
	return model.FilterCriteria{
		Title:            constant.UnsetTitle,
		MinPrice:         constant.UnsetPrice,
		MaxPrice:         constant.UnsetPrice,
		OrderInitialDate: constant.NoSort,
		OrderCloseDate:   constant.NoSort,
	}
}

// SetDraft applies a partial update to the draft. Invalid values leave the draft untouched.
func (s *Store) SetDraft(draft model.FilterDraft) error {
	if err := validatorx.ValidateStruct(&draft); err != nil {
		return err
	}
	if draft.Title != nil {
		s.Draft.Title = *draft.Title
	}
	if draft.MinPrice != nil {
		s.Draft.MinPrice = *draft.MinPrice
	}
	if draft.MaxPrice != nil {
		s.Draft.MaxPrice = *draft.MaxPrice
	}
	if draft.OrderInitialDate != nil {
		s.Draft.OrderInitialDate = *draft.OrderInitialDate
	}
	if draft.OrderCloseDate != nil {
		s.Draft.OrderCloseDate = *draft.OrderCloseDate
	}
	return nil
}

// Apply copies every set draft value into the active criteria and resets the others to their
// sentinel. An inverted price range is applied as is; Warning reports it.
func (s *Store) Apply() {
	d := s.Draft
	a := neutral()
	if d.Title != constant.UnsetTitle {
		a.Title = d.Title
	}
	if d.MinPrice != constant.UnsetPrice {
		a.MinPrice = d.MinPrice
	}
	if d.MaxPrice != constant.UnsetPrice {
		a.MaxPrice = d.MaxPrice
	}
	if d.OrderInitialDate == constant.SortAsc {
		a.OrderInitialDate = d.OrderInitialDate
	}
	if d.OrderCloseDate == constant.SortAsc {
		a.OrderCloseDate = d.OrderCloseDate
	}
	s.Active = a
}

func (s *Store) ClearAll() {
	s.Draft = neutral()
	s.Active = neutral()
}

// ClearOne resets both the draft and the active value of a single dimension.
func (s *Store) ClearOne(dimension constant.FilterDimension) error {
	n := neutral()
	switch dimension {
	case constant.FilterTitle:
		s.Draft.Title, s.Active.Title = n.Title, n.Title
	case constant.FilterMinPrice:
		s.Draft.MinPrice, s.Active.MinPrice = n.MinPrice, n.MinPrice
	case constant.FilterMaxPrice:
		s.Draft.MaxPrice, s.Active.MaxPrice = n.MaxPrice, n.MaxPrice
	case constant.FilterOrderInitialDate:
		s.Draft.OrderInitialDate, s.Active.OrderInitialDate = n.OrderInitialDate, n.OrderInitialDate
	case constant.FilterOrderCloseDate:
		s.Draft.OrderCloseDate, s.Active.OrderCloseDate = n.OrderCloseDate, n.OrderCloseDate
	default:
		return fmt.Errorf("unknown filter dimension %q", dimension)
	}
	return nil
}

// Warning returns the inverted price range warning for the draft, empty when the range is fine.
func (s Store) Warning() string {
	d := s.Draft
	if d.MinPrice != constant.UnsetPrice && d.MaxPrice != constant.UnsetPrice && d.MaxPrice < d.MinPrice {
		return constant.InvertedPriceRangeWarning
	}
	return ""
}

// AppliedPills lists the active filters in display order.
func (s Store) AppliedPills() []model.FilterPill {
	a := s.Active
	pills := make([]model.FilterPill, 0, len(constant.FilterDimensions))
	if a.Title != constant.UnsetTitle {
		pills = append(pills, model.FilterPill{Dimension: string(constant.FilterTitle), Label: "Title: " + a.Title})
	}
	if a.MaxPrice != constant.UnsetPrice {
		pills = append(pills, model.FilterPill{Dimension: string(constant.FilterMaxPrice), Label: "Max price: " + formatPrice(a.MaxPrice)})
	}
	if a.MinPrice != constant.UnsetPrice {
		pills = append(pills, model.FilterPill{Dimension: string(constant.FilterMinPrice), Label: "Min price: " + formatPrice(a.MinPrice)})
	}
	if a.OrderInitialDate == constant.SortAsc {
		pills = append(pills, model.FilterPill{Dimension: string(constant.FilterOrderInitialDate), Label: "Sorted by initial date"})
	}
	if a.OrderCloseDate == constant.SortAsc {
		pills = append(pills, model.FilterPill{Dimension: string(constant.FilterOrderCloseDate), Label: "Sorted by close date"})
	}
	return pills
}

// ToQuery maps the active criteria to a listing query, optionally restricted to one owner.
func (s Store) ToQuery(owner string) *model.ProductQuery {
	return &model.ProductQuery{
		OrderInitialDate: s.Active.OrderInitialDate,
		OrderCloseDate:   s.Active.OrderCloseDate,
		MinPrice:         s.Active.MinPrice,
		MaxPrice:         s.Active.MaxPrice,
		Title:            s.Active.Title,
		Username:         owner,
	}
}

func (s Store) View() *model.FilterStateView {
	return &model.FilterStateView{
		Draft:   s.Draft,
		Active:  s.Active,
		Warning: s.Warning(),
		Pills:   s.AppliedPills(),
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "€"
}
