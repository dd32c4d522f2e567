package constant

// Neutral sentinels of the product filter dimensions.
const (
	UnsetPrice = 0
	UnsetTitle = ""
	NoSort     = -1
	SortAsc    = 1
)

type FilterDimension string

const (
	FilterTitle            FilterDimension = "title"
	FilterMinPrice         FilterDimension = "minPrice"
	FilterMaxPrice         FilterDimension = "maxPrice"
	FilterOrderInitialDate FilterDimension = "orderInitialDate"
	FilterOrderCloseDate   FilterDimension = "orderCloseDate"
)

var FilterDimensions = []FilterDimension{
	FilterTitle,
	FilterMinPrice,
	FilterMaxPrice,
	FilterOrderInitialDate,
	FilterOrderCloseDate,
}

const InvertedPriceRangeWarning = "Max price should be greater than min price"
