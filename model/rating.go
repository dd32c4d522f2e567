package model

type Rating struct {
	Value     float64  `json:"value" validate:"gte=0,lte=5"`
	Product   Ref      `json:"product"`
	Timestamp Time     `json:"timestamp"`
	User      *UserRef `json:"user,omitempty"`
}

type RatingRequest struct {
	Value float64 `json:"value"`
}

// AverageRating returns the plain mean of the rating values, 0 when empty.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r.Value
	}
	return sum / float64(len(ratings))
}

// FindProductRating returns the rating value attached to the product, 0 when absent.
func FindProductRating(ratings []Rating, productID string) float64 {
	for _, r := range ratings {
		if r.Product.ID == productID {
			return r.Value
		}
	}
	return 0
}
