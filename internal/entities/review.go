package entities

import "time"

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
	MaxCommentLength = 1000
	MaxReviewImages  = 5
)

// Review is permanent once stored. There is exactly one per order.
type Review struct {
	ID               string
	OrderID          string
	UserID           string
	ProductID        string
	VariantName      string
	Rating           int
	Comment          string
	Images           []string
	VerifiedPurchase bool
	CreatedAt        time.Time
}

type ReviewSummary struct {
	AverageRating float64
	TotalCount    int
}

func SummarizeReviews(reviews []Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return ReviewSummary{
		AverageRating: float64(sum) / float64(len(reviews)),
		TotalCount:    len(reviews),
	}
}
