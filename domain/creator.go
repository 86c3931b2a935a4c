package domain

// Creator is a content-producing account. Subscriptions and preference
// ratings both point at a creator.
type Creator struct {
	ID       int64
	UserID   int64
	Name     string
	Bio      string
	Price    float64
	Category string
}
