package service

// PolicyholderInput is the data collected when registering a policyholder.
// A blank ID is replaced by a generated one.
type PolicyholderInput struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// PolicyholderUpdate carries the fields to overwrite; nil fields are left alone.
type PolicyholderUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// ProductInput is the data collected when creating a product.
type ProductInput struct {
	ID    string
	Name  string
	Price float64
}

// ProductUpdate carries the fields to overwrite; nil fields are left alone.
type ProductUpdate struct {
	Name  *string
	Price *float64
}

// PaymentInput is the data collected when creating a payment.
type PaymentInput struct {
	ID             string
	PolicyholderID string
	ProductID      string
	Amount         float64
	DueDate        string
}
