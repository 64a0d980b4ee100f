package domain

// Field names a LinkedRecord column. Product fields carry a product_ prefix and
// the entity statuses are renamed so that no two columns collide.
type Field string

const (
	FieldPolicyholderID     Field = "policyholder_id"
	FieldName               Field = "name"
	FieldEmail              Field = "email"
	FieldPhone              Field = "phone"
	FieldPolicyholderStatus Field = "policyholder_status"
	FieldProductID          Field = "product_id"
	FieldProductName        Field = "product_name"
	FieldProductPrice       Field = "product_price"
	FieldProductStatus      Field = "product_status"
	FieldPaymentID          Field = "payment_id"
	FieldAmount             Field = "amount"
	FieldDueDate            Field = "due_date"
	FieldPaymentStatus      Field = "payment_status"
)

// LinkedFields lists every LinkedRecord column in display order.
var LinkedFields = []Field{
	FieldPolicyholderID, FieldName, FieldEmail, FieldPhone, FieldPolicyholderStatus,
	FieldProductID, FieldProductName, FieldProductPrice, FieldProductStatus,
	FieldPaymentID, FieldAmount, FieldDueDate, FieldPaymentStatus,
}

// LinkedRecord is one payment joined with its policyholder and product.
// It only exists while a report is being produced.
type LinkedRecord struct {
	PolicyholderID     string  `json:"policyholder_id" yaml:"policyholder_id"`
	Name               string  `json:"name" yaml:"name"`
	Email              string  `json:"email" yaml:"email"`
	Phone              string  `json:"phone" yaml:"phone"`
	PolicyholderStatus Status  `json:"policyholder_status" yaml:"policyholder_status"`
	ProductID          string  `json:"product_id" yaml:"product_id"`
	ProductName        string  `json:"product_name" yaml:"product_name"`
	ProductPrice       float64 `json:"product_price" yaml:"product_price"`
	ProductStatus      Status  `json:"product_status" yaml:"product_status"`
	PaymentID          string  `json:"payment_id" yaml:"payment_id"`
	Amount             float64 `json:"amount" yaml:"amount"`
	DueDate            string  `json:"due_date" yaml:"due_date"`
	PaymentStatus      Status  `json:"payment_status" yaml:"payment_status"`
}

// Link flattens a payment with the policyholder and product it references.
func Link(holder Policyholder, product Product, payment Payment) LinkedRecord {
	return LinkedRecord{
		PolicyholderID:     holder.ID,
		Name:               holder.Name,
		Email:              holder.Email,
		Phone:              holder.Phone,
		PolicyholderStatus: holder.Status,
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductPrice:       product.Price,
		ProductStatus:      product.Status,
		PaymentID:          payment.ID,
		Amount:             payment.Amount,
		DueDate:            payment.DueDate,
		PaymentStatus:      payment.Status,
	}
}

// Value returns the textual value of field. Numbers use their shortest exact
// form, so an amount of 120 compares equal to "120" but not to "120.00".
func (r LinkedRecord) Value(field Field) (string, bool) {
	switch field {
	case FieldPolicyholderID:
		return r.PolicyholderID, true
	case FieldName:
		return r.Name, true
	case FieldEmail:
		return r.Email, true
	case FieldPhone:
		return r.Phone, true
	case FieldPolicyholderStatus:
		return string(r.PolicyholderStatus), true
	case FieldProductID:
		return r.ProductID, true
	case FieldProductName:
		return r.ProductName, true
	case FieldProductPrice:
		return formatNumber(r.ProductPrice), true
	case FieldProductStatus:
		return string(r.ProductStatus), true
	case FieldPaymentID:
		return r.PaymentID, true
	case FieldAmount:
		return formatNumber(r.Amount), true
	case FieldDueDate:
		return r.DueDate, true
	case FieldPaymentStatus:
		return string(r.PaymentStatus), true
	default:
		return "", false
	}
}

// Values returns every column in LinkedFields order.
func (r LinkedRecord) Values() []string {
	out := make([]string, len(LinkedFields))
	for i, f := range LinkedFields {
		out[i], _ = r.Value(f)
	}
	return out
}
