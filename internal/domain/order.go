package domain

import (
	"strings"
	"time"
)

// --- Order Entities ---

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is the immutable snapshot taken at checkout.
type Order struct {
	ID        string     `json:"id"`
	Items     []CartLine `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Discount  float64    `json:"discount"`
	Shipping  float64    `json:"shipping"`
	Total     float64    `json:"total"`
	Coupon    *string    `json:"coupon"`
	Customer  Customer   `json:"customer"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PlaceholderOrderID is shown on the confirmation view when no order exists.
const PlaceholderOrderID = "000000"

// CheckoutForm carries the customer, address and card fields of the checkout form.
type CheckoutForm struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CPF        string `json:"cpf"`
	CEP        string `json:"cep"`
	Address    string `json:"address"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
}

// Validate returns a *ValidationError naming every blank required field.
func (f CheckoutForm) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", f.FullName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"cpf", f.CPF},
		{"cep", f.CEP},
		{"address", f.Address},
		{"number", f.Number},
		{"district", f.District},
		{"city", f.City},
		{"state", f.State},
		{"cardName", f.CardName},
		{"cardNumber", f.CardNumber},
		{"cardExpiry", f.CardExpiry},
		{"cardCvv", f.CardCVV},
	}

	var missing []string
	for _, fld := range fields {
		if isBlank(fld.value) {
			missing = append(missing, fld.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
