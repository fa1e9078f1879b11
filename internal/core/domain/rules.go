package domain

// Rule is a pure business-rule predicate over value objects. Factories run an
// ordered list of rules and fail fast on the first violation.
type Rule interface {
	IsValid() bool
	Message() string
}

// CheckRules evaluates rules in order and returns the first failing one, or
// nil when everything holds.
func CheckRules(rules ...Rule) Rule {
	for _, rule := range rules {
		if !rule.IsValid() {
			return rule
		}
	}
	return nil
}

type ProductNameRequired struct {
	Value Name
}

func (r ProductNameRequired) IsValid() bool {
	return !r.Value.IsBlank()
}

func (r ProductNameRequired) Message() string {
	return "product name must not be blank"
}

type ProductDescriptionRequired struct {
	Value Description
}

func (r ProductDescriptionRequired) IsValid() bool {
	return !r.Value.IsBlank()
}

func (r ProductDescriptionRequired) Message() string {
	return "product description must not be blank"
}

type ProductPriceMustBePositive struct {
	Value Amount
}

func (r ProductPriceMustBePositive) IsValid() bool {
	return r.Value.IsPositive()
}

func (r ProductPriceMustBePositive) Message() string {
	return "product price must be greater than zero"
}

type ProductStockMustNotBeNegative struct {
	Value Stock
}

func (r ProductStockMustNotBeNegative) IsValid() bool {
	return r.Value >= 0
}

func (r ProductStockMustNotBeNegative) Message() string {
	return "product stock must not be negative"
}

// ProductTypeRequired rejects products without an explicit type reference.
// There is no placeholder-type fallback: a missing reference is a hard
// validation failure.
type ProductTypeRequired struct {
	Value ID
}

func (r ProductTypeRequired) IsValid() bool {
	return r.Value != ""
}

func (r ProductTypeRequired) Message() string {
	return "product type reference is required"
}

type ProductTypeNameRequired struct {
	Value Name
}

func (r ProductTypeNameRequired) IsValid() bool {
	return !r.Value.IsBlank()
}

func (r ProductTypeNameRequired) Message() string {
	return "product type name must not be blank"
}

type ProductTypeDescriptionRequired struct {
	Value Description
}

func (r ProductTypeDescriptionRequired) IsValid() bool {
	return !r.Value.IsBlank()
}

func (r ProductTypeDescriptionRequired) Message() string {
	return "product type description must not be blank"
}

type OrderMustHaveItems struct {
	Items []Item
}

func (r OrderMustHaveItems) IsValid() bool {
	return len(r.Items) > 0
}

func (r OrderMustHaveItems) Message() string {
	return "order must contain at least one item"
}

type ItemQuantityMustBePositive struct {
	Items []Item
}

func (r ItemQuantityMustBePositive) IsValid() bool {
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return false
		}
	}
	return true
}

func (r ItemQuantityMustBePositive) Message() string {
	return "order item quantity must be greater than zero"
}
