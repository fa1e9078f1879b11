package domain

import "testing"

func TestCheckRules(t *testing.T) {
	t.Run("returns nil when all rules hold", func(t *testing.T) {
		rule := CheckRules(
			ProductNameRequired{Value: "Paracetamol"},
			ProductPriceMustBePositive{Value: 1050},
		)
		if rule != nil {
			t.Fatalf("expected nil, got %q", rule.Message())
		}
	})

	t.Run("returns the first failing rule", func(t *testing.T) {
		rule := CheckRules(
			ProductNameRequired{Value: "  "},
			ProductPriceMustBePositive{Value: 0},
		)
		if rule == nil {
			t.Fatal("expected a failing rule")
		}
		if rule.Message() != (ProductNameRequired{}).Message() {
			t.Fatalf("expected name rule first, got %q", rule.Message())
		}
	})
}

func TestProductRules(t *testing.T) {
	t.Run("blank name fails", func(t *testing.T) {
		if (ProductNameRequired{Value: " \t "}).IsValid() {
			t.Fatal("expected invalid")
		}
	})

	t.Run("zero price fails", func(t *testing.T) {
		if (ProductPriceMustBePositive{Value: 0}).IsValid() {
			t.Fatal("expected invalid")
		}
	})

	t.Run("negative stock fails", func(t *testing.T) {
		if (ProductStockMustNotBeNegative{Value: -1}).IsValid() {
			t.Fatal("expected invalid")
		}
		if !(ProductStockMustNotBeNegative{Value: 0}).IsValid() {
			t.Fatal("zero stock is valid")
		}
	})

	t.Run("missing type reference fails", func(t *testing.T) {
		if (ProductTypeRequired{Value: ""}).IsValid() {
			t.Fatal("expected invalid")
		}
	})
}

func TestOrderRules(t *testing.T) {
	t.Run("empty order fails", func(t *testing.T) {
		if (OrderMustHaveItems{Items: nil}).IsValid() {
			t.Fatal("expected invalid")
		}
	})

	t.Run("non-positive quantity fails", func(t *testing.T) {
		items := []Item{
			{ProductID: "p1", Quantity: 2, UnitPrice: 100},
			{ProductID: "p2", Quantity: 0, UnitPrice: 100},
		}
		if (ItemQuantityMustBePositive{Items: items}).IsValid() {
			t.Fatal("expected invalid")
		}
	})
}
