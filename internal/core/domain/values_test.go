package domain

import "testing"

func TestAmount(t *testing.T) {
	t.Run("from decimal value", func(t *testing.T) {
		if NewAmountFromValue(10.50) != 1050 {
			t.Fatalf("expected 1050, got %d", NewAmountFromValue(10.50))
		}
		// rounding, not truncation
		if NewAmountFromValue(0.1+0.2) != 30 {
			t.Fatalf("expected 30, got %d", NewAmountFromValue(0.1+0.2))
		}
	})

	t.Run("back to decimal", func(t *testing.T) {
		if Amount(1050).ToValue() != 10.50 {
			t.Fatalf("expected 10.50, got %f", Amount(1050).ToValue())
		}
	})

	t.Run("arithmetic", func(t *testing.T) {
		if Amount(100).Add(250) != 350 {
			t.Fatal("add broken")
		}
		if Amount(199).Multiply(3) != 597 {
			t.Fatal("multiply broken")
		}
	})
}

func TestStock(t *testing.T) {
	if !Stock(5).CanDeduct(5) {
		t.Fatal("exact stock should be deductible")
	}
	if Stock(5).CanDeduct(6) {
		t.Fatal("over-deduction should be refused")
	}
	if Stock(5).Deduct(3) != 2 {
		t.Fatal("deduct broken")
	}
}
