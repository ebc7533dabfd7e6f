package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestQuote_UpdateItemQuantity(t *testing.T) {
	q := Quote{}
	q.AppendItem(LineItem{
		ID:        "li-1",
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: dec("37.50"),
		LineTotal: dec("37.50"),
	})

	t.Run("rescales from frozen unit price", func(t *testing.T) {
		if !q.UpdateItemQuantity("li-1", dec("4")) {
			t.Fatalf("expected update to hit")
		}
		if !q.Items[0].LineTotal.Equal(dec("150.00")) {
			t.Fatalf("expected 150.00, got %s", q.Items[0].LineTotal)
		}
	})

	t.Run("fractional quantity", func(t *testing.T) {
		if !q.UpdateItemQuantity("li-1", dec("2.5")) {
			t.Fatalf("expected update to hit")
		}
		if !q.Items[0].LineTotal.Equal(dec("93.75")) {
			t.Fatalf("expected 93.75, got %s", q.Items[0].LineTotal)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if q.UpdateItemQuantity("li-missing", dec("1")) {
			t.Fatalf("expected miss")
		}
	})
}

func TestQuote_RemoveItem(t *testing.T) {
	build := func() Quote {
		q := Quote{}
		for _, id := range []string{"li-1", "li-2", "li-3"} {
			q.AppendItem(LineItem{ID: id, Quantity: decimal.NewFromInt(1)})
		}
		return q
	}

	t.Run("preserves order of the rest", func(t *testing.T) {
		q := build()
		q.RemoveItem("li-2")
		if len(q.Items) != 2 || q.Items[0].ID != "li-1" || q.Items[1].ID != "li-3" {
			t.Fatalf("unexpected items: %+v", q.Items)
		}
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		q := build()
		q.RemoveItem("li-404")
		if len(q.Items) != 3 {
			t.Fatalf("expected three items, got %d", len(q.Items))
		}
	})

	t.Run("removal order does not matter", func(t *testing.T) {
		a := build()
		a.RemoveItem("li-1")
		a.RemoveItem("li-3")

		b := build()
		b.RemoveItem("li-3")
		b.RemoveItem("li-1")

		if len(a.Items) != len(b.Items) {
			t.Fatalf("expected equal lengths, got %d and %d", len(a.Items), len(b.Items))
		}
		for i := range a.Items {
			if a.Items[i].ID != b.Items[i].ID {
				t.Fatalf("item %d differs: %s vs %s", i, a.Items[i].ID, b.Items[i].ID)
			}
		}
	})
}

func TestQuote_EffectiveLaborHours(t *testing.T) {
	q := Quote{
		Items: []LineItem{
			{ID: "li-1", Quantity: dec("2"), RefLaborHours: dec("1.5")},
			{ID: "li-2", Quantity: dec("10"), RefLaborHours: dec("0.25")},
		},
		LaborHours: dec("40"),
	}

	t.Run("manual mode uses entered hours", func(t *testing.T) {
		q.LaborMode = LaborModeManual
		if !q.EffectiveLaborHours().Equal(dec("40")) {
			t.Fatalf("got %s", q.EffectiveLaborHours())
		}
	})

	t.Run("auto_sum derives from reference hours", func(t *testing.T) {
		q.LaborMode = LaborModeAutoSum
		if !q.EffectiveLaborHours().Equal(dec("5.5")) {
			t.Fatalf("got %s", q.EffectiveLaborHours())
		}
	})
}

func TestQuoteSnapshot_ChargeAmount(t *testing.T) {
	s := QuoteSnapshot{Total: dec("2173.50")}

	t.Run("defaults to total", func(t *testing.T) {
		if !s.ChargeAmount().Equal(dec("2173.50")) {
			t.Fatalf("got %s", s.ChargeAmount())
		}
	})

	t.Run("deposit wins when set", func(t *testing.T) {
		deposit := dec("500")
		s.DepositAmount = &deposit
		if !s.ChargeAmount().Equal(dec("500")) {
			t.Fatalf("got %s", s.ChargeAmount())
		}
	})
}
