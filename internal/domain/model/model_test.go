package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEventTypeValues(t *testing.T) {
	cases := []struct {
		name  string
		got   EventType
		value string
	}{
		{"completed", EventCheckoutSessionCompleted, "checkout.session.completed"},
		{"expired", EventCheckoutSessionExpired, "checkout.session.expired"},
		{"intent succeeded", EventPaymentIntentSucceeded, "payment_intent.succeeded"},
		{"refunded", EventChargeRefunded, "charge.refunded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestPaymentEventVariants(t *testing.T) {
	events := []PaymentEvent{
		CheckoutCompleted{ID: "evt_1", OrderID: "o1"},
		RecognizedEvent{ID: "evt_2", EventType: EventChargeSucceeded},
		UnrecognizedEvent{ID: "evt_3", EventType: "invoice.created"},
	}
	want := []EventType{EventCheckoutSessionCompleted, EventChargeSucceeded, "invoice.created"}

	for i, ev := range events {
		if ev.Type() != want[i] {
			t.Fatalf("event %d: expected type %s, got %s", i, want[i], ev.Type())
		}
		if ev.EventID() == "" {
			t.Fatalf("event %d: expected id", i)
		}
	}
}

func TestOrderTotalAndProductIDs(t *testing.T) {
	order := Order{Items: []OrderItem{
		{ProductID: "p1", Quantity: 2, UnitPrice: decimal.RequireFromString("10.50")},
		{ProductID: "p2", Quantity: 0, UnitPrice: decimal.RequireFromString("4.00")},
	}}

	if got := order.Total(); !got.Equal(decimal.RequireFromString("25.00")) {
		t.Fatalf("expected total 25.00, got %s", got)
	}

	ids := order.ProductIDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("unexpected product ids %v", ids)
	}

	if got := (Order{}).Total(); !got.IsZero() {
		t.Fatalf("expected zero total for empty order, got %s", got)
	}
}
