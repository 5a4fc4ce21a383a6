package model

// EventType is the provider's event tag, e.g. "checkout.session.completed".
type EventType string

const (
	EventCheckoutSessionCompleted             EventType = "checkout.session.completed"
	EventCheckoutSessionExpired               EventType = "checkout.session.expired"
	EventCheckoutSessionAsyncPaymentSucceeded EventType = "checkout.session.async_payment_succeeded"
	EventCheckoutSessionAsyncPaymentFailed    EventType = "checkout.session.async_payment_failed"
	EventPaymentIntentSucceeded               EventType = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed           EventType = "payment_intent.payment_failed"
	EventPaymentIntentCreated                 EventType = "payment_intent.created"
	EventChargeSucceeded                      EventType = "charge.succeeded"
	EventChargeUpdated                        EventType = "charge.updated"
	EventChargeRefunded                       EventType = "charge.refunded"
)

// Address is a structured shipping address. Nil fields were not provided.
type Address struct {
	Line1      *string
	Line2      *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// CheckoutSession is the part of a checkout session relevant to fulfillment.
type CheckoutSession struct {
	ID       string
	Phone    *string
	Address  *Address
	Metadata map[string]string
}

// PaymentEvent is a decoded provider notification. The set of variants is closed:
// CheckoutCompleted, RecognizedEvent and UnrecognizedEvent.
type PaymentEvent interface {
	EventID() string
	Type() EventType
	paymentEvent()
}

// CheckoutCompleted signals a paid checkout session bound to an order.
type CheckoutCompleted struct {
	ID      string
	OrderID string
	Session CheckoutSession
}

func (e CheckoutCompleted) EventID() string { return e.ID }
func (e CheckoutCompleted) Type() EventType { return EventCheckoutSessionCompleted }
func (CheckoutCompleted) paymentEvent()     {}

// RecognizedEvent is a known event type that requires no action.
type RecognizedEvent struct {
	ID        string
	EventType EventType
	Session   *CheckoutSession
}

func (e RecognizedEvent) EventID() string { return e.ID }
func (e RecognizedEvent) Type() EventType { return e.EventType }
func (RecognizedEvent) paymentEvent()     {}

// UnrecognizedEvent is an event type this service does not know yet.
type UnrecognizedEvent struct {
	ID        string
	EventType EventType
}

func (e UnrecognizedEvent) EventID() string { return e.ID }
func (e UnrecognizedEvent) Type() EventType { return e.EventType }
func (UnrecognizedEvent) paymentEvent()     {}

// OutcomeAction describes what reconciliation did with an event.
type OutcomeAction string

const (
	OutcomeFulfilled        OutcomeAction = "fulfilled"
	OutcomeAlreadyFulfilled OutcomeAction = "already_fulfilled"
	OutcomeIgnored          OutcomeAction = "ignored"
)

// Outcome summarizes a processed event for logging.
type Outcome struct {
	EventID   string
	EventType EventType
	Action    OutcomeAction
	OrderID   string
	ItemCount int
}
