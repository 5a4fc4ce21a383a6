package stripe

import (
	"encoding/json"
	"strings"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// OrderIDMetadataKey is the checkout session metadata entry set at checkout.
const OrderIDMetadataKey = "orderId"

var recognizedTypes = map[model.EventType]struct{}{
	model.EventCheckoutSessionExpired:               {},
	model.EventCheckoutSessionAsyncPaymentSucceeded: {},
	model.EventCheckoutSessionAsyncPaymentFailed:    {},
	model.EventPaymentIntentSucceeded:               {},
	model.EventPaymentIntentPaymentFailed:           {},
	model.EventPaymentIntentCreated:                 {},
	model.EventChargeSucceeded:                      {},
	model.EventChargeUpdated:                        {},
	model.EventChargeRefunded:                       {},
}

// envelope mirrors the event JSON payload.
type envelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data *struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type sessionPayload struct {
	ID              string `json:"id"`
	CustomerDetails *struct {
		Phone   *string         `json:"phone"`
		Address *addressPayload `json:"address"`
	} `json:"customer_details"`
	Metadata map[string]string `json:"metadata"`
}

type addressPayload struct {
	Line1      *string `json:"line1"`
	Line2      *string `json:"line2"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// Decoder turns verified webhook payloads into typed payment events.
type Decoder struct{}

// NewDecoder constructs Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses payload. It must only be called after signature verification.
func (d *Decoder) Decode(payload []byte) (model.PaymentEvent, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, &domainErrors.DecodeError{Reason: domainErrors.ReasonInvalidJSON, Err: err}
	}
	if env.Type == "" {
		return nil, missingField("type")
	}

	eventType := model.EventType(env.Type)
	object := rawObject(env)

	if eventType == model.EventCheckoutSessionCompleted {
		if object == nil {
			return nil, missingField("data.object")
		}
		session, err := decodeSession(object)
		if err != nil {
			return nil, err
		}
		orderID := session.Metadata[OrderIDMetadataKey]
		if orderID == "" {
			return nil, missingField("data.object.metadata." + OrderIDMetadataKey)
		}
		return model.CheckoutCompleted{ID: env.ID, OrderID: orderID, Session: *session}, nil
	}

	if _, ok := recognizedTypes[eventType]; ok {
		event := model.RecognizedEvent{ID: env.ID, EventType: eventType}
		if object != nil && strings.HasPrefix(env.Type, "checkout.session.") {
			// No action depends on the session, so an unreadable one is dropped.
			if session, err := decodeSession(object); err == nil {
				event.Session = session
			}
		}
		return event, nil
	}

	return model.UnrecognizedEvent{ID: env.ID, EventType: eventType}, nil
}

func rawObject(env envelope) json.RawMessage {
	if env.Data == nil || len(env.Data.Object) == 0 || string(env.Data.Object) == "null" {
		return nil
	}
	return env.Data.Object
}

func decodeSession(raw json.RawMessage) (*model.CheckoutSession, error) {
	var data sessionPayload
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &domainErrors.DecodeError{Reason: domainErrors.ReasonInvalidJSON, Err: err}
	}

	session := &model.CheckoutSession{ID: data.ID, Metadata: data.Metadata}
	if data.CustomerDetails != nil {
		session.Phone = data.CustomerDetails.Phone
		if a := data.CustomerDetails.Address; a != nil {
			session.Address = &model.Address{
				Line1:      a.Line1,
				Line2:      a.Line2,
				City:       a.City,
				State:      a.State,
				PostalCode: a.PostalCode,
				Country:    a.Country,
			}
		}
	}
	return session, nil
}

func missingField(field string) error {
	return &domainErrors.DecodeError{Reason: domainErrors.ReasonMissingRequiredField, Field: field}
}
