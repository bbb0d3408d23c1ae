package cart

import (
	"encoding/json"
	"time"
)

const (
	EventCartUpdated = "CartUpdated"

	TopicCartUpdated = "cart.updated"
)

// Mutation actions carried in the CartUpdated payload.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionRemove = "remove"
	ActionClear  = "clear"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// CartUpdatedPayload carries the full cart so consumers never need a
// read-back; the event stream is self-contained.
type CartUpdatedPayload struct {
	Action    string `json:"action"`
	ProductID string `json:"product_id,omitempty"`
	Cart      Cart   `json:"cart"`
}

// PartitionKey keys every event of one cart to the same partition so the
// stream stays ordered.
func PartitionKey(cartKey string) []byte { return []byte(cartKey) }
