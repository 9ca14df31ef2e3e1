package cart

type GateState string

const (
	GateIdle       GateState = "idle"
	GateValidating GateState = "validating"
	GateSubmitting GateState = "submitting"
)

func (s GateState) String() string {
	return string(s)
}

func (s GateState) IsValid() bool {
	switch s {
	case GateIdle, GateValidating, GateSubmitting:
		return true
	default:
		return false
	}
}

// PaymentArgs are the opaque payment-gateway redirect fields handed back by
// the booking API after a successful submission. They are stored for the
// payment step and never interpreted here.
type PaymentArgs struct {
	Endpoint           string
	SignatureVersion   string
	MerchantParameters string
	Signature          string
}
