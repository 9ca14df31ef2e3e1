package cart

import "errors"

var ErrSubmissionInProgress = errors.New("submission already in progress")

// Session is the single state container owning one cart and one discount
// ledger. Components read through it and write through its operations; no
// competing copy of the state exists anywhere else.
type Session struct {
	cart    *Cart
	ledger  *Ledger
	gate    GateState
	payment *PaymentArgs
}

func NewSession() *Session {
	return &Session{
		cart:   NewCart(),
		ledger: NewLedger(),
		gate:   GateIdle,
	}
}

// ReconstructSession rebuilds a session from persisted slices. The gate is
// never persisted; a reloaded session always starts Idle.
func ReconstructSession(items []*LineItem, active *Discount, payment *PaymentArgs) *Session {
	s := NewSession()
	s.cart.ReplaceAll(items)
	if active != nil {
		d := *active
		s.ledger.active = &d
	}
	if payment != nil {
		p := *payment
		s.payment = &p
	}
	return s
}

func (s *Session) Cart() *Cart     { return s.cart }
func (s *Session) Ledger() *Ledger { return s.ledger }
func (s *Session) Gate() GateState { return s.gate }

// BeginSubmission moves the gate out of Idle. A submit action while a
// previous one is validating or submitting is rejected; the gate state
// itself is the guard, there is no separate lock.
func (s *Session) BeginSubmission() error {
	if s.gate != GateIdle {
		return ErrSubmissionInProgress
	}
	s.gate = GateValidating
	return nil
}

// MarkSubmitting records that validation passed and the upstream call is
// about to be made.
func (s *Session) MarkSubmitting() {
	s.gate = GateSubmitting
}

// FinishSubmission returns the gate to Idle. Every terminal outcome ends
// here: success, validation failure, soft failure and hard failure all
// leave the cart editable again.
func (s *Session) FinishSubmission() {
	s.gate = GateIdle
}

func (s *Session) SetPaymentArgs(p PaymentArgs) {
	s.payment = &p
}

func (s *Session) PaymentArgs() *PaymentArgs {
	if s.payment == nil {
		return nil
	}
	cp := *s.payment
	return &cp
}

// Clear wipes cart, ledger, stored payment args and gate state. Called on
// logout, on detected token loss and after a confirmed payment return.
func (s *Session) Clear() {
	s.cart.Clear()
	s.ledger.Clear()
	s.payment = nil
	s.gate = GateIdle
}
