package payment

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brewpos/terminal/internal/enum"
)

// Errors returned by the payment flow.
var (
	ErrInvalidMethod  = errors.New("invalid payment method")
	ErrAlreadyStarted = errors.New("payment already started")
	ErrFlowClosed     = errors.New("payment flow closed")
	ErrInProgress     = errors.New("payment in progress")
)

// Simulated charge timings.
const (
	DefaultProcessingDelay = 2 * time.Second
	DefaultSettleDelay     = 1500 * time.Millisecond
)

// Flow is the ephemeral per-checkout payment state machine:
// Idle -> Processing(method) -> Success -> closed. Selecting a method starts
// a simulated charge; once processing begins the flow runs to completion,
// there is no mid-payment cancel. On settle the onSuccess callback fires
// exactly once and the flow closes.
type Flow struct {
	mu     sync.Mutex
	state  string
	method string
	closed bool

	processingDelay time.Duration
	settleDelay     time.Duration
	onSuccess       func()
}

// NewFlow creates an idle flow. Zero delays fall back to the defaults;
// tests inject short ones. onSuccess may be nil.
func NewFlow(processingDelay, settleDelay time.Duration, onSuccess func()) *Flow {
	if processingDelay <= 0 {
		processingDelay = DefaultProcessingDelay
	}
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &Flow{
		state:           enum.PaymentStateIdle,
		processingDelay: processingDelay,
		settleDelay:     settleDelay,
		onSuccess:       onSuccess,
	}
}

// Select starts the simulated charge with the given method. Only an idle,
// open flow accepts a selection.
func (f *Flow) Select(method string) error {
	if !enum.IsValidPaymentMethod(method) {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFlowClosed
	}
	if f.state != enum.PaymentStateIdle {
		return ErrAlreadyStarted
	}

	f.state = enum.PaymentStateProcessing
	f.method = method

	time.AfterFunc(f.processingDelay, f.succeed)
	return nil
}

func (f *Flow) succeed() {
	f.mu.Lock()
	f.state = enum.PaymentStateSuccess
	f.mu.Unlock()

	time.AfterFunc(f.settleDelay, f.settle)
}

func (f *Flow) settle() {
	f.mu.Lock()
	f.closed = true
	callback := f.onSuccess
	f.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Cancel closes the flow. Permitted only before a method has been selected;
// a started charge runs to completion.
func (f *Flow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	if f.state != enum.PaymentStateIdle {
		return ErrInProgress
	}
	f.closed = true
	return nil
}

// State returns the current machine state, the selected method (empty while
// idle), and whether the flow has closed.
func (f *Flow) State() (state, method string, closed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.method, f.closed
}
