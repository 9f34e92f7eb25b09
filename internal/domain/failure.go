package domain

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	// KindTransport covers failures to reach the server at all.
	KindTransport FailureKind = "transport"
	// KindServer covers non-2xx responses from a reachable server.
	KindServer FailureKind = "server"
	// KindProtocol covers response bodies that do not match the wire shape.
	KindProtocol FailureKind = "protocol"
	// KindInvalidState covers actions rejected by the client-side guards
	// before any network call.
	KindInvalidState FailureKind = "invalid_state"
	// KindBusy covers actions attempted while another request is in flight.
	KindBusy FailureKind = "busy"
)

type InvalidReason string

const (
	ReasonNoActiveSession   InvalidReason = "no active session"
	ReasonGameEnded         InvalidReason = "game has ended"
	ReasonAlreadyExcluded   InvalidReason = "candidate already excluded"
	ReasonUnknownCandidate  InvalidReason = "candidate not in roster"
	ReasonSessionSuperseded InvalidReason = "session superseded"
)

// Failure is the single error type crossing the controller boundary. Kind is
// always set; Status only for KindServer, Reason only for KindInvalidState.
type Failure struct {
	Kind   FailureKind
	Status int
	Reason InvalidReason
	Err    error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindTransport:
		return fmt.Sprintf("server unreachable: %v", f.Err)
	case KindServer:
		return fmt.Sprintf("server rejected request: status %d", f.Status)
	case KindProtocol:
		return fmt.Sprintf("unexpected server response: %v", f.Err)
	case KindInvalidState:
		return string(f.Reason)
	case KindBusy:
		return "another request is in flight"
	default:
		return fmt.Sprintf("failure: %v", f.Err)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func TransportFailure(err error) *Failure {
	return &Failure{Kind: KindTransport, Err: err}
}

func ServerFailure(status int) *Failure {
	return &Failure{Kind: KindServer, Status: status}
}

func ProtocolFailure(err error) *Failure {
	return &Failure{Kind: KindProtocol, Err: err}
}

func InvalidStateFailure(reason InvalidReason) *Failure {
	return &Failure{Kind: KindInvalidState, Reason: reason}
}

func BusyFailure() *Failure {
	return &Failure{Kind: KindBusy}
}

// FailureKindOf reports the kind of err when it is, or wraps, a *Failure.
func FailureKindOf(err error) (FailureKind, bool) {
	var failure *Failure
	if !errors.As(err, &failure) {
		return "", false
	}
	return failure.Kind, true
}

func IsBusy(err error) bool {
	kind, ok := FailureKindOf(err)
	return ok && kind == KindBusy
}

func IsInvalidState(err error, reason InvalidReason) bool {
	var failure *Failure
	return errors.As(err, &failure) && failure.Kind == KindInvalidState && failure.Reason == reason
}
