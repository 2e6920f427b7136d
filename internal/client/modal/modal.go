// Package modal is the confirmation/notification state machine used by the
// terminal client. It only tracks state; callers run the guarded action
// themselves when Confirm reports Confirmed.
package modal

import (
	"errors"
	"fmt"
)

type State int

const (
	Closed State = iota
	OpenInfo
	OpenConfirm
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenInfo:
		return "open-info"
	case OpenConfirm:
		return "open-confirm"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Kind styles an info message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Outcome int

const (
	None Outcome = iota
	Confirmed
	Cancelled
)

var ErrInvalidTransition = errors.New("invalid modal transition")

// Machine holds the current state and the message being shown.
type Machine struct {
	state   State
	kind    Kind
	title   string
	message string
}

func New() *Machine {
	return &Machine{}
}

func (m *Machine) State() State    { return m.state }
func (m *Machine) Kind() Kind      { return m.kind }
func (m *Machine) Title() string   { return m.title }
func (m *Machine) Message() string { return m.message }

func (m *Machine) invalid(intent string) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, intent, m.state)
}

func (m *Machine) close() {
	m.state = Closed
	m.kind, m.title, m.message = "", "", ""
}

// Inform shows a notification. A newer notification replaces an open one.
func (m *Machine) Inform(kind Kind, title, message string) error {
	if m.state == OpenConfirm {
		return m.invalid("inform")
	}
	m.state = OpenInfo
	m.kind, m.title, m.message = kind, title, message
	return nil
}

// Ask opens a yes/no question.
func (m *Machine) Ask(title, message string) error {
	if m.state != Closed {
		return m.invalid("ask")
	}
	m.state = OpenConfirm
	m.kind, m.title, m.message = "", title, message
	return nil
}

func (m *Machine) Confirm() (Outcome, error) {
	if m.state != OpenConfirm {
		return None, m.invalid("confirm")
	}
	m.close()
	return Confirmed, nil
}

func (m *Machine) Cancel() (Outcome, error) {
	if m.state != OpenConfirm {
		return None, m.invalid("cancel")
	}
	m.close()
	return Cancelled, nil
}

func (m *Machine) Dismiss() error {
	if m.state != OpenInfo {
		return m.invalid("dismiss")
	}
	m.close()
	return nil
}
