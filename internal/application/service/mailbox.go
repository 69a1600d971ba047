package service

import "sync/atomic"

// Mailbox is a single-slot hand-off between the capture goroutine and the
// control loop. A newer Publish overwrites an utterance nobody took yet.
type Mailbox struct {
	slot atomic.Pointer[string]
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

func (m *Mailbox) Publish(utterance string) {
	m.slot.Store(&utterance)
}

// Take returns the pending utterance and empties the slot.
func (m *Mailbox) Take() (string, bool) {
	p := m.slot.Swap(nil)
	if p == nil {
		return "", false
	}
	return *p, true
}
