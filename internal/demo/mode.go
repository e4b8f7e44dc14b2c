package demo

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Listener func(enabled bool)

// Mode é o flag de modo demo. Só pode ser ligado quando available for true (desenvolvimento).
type Mode struct {
	mu        sync.Mutex
	available bool
	enabled   bool
	nextID    int
	listeners map[int]Listener
}

func NewMode(available, enabled bool) *Mode {
	return &Mode{
		available: available,
		enabled:   available && enabled,
		listeners: make(map[int]Listener),
	}
}

func (m *Mode) Available() bool {
	return m.available
}

func (m *Mode) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available && m.enabled
}

// Set altera o flag e notifica os listeners. Fora de desenvolvimento o flag fica sempre false.
func (m *Mode) Set(next bool) {
	m.mu.Lock()
	if !m.available {
		m.enabled = false
		m.mu.Unlock()
		return
	}
	if m.enabled == next {
		m.mu.Unlock()
		return
	}
	m.enabled = next
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	for _, l := range listeners {
		notify(l, next)
	}
}

func (m *Mode) Toggle() {
	m.Set(!m.Enabled())
}

// Subscribe registra um listener e retorna a função que o remove.
func (m *Mode) Subscribe(l Listener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.listeners[id] = l

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

func (m *Mode) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(m.listeners))
	for i := 0; i < m.nextID; i++ {
		if l, ok := m.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	return listeners
}

func notify(l Listener, enabled bool) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Warn("demo: listener do modo demo falhou")
		}
	}()
	l(enabled)
}
