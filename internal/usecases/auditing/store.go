package auditing

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

// MaxEvents é o limite fixo do log: só os 300 eventos mais recentes ficam.
const MaxEvents = 300

// Listener recebe a lista publicada a cada escrita. Não deve escrever no mesmo log.
type Listener func(events []domain.AuditEvent)

// LogInput são os campos aceitos por Log. Snapshot tem precedência sobre SnapshotID/SnapshotLabel.
type LogInput struct {
	EventType     string
	OccurredAt    *string
	Snapshot      *domain.Snapshot
	SnapshotID    *string
	SnapshotLabel *string
	Note          *string
}

// Store é o log de auditoria em memória de um ator. Trocar o ator zera o log.
type Store struct {
	mu        sync.Mutex
	actor     *string
	events    []domain.AuditEvent
	seq       int
	now       func() time.Time
	nextID    int
	listeners map[int]Listener

	// version cresce a cada publicação; delivered é a última entregue aos listeners
	version   uint64
	deliverMu sync.Mutex
	delivered uint64
}

type Option func(*Store)

// WithListener inscreve l desde a criação do log.
func WithListener(l Listener) Option {
	return func(s *Store) {
		if l != nil {
			s.listeners[s.nextID] = l
			s.nextID++
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		events:    []domain.AuditEvent{},
		now:       time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Actor retorna o ator atual, ou nil quando ninguém está logado.
func (s *Store) Actor() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.actor == nil {
		return nil
	}
	actor := *s.actor
	return &actor
}

// SetActor troca o ator. Mesmo ator é no-op; outro ator limpa os eventos e reinicia a sequência.
func (s *Store) SetActor(next *string) {
	normalized := trimmedOrNil(next)

	s.mu.Lock()
	if sameActor(s.actor, normalized) {
		s.mu.Unlock()
		return
	}
	s.actor = normalized
	s.events = []domain.AuditEvent{}
	s.seq = 0
	s.version++
	version, events, listeners := s.version, s.events, s.snapshotListeners()
	s.mu.Unlock()

	logrus.WithField("actor", actorField(normalized)).Debug("auditing: ator alterado, log reiniciado")
	s.publish(version, listeners, events)
}

// Log registra um evento no topo da lista, mantendo só os MaxEvents mais recentes.
func (s *Store) Log(in LogInput) domain.AuditEvent {
	s.mu.Lock()

	occurredAt := utils.ISOTimestamp(s.now())
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}

	var snapshotID, snapshotLabel *string
	if in.Snapshot != nil {
		id := in.Snapshot.ID
		snapshotID = &id
		label := SnapshotLabel(in.Snapshot)
		snapshotLabel = &label
	} else {
		snapshotID = trimmedOrNil(in.SnapshotID)
		snapshotLabel = trimmedOrNil(in.SnapshotLabel)
	}

	eventType := strings.TrimSpace(in.EventType)
	if eventType == "" {
		eventType = "—"
	}

	ev := domain.AuditEvent{
		ID:            fmt.Sprintf("%s:%d", occurredAt, s.seq),
		EventType:     eventType,
		SnapshotID:    snapshotID,
		SnapshotLabel: snapshotLabel,
		OccurredAt:    occurredAt,
		Note:          trimmedOrNil(in.Note),
	}
	s.seq++

	// lista nova a cada escrita; quem recebeu a anterior continua com ela intacta
	size := len(s.events) + 1
	if size > MaxEvents {
		size = MaxEvents
	}
	events := make([]domain.AuditEvent, 0, size)
	events = append(events, ev)
	events = append(events, s.events[:size-1]...)
	s.events = events
	s.version++

	version, listeners := s.version, s.snapshotListeners()
	s.mu.Unlock()

	s.publish(version, listeners, events)
	return ev
}

// Events retorna a lista atual, na ordem de inserção (mais recente primeiro).
func (s *Store) Events() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events
}

// Subscribe registra um listener e retorna a função que o remove.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SnapshotLabel formata "{month} · {kind}" ou "{month} · {kind} · {projectKey}".
func SnapshotLabel(snapshot *domain.Snapshot) string {
	month := snapshot.SnapshotMonth
	if strings.TrimSpace(month) == "" {
		month = "—"
	}
	kind := string(snapshot.SnapshotKind)
	if strings.TrimSpace(kind) == "" {
		kind = "—"
	}
	if snapshot.ProjectKey != nil && strings.TrimSpace(*snapshot.ProjectKey) != "" {
		return fmt.Sprintf("%s · %s · %s", month, kind, *snapshot.ProjectKey)
	}
	return fmt.Sprintf("%s · %s", month, kind)
}

// SortedByOccurredAt retorna uma cópia ordenada por occurred_at, do mais novo para o mais antigo.
func SortedByOccurredAt(events []domain.AuditEvent) []domain.AuditEvent {
	sorted := make([]domain.AuditEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt > sorted[j].OccurredAt
	})
	return sorted
}

func (s *Store) snapshotListeners() []Listener {
	listeners := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextID; i++ {
		if l, ok := s.listeners[i]; ok {
			listeners = append(listeners, l)
		}
	}
	return listeners
}

// publish entrega as publicações em ordem. Uma lista mais antiga que a última
// entregue é descartada, já que a mais nova contém o estado completo.
func (s *Store) publish(version uint64, listeners []Listener, events []domain.AuditEvent) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	if version <= s.delivered {
		return
	}
	s.delivered = version
	notifyAll(listeners, events)
}

func notifyAll(listeners []Listener, events []domain.AuditEvent) {
	for _, l := range listeners {
		notify(l, events)
	}
}

func notify(l Listener, events []domain.AuditEvent) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Warn("auditing: listener falhou, ignorando")
		}
	}()
	l(events)
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func sameActor(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func actorField(actor *string) string {
	if actor == nil {
		return "signed-out"
	}
	return *actor
}
