package visioning

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/leora-investor/investor-os-api/internal/domain"
	"github.com/leora-investor/investor-os-api/pkg/utils"
)

const sessionIDSize = 16

// session é o estado de um drawer aberto: um cache de slot único com os dados do
// snapshot ativo. Trocar de snapshot esvazia o cache. Só o dono (sub do token)
// enxerga a sessão.
type session struct {
	id               string
	owner            string
	activeSnapshotID string
	cached           *domain.SnapshotData
	generation       uint64
	closed           bool
	lastUsed         time.Time
}

type loadFunc func(ctx context.Context, snapshot *domain.Snapshot) domain.SnapshotData

type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	group    singleflight.Group
	now      func() time.Time
}

func newSessionRegistry(now func() time.Time) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
		now:      now,
	}
}

// acquire devolve a sessão do dono pelo id. Id vazio, desconhecido ou de outro dono
// abre uma sessão nova com id gerado aqui; ids escolhidos pelo cliente nunca são registrados.
func (r *sessionRegistry) acquire(owner, id string) *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok && id != "" && s.owner == owner {
		s.lastUsed = r.now()
		return s
	}

	id = utils.GenerateID(sessionIDSize)
	for r.sessions[id] != nil {
		id = utils.GenerateID(sessionIDSize)
	}
	s := &session{id: id, owner: owner, lastUsed: r.now()}
	r.sessions[id] = s
	return s
}

// load devolve os dados do snapshot pela sessão. Um resultado só entra no cache se o
// snapshot ativo continua o mesmo do início da busca e a sessão não foi fechada.
func (r *sessionRegistry) load(ctx context.Context, s *session, snapshot *domain.Snapshot, fetch loadFunc) domain.SnapshotData {
	if snapshot == nil {
		return fetch(ctx, nil)
	}

	r.mu.Lock()
	if s.activeSnapshotID != snapshot.ID {
		s.activeSnapshotID = snapshot.ID
		s.cached = nil
		s.generation++
	}
	if s.cached != nil {
		data := *s.cached
		r.mu.Unlock()
		return data
	}
	generation := s.generation
	r.mu.Unlock()

	v, _, _ := r.group.Do(s.owner+":"+s.id+":"+snapshot.ID, func() (any, error) {
		return fetch(ctx, snapshot), nil
	})
	data := v.(domain.SnapshotData)

	r.mu.Lock()
	if !s.closed && s.activeSnapshotID == snapshot.ID && s.generation == generation {
		s.cached = &data
	}
	r.mu.Unlock()

	return data
}

// close fecha a sessão do dono. A sessão de outro dono conta como inexistente.
func (r *sessionRegistry) close(owner, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok || s.owner != owner {
		return false
	}
	s.closed = true
	s.cached = nil
	delete(r.sessions, id)
	return true
}

// sweep fecha as sessões sem uso há mais de maxIdle e retorna quantas foram fechadas.
func (r *sessionRegistry) sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	closed := 0
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			s.closed = true
			s.cached = nil
			delete(r.sessions, id)
			closed++
		}
	}
	return closed
}

// closeAll descarta todas as sessões, usado quando a fonte dos dados muda.
func (r *sessionRegistry) closeAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	closed := len(r.sessions)
	for id, s := range r.sessions {
		s.closed = true
		s.cached = nil
		delete(r.sessions, id)
	}
	return closed
}

func (r *sessionRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
