package auditing

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/leora-investor/investor-os-api/pkg/log"
)

// Registry mantém um log por ator. Cada investidor só lê e escreve no próprio log.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	opts   []Option
}

// NewRegistry cria o registro; opts valem para cada log criado.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		stores: make(map[string]*Store),
		opts:   opts,
	}
}

// For devolve o log do ator, criando-o na primeira vez. Ator em branco é o log
// de quem está deslogado.
func (r *Registry) For(actor string) *Store {
	key := strings.TrimSpace(actor)

	r.mu.Lock()
	defer r.mu.Unlock()

	if store, ok := r.stores[key]; ok {
		return store
	}

	store := NewStore(r.opts...)
	if key != "" {
		store.SetActor(&key)
	}
	r.stores[key] = store
	return store
}

// FromContext devolve o log do ator da requisição.
func (r *Registry) FromContext(ctx context.Context) *Store {
	return r.For(log.GetActor(ctx))
}

// End encerra a sessão do ator: o log é zerado e descartado. Retorna false se
// o ator não tinha log.
func (r *Registry) End(actor string) bool {
	key := strings.TrimSpace(actor)

	r.mu.Lock()
	store, ok := r.stores[key]
	delete(r.stores, key)
	r.mu.Unlock()

	if !ok {
		return false
	}

	store.SetActor(nil)
	logrus.WithField("actor", actorField(&key)).Debug("auditing: sessão encerrada, log descartado")
	return true
}

// Actors lista os atores com log aberto, em ordem.
func (r *Registry) Actors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors := make([]string, 0, len(r.stores))
	for actor := range r.stores {
		actors = append(actors, actor)
	}
	sort.Strings(actors)
	return actors
}
