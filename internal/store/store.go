// Package store implementa el patrón de almacén reactivo de entidades: cada
// almacén posee su colección en memoria, es su único escritor, difunde un
// snapshot fresco a los suscriptores tras cada mutación y escribe la colección
// al adaptador de persistencia clave→valor.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itael/inventory-products-api/internal/domain"
	"github.com/itael/inventory-products-api/internal/domain/repository"
	"github.com/itael/inventory-products-api/pkg/logger"
)

// Entity restringe el tipo puntero de una entidad gestionable por el store.
type Entity[T any] interface {
	*T
	EntityID() string
	SetEntityID(id string)
	Stamp(now time.Time, created bool)
}

// Options parámetros comunes de construcción de un store.
type Options struct {
	Key     string             // clave de persistencia de la colección
	KV      repository.KVStore // nil = sin almacenamiento durable (solo semillas)
	Latency time.Duration      // latencia simulada en mutaciones (cero en tests)
	Logger  *logger.Logger
}

// Store es el almacén genérico de una colección de entidades. Los lectores
// reciben copias del snapshot actual y deben mutar solo vía los métodos del
// store. Los listeners se invocan de forma síncrona en orden de mutación y no
// deben llamar de vuelta a métodos del store.
type Store[T any, PT Entity[T]] struct {
	mu        sync.Mutex
	items     []T
	listeners map[int]func([]T)
	nextSub   int

	key     string
	kv      repository.KVStore
	latency time.Duration
	log     *logger.Logger
}

// New construye el store y carga la colección: sin adaptador adopta las
// semillas; con adaptador intenta leer la colección persistida y, ante un miss
// de lectura o JSON corrupto, adopta las semillas y las persiste de inmediato
// para que cargas posteriores encuentren datos válidos.
func New[T any, PT Entity[T]](ctx context.Context, opts Options, seed func() []T) *Store[T, PT] {
	s := &Store[T, PT]{
		listeners: make(map[int]func([]T)),
		key:       opts.Key,
		kv:        opts.KV,
		latency:   opts.Latency,
		log:       opts.Logger,
	}
	if s.log == nil {
		s.log = logger.Nop()
	}

	if s.kv == nil {
		s.items = seed()
		return s
	}

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("lectura de colección persistida falló, se adoptan semillas")
		}
		s.adoptSeed(ctx, seed)
		return s
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		// Datos corruptos nunca son fatales: se recuperan las semillas.
		s.log.Warn().Err(err).Str("key", s.key).Msg("colección persistida corrupta, se adoptan semillas")
		s.adoptSeed(ctx, seed)
		return s
	}
	s.items = items
	return s
}

func (s *Store[T, PT]) adoptSeed(ctx context.Context, seed func() []T) {
	s.items = seed()
	if err := s.persist(ctx, s.items); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("persistencia inicial de semillas falló")
	}
}

// Snapshot devuelve una copia de la colección actual.
func (s *Store[T, PT]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Len devuelve el tamaño actual de la colección.
func (s *Store[T, PT]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// GetByID devuelve la entidad con ese id. Una entidad ausente es un resultado
// representable, no un error.
func (s *Store[T, PT]) GetByID(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if PT(&s.items[i]).EntityID() == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Subscribe registra un listener que recibe el snapshot actual de inmediato y
// uno fresco tras cada mutación. Devuelve la función para cancelar la
// suscripción.
func (s *Store[T, PT]) Subscribe(fn func([]T)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	snapshot := append([]T(nil), s.items...)
	fn(snapshot)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Create asigna id (si la entidad no trae uno), estampa los timestamps, añade
// a la colección, notifica y persiste. Devuelve la entidad creada tras la
// latencia simulada.
func (s *Store[T, PT]) Create(ctx context.Context, item T) (T, error) {
	p := PT(&item)
	if p.EntityID() == "" {
		p.SetEntityID(uuid.New().String())
	}
	p.Stamp(time.Now(), true)

	s.mu.Lock()
	s.items = append(s.items, item)
	snapshot := s.notifyLocked()
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return item, err
	}
	s.wait(ctx)
	return item, nil
}

// Update aplica la mutación sobre una copia de la entidad existente, refresca
// el timestamp de actualización, reemplaza, notifica y persiste. Devuelve
// domain.ErrNotFound si el id no existe, sin tocar la colección.
func (s *Store[T, PT]) Update(ctx context.Context, id string, apply func(PT)) (T, error) {
	var zero T

	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if PT(&s.items[i]).EntityID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return zero, domain.ErrNotFound
	}

	updated := s.items[idx]
	p := PT(&updated)
	apply(p)
	p.SetEntityID(id) // el id nunca cambia vía update
	p.Stamp(time.Now(), false)
	s.items[idx] = updated
	snapshot := s.notifyLocked()
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return updated, err
	}
	s.wait(ctx)
	return updated, nil
}

// Delete elimina la entidad por id, notifica y persiste. Devuelve
// domain.ErrNotFound si el id no existe, con la colección intacta.
func (s *Store[T, PT]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.items {
		if PT(&s.items[i]).EntityID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	snapshot := s.notifyLocked()
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return err
	}
	s.wait(ctx)
	return nil
}

// notifyLocked difunde el snapshot a todos los listeners. Requiere s.mu.
func (s *Store[T, PT]) notifyLocked() []T {
	snapshot := append([]T(nil), s.items...)
	for _, fn := range s.listeners {
		fn(snapshot)
	}
	return snapshot
}

// persist serializa la colección al adaptador. Un fallo de escritura se
// propaga al llamador de la mutación; la mutación en memoria ya ocurrió.
func (s *Store[T, PT]) persist(ctx context.Context, items []T) error {
	if s.kv == nil {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}

// wait aplica la latencia simulada respetando la cancelación del contexto.
// La mutación ya se completó: cancelar solo deja de esperar.
func (s *Store[T, PT]) wait(ctx context.Context) {
	if s.latency <= 0 {
		return
	}
	select {
	case <-time.After(s.latency):
	case <-ctx.Done():
	}
}
