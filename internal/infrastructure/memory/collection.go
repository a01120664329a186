// Package memory implementa los repositorios sobre colecciones en memoria
// sembradas al arranque. Es el almacén por defecto del panel; los puertos son
// los mismos que implementa el adaptador de PostgreSQL, así que el pipeline y
// el gateway no distinguen uno de otro.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/pkg/config"
)

// Record registro almacenable: expone su id y sabe copiarse. Todas las
// entidades del panel lo cumplen vía Audit y Clone.
type Record[T any] interface {
	GetID() string
	SetID(string)
	Clone() T
}

// Latency espera simulada por clase de operación. El valor cero no espera.
type Latency struct {
	Read  time.Duration
	Write time.Duration
	List  time.Duration
}

// LatencyFromConfig traduce la configuración; deshabilitada equivale a cero.
func LatencyFromConfig(cfg config.LatencyConfig) Latency {
	if !cfg.Enabled {
		return Latency{}
	}
	return Latency{Read: cfg.Read, Write: cfg.Write, List: cfg.List}
}

// wait duerme la latencia simulada respetando la cancelación del contexto:
// una consulta abandonada por el cliente no sigue esperando.
func (l Latency) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Collection colección genérica protegida por RWMutex. Los ids son un
// contador monotónico propio de la colección (no el largo del slice), de modo
// que borrar registros nunca produce ids duplicados. Toda lectura devuelve
// copias: el llamador no puede mutar el estado interno.
type Collection[T Record[T]] struct {
	mu       sync.RWMutex
	items    []T
	nextID   int
	formatID func(int) string
	lat      Latency
}

// NewCollection construye la colección con los registros sembrados. El
// contador arranca en len(seed): las semillas usan ids secuenciales.
// formatID nil usa el número decimal simple ("1", "2", ...).
func NewCollection[T Record[T]](seed []T, formatID func(int) string, lat Latency) *Collection[T] {
	if formatID == nil {
		formatID = strconv.Itoa
	}
	return &Collection[T]{
		items:    append([]T(nil), seed...),
		nextID:   len(seed),
		formatID: formatID,
		lat:      lat,
	}
}

// List devuelve una copia de toda la colección.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := c.lat.wait(ctx, c.lat.List); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.Clone())
	}
	return out, nil
}

// GetByID busca linealmente por id. Devuelve (cero, nil) si no existe.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := c.lat.wait(ctx, c.lat.Read); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.GetID() == id {
			return it.Clone(), nil
		}
	}
	return zero, nil
}

// Insert asigna el siguiente id del contador y agrega el registro. El id
// queda asignado también en el argumento del llamador.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	if err := c.lat.wait(ctx, c.lat.Write); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	item.SetID(c.formatID(c.nextID))
	c.items = append(c.items, item.Clone())
	return nil
}

// Update reemplaza el registro con el mismo id.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	if err := c.lat.wait(ctx, c.lat.Write); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.GetID() == item.GetID() {
			c.items[i] = item.Clone()
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el registro (borrado duro, sin soft delete).
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := c.lat.wait(ctx, c.lat.Write); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Len devuelve el tamaño actual de la colección.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
