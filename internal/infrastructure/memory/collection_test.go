package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/domain/entity"
)

func groupColl(seed ...*entity.CustomerGroup) *Collection[*entity.CustomerGroup] {
	return NewCollection(seed, nil, Latency{})
}

func grp(id, name string) *entity.CustomerGroup {
	return &entity.CustomerGroup{
		Audit:               entity.Audit{ID: id, Active: true},
		CustomerGroupName:   name,
		CustomerGroupStatus: entity.GroupStatusActive,
	}
}

// ─────────────────────────────────────────────
// CRUD básico
// ─────────────────────────────────────────────

func TestCollection_InsertAsignaIDSecuencial(t *testing.T) {
	c := groupColl(grp("1", "VIP"), grp("2", "Corporate"))

	nuevo := grp("", "Mayoristas")
	require.NoError(t, c.Insert(context.Background(), nuevo))

	assert.Equal(t, "3", nuevo.ID)
	assert.Equal(t, 3, c.Len())
}

func TestCollection_IDsNoSeReutilizanTrasBorrar(t *testing.T) {
	c := groupColl(grp("1", "VIP"), grp("2", "Corporate"))

	require.NoError(t, c.Delete(context.Background(), "2"))

	nuevo := grp("", "Mayoristas")
	require.NoError(t, c.Insert(context.Background(), nuevo))

	// El contador es monotónico: nunca vuelve a emitir "2".
	assert.Equal(t, "3", nuevo.ID)
}

func TestCollection_GetByIDInexistenteDevuelveCero(t *testing.T) {
	c := groupColl(grp("1", "VIP"))

	got, err := c.GetByID(context.Background(), "99")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCollection_UpdateInexistenteDevuelveNotFound(t *testing.T) {
	c := groupColl(grp("1", "VIP"))

	err := c.Update(context.Background(), grp("99", "Fantasma"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_DeleteInexistenteDevuelveNotFound(t *testing.T) {
	c := groupColl(grp("1", "VIP"))

	err := c.Delete(context.Background(), "99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, c.Len())
}

// ─────────────────────────────────────────────
// Aislamiento por copia
// ─────────────────────────────────────────────

func TestCollection_LasLecturasDevuelvenCopias(t *testing.T) {
	c := groupColl(grp("1", "VIP"))

	leido, err := c.GetByID(context.Background(), "1")
	require.NoError(t, err)

	leido.CustomerGroupName = "Mutado"

	otra, err := c.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "VIP", otra.CustomerGroupName)
}

func TestCollection_MutarElArgumentoDeInsertNoAfectaAlAlmacen(t *testing.T) {
	c := groupColl()

	nuevo := grp("", "VIP")
	require.NoError(t, c.Insert(context.Background(), nuevo))
	nuevo.CustomerGroupName = "Mutado"

	guardado, err := c.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "VIP", guardado.CustomerGroupName)
}

// ─────────────────────────────────────────────
// Latencia simulada
// ─────────────────────────────────────────────

func TestCollection_ContextoCanceladoInterrumpeLaEspera(t *testing.T) {
	c := NewCollection([]*entity.CustomerGroup{grp("1", "VIP")}, nil, Latency{Read: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetByID(ctx, "1")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatencyFromConfig_DeshabilitadaNoEspera(t *testing.T) {
	lat := Latency{}
	assert.NoError(t, lat.wait(context.Background(), 0))
}

// ─────────────────────────────────────────────
// Datos sembrados
// ─────────────────────────────────────────────

func TestNewStore_ColeccionesSembradas(t *testing.T) {
	s := NewStore(Latency{})

	assert.Equal(t, 2, s.CustomerGroups.Len())
	assert.Equal(t, 5, s.Customers.Len())
	assert.Equal(t, 12, s.Orders.Len())
	assert.Equal(t, 12, s.Reservations.Len())
	assert.Equal(t, 12, s.Inventory.Len())
	assert.Equal(t, 6, s.PurchaseOrders.Len())
	assert.Equal(t, 12, s.Products.Len())
	assert.Equal(t, 4, s.Campaigns.Len())
	assert.Equal(t, 7, s.Staff.Len())
	assert.Equal(t, 6, s.Roles.Len())
}

func TestNewStore_IdsLegiblesContinuanLaSecuencia(t *testing.T) {
	s := NewStore(Latency{})

	nuevo := &entity.Order{CustomerName: "Test", Date: "2025-05-01", Status: entity.OrderStatusProcessing, Items: 1}
	require.NoError(t, s.Orders.Insert(context.Background(), nuevo))

	assert.Equal(t, "ORD-013", nuevo.ID)
}

func TestNewStore_EstadoDeInventarioDerivado(t *testing.T) {
	s := NewStore(Latency{})

	items, err := s.Inventory.List(context.Background())
	require.NoError(t, err)

	for _, it := range items {
		switch {
		case it.Quantity <= 0:
			assert.Equal(t, entity.InventoryStatusOutOfStock, it.Status, it.Name)
		case it.Quantity <= it.ReorderLevel:
			assert.Equal(t, entity.InventoryStatusLowStock, it.Status, it.Name)
		default:
			assert.Equal(t, entity.InventoryStatusInStock, it.Status, it.Name)
		}
	}
}
