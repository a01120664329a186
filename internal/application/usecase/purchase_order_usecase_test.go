package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func newPurchaseOrderUseCase() *PurchaseOrderUseCase {
	store := newTestStore()
	return NewPurchaseOrderUseCase(store.PurchaseOrders, newTestGateway())
}

// ─────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────

func TestPurchaseOrder_CrearCalculaElTotalYArrancaPendiente(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	res := uc.Create(context.Background(), "Admin", dto.PurchaseOrderRequest{
		Supplier: "Bean Masters Co.",
		Date:     "2024-05-01",
		Items: []dto.PurchaseOrderItemDTO{
			{Name: "Coffee Beans (Arabica)", Quantity: 10, Unit: "kg", UnitPrice: decimal.NewFromFloat(28.50)},
			{Name: "Milk", Quantity: 4, Unit: "L", UnitPrice: decimal.NewFromFloat(3.75)},
		},
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "PO-2024-007", res.Data.ID)
	assert.Equal(t, "Pending", res.Data.Status)
	// 10×28.50 + 4×3.75 = 300.00
	assert.True(t, decimal.NewFromInt(300).Equal(res.Data.Total))
}

func TestPurchaseOrder_CrearSinLineasFalla(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	res := uc.Create(context.Background(), "Admin", dto.PurchaseOrderRequest{
		Supplier: "Bean Masters Co.",
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

// ─────────────────────────────────────────────
// Transiciones de estado
// ─────────────────────────────────────────────

func TestPurchaseOrder_CicloCompletoDeAprobacion(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	// PO-2024-001 está sembrada en Pending.
	res := uc.Transition(context.Background(), "Admin", "PO-2024-001", dto.PurchaseOrderTransitionRequest{Status: "Approved"})
	require.True(t, res.Success)
	assert.Equal(t, "Approved", res.Data.Status)

	res = uc.Transition(context.Background(), "Admin", "PO-2024-001", dto.PurchaseOrderTransitionRequest{Status: "Received"})
	require.True(t, res.Success)
	assert.Equal(t, "Received", res.Data.Status)
}

func TestPurchaseOrder_NoSePuedeRecibirSinAprobar(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	res := uc.Transition(context.Background(), "Admin", "PO-2024-001", dto.PurchaseOrderTransitionRequest{Status: "Received"})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	// El estado no cambió.
	got := uc.GetByID(context.Background(), "PO-2024-001")
	assert.Equal(t, "Pending", got.Data.Status)
}

func TestPurchaseOrder_CancelarDesdeRecibidaFalla(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	// PO-2024-002 está sembrada en Received.
	res := uc.Transition(context.Background(), "Admin", "PO-2024-002", dto.PurchaseOrderTransitionRequest{Status: "Cancelled"})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestPurchaseOrder_CancelarDesdeAprobada(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	// PO-2024-004 está sembrada en Approved.
	res := uc.Transition(context.Background(), "Admin", "PO-2024-004", dto.PurchaseOrderTransitionRequest{Status: "Cancelled"})

	require.True(t, res.Success)
	assert.Equal(t, "Cancelled", res.Data.Status)
}

func TestPurchaseOrder_TransicionSobreInexistenteDevuelve404(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	res := uc.Transition(context.Background(), "Admin", "PO-2024-099", dto.PurchaseOrderTransitionRequest{Status: "Approved"})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

// ─────────────────────────────────────────────
// Actualizar líneas
// ─────────────────────────────────────────────

func TestPurchaseOrder_NuevasLineasRecalculanElTotal(t *testing.T) {
	uc := newPurchaseOrderUseCase()

	res := uc.Update(context.Background(), "Admin", "PO-2024-001", dto.UpdatePurchaseOrderRequest{
		Items: []dto.PurchaseOrderItemDTO{
			{Name: "Sugar", Quantity: 2, Unit: "kg", UnitPrice: decimal.NewFromInt(12)},
		},
	})

	require.True(t, res.Success)
	assert.True(t, decimal.NewFromInt(24).Equal(res.Data.Total))
	require.Len(t, res.Data.Items, 1)
}
