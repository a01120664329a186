package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
)

func newInventoryUseCase() *InventoryUseCase {
	store := newTestStore()
	return NewInventoryUseCase(store.Inventory, newTestGateway())
}

// ─────────────────────────────────────────────
// Estado derivado
// ─────────────────────────────────────────────

func TestInventory_CrearConCantidadCeroQuedaAgotado(t *testing.T) {
	uc := newInventoryUseCase()

	res := uc.Create(context.Background(), "Admin", dto.InventoryItemRequest{
		Name:         "Hazelnut Syrup",
		SKU:          "SYP-HAZ-004",
		Category:     "Ingredients",
		Quantity:     0,
		Unit:         "bottles",
		ReorderLevel: 10,
	})

	require.True(t, res.Success)
	assert.Equal(t, "Out of Stock", res.Data.Status)
}

func TestInventory_CantidadEnElNivelDeReordenEsStockBajo(t *testing.T) {
	uc := newInventoryUseCase()

	qty := 10
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateInventoryItemRequest{Quantity: &qty})

	require.True(t, res.Success)
	assert.Equal(t, "Low Stock", res.Data.Status)
}

func TestInventory_ReponerPorEncimaDelNivelVuelveAEnStock(t *testing.T) {
	uc := newInventoryUseCase()

	// "Vanilla Syrup" (id 7) está sembrado en stock bajo: 5 ≤ 10.
	qty := 40
	res := uc.Update(context.Background(), "Admin", "7", dto.UpdateInventoryItemRequest{Quantity: &qty})

	require.True(t, res.Success)
	assert.Equal(t, "In Stock", res.Data.Status)
}

func TestInventory_SubirElNivelDeReordenRederivaElEstado(t *testing.T) {
	uc := newInventoryUseCase()

	// "Coffee Beans (Arabica)" (id 1): 45 en stock, reorden 10.
	nivel := 50
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateInventoryItemRequest{ReorderLevel: &nivel})

	require.True(t, res.Success)
	assert.Equal(t, "Low Stock", res.Data.Status)
}

// ─────────────────────────────────────────────
// Validación y filtros
// ─────────────────────────────────────────────

func TestInventory_CantidadNegativaFalla(t *testing.T) {
	uc := newInventoryUseCase()

	qty := -1
	res := uc.Update(context.Background(), "Admin", "1", dto.UpdateInventoryItemRequest{Quantity: &qty})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestInventory_FiltroPorEstadoDerivado(t *testing.T) {
	uc := newInventoryUseCase()

	f := dto.InventoryFilterParams{Status: "Low Stock"}
	f.Normalize("name")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	for _, i := range res.Data.Items {
		assert.Equal(t, "Low Stock", i.Status, i.Name)
	}
	// Sembrados en stock bajo: Milk (18≤20), Chocolate Syrup (8≤10),
	// Vanilla Syrup (5≤10), Paper Cups 16oz (148≤200).
	assert.Equal(t, 4, res.Data.TotalCount)
}

func TestInventory_BusquedaPorSKU(t *testing.T) {
	uc := newInventoryUseCase()

	f := dto.InventoryFilterParams{Search: "cb-ara"}
	f.Normalize("name")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	assert.Equal(t, "Coffee Beans (Arabica)", res.Data.Items[0].Name)
}
