package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/pdf"
)

func newOrderUseCase() *OrderUseCase {
	store := newTestStore()
	return NewOrderUseCase(store.Orders, pdf.NewReceiptGenerator("Resto Admin"), newTestGateway())
}

func TestOrder_CrearArrancaEnProcessing(t *testing.T) {
	uc := newOrderUseCase()

	res := uc.Create(context.Background(), "Admin", dto.OrderRequest{
		CustomerName: "Laura Ortiz",
		Date:         "2024-06-10",
		Total:        decimal.NewFromFloat(42.50),
		Items:        3,
	})

	require.True(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "ORD-013", res.Data.ID)
	assert.Equal(t, "processing", res.Data.Status)
}

func TestOrder_TotalNegativoFalla(t *testing.T) {
	uc := newOrderUseCase()

	res := uc.Create(context.Background(), "Admin", dto.OrderRequest{
		CustomerName: "Laura Ortiz",
		Date:         "2024-06-10",
		Total:        decimal.NewFromInt(-1),
	})

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusBadRequest, res.Status)
}

func TestOrder_ReciboDeOrdenSembrada(t *testing.T) {
	uc := newOrderUseCase()

	data, err := uc.Receipt(context.Background(), "ORD-001")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestOrder_ReciboDeOrdenInexistente(t *testing.T) {
	uc := newOrderUseCase()

	_, err := uc.Receipt(context.Background(), "ORD-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrder_BusquedaPorCliente(t *testing.T) {
	uc := newOrderUseCase()

	f := dto.OrderFilterParams{Search: "ord-00"}
	f.Normalize("id")
	res := uc.List(context.Background(), f)

	require.True(t, res.Success)
	// ORD-001..ORD-009 comparten el prefijo; ORD-010 en adelante no.
	assert.Equal(t, 9, res.Data.TotalCount)
}
