package notify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resto-admin-api/internal/application/notify"
	"github.com/jhoicas/resto-admin-api/pkg/logger"
)

func newHub() *notify.Hub {
	return notify.NewHub(logger.New(logger.Config{Env: "test", Level: "error"}))
}

// Cada suscriptor recibe los avisos publicados después de suscribirse.
func TestHub_SuscriptorRecibeAvisos(t *testing.T) {
	hub := newHub()
	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Success("cliente creado correctamente")

	select {
	case n := <-ch:
		assert.Equal(t, notify.LevelSuccess, n.Level)
		assert.Equal(t, "cliente creado correctamente", n.Message)
		assert.NotEmpty(t, n.ID)
	case <-time.After(time.Second):
		t.Fatal("no llegó el aviso")
	}
}

// Los avisos de error llevan el nivel correspondiente.
func TestHub_NivelError(t *testing.T) {
	hub := newHub()
	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Error("cliente no encontrado")

	n := <-ch
	assert.Equal(t, notify.LevelError, n.Level)
}

// Unsubscribe cierra el canal del suscriptor.
func TestHub_UnsubscribeCierraCanal(t *testing.T) {
	hub := newHub()
	id, ch := hub.Subscribe()

	hub.Unsubscribe(id)

	_, open := <-ch
	require.False(t, open, "el canal debe quedar cerrado")

	// Publicar después no debe entrar en pánico
	hub.Success("sin suscriptores")
}

// Un suscriptor con el buffer lleno no bloquea la publicación.
func TestHub_SuscriptorLentoNoBloquea(t *testing.T) {
	hub := newHub()
	id, _ := hub.Subscribe()
	defer hub.Unsubscribe(id)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Success("aviso")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish bloqueado por un suscriptor lento")
	}
}
