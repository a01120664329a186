package usecase

import (
	"github.com/jhoicas/resto-admin-api/internal/application/notify"
	"github.com/jhoicas/resto-admin-api/internal/infrastructure/memory"
	"github.com/jhoicas/resto-admin-api/pkg/logger"
)

// Fixtures compartidos: almacén sembrado sin latencia y gateway silencioso.

func newTestGateway() *Gateway {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return NewGateway(log, notify.NewHub(log))
}

func newTestStore() *memory.Store {
	return memory.NewStore(memory.Latency{})
}
