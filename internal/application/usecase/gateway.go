// Package usecase implementa las operaciones del panel. Toda operación
// devuelve el sobre uniforme dto.ResponseModel: las fallas viajan dentro del
// sobre con su código de estado, nunca como error de Go.
//
// Las mutaciones pasan por el gateway: validación, verificación referencial,
// sellado de auditoría, métricas y aviso al hub de notificaciones.
package usecase

import (
	"errors"
	"net/http"
	"time"

	"github.com/jhoicas/resto-admin-api/internal/application/dto"
	"github.com/jhoicas/resto-admin-api/internal/application/notify"
	"github.com/jhoicas/resto-admin-api/internal/domain"
	"github.com/jhoicas/resto-admin-api/pkg/logger"
	"github.com/jhoicas/resto-admin-api/pkg/metrics"
)

// Gateway dependencias compartidas de todas las mutaciones: log, avisos y
// reloj (inyectable en tests).
type Gateway struct {
	Log      *logger.Logger
	Notifier notify.Notifier
	Now      func() time.Time
}

// NewGateway construye el gateway con el reloj real.
func NewGateway(log *logger.Logger, notifier notify.Notifier) *Gateway {
	return &Gateway{
		Log:      log.Component("gateway"),
		Notifier: notifier,
		Now:      time.Now,
	}
}

func (g *Gateway) now() time.Time { return g.Now() }

// mutation registra el resultado de una mutación: contador Prometheus y aviso
// al hub. successMsg solo se publica cuando err es nil.
func (g *Gateway) mutation(entityName, op string, err error, successMsg string) {
	metrics.RecordOp(entityName, op, err == nil)
	if err == nil {
		g.Notifier.Success(successMsg)
		return
	}
	g.Notifier.Error(err.Error())
}

// statusOf traduce la taxonomía de errores de dominio a códigos HTTP.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrTransition):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// failure construye el sobre de falla con el estado según la taxonomía.
func failure[T any](err error) *dto.ResponseModel[T] {
	return dto.Fail[T](err.Error(), statusOf(err))
}

// observeList registra la duración del pipeline de listados.
func observeList(entityName string, start time.Time) {
	metrics.ListDuration.WithLabelValues(entityName).Observe(time.Since(start).Seconds())
}
