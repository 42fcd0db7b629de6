package httpapi

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/mooncyc/internal/service"
)

// Services groups the use cases the API reads from.
type Services struct {
	Cycle    service.CycleService
	Symptoms service.SymptomService
	Tasks    service.TaskService
	Guidance service.GuidanceService
}

type Handler struct {
	svc    Services
	logger *slog.Logger
	now    func() time.Time
}

func NewHandler(svc Services, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger, now: time.Now}
}
