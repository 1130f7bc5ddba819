package http

import "github.com/gofiber/fiber/v2"

// EducatorHandler endpoints prototipo del área educativa.
type EducatorHandler struct{}

// NewEducatorHandler construye el handler de educador.
func NewEducatorHandler() *EducatorHandler {
	return &EducatorHandler{}
}

// Ping confirma que el router de educador responde.
func (h *EducatorHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "area": "educator"})
}

// SampleMetrics devuelve métricas estáticas de demostración para el
// dashboard educativo. Prototipo: no hay persistencia detrás.
func (h *EducatorHandler) SampleMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"students_enrolled":  128,
		"cupping_sessions":   34,
		"avg_cup_score":      84.6,
		"origins_covered":    []string{"Colombia", "Ethiopia", "Honduras", "Kenya"},
		"last_session_topic": "Procesos de fermentación anaeróbica",
	})
}
