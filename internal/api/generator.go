package api

import (
	"context"
	"errors"

	"mihorario/internal/horario"
)

var ErrNoCourses = errors.New("at least one course is required")

// Preference values for schedule and virtual-class weighting. The
// empty string means neutral.
const (
	PrefStartEarly = "entrar_temprano"
	PrefStartLate  = "entrar_tarde"
	PrefEndEarly   = "salir_temprano"
	PrefEndLate    = "salir_tarde"
)

// Preferences tune the generator's scoring. The zero value asks for
// gap minimization with everything else neutral, matching the service
// defaults.
type Preferences struct {
	MinimizeGaps   bool   `json:"minimizar_huecos"`
	TimePreference string `json:"preferencia_horario,omitempty"`
	// PreferVirtual is "si", "no" or empty for neutral.
	PreferVirtual string `json:"preferir_virtuales,omitempty"`
}

// Metrics describe one generated combination. Gap figures are in
// minutes; average hours are fractional clock hours.
type Metrics struct {
	DaysUsed      int     `json:"dias_usados"`
	TotalGapsMin  int     `json:"total_huecos_minutos"`
	MaxDayGapMin  int     `json:"max_hueco_dia"`
	VirtualCount  int     `json:"clases_virtuales"`
	ClassCount    int     `json:"total_clases"`
	AvgStartHour  float64 `json:"hora_inicio_promedio"`
	AvgEndHour    float64 `json:"hora_fin_promedio"`
	WorkloadScore float64 `json:"balance_carga"`
}

// GeneratedSchedule is one conflict-free combination proposed by the
// service, scored 0 to 100.
type GeneratedSchedule struct {
	Selections []horario.Selection
	Score      float64
	Metrics    Metrics
}

// Generate asks the service for up to ten conflict-free combinations
// of the given courses, best score first.
func (c *Client) Generate(ctx context.Context, f Filters, courseCodes []string, prefs Preferences) ([]GeneratedSchedule, error) {
	if len(courseCodes) == 0 {
		return nil, ErrNoCourses
	}

	reqBody := struct {
		Siglas       []string    `json:"siglas"`
		Preferencias Preferences `json:"preferencias"`
		Sede         string      `json:"sede"`
		Jornada      string      `json:"jornada,omitempty"`
	}{
		Siglas:       courseCodes,
		Preferencias: prefs,
		Sede:         f.Site,
		Jornada:      f.Shift,
	}

	var resp struct {
		Horarios []struct {
			Asignaturas []wireSection `json:"asignaturas"`
			Puntuacion  float64       `json:"puntuacion"`
			Metricas    Metrics       `json:"metricas"`
		} `json:"horarios"`
	}
	if err := c.post(ctx, "/api/generador/generar/", reqBody, &resp); err != nil {
		return nil, err
	}

	schedules := make([]GeneratedSchedule, 0, len(resp.Horarios))
	for _, h := range resp.Horarios {
		gs := GeneratedSchedule{Score: h.Puntuacion, Metrics: h.Metricas}
		for _, ws := range h.Asignaturas {
			sel, err := ws.selection()
			if err != nil {
				return nil, err
			}
			gs.Selections = append(gs.Selections, sel)
		}
		schedules = append(schedules, gs)
	}
	return schedules, nil
}
