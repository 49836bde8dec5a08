package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mihorario/internal/horario"
)

// Saved-schedule limits enforced by the service, checked here too so a
// doomed request never leaves the client.
const (
	MaxSavedSchedules = 5
	MaxScheduleName   = 30
)

var (
	ErrNameRequired     = errors.New("schedule name is required")
	ErrNameTooLong      = fmt.Errorf("schedule name exceeds %d characters", MaxScheduleName)
	ErrTooManySchedules = fmt.Errorf("limit of %d saved schedules reached", MaxSavedSchedules)
	ErrScheduleMissing  = errors.New("saved schedule not found")
)

// SavedSchedule is one named schedule stored on the service.
type SavedSchedule struct {
	ID         int64
	Name       string
	ModifiedAt time.Time
	Selections []horario.Selection
}

// SaveSchedule stores the schedule under name, overwriting a schedule
// of the same name. sectionIDs are the service-side section ids of the
// current selections.
func (c *Client) SaveSchedule(ctx context.Context, name string, sectionIDs []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len([]rune(name)) > MaxScheduleName {
		return ErrNameTooLong
	}

	// Saving under an existing name overwrites it, so only a new name
	// can push past the schedule limit.
	schedules, err := c.ListSchedules(ctx)
	if err != nil {
		return err
	}
	exists := false
	for _, s := range schedules {
		if s.Name == name {
			exists = true
			break
		}
	}
	if !exists && len(schedules) >= MaxSavedSchedules {
		return ErrTooManySchedules
	}

	reqBody := struct {
		Nombre         string   `json:"nombre"`
		AsignaturasIDs []string `json:"asignaturas_ids"`
	}{Nombre: name, AsignaturasIDs: sectionIDs}

	var resp struct {
		Success bool   `json:"success"`
		Mensaje string `json:"mensaje"`
	}
	return c.post(ctx, "/api/horarios/guardar/", reqBody, &resp)
}

// ListSchedules returns the user's saved schedules.
func (c *Client) ListSchedules(ctx context.Context) ([]SavedSchedule, error) {
	var resp struct {
		Horarios []struct {
			ID           int64         `json:"id"`
			Nombre       string        `json:"nombre"`
			ModificadoEn string        `json:"modificado_en"`
			Asignaturas  []wireSection `json:"asignaturas"`
		} `json:"horarios"`
	}
	if err := c.get(ctx, "/api/horarios/listar/", nil, &resp); err != nil {
		return nil, err
	}

	schedules := make([]SavedSchedule, 0, len(resp.Horarios))
	for _, h := range resp.Horarios {
		s := SavedSchedule{ID: h.ID, Name: h.Nombre}
		if t, err := time.Parse(time.RFC3339, h.ModificadoEn); err == nil {
			s.ModifiedAt = t
		}
		for _, ws := range h.Asignaturas {
			sel, err := ws.selection()
			if err != nil {
				return nil, err
			}
			s.Selections = append(s.Selections, sel)
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

// LoadSchedule finds a saved schedule by name. The listing carries the
// full section data, so loading needs no extra round trip.
func (c *Client) LoadSchedule(ctx context.Context, name string) (SavedSchedule, error) {
	schedules, err := c.ListSchedules(ctx)
	if err != nil {
		return SavedSchedule{}, err
	}
	for _, s := range schedules {
		if s.Name == name {
			return s, nil
		}
	}
	return SavedSchedule{}, fmt.Errorf("%w: %s", ErrScheduleMissing, name)
}

// DeleteSchedule removes a saved schedule by id.
func (c *Client) DeleteSchedule(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/horarios/eliminar/%d/", id), nil, nil, nil)
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: id %d", ErrScheduleMissing, id)
	}
	return err
}
