// Package api talks to the course-offer service: the section catalog,
// the schedule generator and per-user saved schedules.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mihorario/internal/horario"
)

const defaultTimeout = 15 * time.Second

// Error is a failure reported by the service, carrying its HTTP status
// and the error message from the response body when one was sent.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Filters scope catalog and generator queries. Site is required by the
// service; the rest narrow the result when set.
type Filters struct {
	Site    string
	Program string
	Level   string
	Shift   string
}

func (f Filters) query() url.Values {
	q := url.Values{}
	q.Set("sede", f.Site)
	if f.Program != "" {
		q.Set("carrera", f.Program)
	}
	if f.Level != "" {
		q.Set("nivel", f.Level)
	}
	if f.Shift != "" {
		q.Set("jornada", f.Shift)
	}
	return q
}

// Course is one catalog entry: a course code with all its offered
// sections.
type Course struct {
	CourseCode string
	Title      string
	Sections   []horario.Selection
}

// Client is the HTTP client for the service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client against baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type wireBlock struct {
	Dia    string `json:"dia"`
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

type wireSection struct {
	ID       int64       `json:"id"`
	Sigla    string      `json:"sigla"`
	Nombre   string      `json:"nombre"`
	Seccion  string      `json:"seccion"`
	Docente  string      `json:"docente"`
	Virtual  bool        `json:"virtual"`
	Horarios []wireBlock `json:"horarios"`
}

func (ws wireSection) selection() (horario.Selection, error) {
	sel := horario.Selection{
		CourseCode: ws.Sigla,
		SectionID:  strconv.FormatInt(ws.ID, 10),
		Section:    ws.Seccion,
		Title:      ws.Nombre,
		Virtual:    ws.Virtual,
		Instructor: ws.Docente,
	}
	for _, wb := range ws.Horarios {
		day, err := horario.ParseDay(wb.Dia)
		if err != nil {
			return horario.Selection{}, fmt.Errorf("section %s %s: %w", ws.Sigla, ws.Seccion, err)
		}
		block, err := horario.NewTimeBlock(day, wb.Inicio, wb.Fin)
		if err != nil {
			return horario.Selection{}, fmt.Errorf("section %s %s: %w", ws.Sigla, ws.Seccion, err)
		}
		sel.Blocks = append(sel.Blocks, block)
	}
	return sel, nil
}

// Catalog fetches the courses offered under the filters, each grouped
// with its sections.
func (c *Client) Catalog(ctx context.Context, f Filters) ([]Course, error) {
	var resp struct {
		Asignaturas []struct {
			Sigla     string        `json:"sigla"`
			Nombre    string        `json:"nombre"`
			Secciones []wireSection `json:"secciones"`
		} `json:"asignaturas"`
	}
	if err := c.get(ctx, "/api/generador/asignaturas/", f.query(), &resp); err != nil {
		return nil, err
	}

	courses := make([]Course, 0, len(resp.Asignaturas))
	for _, a := range resp.Asignaturas {
		course := Course{CourseCode: a.Sigla, Title: a.Nombre}
		for _, ws := range a.Secciones {
			sel, err := ws.selection()
			if err != nil {
				return nil, err
			}
			course.Sections = append(course.Sections, sel)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Sections fetches the offered sections of a single course.
func (c *Client) Sections(ctx context.Context, f Filters, courseCode string) ([]horario.Selection, error) {
	courses, err := c.Catalog(ctx, f)
	if err != nil {
		return nil, err
	}
	for _, course := range courses {
		if course.CourseCode == courseCode {
			return course.Sections, nil
		}
	}
	return nil, &Error{Status: http.StatusNotFound, Message: "asignatura no encontrada: " + courseCode}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(payload, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
