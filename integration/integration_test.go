package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mihorario/internal/api"
	"mihorario/internal/export"
	"mihorario/internal/horario"
	"mihorario/internal/store"
)

// openStore creates a fresh sqlite-backed store for each test with
// automatic cleanup. The returned path can be reopened to check what
// actually hit the disk.
func openStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	return reopenStore(t, path), path
}

func reopenStore(t *testing.T, path string) *store.Store {
	t.Helper()
	p, err := store.OpenSQLite(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return store.New(p)
}

func mustBlock(t *testing.T, day horario.Day, start, end string) horario.TimeBlock {
	t.Helper()
	b, err := horario.NewTimeBlock(day, start, end)
	if err != nil {
		t.Fatalf("failed to build block: %v", err)
	}
	return b
}

func section(t *testing.T, courseCode, sectionID, sec, title string, blocks ...horario.TimeBlock) horario.Selection {
	t.Helper()
	return horario.Selection{
		CourseCode: courseCode,
		SectionID:  sectionID,
		Section:    sec,
		Title:      title,
		Blocks:     blocks,
	}
}

func mustAdd(t *testing.T, st *store.Store, sel horario.Selection) {
	t.Helper()
	conflict, err := st.Add(sel)
	if err != nil {
		t.Fatalf("failed to add %s: %v", sel.CourseCode, err)
	}
	if conflict != nil {
		t.Fatalf("unexpected conflict adding %s: %v", sel.CourseCode, conflict)
	}
}

func TestSelectionsSurviveReopen(t *testing.T) {
	st, path := openStore(t)

	mat := section(t, "MAT101", "10", "001", "Matemática Aplicada",
		mustBlock(t, horario.Lunes, "08:31", "09:50"))
	fis := section(t, "FIS101", "20", "002", "Física",
		mustBlock(t, horario.Martes, "10:01", "11:20"))
	mustAdd(t, st, mat)
	mustAdd(t, st, fis)

	reopened := reopenStore(t, path)
	selections := reopened.Selections()
	if len(selections) != 2 {
		t.Fatalf("reloaded %d selections, want 2", len(selections))
	}
	if selections[0].CourseCode != "MAT101" || selections[1].CourseCode != "FIS101" {
		t.Fatalf("selection order changed across reopen: %s, %s",
			selections[0].CourseCode, selections[1].CourseCode)
	}
	if selections[0].Blocks[0].Start != "08:31" {
		t.Fatalf("block start = %s, want 08:31", selections[0].Blocks[0].Start)
	}
}

func TestSectionReplaceKeepsPositionAcrossReopen(t *testing.T) {
	st, path := openStore(t)

	mustAdd(t, st, section(t, "MAT101", "10", "001", "Matemática Aplicada",
		mustBlock(t, horario.Lunes, "08:31", "09:50")))
	mustAdd(t, st, section(t, "FIS101", "20", "002", "Física",
		mustBlock(t, horario.Martes, "10:01", "11:20")))

	// Swap MAT101 to another section. It must keep the first slot.
	mustAdd(t, st, section(t, "MAT101", "11", "002", "Matemática Aplicada",
		mustBlock(t, horario.Jueves, "14:31", "15:50")))

	reopened := reopenStore(t, path)
	selections := reopened.Selections()
	if len(selections) != 2 {
		t.Fatalf("reloaded %d selections, want 2", len(selections))
	}
	if selections[0].CourseCode != "MAT101" || selections[0].SectionID != "11" {
		t.Fatalf("first slot = %s %s, want MAT101 section 11",
			selections[0].CourseCode, selections[0].SectionID)
	}
}

func TestConflictNeverPersisted(t *testing.T) {
	st, path := openStore(t)

	mustAdd(t, st, section(t, "MAT101", "10", "001", "Matemática Aplicada",
		mustBlock(t, horario.Lunes, "08:31", "09:50")))

	conflict, err := st.Add(section(t, "FIS101", "20", "002", "Física",
		mustBlock(t, horario.Lunes, "09:00", "10:40")))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if conflict == nil || conflict.CourseCode != "MAT101" {
		t.Fatalf("conflict = %v, want MAT101", conflict)
	}

	reopened := reopenStore(t, path)
	if reopened.Len() != 1 || reopened.Has("FIS101") {
		t.Fatalf("conflicting selection reached the disk")
	}
}

func TestExportFromPersistedSchedule(t *testing.T) {
	st, path := openStore(t)
	mustAdd(t, st, section(t, "MAT101", "10", "001", "Matemática Aplicada",
		mustBlock(t, horario.Lunes, "08:31", "09:50")))

	reopened := reopenStore(t, path)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) // Monday

	var ics strings.Builder
	if err := export.WriteICS(&ics, reopened.Selections(), now); err != nil {
		t.Fatalf("ics export: %v", err)
	}
	if !strings.Contains(ics.String(), "SUMMARY:Matemática Aplicada (001)") {
		t.Fatalf("ics output missing event summary:\n%s", ics.String())
	}
	if !strings.Contains(ics.String(), "RRULE:FREQ=WEEKLY") {
		t.Fatalf("ics output missing weekly recurrence")
	}

	var table strings.Builder
	opts := export.TableOptions{Site: "Plaza Norte", Program: "Informática"}
	if err := export.WriteTable(&table, reopened.Selections(), opts); err != nil {
		t.Fatalf("table export: %v", err)
	}
	if !strings.Contains(table.String(), "MAT101") {
		t.Fatalf("table output missing course code")
	}
}

// TestCatalogToStoreFlow walks the service-to-disk path: fetch the
// catalog over HTTP, pick a section, persist it, reopen.
func TestCatalogToStoreFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generador/asignaturas/" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"asignaturas": []map[string]any{
				{
					"sigla":  "MAT101",
					"nombre": "Matemática Aplicada",
					"secciones": []map[string]any{
						{
							"id":      10,
							"sigla":   "MAT101",
							"nombre":  "Matemática Aplicada",
							"seccion": "001",
							"docente": "R. Soto",
							"virtual": false,
							"horarios": []map[string]any{
								{"dia": "Lunes", "inicio": "08:31", "fin": "09:50"},
							},
						},
					},
				},
			},
		})
	}))
	defer srv.Close()

	courses, err := api.New(srv.URL).Catalog(context.Background(), api.Filters{Site: "Plaza Norte"})
	if err != nil {
		t.Fatalf("catalog fetch: %v", err)
	}
	if len(courses) != 1 || len(courses[0].Sections) != 1 {
		t.Fatalf("catalog = %+v, want one course with one section", courses)
	}

	st, path := openStore(t)
	mustAdd(t, st, courses[0].Sections[0])

	reopened := reopenStore(t, path)
	got, err := reopened.Get("MAT101")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Instructor != "R. Soto" || got.Blocks[0].Day != horario.Lunes {
		t.Fatalf("reloaded selection = %+v", got)
	}
}
