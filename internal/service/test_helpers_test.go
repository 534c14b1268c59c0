package service_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ongvang00/HealthManagementSystem/internal/logger"
	"github.com/ongvang00/HealthManagementSystem/internal/model"
	"github.com/ongvang00/HealthManagementSystem/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

// newLoggedStore returns a store whose warnings land in the returned buffer.
func newLoggedStore(t *testing.T) (*store.Store, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := logger.NewConsole(buf, logger.LevelDebug, logger.ColorNever)
	st, err := store.Open(filepath.Join(t.TempDir(), "data"), store.WithLogger(log))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st, buf
}

// collectRecords drains every line of c, failing the test on a read error.
func collectRecords(t *testing.T, st *store.Store, c model.Category) []store.Record {
	t.Helper()
	out := make([]store.Record, 0)
	for rec, err := range st.ReadAll(c) {
		if err != nil {
			t.Fatalf("read %s: %v", c, err)
		}
		out = append(out, rec)
	}
	return out
}

func appendRaw(t *testing.T, st *store.Store, c model.Category, fields ...string) {
	t.Helper()
	if err := st.Append(c, fields...); err != nil {
		t.Fatalf("append %s: %v", c, err)
	}
}

// writeRawFile replaces a category file with hand-written content, the way
// an older unquoted build or a manual edit would leave it.
func writeRawFile(t *testing.T, st *store.Store, c model.Category, content string) {
	t.Helper()
	if err := os.WriteFile(st.Path(c), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", c, err)
	}
}
