package client

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
	"packmyseal.io/pms/pkg/credentials"
	"packmyseal.io/pms/pkg/project"
	"packmyseal.io/pms/pkg/settings"
	"packmyseal.io/pms/pkg/utils"
)

// mockRegistry is an in-memory pms registry for tests, counting the
// calls per endpoint so tests can assert on protocol traffic.
type mockRegistry struct {
	mu sync.Mutex

	// latest version per module, a missing module yields 404
	latest map[string]string
	// zip archive bytes per module@version
	archives map[string][]byte
	// versions listed per module
	versions map[string][]string

	latestCalls   int
	downloadCalls int
	checkCalls    int
	refreshCalls  int

	server *httptest.Server
}

func newMockRegistry() *mockRegistry {
	m := &mockRegistry{
		latest:   map[string]string{},
		archives: map[string][]byte{},
		versions: map[string][]string{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.checkCalls++
		m.mu.Unlock()
		fmt.Fprint(w, `{"alive":true}`)
	})
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.refreshCalls++
		m.mu.Unlock()
		fmt.Fprint(w, `{"token":"refreshed"}`)
	})
	mux.HandleFunc("/whoami", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"username":"alice"}`)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"token":"acc","refresh_token":"ref"}`)
	})
	mux.HandleFunc("/register", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/modules/upload", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})
	mux.HandleFunc("/modules/", func(w http.ResponseWriter, r *http.Request) {
		m.handleModules(w, r)
	})
	m.server = httptest.NewServer(mux)
	return m
}

func (m *mockRegistry) handleModules(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var name string
	switch {
	case len(r.URL.Path) > len("/modules/"):
		name = r.URL.Path[len("/modules/"):]
	default:
		http.NotFound(w, r)
		return
	}

	if rest, found := strings.CutSuffix(name, "/versions/latest"); found {
		m.latestCalls++
		latest, ok := m.latest[rest]
		if !ok {
			http.Error(w, "no such module", http.StatusNotFound)
			return
		}
		fmt.Fprint(w, latest)
		return
	}

	if rest, found := strings.CutSuffix(name, "/versions"); found {
		fmt.Fprintf(w, `{"versions":%s}`, mustJSON(m.versions[rest]))
		return
	}

	if rest, found := strings.CutSuffix(name, "/delete"); found {
		fmt.Fprintf(w, `{"msg":"deleted '%s'"}`, rest)
		return
	}

	// download
	m.downloadCalls++
	version := r.URL.Query().Get("version")
	if version == "" {
		version = m.latest[name]
	}
	archive, ok := m.archives[name+"@"+version]
	if !ok {
		http.Error(w, "no such module", http.StatusNotFound)
		return
	}
	w.Write(archive)
}

func mustJSON(versions []string) string {
	if len(versions) == 0 {
		return "[]"
	}
	out := "["
	for i, v := range versions {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", v)
	}
	return out + "]"
}

// addModule publishes a module version whose archive contains a single
// file 'mod.tfs' holding 'content', and marks it latest.
func (m *mockRegistry) addModule(t *testing.T, name, version, content string) {
	srcDir := filepath.Join(t.TempDir(), "src")
	assert.NilError(t, os.MkdirAll(srcDir, 0755))
	assert.NilError(t, os.WriteFile(filepath.Join(srcDir, "mod.tfs"), []byte(content), 0644))

	zipPath := filepath.Join(t.TempDir(), "mod.zip")
	assert.NilError(t, utils.CreateZipFromDir(srcDir, zipPath))

	archive, err := os.ReadFile(zipPath)
	assert.NilError(t, err)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.archives[name+"@"+version] = archive
	m.latest[name] = version
	m.versions[name] = append(m.versions[name], version)
}

func (m *mockRegistry) close() {
	m.server.Close()
}

// newTestClient returns a client against the mock registry with a
// temporary credential store, a buffer log writer and auto-consenting
// confirmation.
func newTestClient(t *testing.T, reg *mockRegistry) (*PmsClient, *bytes.Buffer) {
	s := settings.DefaultSettings()
	s.Registry = reg.server.URL

	store := credentials.NewStore(filepath.Join(t.TempDir(), "pms_auth.json"))

	pmscli, err := NewPmsClient(
		WithSettings(s),
		WithCredentialsStore(store),
	)
	assert.NilError(t, err)

	var buf bytes.Buffer
	pmscli.SetLogWriter(&buf)
	pmscli.SetConfirm(func(msg string) bool { return true })
	return pmscli, &buf
}

// newTestProject initializes a project directory with a manifest holding
// the given modules, plus matching directories under Modules/.
func newTestProject(t *testing.T, modules map[string]string) string {
	projectDir := t.TempDir()
	manifest := project.NewManifest("demo")
	for name, version := range modules {
		manifest.SetModule(name, version)
		assert.NilError(t, os.MkdirAll(project.ModuleDir(projectDir, name), 0755))
		assert.NilError(t, os.WriteFile(
			filepath.Join(project.ModuleDir(projectDir, name), "mod.tfs"),
			[]byte("old content"), 0644))
	}
	assert.NilError(t, manifest.Save(projectDir))
	return projectDir
}

func loginTestClient(t *testing.T, pmscli *PmsClient) {
	assert.NilError(t, pmscli.GetCredentialsStore().Save(&credentials.Record{
		Username: "alice", Token: "acc", RefreshToken: "ref",
	}))
}
