package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/initializr/internal/application"
	"github.com/eduardo/initializr/internal/db"
	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/infrastructure"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ledger, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })

	svc := application.NewInitializrService(
		infrastructure.NewMemoryFileSystem(),
		infrastructure.NewGoTemplateEngine(),
		ledger,
		"generated-projects",
		log.New(io.Discard),
		nil,
	)
	return New(svc, log.New(io.Discard))
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

const demoRequest = `{
	"applicationName": "DemoApp",
	"frameworkType": "SPRINGBOOT",
	"databaseType": "POSTGRESQL",
	"jwtAuthEnabled": true,
	"baseEntityEnabled": true,
	"baseResponseEnabled": true
}`

func TestGenerateEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/spring-boot/generator", demoRequest)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "Project Successfully Generated", env.Message)

	var resp GenerateProjectResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "DemoApp", resp.ProjectName)
	assert.Equal(t, domain.DatabasePostgreSQL, resp.DatabaseType)
	assert.Equal(t, "demoapp", resp.PackageName)
	assert.Positive(t, resp.FileSizeBytes)
	assert.Equal(t, int64(0), resp.DownloadCount)

	w = do(t, s, http.MethodPost, "/spring-boot/generator", demoRequest)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestGenerateEndpointRejects(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"applicationName": `},
		{"missing database", `{"applicationName": "DemoApp", "frameworkType": "SPRINGBOOT"}`},
		{"unknown database", `{"applicationName": "DemoApp", "frameworkType": "SPRINGBOOT", "databaseType": "MONGO"}`},
		{"bad name", `{"applicationName": "demo-app", "frameworkType": "SPRINGBOOT", "databaseType": "MYSQL"}`},
		{"unsupported framework", `{"applicationName": "DemoApp", "frameworkType": "QUARKUS", "databaseType": "MYSQL"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/spring-boot/generator", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			env := decode(t, w)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}

func TestDownloadEndpoint(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/spring-boot/generator", demoRequest).Code)

	w := do(t, s, http.MethodGet, "/spring-boot/generator/download/DemoApp", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=DemoApp.zip", w.Header().Get("Content-Disposition"))

	body := w.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "pom.xml")
	assert.Contains(t, names, "src/main/java/demoapp/security/JwtUtil.java")

	w = do(t, s, http.MethodGet, "/spring-boot/generator/projects/DemoApp", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateProjectResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
	assert.Equal(t, int64(1), resp.DownloadCount)
}

func TestDownloadUnknown(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/spring-boot/generator/download/Missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "Missing")
}

func TestProjectsEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/spring-boot/generator/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))

	require.Equal(t, http.StatusCreated, do(t, s, http.MethodPost, "/spring-boot/generator", demoRequest).Code)

	w = do(t, s, http.MethodGet, "/spring-boot/generator/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Projects Found", env.Message)
	var list []GenerateProjectResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "DemoApp", list[0].ProjectName)

	w = do(t, s, http.MethodGet, "/spring-boot/generator/projects/Unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.NewConfigurationError("x", "bad")))
	assert.Equal(t, http.StatusNotFound, statusFor(domain.NewNotFoundError("x", "gone")))
	assert.Equal(t, http.StatusConflict, statusFor(domain.NewConflictError("x", "dup")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(domain.NewStorageError("x", "disk", errors.New("full"))))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))

	assert.Equal(t, "Internal Server Error", messageFor(domain.NewArchiveError("x", "sink", errors.New("reset"))))
	assert.Equal(t, "bad", messageFor(domain.NewConfigurationError("x", "bad")))
}
