// Package integrationtest provides server helpers used in end-to-end tests.
package integrationtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/cmd/httpserver"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// AdminPassword is the admin password of servers built by SetupServer.
const AdminPassword = "integration-secret"

// SetupServer returns a test server backed by a fresh in-memory registry.
func SetupServer(t *testing.T) *httpserver.Server {
	t.Helper()

	config := configpkg.Config{
		ServerAddress:  "127.0.0.1:0",
		Environment:    "test",
		InterestRate:   0.02,
		MinimumBalance: 100,
		AdminPassword:  AdminPassword,
	}

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)
	registry := ledger.NewRegistry(ledger.WithInterestTerms(config.InterestTerms()))

	server, err := httpserver.New(registry, logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(registry, logger, config) returned error: %v`, err)
	}

	return server
}

// Request describes a call made with Do.
type Request struct {
	Method string
	Path   string
	Body   any
	// Password, when set, is sent as the admin basic auth password.
	Password string
}

// Do sends the request through the server and returns the recorded response.
func Do(t *testing.T, server http.Handler, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader

	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(r.Method, r.Path, body)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	if r.Password != "" {
		middleware.AddAdminAuthorization(req, r.Password)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

// Decode unmarshals the response envelope, storing its data into data.
func Decode(t *testing.T, recorder *httptest.ResponseRecorder, data any) web.Response {
	t.Helper()

	res := web.Response{Data: data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}
