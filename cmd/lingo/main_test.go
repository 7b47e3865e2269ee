package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windfall/lingua_service/pkg/models"
)

func newFunctionsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/functions/v1/" + models.FunctionCheckGrammar:
			var req models.GrammarCheckRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if strings.Contains(req.Text, "go to") {
				w.Write([]byte(`{"errors":[{"wrongSentence":"He go","correctSentence":"He goes","message":"agreement","explanation":""}]}`))
				return
			}
			w.Write([]byte(`{"errors":[]}`))
		case "/functions/v1/" + models.FunctionLookupWord:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"Word lookup failed"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_Grammar(t *testing.T) {
	srv := newFunctionsServer(t)
	t.Setenv("LINGO_FUNCTIONS_URL", srv.URL)

	var stdout, stderr bytes.Buffer
	code := run([]string{"grammar", "-text", "He go to school everyday."}, nil, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Issues Found (1)")

	stdout.Reset()
	code = run([]string{"grammar"}, strings.NewReader("All good."), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "No grammar issues found!\n", stdout.String())
}

func TestRun_ValidationExitCode(t *testing.T) {
	t.Setenv("LINGO_FUNCTIONS_URL", "http://127.0.0.1:1")

	var stdout, stderr bytes.Buffer
	code := run([]string{"grammar", "-text", "   "}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Please enter some text to check")
}

func TestRun_LookupFailure(t *testing.T) {
	srv := newFunctionsServer(t)
	t.Setenv("LINGO_FUNCTIONS_URL", srv.URL)

	var stdout, stderr bytes.Buffer
	code := run([]string{"lookup", "zoggle"}, nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Lookup failed: Please try again\n", stdout.String())
}

func TestRun_DashboardRequiresSession(t *testing.T) {
	srv := newFunctionsServer(t)
	t.Setenv("LINGO_FUNCTIONS_URL", srv.URL)
	t.Setenv("LINGO_ACCESS_TOKEN", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"dashboard", "-text", "hi"}, nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "LINGO_ACCESS_TOKEN")
}

func TestRun_UnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"translate"}, nil, &stdout, &stderr))
	assert.Equal(t, 2, run(nil, nil, &stdout, &stderr))
}
