package pdfparser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseApplication(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parse-application/", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "riley.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rushee": {"name": "Riley Park", "email": "riley@example.edu", "major": "Economics"},
			"availabilities": [
				{"date": "2025-09-12", "startTime": "2025-09-12T18:00:00Z", "endTime": "2025-09-12T19:00:00Z"},
				{"date": "", "startTime": "2025-09-13T18:00:00Z", "endTime": "2025-09-13T19:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	parsed, err := client.ParseApplication(context.Background(), "riley.pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "Riley Park", parsed.Rushee.Name)
	require.NotNil(t, parsed.Rushee.Major)
	assert.Equal(t, "Economics", *parsed.Rushee.Major)
	assert.Nil(t, parsed.Rushee.PhoneNumber)

	require.Len(t, parsed.Availabilities, 2)
	assert.Equal(t, "2025-09-12", parsed.Availabilities[0].Date)
	assert.Empty(t, parsed.Availabilities[1].Date)
}

func TestParseApplication_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unreadable pdf", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	_, err := client.ParseApplication(context.Background(), "riley.pdf", strings.NewReader("%PDF"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestParseApplication_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, zap.NewNop())

	_, err := client.ParseApplication(context.Background(), "riley.pdf", strings.NewReader("%PDF"))
	require.Error(t, err)
}
