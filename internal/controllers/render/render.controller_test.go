package renderController

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name      string
		lastName  string
		firstName string
		expected  string
	}{
		{
			name:      "full name",
			lastName:  "Okafor",
			firstName: "Chidi",
			expected:  "N400_Okafor_Chidi.pdf",
		},
		{
			name:      "whitespace becomes underscores",
			lastName:  "De La Cruz",
			firstName: "Maria Elena",
			expected:  "N400_De_La_Cruz_Maria_Elena.pdf",
		},
		{
			name:     "last name only",
			lastName: "Okafor",
			expected: "N400_Okafor.pdf",
		},
		{
			name:      "first name only",
			firstName: "Chidi",
			expected:  "N400_Chidi.pdf",
		},
		{
			name:     "no name at all",
			expected: "N400.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, downloadFilename(tt.lastName, tt.firstName))
		})
	}
}

func TestRender(t *testing.T) {
	pdfBytes := []byte("%PDF-1.7 fake content")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var request renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "Okafor", request.Fields["lastName"])

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdfBytes)
	}))
	defer server.Close()

	rc := New(nil, config.Config{PdfServiceURL: server.URL})

	pdf, err := rc.render(context.Background(), renderRequest{
		Form:   map[string]any{"last_name": "Okafor"},
		Fields: map[string]any{"lastName": "Okafor"},
	})
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, pdf)
}

func TestRender_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "template not found", http.StatusInternalServerError)
	}))
	defer server.Close()

	rc := New(nil, config.Config{PdfServiceURL: server.URL})

	_, err := rc.render(context.Background(), renderRequest{})
	assert.Error(t, err)
}

func TestRender_WrongContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	rc := New(nil, config.Config{PdfServiceURL: server.URL})

	_, err := rc.render(context.Background(), renderRequest{})
	assert.Error(t, err)
}

func TestRender_TrailingSlashInServiceURL(t *testing.T) {
	var requestedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF"))
	}))
	defer server.Close()

	rc := New(nil, config.Config{PdfServiceURL: server.URL + "/"})

	_, err := rc.render(context.Background(), renderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/generate", requestedPath)
}
