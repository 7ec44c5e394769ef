package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestJobFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<main class="job-description">
				<h1>Senior Go Engineer</h1>
				<p>We are looking for an engineer with Go and PostgreSQL experience.</p>
			</main>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, metadata, err := IngestJobFromURL(context.Background(), server.URL, false, false)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "PostgreSQL")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Copyright")

	require.NotNil(t, metadata)
	assert.Equal(t, server.URL, metadata.Source)
	assert.Equal(t, KindJob, metadata.Kind)
	assert.NotEmpty(t, metadata.Hash)
}

func TestIngestJobFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _, err := IngestJobFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestIngestJobFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>   </body></html>`))
	}))
	defer server.Close()

	_, _, err := IngestJobFromURL(context.Background(), server.URL, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}
