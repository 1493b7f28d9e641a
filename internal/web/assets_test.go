package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticHandler(t *testing.T) {
	assets := fstest.MapFS{
		"static/app.js":     {Data: []byte("observe()")},
		"static/styles.css": {Data: []byte("body{}")},
	}

	h, err := staticHandler(assets)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "observe()", rec.Body.String())
}

func TestStaticHandler_MissingAssets(t *testing.T) {
	_, err := staticHandler(fstest.MapFS{"templates/index.html": {Data: []byte("x")}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open static assets")
}

func TestStaticHandler_Embedded(t *testing.T) {
	_, err := staticHandler(staticFS)
	assert.NoError(t, err)
}
