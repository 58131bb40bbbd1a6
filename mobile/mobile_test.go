package mobile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCreatesGames(t *testing.T) {
	srv := httptest.NewServer(newHandler())
	defer srv.Close()

	body := `{"players":[{"name":"alice","team":"red"},{"name":"bob","team":"blue"}]}`
	resp, err := http.Post(srv.URL+"/api/games", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
