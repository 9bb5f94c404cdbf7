package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlApp_Lifecycle(t *testing.T) {
	a := New(&apiStub{}, NewTemplateSource(), time.Hour)
	app := NewControlApp(a)

	status := func() bool {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/status", nil))
		require.NoError(t, err)
		var body struct {
			Running bool `json:"running"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body.Running
	}

	assert.False(t, status())

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/start", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, status())

	// Starting twice is a client error.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/start", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Agent is already running", body.Detail)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/stop", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, status())

	// Stopping an idle agent is a client error.
	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/stop", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
