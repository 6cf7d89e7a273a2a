package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vendorStub fakes the three vendor endpoints the client touches.
func vendorStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("username") != "cat@example.com" || r.FormValue("password") != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	})
	mux.HandleFunc("/robots", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[
			{"litterRobotSerial": "LR4-001", "litterRobotNickname": "Upstairs"},
			{"litterRobotSerial": "LR4-002", "litterRobotNickname": "Downstairs"}
		]`)
	})
	mux.HandleFunc("/robots/LR4-002/activity", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "250", r.URL.Query().Get("limit"))
		fmt.Fprint(w, `[
			{"timestamp": "2025-06-01T07:05:00Z", "unitStatus": "CLEAN_CYCLE_COMPLETE"},
			{"timestamp": "2025-06-01T07:00:00Z", "unitStatus": "CAT_DETECTED"}
		]`)
	})
	mux.HandleFunc("/robots/LR4-001/activity", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	return httptest.NewServer(mux)
}

// TestVendorSourceFetch tests the full login/resolve/activity flow.
func TestVendorSourceFetch(t *testing.T) {
	srv := vendorStub(t)
	defer srv.Close()

	src := NewVendorSource(VendorConfig{
		BaseURL:     srv.URL,
		Username:    "cat@example.com",
		Password:    "hunter2",
		RobotSerial: "LR4-002",
	})
	assert.Equal(t, "vendor", src.Name())

	activity, err := src.Fetch(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, "Downstairs", activity.RobotName)
	assert.Equal(t, "LR4-002", activity.RobotSerial)
	require.Len(t, activity.Events, 2)
	assert.Equal(t, "CLEAN_CYCLE_COMPLETE", activity.Events[0].Action)
	assert.Equal(t, time.Date(2025, 6, 1, 7, 5, 0, 0, time.UTC), activity.Events[0].Timestamp)
}

// TestVendorSourceDefaultRobot tests that an empty serial picks the first robot.
func TestVendorSourceDefaultRobot(t *testing.T) {
	srv := vendorStub(t)
	defer srv.Close()

	src := NewVendorSource(VendorConfig{
		BaseURL:  srv.URL,
		Username: "cat@example.com",
		Password: "hunter2",
	})

	activity, err := src.Fetch(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, "LR4-001", activity.RobotSerial)
	assert.Empty(t, activity.Events)
}

// TestVendorSourceUnknownRobot tests the error for a serial not on the account.
func TestVendorSourceUnknownRobot(t *testing.T) {
	srv := vendorStub(t)
	defer srv.Close()

	src := NewVendorSource(VendorConfig{
		BaseURL:     srv.URL,
		Username:    "cat@example.com",
		Password:    "hunter2",
		RobotSerial: "LR4-999",
	})

	_, err := src.Fetch(context.Background(), 250)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LR4-999")
}

// TestVendorSourceBadCredentials tests that a rejected login surfaces as an error.
func TestVendorSourceBadCredentials(t *testing.T) {
	srv := vendorStub(t)
	defer srv.Close()

	src := NewVendorSource(VendorConfig{
		BaseURL:  srv.URL,
		Username: "cat@example.com",
		Password: "wrong",
	})

	_, err := src.Fetch(context.Background(), 250)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor login")
}

// TestVendorSourceRetries tests that transient server errors are retried.
func TestVendorSourceRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-123"})
	}))
	defer srv.Close()

	src := NewVendorSource(VendorConfig{BaseURL: srv.URL, Username: "u", Password: "p"})
	err := src.login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

// TestVendorSourceRetryRespectsContext tests that cancellation stops the
// backoff loop.
func TestVendorSourceRetryRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewVendorSource(VendorConfig{BaseURL: srv.URL, Username: "u", Password: "p"})
	err := src.login(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
