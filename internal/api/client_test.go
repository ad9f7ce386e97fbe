package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/config"
	"github.com/leadline-crm/leadline/internal/model"
	"github.com/leadline-crm/leadline/internal/session"
)

func testClient(t *testing.T, handler http.Handler, sess *session.Session) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.API{BaseURL: server.URL, Timeout: 5 * time.Second}
	return NewClient(cfg, sess)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]model.Lead{})
	})

	sess := &session.Session{Token: "tok-123"}
	client := testClient(t, handler, sess)

	_, err := client.Leads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoSessionNoAuthHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(loginResponse{Token: "fresh"})
	})

	client := testClient(t, handler, nil)

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		sentinel error
		name     string
		body     string
		status   int
	}{
		{name: "404 maps to not found", status: http.StatusNotFound, body: `{"message":"no such lead"}`, sentinel: common.ErrNotFound},
		{name: "401 maps to unauthorized", status: http.StatusUnauthorized, body: `{"error":"token expired"}`, sentinel: common.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			client := testClient(t, handler, &session.Session{Token: "t"})

			_, err := client.Lead(context.Background(), "42")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.Status)
		})
	}
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"lead is referenced"}`, want: "lead is referenced"},
		{name: "error field", body: `{"error":"bad payload"}`, want: "bad payload"},
		{name: "plain text body", body: "gateway timeout", want: "gateway timeout"},
		{name: "empty body", body: "", want: "no error detail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})
			client := testClient(t, handler, nil)

			err := client.Get(context.Background(), "/x", nil, nil)
			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.want, httpErr.Message)
		})
	}
}

func TestClient_ConnectionErrors(t *testing.T) {
	cfg := config.API{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}
	client := NewClient(cfg, nil)

	err := client.Get(context.Background(), "/leads", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAPIConnection)
}

func TestClient_CanceledContextPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	client := testClient(t, handler, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "/leads", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, common.ErrAPIConnection),
		"cancellation must not be reported as a connection failure")
}

func TestClient_CreateLeadValidatesBeforeSending(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	})
	client := testClient(t, handler, &session.Session{Token: "t"})

	_, err := client.CreateLead(context.Background(), model.Lead{Name: "no mobile"})
	require.Error(t, err)
	assert.False(t, called, "invalid lead must not reach the backend")
}

func TestClient_CreateFollowUpNormalizes(t *testing.T) {
	var gotBody model.FollowUp
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(gotBody)
	})
	client := testClient(t, handler, &session.Session{Token: "t"})

	fu := model.FollowUp{
		LeadID:           "1",
		Date:             "2026-02-10",
		FollowedBy:       "Ravi",
		Status:           model.StatusConverted,
		NextFollowUpDate: "2026-02-20",
		NextFollowUpTime: "10:00",
	}

	_, err := client.CreateFollowUp(context.Background(), fu)
	require.NoError(t, err)
	assert.Empty(t, gotBody.NextFollowUpDate, "terminal status must not schedule a next follow-up")
	assert.Empty(t, gotBody.NextFollowUpTime)
}

func TestClient_SearchLeadsByMobileSendsQuery(t *testing.T) {
	var gotMobile string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMobile = r.URL.Query().Get("mobile")
		_ = json.NewEncoder(w).Encode([]model.Lead{{ID: "1", Name: "Asha", Mobile: "987"}})
	})
	client := testClient(t, handler, &session.Session{Token: "t"})

	leads, err := client.SearchLeadsByMobile(context.Background(), "987")
	require.NoError(t, err)
	assert.Equal(t, "987", gotMobile)
	require.Len(t, leads, 1)
	assert.Equal(t, "Asha", leads[0].Name)
}

func TestClient_Login(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "a@b.c", req.Email)
		_ = json.NewEncoder(w).Encode(loginResponse{Token: "tok"})
	})
	client := testClient(t, handler, nil)

	token, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestClient_LoginRejectsEmptyToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(loginResponse{})
	})
	client := testClient(t, handler, nil)

	_, err := client.Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
}
