package mailer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSessionFlow(t *testing.T) {
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "login")
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "botaccount", req.Username)
		assert.Equal(t, "secret", req.Password)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/mail", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "mail")
		var req mailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "loanseeker", req.To)
		assert.Equal(t, "貸款諮詢", req.Title)
		assert.Equal(t, "您好", req.Content)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, _ *http.Request) {
		calls = append(calls, "logout")
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL, "botaccount", "secret", testLogger())
	ctx := context.Background()

	require.NoError(t, c.Login(ctx))
	require.NoError(t, c.SendMail(ctx, "loanseeker", "貸款諮詢", "您好"))
	require.NoError(t, c.Logout(ctx))

	assert.Equal(t, []string{"login", "mail", "logout"}, calls)
}

func TestLogin_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "wrong password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "botaccount", "bad", testLogger())

	err := c.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
