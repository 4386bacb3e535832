package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubscribedMember(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTOKEN/getChatMember" {
			t.Errorf("path = %q, want /botTOKEN/getChatMember", r.URL.Path)
		}
		if got := r.URL.Query().Get("chat_id"); got != "@unichannel" {
			t.Errorf("chat_id = %q, want @unichannel", got)
		}
		if got := r.URL.Query().Get("user_id"); got != "42" {
			t.Errorf("user_id = %q, want 42", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"status":"member"}}`)) //nolint:errcheck
	}))
	defer server.Close()

	c := New(server.URL, "TOKEN", "@unichannel")
	ok, err := c.Subscribed(context.Background(), 42)
	if err != nil {
		t.Fatalf("Subscribed() error = %v", err)
	}
	if !ok {
		t.Error("Subscribed() = false, want true for status member")
	}
}

func TestSubscribedStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
		{"restricted", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"ok":true,"result":{"status":"` + tt.status + `"}}`)) //nolint:errcheck
			}))
			defer server.Close()

			c := New(server.URL, "TOKEN", "@unichannel")
			got, err := c.Subscribed(context.Background(), 1)
			if err != nil {
				t.Fatalf("Subscribed() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Subscribed() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestSubscribedAPIRefusal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"description":"Bad Request: user not found"}`)) //nolint:errcheck
	}))
	defer server.Close()

	c := New(server.URL, "TOKEN", "@unichannel")
	if _, err := c.Subscribed(context.Background(), 1); err == nil {
		t.Error("expected error when ok=false")
	}
}

func TestSubscribedHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`)) //nolint:errcheck
	}))
	defer server.Close()

	c := New(server.URL, "BADTOKEN", "@unichannel")
	_, err := c.Subscribed(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("IsStatus(err, 401) = false for %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Error("IsStatus(err, 404) = true, want false")
	}
}

func TestNewDefaultBaseURL(t *testing.T) {
	c := New("", "TOKEN", "@unichannel")
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
}
