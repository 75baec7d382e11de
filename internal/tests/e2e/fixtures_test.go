package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
)

func newCookieJar() (http.CookieJar, error) {
	return cookiejar.New(nil)
}

// postJSON sends a JSON payload and decodes the JSON response body.
func (ts *TestServer) postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	resp, err := ts.Client.Post(ts.URL(path), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp.Body)
}

// getJSON fetches a path and decodes the JSON response body.
func (ts *TestServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := ts.Client.Get(ts.URL(path))
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp.Body)
}

// putJSON sends a JSON payload with PUT.
func (ts *TestServer) putJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPut, ts.URL(path), bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("PUT %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeJSON(t, resp.Body)
}

// postWebhook delivers a WhatsApp webhook form and returns the raw
// TwiML payload.
func (ts *TestServer) postWebhook(t *testing.T, from, body string) string {
	t.Helper()
	form := url.Values{"From": {from}, "Body": {body}}
	resp, err := ts.Client.Post(ts.URL("/webhook/whatsapp"), "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("webhook POST failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("webhook status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/xml") {
		t.Errorf("webhook content type = %q, want text/xml", ct)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read webhook response: %v", err)
	}
	return string(payload)
}

func decodeJSON(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if len(raw) == 0 {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, raw)
	}
	return decoded
}

// signupAndLogin registers a landlord, opens a session and returns the
// landlord id. The session cookie lands in the client's jar.
func (ts *TestServer) signupAndLogin(t *testing.T, email, name, phone string) uint {
	t.Helper()
	status, body := ts.postJSON(t, "/auth/signup", map[string]any{
		"email": email, "name": name, "phone": phone, "password": "secreto123",
	})
	if status != http.StatusCreated {
		t.Fatalf("signup status = %d: %v", status, body)
	}

	status, body = ts.postJSON(t, "/auth/login", map[string]any{
		"email": email, "password": "secreto123",
	})
	if status != http.StatusOK {
		t.Fatalf("login status = %d: %v", status, body)
	}
	data := body["data"].(map[string]any)
	return uint(data["landlord_id"].(float64))
}

// createProperty registers a property through the dashboard API.
func (ts *TestServer) createProperty(t *testing.T, address string, rent float64, dueDay int) uint {
	t.Helper()
	status, body := ts.postJSON(t, "/dashboard/properties", map[string]any{
		"address": address, "monthly_rent": rent, "rent_due_day": dueDay,
	})
	if status != http.StatusCreated {
		t.Fatalf("create property status = %d: %v", status, body)
	}
	data := body["data"].(map[string]any)
	return uint(data["property_id"].(float64))
}

// createTenant registers a tenant through the dashboard API.
func (ts *TestServer) createTenant(t *testing.T, propertyID uint, name, phone string) uint {
	t.Helper()
	status, body := ts.postJSON(t, "/dashboard/tenants", map[string]any{
		"property_id": propertyID, "name": name, "phone": phone,
	})
	if status != http.StatusCreated {
		t.Fatalf("create tenant status = %d: %v", status, body)
	}
	data := body["data"].(map[string]any)
	return uint(data["tenant_id"].(float64))
}

// scriptCompletion makes the generative backend return a fixed reply.
func (ts *TestServer) scriptCompletion(message, category string, needsAttention bool) {
	completion := fmt.Sprintf(`{"message": %q, "category": %q, "needsAttention": %t}`, message, category, needsAttention)
	ts.Completions.CompleteJSONFunc = func(ctx context.Context, system, user string) (string, error) {
		return completion, nil
	}
}
