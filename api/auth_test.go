package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signup(t *testing.T, baseURL, username, password string) string {
	t.Helper()
	res := doJSON(t, http.MethodPost, baseURL+"/api/auth/signup", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": password,
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("signup: expected 200 got %d", res.StatusCode)
	}
	var ar struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&ar); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if ar.Token == "" {
		t.Fatalf("empty token")
	}
	return ar.Token
}

func TestSignupIssuesValidToken(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	token := signup(t, srv.URL, "alice", "hunter2")

	tok, err := jwt.Parse(token, func(token *jwt.Token) (any, error) { return []byte("testsecret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("invalid token: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("unexpected claims type")
	}
	if _, ok := claims["user_id"]; !ok {
		t.Fatalf("missing user_id claim")
	}
	if expF, ok := claims["exp"].(float64); !ok || int64(expF) < time.Now().Unix() {
		t.Fatalf("invalid exp claim")
	}
}

func TestSigninFlow(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	signup(t, srv.URL, "bob", "hunter2")

	// right password
	res := doJSON(t, http.MethodPost, srv.URL+"/api/auth/signin", map[string]any{
		"username": "bob", "password": "hunter2",
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("signin: expected 200 got %d", res.StatusCode)
	}
	res.Body.Close()

	// wrong password
	res = doJSON(t, http.MethodPost, srv.URL+"/api/auth/signin", map[string]any{
		"username": "bob", "password": "wrong",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401 got %d", res.StatusCode)
	}
	res.Body.Close()

	// unknown user
	res = doJSON(t, http.MethodPost, srv.URL+"/api/auth/signin", map[string]any{
		"username": "nobody", "password": "x",
	})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown user: expected 401 got %d", res.StatusCode)
	}
	res.Body.Close()

	// missing fields
	res = doJSON(t, http.MethodPost, srv.URL+"/api/auth/signin", map[string]any{"username": "bob"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password: expected 400 got %d", res.StatusCode)
	}
	res.Body.Close()
}

func TestSignoutRequiresToken(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	token := signup(t, srv.URL, "carol", "hunter2")

	// no Authorization header
	res := doJSON(t, http.MethodPost, srv.URL+"/api/auth/signout", nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no header: expected 401 got %d", res.StatusCode)
	}
	res.Body.Close()

	// garbage token
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("signout request failed: %v", err)
	}
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401 got %d", res.StatusCode)
	}
	res.Body.Close()

	// valid token
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/api/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("signout request failed: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("valid token: expected 200 got %d", res.StatusCode)
	}
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	srv, cleanup := setupServer(t)
	defer cleanup()

	signup(t, srv.URL, "dup", "pw")

	res := doJSON(t, http.MethodPost, srv.URL+"/api/auth/signup", map[string]any{
		"username": "dup", "email": "other@example.com", "password": "pw",
	})
	defer res.Body.Close()
	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("duplicate username: expected 500 got %d", res.StatusCode)
	}
}
