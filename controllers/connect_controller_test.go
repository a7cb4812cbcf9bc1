package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlink_server/routes"
	"fitlink_server/services"

	"github.com/gorilla/mux"
	stripe "github.com/stripe/stripe-go/v74"
)

// recordingConnectAPI counts provider calls in place of the Stripe client
type recordingConnectAPI struct {
	calls     int
	account   *stripe.Account
	loginLink *stripe.LoginLink
	err       error
}

func (f *recordingConnectAPI) NewAccount(params *stripe.AccountParams) (*stripe.Account, error) {
	f.calls++
	return f.account, f.err
}

func (f *recordingConnectAPI) GetAccount(id string, params *stripe.AccountParams) (*stripe.Account, error) {
	f.calls++
	return f.account, f.err
}

func (f *recordingConnectAPI) NewLoginLink(params *stripe.LoginLinkParams) (*stripe.LoginLink, error) {
	f.calls++
	return f.loginLink, f.err
}

func newConnectRouter(api services.ConnectAPI) *mux.Router {
	r := mux.NewRouter()
	routes.RegisterConnectRoutes(r, &services.StripeConnectService{API: api})
	return r
}

func doJSON(r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateAccountEndpointMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"businessName": "Iron Temple Gym"}},
		{"missing business name", map[string]string{"email": "coach@example.com"}},
		{"empty body", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &recordingConnectAPI{}
			r := newConnectRouter(api)

			rec := doJSON(r, "POST", "/api/connect/account", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if api.calls != 0 {
				t.Errorf("provider called %d times for invalid input", api.calls)
			}
		})
	}
}

func TestCreateAccountEndpoint(t *testing.T) {
	api := &recordingConnectAPI{account: &stripe.Account{ID: "acct_123"}}
	r := newConnectRouter(api)

	rec := doJSON(r, "POST", "/api/connect/account", map[string]string{
		"email":        "coach@example.com",
		"businessName": "Iron Temple Gym",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var account stripe.Account
	if err := json.Unmarshal(rec.Body.Bytes(), &account); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if account.ID != "acct_123" {
		t.Errorf("account ID = %q", account.ID)
	}
}

func TestGetAccountEndpointMissingID(t *testing.T) {
	api := &recordingConnectAPI{}
	r := newConnectRouter(api)

	rec := doJSON(r, "GET", "/api/connect/account", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if api.calls != 0 {
		t.Errorf("provider called %d times for missing account ID", api.calls)
	}
}

func TestGetAccountEndpointNotFound(t *testing.T) {
	api := &recordingConnectAPI{err: &stripe.Error{HTTPStatusCode: http.StatusNotFound}}
	r := newConnectRouter(api)

	rec := doJSON(r, "GET", "/api/connect/account?accountId=acct_missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetAccountEndpointProviderFailure(t *testing.T) {
	api := &recordingConnectAPI{err: &stripe.Error{HTTPStatusCode: http.StatusBadGateway}}
	r := newConnectRouter(api)

	rec := doJSON(r, "GET", "/api/connect/account?accountId=acct_123", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestCreateLoginLinkEndpoint(t *testing.T) {
	api := &recordingConnectAPI{loginLink: &stripe.LoginLink{URL: "https://connect.stripe.com/login/abc"}}
	r := newConnectRouter(api)

	rec := doJSON(r, "PUT", "/api/connect/account", map[string]string{"accountId": "acct_123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["url"] != "https://connect.stripe.com/login/abc" {
		t.Errorf("login link URL = %q", body["url"])
	}
}

func TestCreateLoginLinkEndpointMissingID(t *testing.T) {
	api := &recordingConnectAPI{}
	r := newConnectRouter(api)

	rec := doJSON(r, "PUT", "/api/connect/account", map[string]string{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if api.calls != 0 {
		t.Errorf("provider called %d times for missing account ID", api.calls)
	}
}
