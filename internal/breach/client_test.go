package breach

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/securepass/securepass-go/internal/model"
)

// sha1Parts returns the uppercase hex digest split into the 5-char prefix
// and 35-char suffix, as the range protocol does.
func sha1Parts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:5], digest[5:]
}

func newPasswordServer(t *testing.T, body func(prefix string) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := strings.TrimPrefix(r.URL.Path, "/range/")
		if len(prefix) != 5 {
			t.Errorf("expected 5-character prefix in request path, got %q", prefix)
		}
		fmt.Fprint(w, body(prefix))
	}))
}

func testClient(srv *httptest.Server) *Client {
	return NewClient(Options{
		PasswordAPIURL: srv.URL + "/range/",
		BreachAPIURL:   srv.URL + "/breachedaccount/",
		MinInterval:    time.Millisecond,
		HTTPClient:     srv.Client(),
	})
}

func TestCheckPasswordBreached(t *testing.T) {
	const password = "password123"
	_, suffix := sha1Parts(password)

	srv := newPasswordServer(t, func(string) string {
		return "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n" +
			suffix + ":2847\r\n" +
			"011053FD0102E94D6AE2F8B83D76FAF94F6:1"
	})
	defer srv.Close()

	result, err := testClient(srv).CheckPassword(context.Background(), password)
	if err != nil {
		t.Fatalf("CheckPassword() unexpected error: %v", err)
	}
	if !result.Breached {
		t.Error("CheckPassword() = not breached, want breached")
	}
	if result.ExposureCount != 2847 {
		t.Errorf("ExposureCount = %d, want 2847", result.ExposureCount)
	}
	if result.RiskLevel != model.RiskCritical {
		t.Errorf("RiskLevel = %v, want %v", result.RiskLevel, model.RiskCritical)
	}
}

func TestCheckPasswordNotBreached(t *testing.T) {
	srv := newPasswordServer(t, func(string) string {
		return "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n" +
			"011053FD0102E94D6AE2F8B83D76FAF94F6:1"
	})
	defer srv.Close()

	result, err := testClient(srv).CheckPassword(context.Background(), "some-unlisted-password")
	if err != nil {
		t.Fatalf("CheckPassword() unexpected error: %v", err)
	}
	if result.Breached || result.ExposureCount != 0 {
		t.Errorf("CheckPassword() = %+v, want not breached with count 0", result)
	}
	if result.RiskLevel != model.RiskSafe {
		t.Errorf("RiskLevel = %v, want %v", result.RiskLevel, model.RiskSafe)
	}
}

func TestCheckPasswordSuffixCaseInsensitive(t *testing.T) {
	const password = "qwerty"
	_, suffix := sha1Parts(password)

	srv := newPasswordServer(t, func(string) string {
		return strings.ToLower(suffix) + ":10500\n"
	})
	defer srv.Close()

	result, err := testClient(srv).CheckPassword(context.Background(), password)
	if err != nil {
		t.Fatalf("CheckPassword() unexpected error: %v", err)
	}
	if !result.Breached || result.ExposureCount != 10500 {
		t.Errorf("CheckPassword() = %+v, want breached with count 10500", result)
	}
}

func TestCheckPasswordMalformedBody(t *testing.T) {
	srv := newPasswordServer(t, func(string) string {
		return "this body has no separators"
	})
	defer srv.Close()

	_, err := testClient(srv).CheckPassword(context.Background(), "whatever")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrMalformedResponse)
	}
}

func TestCheckPasswordBadCount(t *testing.T) {
	const password = "hunter2"
	_, suffix := sha1Parts(password)

	srv := newPasswordServer(t, func(string) string {
		return suffix + ":not-a-number"
	})
	defer srv.Close()

	_, err := testClient(srv).CheckPassword(context.Background(), password)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrMalformedResponse)
	}
}

func TestCheckPasswordUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv).CheckPassword(context.Background(), "whatever")
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrUnexpectedStatus)
	}
}

func TestCheckPasswordTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(Options{
		PasswordAPIURL: srv.URL + "/range/",
		MinInterval:    time.Millisecond,
		HTTPClient:     &http.Client{Timeout: 20 * time.Millisecond},
	})

	_, err := client.CheckPassword(context.Background(), "whatever")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrTimeout)
	}
	// A timeout must never read as a clean "not breached".
	if err == nil {
		t.Fatal("timeout produced a result instead of an error")
	}
}

func TestCheckPasswordNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(Options{
		PasswordAPIURL: srv.URL + "/range/",
		MinInterval:    time.Millisecond,
	})

	_, err := client.CheckPassword(context.Background(), "whatever")
	if !errors.Is(err, ErrNetworkFailure) {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrNetworkFailure)
	}
}

func TestCheckPasswordRateLimiting(t *testing.T) {
	srv := newPasswordServer(t, func(string) string { return "" })
	defer srv.Close()

	const interval = 60 * time.Millisecond
	client := NewClient(Options{
		PasswordAPIURL: srv.URL + "/range/",
		MinInterval:    interval,
		HTTPClient:     srv.Client(),
	})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := client.CheckPassword(context.Background(), "whatever"); err != nil {
			t.Fatalf("CheckPassword() unexpected error: %v", err)
		}
	}
	// First call is immediate, the next two must each wait the interval.
	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Errorf("3 calls completed in %v, want at least %v between requests", elapsed, 2*interval)
	}
}

func TestCheckEmailRequiresAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := testClient(srv).CheckEmail(context.Background(), "user@example.com", "")
	if !errors.Is(err, ErrAPIKeyRequired) {
		t.Errorf("CheckEmail() error = %v, want %v", err, ErrAPIKeyRequired)
	}
	if called {
		t.Error("CheckEmail() hit the network without an API key")
	}
}

func TestCheckEmailBreached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("hibp-api-key"); got != "test-key" {
			t.Errorf("hibp-api-key header = %q, want %q", got, "test-key")
		}
		if !strings.HasSuffix(r.URL.Path, "/breachedaccount/user@example.com") {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"Name":"Adobe","Domain":"adobe.com","BreachDate":"2013-10-04","DataClasses":["Email addresses","Passwords"],"IsVerified":true,"Description":"In October 2013..."},
			{"Name":"LinkedIn","Domain":"linkedin.com","BreachDate":"2012-05-05","DataClasses":["Email addresses"],"IsVerified":true,"Description":""}
		]`)
	}))
	defer srv.Close()

	result, err := testClient(srv).CheckEmail(context.Background(), "user@example.com", "test-key")
	if err != nil {
		t.Fatalf("CheckEmail() unexpected error: %v", err)
	}
	if !result.Breached || result.BreachCount != 2 {
		t.Fatalf("CheckEmail() = %+v, want 2 breaches", result)
	}
	first := result.Breaches[0]
	if first.Name != "Adobe" || first.Date != "2013-10-04" || !first.Verified {
		t.Errorf("first record = %+v, want Adobe/2013-10-04/verified", first)
	}
	if len(first.DataClasses) != 2 {
		t.Errorf("DataClasses = %v, want 2 entries", first.DataClasses)
	}
}

func TestCheckEmailNotBreached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := testClient(srv).CheckEmail(context.Background(), "clean@example.com", "test-key")
	if err != nil {
		t.Fatalf("CheckEmail() unexpected error: %v", err)
	}
	if result.Breached || result.BreachCount != 0 {
		t.Errorf("CheckEmail() = %+v, want no breaches", result)
	}
	if result.Email != "clean@example.com" {
		t.Errorf("Email = %q, want %q", result.Email, "clean@example.com")
	}
}

func TestCheckEmailUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv).CheckEmail(context.Background(), "user@example.com", "bad-key")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("CheckEmail() error = %v, want %v", err, ErrUnauthorized)
	}
}

func TestCheckEmailMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json at all")
	}))
	defer srv.Close()

	_, err := testClient(srv).CheckEmail(context.Background(), "user@example.com", "test-key")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("CheckEmail() error = %v, want %v", err, ErrMalformedResponse)
	}
}

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		breached bool
		count    int
		want     model.RiskLevel
	}{
		{false, 0, model.RiskSafe},
		{true, 1, model.RiskLow},
		{true, 9, model.RiskLow},
		{true, 10, model.RiskModerate},
		{true, 99, model.RiskModerate},
		{true, 100, model.RiskHigh},
		{true, 999, model.RiskHigh},
		{true, 1000, model.RiskCritical},
		{true, 5000000, model.RiskCritical},
	}
	for _, tt := range tests {
		if got := RiskLevelFor(tt.breached, tt.count); got != tt.want {
			t.Errorf("RiskLevelFor(%v, %d) = %v, want %v", tt.breached, tt.count, got, tt.want)
		}
	}
}
