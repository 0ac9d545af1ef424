// Package breach checks passwords and emails against the Have I Been Pwned
// database. Password checks use k-anonymity: only the first 5 hex characters
// of the SHA-1 digest ever leave the process, so the remote service cannot
// tell which of the hundreds of candidate hashes behind that prefix was
// queried. Verification failures are always surfaced as errors, never as
// "not breached".
package breach

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/securepass/securepass-go/internal/model"
)

const (
	DefaultPasswordAPIURL = "https://api.pwnedpasswords.com/range/"
	DefaultBreachAPIURL   = "https://haveibeenpwned.com/api/v3/breachedaccount/"
	DefaultUserAgent      = "securepass-go/1.0"
	DefaultTimeout        = 10 * time.Second

	// DefaultMinInterval is the minimum spacing between outbound requests,
	// including sequential batch checks.
	DefaultMinInterval = 1500 * time.Millisecond

	hashPrefixLen = 5

	maxDescriptionLen = 200
)

var (
	ErrAPIKeyRequired    = errors.New("api key required for email breach checking")
	ErrUnauthorized      = errors.New("api key rejected by breach service")
	ErrTimeout           = errors.New("breach service request timed out")
	ErrNetworkFailure    = errors.New("breach service unreachable")
	ErrUnexpectedStatus  = errors.New("breach service returned unexpected status")
	ErrMalformedResponse = errors.New("breach service returned malformed response")
)

// Options configures a Client. Zero fields fall back to defaults.
type Options struct {
	PasswordAPIURL string
	BreachAPIURL   string
	UserAgent      string
	Timeout        time.Duration
	MinInterval    time.Duration
	HTTPClient     *http.Client
}

// Client queries the breach database. Each instance carries its own rate
// limiter, so independently limited clients can coexist in one process.
// Safe for concurrent use; concurrent calls serialize on the limiter so the
// minimum-interval invariant holds.
type Client struct {
	httpClient     *http.Client
	passwordAPIURL string
	breachAPIURL   string
	userAgent      string
	limiter        *rate.Limiter
}

// NewClient creates a Client with the given options.
func NewClient(opts Options) *Client {
	if opts.PasswordAPIURL == "" {
		opts.PasswordAPIURL = DefaultPasswordAPIURL
	}
	if opts.BreachAPIURL == "" {
		opts.BreachAPIURL = DefaultBreachAPIURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MinInterval == 0 {
		opts.MinInterval = DefaultMinInterval
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		httpClient:     httpClient,
		passwordAPIURL: opts.PasswordAPIURL,
		breachAPIURL:   opts.BreachAPIURL,
		userAgent:      opts.UserAgent,
		limiter:        rate.NewLimiter(rate.Every(opts.MinInterval), 1),
	}
}

// CheckPassword checks whether the password appears in known breaches using
// the k-anonymity range protocol. Only the 5-character digest prefix is sent;
// the full digest's suffix is compared locally against the returned
// SUFFIX:COUNT candidates, tolerating arbitrary hex casing.
func (c *Client) CheckPassword(ctx context.Context, password string) (model.BreachResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return model.BreachResult{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:hashPrefixLen], digest[hashPrefixLen:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.passwordAPIURL+prefix, nil)
	if err != nil {
		return model.BreachResult{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.BreachResult{}, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.BreachResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.BreachResult{}, transportError(err)
	}

	count, found, err := matchSuffix(string(body), suffix)
	if err != nil {
		return model.BreachResult{}, err
	}

	return model.BreachResult{
		Breached:      found,
		ExposureCount: count,
		RiskLevel:     RiskLevelFor(found, count),
	}, nil
}

// matchSuffix scans a newline-delimited SUFFIX:COUNT body for the given
// digest suffix, case-insensitively.
func matchSuffix(body, suffix string) (count int, found bool, err error) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		candidate, countText, ok := strings.Cut(line, ":")
		if !ok {
			return 0, false, fmt.Errorf("%w: missing separator", ErrMalformedResponse)
		}
		if !strings.EqualFold(candidate, suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil || n < 0 {
			return 0, false, fmt.Errorf("%w: bad exposure count", ErrMalformedResponse)
		}
		return n, true, nil
	}
	return 0, false, nil
}

// CheckEmail looks up breaches for an email address. The API key is required;
// a missing key fails immediately and an invalid key surfaces as
// ErrUnauthorized. A 404 from the service means the email is not in any known
// breach.
func (c *Client) CheckEmail(ctx context.Context, email, apiKey string) (model.EmailBreachResult, error) {
	if apiKey == "" {
		return model.EmailBreachResult{}, ErrAPIKeyRequired
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return model.EmailBreachResult{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.breachAPIURL+url.PathEscape(email), nil)
	if err != nil {
		return model.EmailBreachResult{}, fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("hibp-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.EmailBreachResult{}, transportError(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return model.EmailBreachResult{Email: email}, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return model.EmailBreachResult{}, ErrUnauthorized
	case http.StatusOK:
		// Fall through to decoding.
	default:
		return model.EmailBreachResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var records []struct {
		Name        string   `json:"Name"`
		Domain      string   `json:"Domain"`
		BreachDate  string   `json:"BreachDate"`
		DataClasses []string `json:"DataClasses"`
		IsVerified  bool     `json:"IsVerified"`
		Description string   `json:"Description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return model.EmailBreachResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result := model.EmailBreachResult{
		Email:       email,
		Breached:    len(records) > 0,
		BreachCount: len(records),
	}
	for _, r := range records {
		desc := r.Description
		if len(desc) > maxDescriptionLen {
			desc = desc[:maxDescriptionLen]
		}
		result.Breaches = append(result.Breaches, model.BreachRecord{
			Name:        r.Name,
			Domain:      r.Domain,
			Date:        r.BreachDate,
			DataClasses: r.DataClasses,
			Verified:    r.IsVerified,
			Description: desc,
		})
	}
	return result, nil
}

// RiskLevelFor classifies breach exposure severity from the exposure count.
func RiskLevelFor(breached bool, exposureCount int) model.RiskLevel {
	switch {
	case !breached:
		return model.RiskSafe
	case exposureCount < 10:
		return model.RiskLow
	case exposureCount < 100:
		return model.RiskModerate
	case exposureCount < 1000:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// transportError maps a transport failure to the error taxonomy, keeping
// timeouts distinct.
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
}
