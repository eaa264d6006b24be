package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"red-remodels-backend/internal/domain"
	"red-remodels-backend/pkg/logger"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// siteverifyResponse mirrors Google's verification response. Score is
// a pointer because v2 responses omit it entirely.
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verifier redeems client tokens against the reCAPTCHA siteverify
// endpoint. An empty secret disables verification: Verify returns a
// Skipped verdict and the pipeline proceeds as if accepted.
type Verifier struct {
	secret   string
	minScore float64
	endpoint string
	client   *http.Client
}

func NewVerifier(secret string, minScore float64) *Verifier {
	return &Verifier{
		secret:   secret,
		minScore: minScore,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint overrides the siteverify URL. Used by tests.
func (v *Verifier) WithEndpoint(endpoint string) *Verifier {
	v.endpoint = endpoint
	return v
}

// Verify redeems the token. Network and decode failures are mapped to
// rejection rather than propagated: a failed verification is a normal
// user-facing outcome, not a system fault.
func (v *Verifier) Verify(ctx context.Context, token string) domain.CaptchaVerdict {
	if v.secret == "" {
		return domain.CaptchaVerdict{Status: domain.VerdictSkipped}
	}

	if token == "" {
		return domain.CaptchaVerdict{Status: domain.VerdictRejected, Reason: "Missing reCAPTCHA token."}
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return rejectedUnverifiable(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return rejectedUnverifiable(err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Fail closed on a malformed service response.
		return rejectedUnverifiable(err)
	}

	if !result.Success {
		return domain.CaptchaVerdict{Status: domain.VerdictRejected, Reason: "reCAPTCHA verification failed."}
	}

	if result.Score != nil && *result.Score < v.minScore {
		return domain.CaptchaVerdict{
			Status: domain.VerdictRejected,
			Score:  result.Score,
			Reason: "Suspicious activity detected.",
		}
	}

	return domain.CaptchaVerdict{Status: domain.VerdictAccepted, Score: result.Score}
}

func rejectedUnverifiable(err error) domain.CaptchaVerdict {
	if logger.Log != nil {
		logger.Log.Error("Failed to verify reCAPTCHA token", "error", err)
	}
	return domain.CaptchaVerdict{Status: domain.VerdictRejected, Reason: "Unable to verify reCAPTCHA token."}
}
