// Package contact validates and submits the storefront contact form. It is
// an independent subsystem: it never touches the cart.
package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form holds the submitted contact fields.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Validate checks the form fields and returns one message per failing
// field. An empty result means the form is valid.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required."
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "Email is required."
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Invalid email format."
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "Message is required."
	}
	return errs
}

// Submitter posts a valid form to the remote endpoint as a url-encoded
// body, accepting a JSON reply.
type Submitter struct {
	client   *http.Client
	endpoint string
}

func NewSubmitter(endpoint string, timeout time.Duration) *Submitter {
	return &Submitter{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

// remoteErrors is the failure shape the form backend replies with.
type remoteErrors struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Submit sends the form. The caller validates first; Submit only reports
// transport and remote failures.
func (s *Submitter) Submit(ctx context.Context, f Form) error {
	values := url.Values{}
	values.Set("name", f.Name)
	values.Set("email", f.Email)
	values.Set("message", f.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint,
		strings.NewReader(values.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("contact submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var remote remoteErrors
	if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && len(remote.Errors) > 0 {
		msgs := make([]string, 0, len(remote.Errors))
		for _, e := range remote.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("contact submit: %s", strings.Join(msgs, ", "))
	}
	return fmt.Errorf("contact submit: unexpected status %d", resp.StatusCode)
}
