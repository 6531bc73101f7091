package apply

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aspk74/auto-apply/internal/domain/job"
	"github.com/aspk74/auto-apply/internal/profile"
)

const maxErrorBodyBytes = 2048

// LeverSubmitter posts applications to the Lever postings API.
type LeverSubmitter struct {
	client  *http.Client
	apiBase string
}

func NewLeverSubmitter() *LeverSubmitter {
	return &LeverSubmitter{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiBase: "https://jobs.lever.co/api/v0/postings",
	}
}

func (s *LeverSubmitter) Platform() string {
	return job.SourceLever
}

func (s *LeverSubmitter) Submit(ctx context.Context, j job.Record, resume profile.Resume, coverLetter string) (Receipt, error) {
	if coverLetter == "" {
		coverLetter = GenerateCoverLetter(j, resume)
	}
	info := resume.PersonalInfo
	payload := map[string]string{
		"name":         info.Name,
		"email":        info.Email,
		"phone":        info.Phone,
		"resume":       "", // attachment upload handled separately
		"cover_letter": coverLetter,
		"linkedin":     info.LinkedIn,
		"website":      info.Portfolio,
		"github":       info.GitHub,
	}
	url := fmt.Sprintf("%s/%s/%s/apply", strings.TrimRight(s.apiBase, "/"), j.Company, j.ID)
	return postApplication(ctx, s.client, s.Platform(), url, payload)
}

// GreenhouseSubmitter posts applications to the Greenhouse board API.
type GreenhouseSubmitter struct {
	client  *http.Client
	apiBase string
}

func NewGreenhouseSubmitter() *GreenhouseSubmitter {
	return &GreenhouseSubmitter{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiBase: "https://boards-api.greenhouse.io/v1/boards",
	}
}

func (s *GreenhouseSubmitter) Platform() string {
	return job.SourceGreenhouse
}

func (s *GreenhouseSubmitter) Submit(ctx context.Context, j job.Record, resume profile.Resume, coverLetter string) (Receipt, error) {
	if coverLetter == "" {
		coverLetter = GenerateCoverLetter(j, resume)
	}
	info := resume.PersonalInfo
	first, last := splitName(info.Name)
	payload := map[string]string{
		"first_name":   first,
		"last_name":    last,
		"email":        info.Email,
		"phone":        info.Phone,
		"resume":       "",
		"cover_letter": coverLetter,
		"linkedin_url": info.LinkedIn,
		"website":      info.Portfolio,
		"github":       info.GitHub,
	}
	url := fmt.Sprintf("%s/%s/jobs/%s/apply", strings.TrimRight(s.apiBase, "/"), j.Company, j.ID)
	return postApplication(ctx, s.client, s.Platform(), url, payload)
}

func postApplication(ctx context.Context, client *http.Client, platform, url string, payload map[string]string) (Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Receipt{}, &SubmissionError{Platform: platform, Reason: "encode payload", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, &SubmissionError{Platform: platform, Reason: "build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "AutoApplyPlatform/1.0.0")

	resp, err := client.Do(req)
	if err != nil {
		return Receipt{}, &SubmissionError{Platform: platform, Reason: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := fmt.Sprintf("status %d", resp.StatusCode)
		if msg := strings.TrimSpace(string(respBody)); msg != "" {
			reason = fmt.Sprintf("%s: %s", reason, msg)
		}
		return Receipt{}, &SubmissionError{Platform: platform, Reason: reason}
	}

	return Receipt{
		ReferenceID: referenceFromResponse(platform, respBody),
		SubmittedAt: time.Now(),
	}, nil
}

// referenceFromResponse pulls the platform's reference id out of the
// response when one is present, falling back to a locally generated id so
// every logged application has a traceable reference.
func referenceFromResponse(platform string, body []byte) string {
	var parsed struct {
		ReferenceID string `json:"reference_id"`
		ID          string `json:"id"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.ReferenceID != "" {
			return parsed.ReferenceID
		}
		if parsed.ID != "" {
			return parsed.ID
		}
	}
	return fmt.Sprintf("%s-%s", platform, uuid.NewString()[:8])
}

func splitName(name string) (string, string) {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], fields[len(fields)-1]
}
