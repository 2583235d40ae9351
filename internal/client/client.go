// Package client provides the typed HTTP client and the editing session
// that keep a browser-side resume in sync with the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/uptoskills/resume-builder/internal/db"
	"github.com/uptoskills/resume-builder/internal/resume"
	"github.com/uptoskills/resume-builder/internal/server"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response decoded into its error body.
type APIError struct {
	Status        int
	Message       string
	AIUnavailable bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a typed client for the resume backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (scheme://host, no
// trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SaveResume stores the whole document for a user, overwriting any
// previous version.
func (c *Client) SaveResume(ctx context.Context, userID string, doc resume.Document) (*db.ResumeRecord, error) {
	req := server.SaveResumeRequest{UserID: userID, ResumeData: &doc}
	var resp server.SaveResumeResponse
	if err := c.postJSON(ctx, "/api/save-resume", req, &resp); err != nil {
		return nil, err
	}
	return resp.Resume, nil
}

// GetResume loads a user's saved resume.
func (c *Client) GetResume(ctx context.Context, userID string) (*db.ResumeRecord, error) {
	var resp server.GetResumeResponse
	if err := c.getJSON(ctx, "/api/get-resume/"+url.PathEscape(userID), &resp); err != nil {
		return nil, err
	}
	return resp.Resume, nil
}

// GenerateShareLink creates a read-only share link for the user's saved
// resume. expiryDays of zero means the link never expires.
func (c *Client) GenerateShareLink(ctx context.Context, userID string, expiryDays int) (string, *time.Time, error) {
	path := "/api/generate-share-link/" + url.PathEscape(userID)
	if expiryDays > 0 {
		path += "?expiryDays=" + strconv.Itoa(expiryDays)
	}
	var resp server.ShareLinkResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return "", nil, err
	}
	return resp.ShareURL, resp.ExpiryDate, nil
}

// GetSharedResume resolves a share token into read-only resume data.
func (c *Client) GetSharedResume(ctx context.Context, token string) (resume.Document, error) {
	var resp server.SharedResumeResponse
	if err := c.getJSON(ctx, "/api/shared-resume/"+url.PathEscape(token), &resp); err != nil {
		return resume.Document{}, err
	}
	return resp.ResumeData, nil
}

// EnhanceSection rewrites one section's text.
func (c *Client) EnhanceSection(ctx context.Context, section, inputText string) (string, error) {
	req := server.EnhanceSectionRequest{Section: section, InputText: inputText}
	var resp server.EnhanceSectionResponse
	if err := c.postJSON(ctx, "/api/enhance-section", req, &resp); err != nil {
		return "", err
	}
	return resp.EnhancedText, nil
}

// AutoEnhance rewrites every textual field of the document in one call.
func (c *Client) AutoEnhance(ctx context.Context, doc resume.Document) (resume.Document, error) {
	req := server.AutoEnhanceRequest{ResumeData: &doc}
	var resp server.AutoEnhanceResponse
	if err := c.postJSON(ctx, "/api/auto-enhance-resume", req, &resp); err != nil {
		return resume.Document{}, err
	}
	return resp.EnhancedResume, nil
}

// GeneratePDF renders the document and returns the PDF bytes.
func (c *Client) GeneratePDF(ctx context.Context, doc resume.Document) ([]byte, error) {
	body, err := json.Marshal(server.GeneratePDFRequest{ResumeData: &doc})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-pdf", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(httpResp)
	}
	return io.ReadAll(httpResp.Body)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError turns an error response into an *APIError, falling back
// to the raw body when it is not the usual JSON shape.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Error         string `json:"error"`
		AIUnavailable bool   `json:"aiUnavailable"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{
		Status:        resp.StatusCode,
		Message:       body.Error,
		AIUnavailable: body.AIUnavailable,
	}
}
