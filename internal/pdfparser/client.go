package pdfparser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ParsedApplication is the fixed response shape of the parse service.
type ParsedApplication struct {
	Rushee         ParsedRushee         `json:"rushee"`
	Availabilities []ParsedAvailability `json:"availabilities"`
}

type ParsedRushee struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Major       *string `json:"major,omitempty"`
}

// ParsedAvailability carries Date as YYYY-MM-DD and the times as RFC 3339
// UTC instants; an unparseable date arrives as the empty string.
type ParsedAvailability struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Client calls the application parse service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

func (c *Client) ParseApplication(
	ctx context.Context,
	filename string,
	file io.Reader,
) (*ParsedApplication, error) {

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/parse-application/",
		&body,
	)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call parse service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("parse service rejected file",
			zap.Int("status", resp.StatusCode),
			zap.String("filename", filename),
		)
		return nil, fmt.Errorf("parse service: status %d: %s", resp.StatusCode, text)
	}

	var parsed ParsedApplication
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode parse response: %w", err)
	}

	c.log.Info("application parsed",
		zap.String("filename", filename),
		zap.String("rushee_email", parsed.Rushee.Email),
		zap.Int("availabilities", len(parsed.Availabilities)),
	)

	return &parsed, nil
}
