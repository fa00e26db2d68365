package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Client talks to a running scheduler API.
type Client struct {
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Schedule asks the server to schedule request under policy.
func (c *Client) Schedule(policy core.PolicyKind, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post(fmt.Sprintf("%s/api/v1/%s", c.BaseURL, policy), request, &response)
	return response, err
}

// Compare asks the server to run every policy on request.
func (c *Client) Compare(request requests.ScheduleRequests) (responses.CompareResponse, error) {
	var response responses.CompareResponse
	err := c.post(fmt.Sprintf("%s/api/v1/all", c.BaseURL), request, &response)
	return response, err
}

func (c *Client) post(url string, request requests.ScheduleRequests, out interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("calling scheduler at %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("scheduler responded with status %d: %s", resp.StatusCode, failure.Error)
		}
		return fmt.Errorf("scheduler responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
