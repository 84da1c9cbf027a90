package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"library-lending/internal/pkg/errs"
)

// client is a thin JSON wrapper over the service API. Every call
// prints the response body (pretty-printed when it is JSON) and
// returns an error for non-2xx answers.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient() *client {
	return &client{
		baseURL: serverURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) get(path string) error {
	return c.do(http.MethodGet, path, nil)
}

func (c *client) post(path string, body any) error {
	return c.do(http.MethodPost, path, body)
}

func (c *client) patch(path string, body any) error {
	return c.do(http.MethodPatch, path, body)
}

func (c *client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil)
}

func (c *client) do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Wrap(err, "failed to read response")
	}

	if resp.StatusCode == http.StatusNoContent {
		fmt.Printf("%s (no content)\n", resp.Status)
		return nil
	}

	printBody(raw)

	if resp.StatusCode >= 400 {
		return errs.New("server answered " + resp.Status)
	}
	return nil
}

func printBody(raw []byte) {
	if len(raw) == 0 {
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())
}
