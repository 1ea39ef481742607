// Package indexapi fetches daily benchmark index levels from eodhd.com, with
// a per-day disk cache so repeated runs cost a single API call.
package indexapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fundwatch/date"
)

// Client queries the EODHD end-of-day API.
type Client struct {
	apiKey string
	base   string
	client *http.Client
}

// NewClient returns a client authenticated with the given API key. Responses
// are cached on disk and expire daily.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		base:   "https://eodhd.com/api",
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: &diskCache{http.DefaultTransport},
		},
	}
}

// Daily returns the adjusted close levels of a symbol between from and to,
// bounds included. Symbols use the EODHD convention, e.g. "000001.SHG" or
// "GSPC.INDX".
func (c *Client) Daily(symbol string, r date.Range) (*date.History[float64], error) {
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		c.base, url.PathEscape(symbol), c.apiKey, r.From, r.To)

	type info struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"adjusted_close"`
	}
	content := make([]info, 0)
	if err := c.getJSON(addr, &content); err != nil {
		return nil, fmt.Errorf("fetching %s levels: %w", symbol, err)
	}

	h := &date.History[float64]{}
	for _, p := range content {
		h.Append(p.Date, p.Close)
	}
	return h, nil
}

// Latest returns the most recent close of a symbol from the real-time
// endpoint. The payload shape varies, so the close is extracted by path
// rather than a fixed struct.
func (c *Client) Latest(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s",
		c.base, url.PathEscape(symbol), c.apiKey)

	var jobj any
	if err := c.getJSON(addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("fetching %s latest: %w", symbol, err)
	}
	jval, err := jsonpath.Get("$.close", jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("parsing %s latest: %w", symbol, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("parsing %s latest: close is %v, not a number", symbol, jval)
	}
	return val, nil
}

// getJSON performs an HTTP GET and unmarshals the JSON response into data.
// Transient failures are retried twice with doubling backoff; 4xx statuses
// are not, since they will not improve on a retry.
func (c *Client) getJSON(addr string, data any) error {
	const attempts = 3
	backoff := time.Second

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}
		resp, err := c.client.Get(addr)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return lastErr
			}
			continue
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, resp.Body); err != nil {
			resp.Body.Close()
			lastErr = err
			continue
		}
		resp.Body.Close()
		return json.Unmarshal(buf.Bytes(), data)
	}
	return lastErr
}

// ParseSpec splits a "name=symbol" fetch argument into the benchmark name the
// portfolio document uses and the EODHD symbol to query. A bare symbol names
// the benchmark after its lowercased ticker part.
func ParseSpec(arg string) (name, symbol string, err error) {
	if n, s, ok := strings.Cut(arg, "="); ok {
		n, s = strings.TrimSpace(n), strings.TrimSpace(s)
		if n == "" || s == "" {
			return "", "", fmt.Errorf("invalid benchmark spec %q: want name=symbol", arg)
		}
		return n, s, nil
	}
	symbol = strings.TrimSpace(arg)
	if symbol == "" {
		return "", "", fmt.Errorf("invalid benchmark spec %q: want name=symbol", arg)
	}
	name = strings.ToLower(symbol)
	if ticker, _, ok := strings.Cut(name, "."); ok && ticker != "" {
		name = ticker
	}
	return name, symbol, nil
}
