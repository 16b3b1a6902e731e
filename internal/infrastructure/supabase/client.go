// Package supabase holds the HTTP clients for the remote data store and auth
// platform, plus the repositories built on top of them. All access goes
// through the platform's REST interface; nothing is persisted locally.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fittrack/fittrack-api/internal/core/domain"
	"github.com/fittrack/fittrack-api/internal/observability"
)

// Client issues authenticated calls against the store's REST endpoint. It is
// safe for concurrent use: per-call state lives in Query values.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL, apiKey string, httpc *http.Client, log zerolog.Logger) *Client {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   httpc,
		log:     log,
	}
}

type filter struct {
	column string
	op     string
	value  string
}

// Query is an immutable builder over one collection. Every method is a value
// receiver returning a copy, so queries branched from a shared base never
// interfere — even across concurrent requests.
type Query struct {
	client  *Client
	table   string
	token   string
	columns string
	filters []filter
	single  bool
}

// From starts a query over the named collection.
func (c *Client) From(table string) Query {
	return Query{client: c, table: table}
}

// Select sets the column projection, including embedded-resource syntax such
// as "*, exercises(name, muscle_group)".
func (q Query) Select(columns string) Query {
	q.columns = columns
	return q
}

// Eq adds an equality predicate on a column.
func (q Query) Eq(column, value string) Query {
	q.filters = appendFilter(q.filters, filter{column: column, op: "eq", value: value})
	return q
}

// Gte adds a greater-or-equal predicate on a column.
func (q Query) Gte(column, value string) Query {
	q.filters = appendFilter(q.filters, filter{column: column, op: "gte", value: value})
	return q
}

// Single reduces a read to the first matching row.
func (q Query) Single() Query {
	q.single = true
	return q
}

// WithToken makes the call run as the given caller instead of the service
// role, so store-side row-level authorization applies to the calling user.
func (q Query) WithToken(token string) Query {
	q.token = token
	return q
}

// appendFilter copies before appending so that sibling queries sharing a base
// never alias the same backing array.
func appendFilter(fs []filter, f filter) []filter {
	out := make([]filter, len(fs), len(fs)+1)
	copy(out, fs)
	return append(out, f)
}

// Get executes a read and decodes the response into dest. With Single set, a
// non-empty array is reduced to its first element; an empty one yields
// domain.ErrNotFound.
func (q Query) Get(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, q.readURL(), nil)
	if err != nil {
		return fmt.Errorf("build store request: %w", err)
	}

	body, err := q.do(req)
	if err != nil {
		return err
	}

	if q.single {
		var rows []json.RawMessage
		if err := json.Unmarshal(body, &rows); err != nil {
			return fmt.Errorf("decode store response: %w", err)
		}
		if len(rows) == 0 {
			return domain.ErrNotFound
		}
		body = rows[0]
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode store response: %w", err)
	}
	return nil
}

// Insert executes an insert and, when dest is non-nil, decodes the inserted
// representation into it.
func (q Query) Insert(ctx context.Context, payload, dest any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode store payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, q.tableURL(), bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Prefer", "return=representation")

	body, err := q.do(req)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode store response: %w", err)
	}
	return nil
}

// Delete executes a delete scoped by the accumulated predicates.
func (q Query) Delete(ctx context.Context) error {
	u := q.tableURL()
	if params := q.params(false); len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("build store request: %w", err)
	}

	_, err = q.do(req)
	return err
}

func (q Query) tableURL() string {
	return q.client.baseURL + "/rest/v1/" + q.table
}

func (q Query) readURL() string {
	u := q.tableURL()
	if params := q.params(true); len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// params serializes predicates as column=op.value pairs, optionally with the
// select projection.
func (q Query) params(withSelect bool) url.Values {
	params := url.Values{}
	if withSelect && q.columns != "" {
		params.Set("select", q.columns)
	}
	for _, f := range q.filters {
		params.Set(f.column, f.op+"."+f.value)
	}
	return params
}

// do sends the request with the fixed connection headers and reads the whole
// response. Any status >= 400 becomes a *domain.StoreError carrying the
// response body.
func (q Query) do(req *http.Request) ([]byte, error) {
	req.Header.Set("apikey", q.client.apiKey)
	req.Header.Set("Content-Type", "application/json")
	token := q.token
	if token == "" {
		token = q.client.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := q.client.httpc.Do(req)
	observability.ObserveUpstream("store", start, err)
	if err != nil {
		return nil, fmt.Errorf("call data store: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read store response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		q.client.log.Warn().
			Int("status", resp.StatusCode).
			Str("table", q.table).
			Str("method", req.Method).
			Msg("data store request failed")
		return nil, &domain.StoreError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
