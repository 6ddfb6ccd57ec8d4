package socrata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/treeboard/pkg/domain/interfaces"
	"github.com/secmon-lab/treeboard/pkg/domain/model"
	"github.com/secmon-lab/treeboard/pkg/domain/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/secmon-lab/treeboard/pkg/service/socrata")

// maxErrorBody bounds how much of an error response is kept for diagnostics
const maxErrorBody = 512

// Client queries a Socrata dataset of the street tree census
type Client struct {
	endpoint   string
	appToken   string
	httpClient *http.Client
}

var _ interfaces.TreeCensus = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithEndpoint sets the dataset resource URL
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithAppToken sets the Socrata application token sent as X-App-Token
func WithAppToken(token string) Option {
	return func(c *Client) {
		c.appToken = token
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets a timeout on a copy of the HTTP client configured so far. Zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = timeout
		c.httpClient = &hc
	}
}

// New creates a new census client
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the dataset resource URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

type speciesRow struct {
	SpcCommon *string `json:"spc_common"`
}

// ListSpecies implements interfaces.TreeCensus
func (c *Client) ListSpecies(ctx context.Context) ([]types.Species, error) {
	var rows []speciesRow
	if err := c.get(ctx, querySpecies, SpeciesQuery(), &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to list species")
	}

	species := make([]types.Species, 0, len(rows))
	for _, row := range rows {
		// Stumps and dead trees have no species
		if row.SpcCommon == nil || *row.SpcCommon == "" {
			continue
		}
		species = append(species, types.Species(*row.SpcCommon))
	}
	return species, nil
}

type healthRow struct {
	Health  *string    `json:"health"`
	Steward *string    `json:"steward"`
	Count   countValue `json:"count_tree_id"`
}

// HealthBySteward implements interfaces.TreeCensus
func (c *Client) HealthBySteward(ctx context.Context, borough types.Borough, species types.Species) ([]model.TreeRecord, error) {
	var rows []healthRow
	if err := c.get(ctx, queryHealthBySteward, HealthByStewardQuery(borough, species), &rows); err != nil {
		return nil, goerr.Wrap(err, "failed to query health by steward",
			goerr.V("borough", borough),
			goerr.V("species", species))
	}

	records := make([]model.TreeRecord, 0, len(rows))
	for _, row := range rows {
		rec := model.TreeRecord{
			Steward: model.StewardNone,
			Count:   int64(row.Count),
		}
		if row.Health != nil {
			rec.Health = model.Health(*row.Health)
		}
		if row.Steward != nil {
			rec.Steward = model.Steward(*row.Steward)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Client) get(ctx context.Context, queryName string, params []Param, out any) (err error) {
	url := BuildQuery(c.endpoint, params...)

	ctx, span := tracer.Start(ctx, "socrata.query",
		trace.WithAttributes(
			attribute.String("census.query", queryName),
			attribute.String("census.url", url),
		),
	)
	start := time.Now()
	defer func() {
		censusRequestDuration.WithLabelValues(queryName).Observe(time.Since(start).Seconds())
		result := "ok"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		censusRequests.WithLabelValues(queryName, result).Inc()
		span.End()
	}()

	ctxlog.From(ctx).Debug("Querying tree census", "query", queryName, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create census request", goerr.V("url", url))
	}
	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(errors.Join(model.ErrUpstream, err), "census request failed",
			goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.Wrap(model.ErrUpstream, "census returned non-success status",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(bytes.TrimSpace(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(errors.Join(model.ErrUpstream, err), "failed to decode census response",
			goerr.V("url", url))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	return nil
}

// countValue decodes Socrata aggregates, which are returned as JSON strings, as well as plain numbers
type countValue int64

// UnmarshalJSON implements json.Unmarshaler
func (v *countValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "invalid count string")
		}
		raw = s
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Aggregates may come back as decimals such as "12.0"
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return goerr.Wrap(err, "invalid count value", goerr.V("value", raw))
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return goerr.New("count is not a whole number", goerr.V("value", raw))
		}
		n = int64(f)
	}
	if n < 0 {
		return goerr.New("count is negative", goerr.V("value", raw))
	}
	*v = countValue(n)
	return nil
}
