package banxico

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"SADE/internal/domain/models"
	drepo "SADE/internal/domain/repository"
	xhttp "SADE/pkg/http"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://www.banxico.org.mx/SieAPIRest/service/v1"

var (
	ErrSeriesNotFound = errors.New("banxico: series missing from response")
	ErrShortSeries    = errors.New("banxico: fewer data points than requested")
)

// Client fetches series from the SIE REST API.
type Client struct {
	baseURL string
	token   string
	http    *xhttp.Client
}

// Option configures Client.
type Option func(*options)

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTransport replaces the HTTP transport, used by tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// New creates a Banxico client. An empty baseURL selects DefaultBaseURL.
func New(baseURL, token string, opts ...Option) *Client {
	o := &options{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(o)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    xhttp.NewClient(xhttp.WithTimeout(o.timeout), xhttp.WithTransport(o.transport)),
	}
}

type sieResponse struct {
	BMX struct {
		Series []sieSeries `json:"series"`
	} `json:"bmx"`
}

type sieSeries struct {
	IDSerie string    `json:"idSerie"`
	Titulo  string    `json:"titulo"`
	Datos   []sieDato `json:"datos"`
}

type sieDato struct {
	Fecha string `json:"fecha"`
	Dato  string `json:"dato"`
}

// Series returns the last n data points of series id, oldest first. Values
// that do not parse as numbers are returned raw with Numeric unset.
func (c *Client) Series(ctx context.Context, id string, n int) ([]models.DataPoint, error) {
	if n < 1 {
		return nil, fmt.Errorf("banxico %s: invalid count %d", id, n)
	}

	var resp sieResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         fmt.Sprintf("%s/series/%s/datos/ultimos/%d", c.baseURL, id, n),
		QueryParams: map[string][]string{"token": {c.token}},
		Headers:     map[string]string{"Accept": "application/json"},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("banxico %s: %w", id, err)
	}

	s, ok := findSeries(resp.BMX.Series, id)
	if !ok {
		return nil, fmt.Errorf("banxico %s: %w", id, ErrSeriesNotFound)
	}
	if len(s.Datos) < n {
		return nil, fmt.Errorf("banxico %s: got %d of %d: %w", id, len(s.Datos), n, ErrShortSeries)
	}

	points := make([]models.DataPoint, 0, len(s.Datos))
	for _, d := range s.Datos {
		v, ok := parseValue(d.Dato)
		points = append(points, models.DataPoint{Fecha: d.Fecha, Dato: d.Dato, Value: v, Numeric: ok})
	}
	return points, nil
}

func findSeries(series []sieSeries, id string) (sieSeries, bool) {
	for _, s := range series {
		if strings.EqualFold(s.IDSerie, id) {
			return s, true
		}
	}
	return sieSeries{}, false
}

// parseValue accepts the published format, which uses "," as a thousands
// separator and "N/E" for missing values.
func parseValue(raw string) (decimal.Decimal, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v, true
}

var _ drepo.SeriesSource = (*Client)(nil)
