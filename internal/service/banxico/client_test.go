package banxico

import (
	"context"
	"errors"
	"net/http"
	"testing"

	xhttp "SADE/pkg/http"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://sie.test/SieAPIRest/service/v1"

func newTestClient(mock *httpmock.MockTransport) *Client {
	return New(testBase+"/", "tkn", WithTransport(mock))
}

func TestSeriesReturnsDataPoints(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testBase+"/series/SF43718/datos/ultimos/2",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "tkn", req.URL.Query().Get("token"))
			return httpmock.NewStringResponse(http.StatusOK, `{"bmx":{"series":[{"idSerie":"SF43718","titulo":"FIX","datos":[
				{"fecha":"12/10/2026","dato":"17.0000"},
				{"fecha":"13/10/2026","dato":"17.3400"}]}]}}`), nil
		})

	points, err := newTestClient(mock).Series(context.Background(), "SF43718", 2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "12/10/2026", points[0].Fecha)
	assert.Equal(t, "17.3400", points[1].Dato)
	assert.Equal(t, "17.34", points[1].Value.String())
	assert.True(t, points[1].Numeric)
	assert.Equal(t, 1, mock.GetTotalCallCount())
}

func TestSeriesParsesThousandsSeparator(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testBase+"/series/SP68279/datos/ultimos/1",
		httpmock.NewStringResponder(http.StatusOK, `{"bmx":{"series":[{"idSerie":"SP68279","datos":[{"fecha":"01/09/2026","dato":"1,234.50"}]}]}}`))

	points, err := newTestClient(mock).Series(context.Background(), "SP68279", 1)
	require.NoError(t, err)
	assert.Equal(t, "1234.5", points[0].Value.String())
	assert.Equal(t, "1,234.50", points[0].Dato)
	assert.True(t, points[0].Numeric)
}

func TestSeriesKeepsUnpublishedValueRaw(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testBase+"/series/SF61745/datos/ultimos/1",
		httpmock.NewStringResponder(http.StatusOK, `{"bmx":{"series":[{"idSerie":"SF61745","datos":[{"fecha":"13/10/2026","dato":"N/E"}]}]}}`))

	points, err := newTestClient(mock).Series(context.Background(), "SF61745", 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "N/E", points[0].Dato)
	assert.False(t, points[0].Numeric)
	assert.True(t, points[0].Value.IsZero())
}

func TestSeriesErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "missing series", status: http.StatusOK, body: `{"bmx":{"series":[{"idSerie":"SF00000","datos":[{"fecha":"x","dato":"1"}]}]}}`, want: ErrSeriesNotFound},
		{name: "empty series list", status: http.StatusOK, body: `{"bmx":{"series":[]}}`, want: ErrSeriesNotFound},
		{name: "short series", status: http.StatusOK, body: `{"bmx":{"series":[{"idSerie":"SF61745","datos":[]}]}}`, want: ErrShortSeries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := httpmock.NewMockTransport()
			mock.RegisterResponder(http.MethodGet, testBase+"/series/SF61745/datos/ultimos/1",
				httpmock.NewStringResponder(tt.status, tt.body))

			_, err := newTestClient(mock).Series(context.Background(), "SF61745", 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSeriesHTTPStatus(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testBase+"/series/SF61745/datos/ultimos/1",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error":{"mensaje":"token invalido"}}`))

	_, err := newTestClient(mock).Series(context.Background(), "SF61745", 1)

	var se *xhttp.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

func TestSeriesMalformedBody(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder(http.MethodGet, testBase+"/series/SF61745/datos/ultimos/1",
		httpmock.NewStringResponder(http.StatusOK, `<html>maintenance</html>`))

	_, err := newTestClient(mock).Series(context.Background(), "SF61745", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestSeriesNetworkError(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterNoResponder(httpmock.NewErrorResponder(errors.New("dial tcp: no route to host")))

	_, err := newTestClient(mock).Series(context.Background(), "SF43718", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no route to host")
}

func TestSeriesRejectsBadCount(t *testing.T) {
	mock := httpmock.NewMockTransport()
	_, err := newTestClient(mock).Series(context.Background(), "SF43718", 0)
	require.Error(t, err)
	assert.Zero(t, mock.GetTotalCallCount())
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New("", "tkn")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
