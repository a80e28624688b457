package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"giftcard/internal/domain"
	"giftcard/internal/generation"
	"giftcard/internal/http/handlers"
	"giftcard/internal/infra/credentials"
	"giftcard/internal/metrics"
	"giftcard/internal/providers/openai"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	reply     string
	images    []generation.GeneratedImage
	chatCalls atomic.Int32
	imgCalls  atomic.Int32
	lastModel atomic.Value
}

func (f *fakeProvider) CompleteJSON(ctx context.Context, model string, messages []generation.Message) (string, error) {
	f.chatCalls.Add(1)
	f.lastModel.Store(model)
	return f.reply, nil
}

func (f *fakeProvider) GenerateImage(ctx context.Context, params generation.ImageParams) ([]generation.GeneratedImage, error) {
	f.imgCalls.Add(1)
	f.lastModel.Store(params.Model)
	return f.images, nil
}

func newTestServer(t *testing.T, apiKey string, provider generation.Provider) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	app := handlers.NewApp(credentials.NewStore(apiKey), func(key string) (generation.Provider, error) {
		return provider, nil
	})
	app.OnGeneration = m.ObserveGeneration
	ts := httptest.NewServer(NewRouter(app, zerolog.Nop(), m))
	t.Cleanup(ts.Close)
	return ts, m
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHealth(t *testing.T) {
	ts, _ := newTestServer(t, "", &fakeProvider{})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "ok"}, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestDescribeByTier(t *testing.T) {
	provider := &fakeProvider{reply: `{"description":"  Enjoy a birthday treat.  ","tag":" Birthday "}`}
	ts, m := newTestServer(t, "sk-test", provider)

	for id, model := range map[string]string{"tier1": "gpt-3.5-turbo", "tier2": "gpt-4o-mini"} {
		resp, body := post(t, ts.URL+"/"+id+"/describe", `{"giftcard_name":"Sunset Cafe","prompt":"20% off birthday promo"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.Equal(t, "Enjoy a birthday treat.", body["description"])
		assert.Equal(t, "Birthday", body["tag"])
		assert.Equal(t, []any{}, body["tags"])
		assert.Equal(t, model, provider.lastModel.Load())
	}
	series, err := testutil.GatherAndCount(m.Registry(), "giftcard_generation_calls_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestImageByTier(t *testing.T) {
	provider := &fakeProvider{images: []generation.GeneratedImage{{B64JSON: "QUJD"}}}
	ts, _ := newTestServer(t, "sk-test", provider)

	for _, id := range []string{"tier1", "tier2"} {
		resp, body := post(t, ts.URL+"/"+id+"/image", `{"giftcard_name":"Sunset Cafe","description":"A warm cafe"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		assert.Equal(t, map[string]any{"image_base64": "QUJD", "media_type": "image/png"}, body)
	}
	assert.Equal(t, int32(2), provider.imgCalls.Load())
}

func TestImageEmptyResultIsBadGateway(t *testing.T) {
	ts, _ := newTestServer(t, "sk-test", &fakeProvider{})

	resp, body := post(t, ts.URL+"/tier1/image", `{"giftcard_name":"x","description":"y"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body["detail"], domain.ErrUpstreamEmptyResult.Error())
	assert.NotEmpty(t, body["request_id"])
}

func TestUnknownTier(t *testing.T) {
	provider := &fakeProvider{reply: "{}"}
	ts, _ := newTestServer(t, "sk-test", provider)

	resp, body := post(t, ts.URL+"/tier3/describe", `{"giftcard_name":"x","prompt":"y"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["detail"], "invalid tier")
	assert.Zero(t, provider.chatCalls.Load())
}

func TestMissingKeyFailsBeforeProviderCall(t *testing.T) {
	provider := &fakeProvider{reply: "{}"}
	ts, _ := newTestServer(t, "  ", provider)

	resp, body := post(t, ts.URL+"/tier1/describe", `{"giftcard_name":"x","prompt":"y"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["detail"], "OPENAI_API_KEY")
	assert.Zero(t, provider.chatCalls.Load())
}

func TestInvalidBodies(t *testing.T) {
	provider := &fakeProvider{reply: "{}"}
	ts, _ := newTestServer(t, "sk-test", provider)

	cases := map[string]string{
		"not_json":     `giftcard`,
		"missing_name": `{"prompt":"y"}`,
		"blank_prompt": `{"giftcard_name":"x","prompt":"   "}`,
		"wrong_type":   `{"giftcard_name":1,"prompt":"y"}`,
		"huge_name":    `{"giftcard_name":"` + strings.Repeat("n", 201) + `","prompt":"y"}`,
	}
	for name, body := range cases {
		resp, decoded := post(t, ts.URL+"/tier1/describe", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, name)
		assert.NotEmpty(t, decoded["detail"], name)
	}
	assert.Zero(t, provider.chatCalls.Load())
}

func TestMetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t, "", &fakeProvider{})

	health, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	_ = health.Body.Close()
	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, buf.String(), `giftcard_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestDescribeThroughOpenAIClient(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"{\"descriptions_medium\":[\" A \",\"B\",\"C\"],\"tags\":[\" gift \"]}"}}]}`))
	}))
	defer upstream.Close()

	m := metrics.New()
	app := handlers.NewApp(credentials.NewStore("sk-test"), func(key string) (generation.Provider, error) {
		return openai.NewClient(openai.Options{APIKey: key, BaseURL: upstream.URL})
	})
	ts := httptest.NewServer(NewRouter(app, zerolog.Nop(), m))
	defer ts.Close()

	resp, body := post(t, ts.URL+"/tier2/describe", `{"giftcard_name":"Spa Day","prompt":"mother's day"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	assert.Equal(t, []any{"A", "B"}, body["descriptions_medium"])
	assert.Equal(t, "A", body["description"])
	assert.Equal(t, "gift", body["tag"])
}
