package impl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"languagebot/config"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/service"
	"languagebot/internal/infra/upstream"
	"languagebot/internal/usecase"
	mockService "languagebot/internal/mocks/service"
	mockUsecase "languagebot/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProxy(vault usecase.CredentialVault, client service.UpstreamClient, metrics service.ProxyMetrics, fallback string) *proxyService {
	return NewProxyService(ProxyServiceParams{
		Vault:    vault,
		Upstream: client,
		Metrics:  metrics,
		Config:   &config.Config{Upstream: &config.UpstreamConfig{FallbackAPIKey: fallback}},
		Logger:   newDiscardLogger(),
	}).(*proxyService)
}

func TestProxyService_Forward_UsesStoredKey(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "operator-key")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).Return("sk-user", true, nil)
	client.EXPECT().Do(ctx, mock.MatchedBy(func(r *service.UpstreamRequest) bool {
		return r.Credential == "sk-user" && r.Path == "/v1beta/models" && r.Method == http.MethodGet
	})).Return(&service.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil)
	metrics.EXPECT().ObserveUpstreamDuration(mock.AnythingOfType("time.Duration")).Return()
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeRelayed).Return()

	out, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodGet, Path: "/v1beta/models"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, []byte(`{}`), out.Body)
}

func TestProxyService_Forward_FallbackKey(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "operator-key")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).Return("", false, nil)
	client.EXPECT().Do(ctx, mock.MatchedBy(func(r *service.UpstreamRequest) bool {
		return r.Credential == "operator-key"
	})).Return(&service.UpstreamResponse{StatusCode: http.StatusTooManyRequests}, nil)
	metrics.EXPECT().ObserveUpstreamDuration(mock.Anything).Return()
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeRelayed).Return()

	out, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodPost, Path: "/x"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, out.StatusCode, "upstream errors are relayed unchanged")
}

func TestProxyService_Forward_NoCredential(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).Return("", false, nil)
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeNoCredential).Return()

	out, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodGet, Path: "/x"})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrNoCredential)
	client.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestProxyService_Forward_VaultFailure(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "operator-key")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).
		Return("", false, domainerrors.NewStorageError(errors.WithStack(domainerrors.ErrDecryptionFailed), "failed to decrypt credential"))
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeVaultFail).Return()

	_, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodGet, Path: "/x"})

	assert.ErrorIs(t, err, domainerrors.ErrStorage)
	client.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
}

func TestProxyService_Forward_InvalidPath(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).Return("sk", true, nil)
	client.EXPECT().Do(ctx, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath))
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeInvalidPath).Return()

	_, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodGet, Path: "/../admin"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpstreamPath)
	metrics.AssertNotCalled(t, "ObserveUpstreamDuration", mock.Anything)
}

func TestProxyService_Forward_UpstreamUnreachable(t *testing.T) {
	vault := mockUsecase.NewMockCredentialVault(t)
	client := mockService.NewMockUpstreamClient(t)
	metrics := mockService.NewMockProxyMetrics(t)
	proxy := newTestProxy(vault, client, metrics, "")
	ctx := context.Background()

	vault.EXPECT().Get(ctx, int64(1)).Return("sk", true, nil)
	client.EXPECT().Do(ctx, mock.Anything).Return(nil, domainerrors.NewUpstreamError(errors.New("dial tcp: refused")))
	metrics.EXPECT().ObserveUpstreamDuration(mock.Anything).Return()
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeUpstreamFail).Return()

	_, err := proxy.Forward(ctx, &usecase.ForwardInput{UserID: 1, Method: http.MethodGet, Path: "/x"})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

// A saved key reaches the upstream in the credential header, and the upstream
// answer comes back untouched.
func TestProxyService_Forward_SavedKeyReachesUpstream(t *testing.T) {
	var gotKey, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": gotKey})
	}))
	t.Cleanup(srv.Close)

	client, err := upstream.New(srv.URL, "x-goog-api-key", 5*time.Second, newDiscardLogger())
	require.NoError(t, err)

	vault := newTestVault(t, newMemoryCredentialRepository(), newTestCipher(t, 'k'), nil)
	metrics := mockService.NewMockProxyMetrics(t)
	metrics.EXPECT().ObserveUpstreamDuration(mock.Anything).Return()
	metrics.EXPECT().ObserveRequest(service.ProxyOutcomeRelayed).Return()
	proxy := newTestProxy(vault, client, metrics, "")
	ctx := context.Background()

	require.NoError(t, vault.Save(ctx, 42, "sk-test-key"))

	out, err := proxy.Forward(ctx, &usecase.ForwardInput{
		UserID: 42,
		Method: http.MethodPost,
		Path:   "/v1beta/models/gemini-pro:generateContent",
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   []byte(`{"contents":[]}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "sk-test-key", gotKey)
	assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", gotPath)
	assert.Equal(t, `{"contents":[]}`, gotBody)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.JSONEq(t, `{"echo":"sk-test-key"}`, string(out.Body))
	assert.Equal(t, "application/json", out.Header.Get("Content-Type"))
}
