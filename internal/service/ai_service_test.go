package service

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windfall/lingua_service/internal/client"
	"github.com/windfall/lingua_service/internal/config"
	"github.com/windfall/lingua_service/internal/errors"
)

func TestAIService_Generate_NotConfigured(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{config.ProviderGateway, config.ProviderAzure, config.ProviderGemini, config.ProviderAnthropic} {
		_, err := NewAIService(provider, nil, nil, nil, nil).Generate(context.Background(), "s", "u")
		require.Error(t, err, provider)
		assert.True(t, stderrors.Is(err, ErrNoProvider), provider)
		assert.True(t, errors.IsCode(err, errors.ErrInternal), provider)
	}
}

func TestAIService_Generate_RoutesToGateway(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"routed"}}]}`))
	}))
	defer srv.Close()

	gw := client.NewGatewayClient("k", srv.URL, "m")
	reply, err := NewAIService(config.ProviderGateway, gw, nil, nil, nil).Generate(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "routed", reply)
}
