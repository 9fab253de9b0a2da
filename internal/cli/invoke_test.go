package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/deppfellow/product-service/internal/gateway"
	"github.com/deppfellow/product-service/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoEntrypoints() map[string]handler.GatewayFunc {
	return map[string]handler.GatewayFunc{
		"get": func(_ context.Context, req gateway.Request) (gateway.Response, error) {
			return gateway.JSON(http.StatusOK, map[string]string{"id": req.PathParameter(gateway.PathParamID)})
		},
		"list": func(context.Context, gateway.Request) (gateway.Response, error) {
			return gateway.Response{}, errors.New("scan failed")
		},
	}
}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	t.Run("writes the response event", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(`{"pathParameters":{"id":"p-1"}}`)

		require.NoError(t, invoke(ctx, echoEntrypoints(), "get", in, &out))

		var res gateway.Response
		require.NoError(t, json.Unmarshal(out.Bytes(), &res))
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.JSONEq(t, `{"id":"p-1"}`, res.Body)
	})

	t.Run("accepts an empty event", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, invoke(ctx, echoEntrypoints(), "get", strings.NewReader(""), &out))
		assert.Contains(t, out.String(), `"statusCode": 200`)
	})

	t.Run("unknown handler", func(t *testing.T) {
		err := invoke(ctx, echoEntrypoints(), "patch", strings.NewReader("{}"), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "get, list")
	})

	t.Run("bad event", func(t *testing.T) {
		err := invoke(ctx, echoEntrypoints(), "get", strings.NewReader("{"), &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("unclassified handler error", func(t *testing.T) {
		var out bytes.Buffer
		err := invoke(ctx, echoEntrypoints(), "list", strings.NewReader("{}"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scan failed")
		assert.Empty(t, out.String())
	})
}
