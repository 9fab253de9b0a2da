package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/deppfellow/product-service/internal/gateway"
	"github.com/deppfellow/product-service/internal/handler"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <create|get|update|delete|list>",
	Short: "Run one handler against a request event",
	Long: `Reads a request event as JSON from stdin, runs the named handler once and
writes the response event as JSON to stdout. Logs go to stderr.

  echo '{"body":"{\"name\":\"a\",\"price\":1}"}' | product-service invoke create
  echo '{"pathParameters":{"id":"..."}}' | product-service invoke get`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer app.close()

		return invoke(cmd.Context(), app.handlers.Product.Entrypoints(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}

// invoke decodes one request event from in, runs the named entry point and
// encodes the response to out. Unclassified handler errors are returned.
func invoke(
	ctx context.Context,
	entrypoints map[string]handler.GatewayFunc,
	name string,
	in io.Reader,
	out io.Writer,
) error {
	fn, ok := entrypoints[name]
	if !ok {
		names := make([]string, 0, len(entrypoints))
		for n := range entrypoints {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown handler %q, expected one of: %s", name, strings.Join(names, ", "))
	}

	var req gateway.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode request event: %w", err)
	}

	res, err := fn(ctx, req)
	if err != nil {
		return fmt.Errorf("handler %s failed: %w", name, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
