package pdf

import (
	"context"

	slipdomain "github.com/serialtrack/serialtrack/internal/slip/domain"
	"go.uber.org/fx"
)

// Provider renders a slip into the downloadable protocol document.
type Provider interface {
	GenerateProtocol(ctx context.Context, doc *slipdomain.Document) ([]byte, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
