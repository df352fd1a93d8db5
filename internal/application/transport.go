package application

import (
	"context"

	"nabaztag/internal/domain"
)

// Transport submits one batched request to the service and returns the raw
// reply bytes. Parameter values arrive already transcoded to the service
// charset; the transport is responsible for percent-encoding and for
// preserving parameter order. Failures are reported as
// *domain.TransportError.
type Transport interface {
	Submit(ctx context.Context, params []domain.Param) ([]byte, error)
}
