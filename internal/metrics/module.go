package metrics

import "go.uber.org/fx"

// Module provides shared Prometheus collectors.
var Module = fx.Provide(New)
