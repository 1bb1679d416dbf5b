package arangocorex

import (
	"github.com/arangonet/arangocorex/contrib/buildversion"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	buildVersion string = buildversion.GetVersion("github.com/arangonet/arangocorex")

	meter = otel.Meter("github.com/arangonet/arangocorex",
		metric.WithInstrumentationVersion(buildVersion))
	tracer = otel.Tracer("github.com/arangonet/arangocorex")
)

var (
	// requestsEnqueued tracks the number of requests accepted into the
	// pending queue.
	requestsEnqueued, _ = meter.Int64Counter("arangocorex.requests_enqueued")

	// requestsDispatched tracks the number of requests handed to a
	// transport for execution.
	requestsDispatched, _ = meter.Int64Counter("arangocorex.requests_dispatched")

	// requestsCompleted tracks the number of requests whose exchange
	// finished, successfully or not.
	requestsCompleted, _ = meter.Int64Counter("arangocorex.requests_completed")
)
