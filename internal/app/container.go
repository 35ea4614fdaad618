package app

import (
	"github.com/samber/do/v2"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/metrics"
	"github.com/dolinaroz/landing/internal/pubsub"
	"github.com/dolinaroz/landing/internal/relay"
	"github.com/dolinaroz/landing/internal/rendering"
)

// WorkflowFactory builds the Idle submission workflow of a form instance.
type WorkflowFactory func(formID string) *lead.Workflow

// NewContainer registers the core services shared by the server and the
// CLI. Services are built lazily on first invocation.
func NewContainer(cfg config.Provider) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, provideMetricsRegistry)
	do.Provide(i, provideLeadMetrics)
	do.Provide(i, provideBridge)
	do.Provide(i, provideRelay)
	do.Provide(i, provideWorkflowFactory)
	do.Provide(i, provideTracker)
	do.Provide(i, provideRenderer)
	return i
}

func provideMetricsRegistry(i do.Injector) (*metrics.Registry, error) {
	return metrics.NewRegistry(), nil
}

func provideLeadMetrics(i do.Injector) (*metrics.Lead, error) {
	return metrics.NewLead(do.MustInvoke[*metrics.Registry](i)), nil
}

func provideBridge(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideRelay(i do.Injector) (lead.Relay, error) {
	return relay.New(do.MustInvoke[config.Provider](i))
}

func provideWorkflowFactory(i do.Injector) (WorkflowFactory, error) {
	cfg, err := do.Invoke[config.Provider](i)
	if err != nil {
		return nil, err
	}
	r, err := do.Invoke[lead.Relay](i)
	if err != nil {
		return nil, err
	}
	recorder := do.MustInvoke[*metrics.Lead](i)
	events := do.MustInvoke[*pubsub.WatermillBridge](i)

	return func(formID string) *lead.Workflow {
		return lead.NewWorkflow(r,
			lead.WithID(formID),
			lead.WithAccessKey(cfg.GetRelayAccessKey()),
			lead.WithRecorder(recorder),
			lead.WithEvents(events),
		)
	}, nil
}

func provideTracker(i do.Injector) (*lead.Tracker, error) {
	cfg := do.MustInvoke[config.Provider](i)
	factory, err := do.Invoke[WorkflowFactory](i)
	if err != nil {
		return nil, err
	}
	return lead.NewTracker(cfg.GetLeadStateTTL(), factory), nil
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}
