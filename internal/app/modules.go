package app

import (
	"github.com/samber/do/v2"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/module"
	"github.com/dolinaroz/landing/internal/modules/landing"
	"github.com/dolinaroz/landing/internal/modules/leads"
	"github.com/dolinaroz/landing/internal/pubsub"
	"github.com/dolinaroz/landing/internal/rendering"
)

// Dependencies holds the core services the modules are built from.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	Tracker    *lead.Tracker
}

// ResolveDependencies invokes the module dependencies from the container.
func ResolveDependencies(i do.Injector) (Dependencies, error) {
	tracker, err := do.Invoke[*lead.Tracker](i)
	if err != nil {
		return Dependencies{}, err
	}
	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	return Dependencies{
		Publisher:  bridge,
		Subscriber: bridge,
		Renderer:   do.MustInvoke[rendering.Renderer](i),
		Tracker:    tracker,
	}, nil
}

// NewModules returns every module of the site in boot order.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		landing.New(landing.Dependencies{
			Renderer: deps.Renderer,
			Tracker:  deps.Tracker,
		}),
		leads.New(leads.Dependencies{
			Tracker:    deps.Tracker,
			Subscriber: deps.Subscriber,
			Renderer:   deps.Renderer,
		}),
	}
}
