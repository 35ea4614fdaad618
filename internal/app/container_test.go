package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/metrics"
	"github.com/dolinaroz/landing/internal/pubsub"
	"github.com/dolinaroz/landing/internal/relay"
)

func testConfig() *config.Config {
	return &config.Config{
		RelayProvider:      "log",
		RelayEndpoint:      relay.DefaultEndpoint,
		RelayAccessKey:     "test-key",
		RelayTimeout:       time.Second,
		LeadStateTTL:       time.Hour,
		RateLimitPerMinute: 10,
	}
}

func TestContainer(t *testing.T) {
	i := NewContainer(testConfig())
	t.Cleanup(func() { _ = do.MustInvoke[*pubsub.WatermillBridge](i).Close() })

	t.Run("relay follows the configured provider", func(t *testing.T) {
		r, err := do.Invoke[lead.Relay](i)
		require.NoError(t, err)
		assert.IsType(t, &relay.LogRelay{}, r)
	})

	t.Run("workflows carry the access key and record metrics", func(t *testing.T) {
		factory := do.MustInvoke[WorkflowFactory](i)
		wf := factory("form-1")

		_, err := wf.Submit(context.Background(), lead.Fields{Name: "Анна", Phone: "1"})
		require.NoError(t, err)
		assert.Equal(t, lead.StatusSent, wf.State())

		m := do.MustInvoke[*metrics.Lead](i)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(string(lead.OutcomeSent))))
	})

	t.Run("tracker is a singleton", func(t *testing.T) {
		a := do.MustInvoke[*lead.Tracker](i)
		b := do.MustInvoke[*lead.Tracker](i)
		assert.Same(t, a, b)
	})

	t.Run("modules", func(t *testing.T) {
		deps, err := ResolveDependencies(i)
		require.NoError(t, err)
		mods := NewModules(deps)
		require.Len(t, mods, 2)
		assert.Equal(t, "landing", mods[0].Name())
		assert.Equal(t, "leads", mods[1].Name())
	})
}

func TestContainerInvalidProvider(t *testing.T) {
	cfg := testConfig()
	cfg.RelayProvider = "carrier-pigeon"
	i := NewContainer(cfg)

	_, err := ResolveDependencies(i)
	assert.Error(t, err)
}
