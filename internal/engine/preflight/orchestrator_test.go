package preflight_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vigil/internal/core/domain"
	"go.trai.ch/vigil/internal/core/ports/mocks"
	"go.trai.ch/vigil/internal/engine/availability"
	"go.trai.ch/vigil/internal/engine/preflight"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	engine      *mocks.MockEngine
	credentials *mocks.MockCredentialProvider
	logger      *mocks.MockLogger
	tracker     *availability.Tracker
	orch        *preflight.Orchestrator
}

func newFixture(t *testing.T, visible bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		engine:      mocks.NewMockEngine(ctrl),
		credentials: mocks.NewMockCredentialProvider(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		tracker:     availability.NewTracker(),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.orch = preflight.New(f.engine, f.tracker, f.credentials, visible, f.logger)
	return f
}

func csharp() *domain.PreflightResponse {
	return &domain.PreflightResponse{Version: "1.4.0", FileTypes: []string{"cs", ".TS"}, MaxInputLines: 5000}
}

func TestRun_OnlineWithCredential(t *testing.T) {
	f := newFixture(t, true)
	var transitions []domain.Transition
	f.tracker.Subscribe(func(tr domain.Transition) { transitions = append(transitions, tr) })

	f.engine.EXPECT().Preflight(gomock.Any(), true).Return(csharp(), nil)
	f.credentials.EXPECT().HasCredential().Return(true)

	resp, cfg := f.orch.Run(context.Background(), true)

	assert.Equal(t, csharp(), resp)
	assert.Equal(t, domain.AutoRefactorConfig{
		Activated: true,
		Visible:   true,
		Disabled:  false,
		Status:    domain.StateEnabled,
	}, cfg)
	assert.Equal(t, cfg, f.orch.Config())
	assert.Equal(t, domain.StateEnabled, f.tracker.State())
	require.Len(t, transitions, 1)
	assert.True(t, transitions[0].FirstActivation())
}

func TestRun_OnlineWithoutCredential(t *testing.T) {
	f := newFixture(t, true)
	f.engine.EXPECT().Preflight(gomock.Any(), false).Return(csharp(), nil)
	f.credentials.EXPECT().HasCredential().Return(false)

	_, cfg := f.orch.Run(context.Background(), false)

	assert.False(t, cfg.Activated)
	assert.True(t, cfg.Disabled)
	assert.Equal(t, domain.StateEnabled, cfg.Status)
}

func TestRun_Offline(t *testing.T) {
	f := newFixture(t, false)
	f.engine.EXPECT().Preflight(gomock.Any(), false).Return(nil, nil)

	resp, cfg := f.orch.Run(context.Background(), false)

	assert.Nil(t, resp)
	assert.Equal(t, domain.AutoRefactorConfig{Visible: false, Status: domain.StateOffline}, cfg)
	assert.Equal(t, domain.StateOffline, f.tracker.State())
	assert.Nil(t, f.orch.Cached())
}

func TestRun_ProbeIgnoresCallerCancellation(t *testing.T) {
	f := newFixture(t, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.engine.EXPECT().Preflight(gomock.Any(), false).DoAndReturn(
		func(probeCtx context.Context, _ bool) (*domain.PreflightResponse, error) {
			if err := probeCtx.Err(); err != nil {
				return nil, err
			}
			return csharp(), nil
		})
	f.credentials.EXPECT().HasCredential().Return(true)

	resp, cfg := f.orch.Run(ctx, false)

	assert.Equal(t, csharp(), resp)
	assert.Equal(t, domain.StateEnabled, cfg.Status)
	assert.Equal(t, domain.StateEnabled, f.tracker.State())
	assert.NoError(t, f.tracker.LastError())
}

func TestRun_ProbeErrorIsRecorded(t *testing.T) {
	f := newFixture(t, true)
	boom := errors.New("connection refused")
	f.engine.EXPECT().Preflight(gomock.Any(), true).Return(nil, boom)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrPreflightFailed.Error())
	})

	resp, cfg := f.orch.Run(context.Background(), true)

	assert.Nil(t, resp)
	assert.Equal(t, domain.AutoRefactorConfig{Visible: true, Status: domain.StateError}, cfg)
	assert.Equal(t, domain.StateError, f.tracker.State())
	require.ErrorContains(t, f.tracker.LastError(), domain.ErrPreflightFailed.Error())
	require.ErrorIs(t, f.tracker.LastError(), boom)
}

func TestRun_FailureClearsCachedResponse(t *testing.T) {
	f := newFixture(t, true)
	f.credentials.EXPECT().HasCredential().Return(true)
	f.logger.EXPECT().Error(gomock.Any())
	gomock.InOrder(
		f.engine.EXPECT().Preflight(gomock.Any(), false).Return(csharp(), nil),
		f.engine.EXPECT().Preflight(gomock.Any(), true).Return(nil, errors.New("timeout")),
	)

	f.orch.Run(context.Background(), false)
	require.NotNil(t, f.orch.Cached())
	require.True(t, f.orch.IsSupportedLanguage("cs"))

	f.orch.Run(context.Background(), true)
	assert.Nil(t, f.orch.Cached())
	assert.False(t, f.orch.IsSupportedLanguage("cs"))
}

func TestRun_EntersLoadingWhileProbing(t *testing.T) {
	f := newFixture(t, true)
	f.credentials.EXPECT().HasCredential().Return(true).Times(2)

	var during []domain.AvailabilityState
	f.engine.EXPECT().Preflight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, bool) (*domain.PreflightResponse, error) {
			during = append(during, f.tracker.State())
			return csharp(), nil
		}).Times(2)

	var transitions []domain.Transition
	f.tracker.Subscribe(func(tr domain.Transition) { transitions = append(transitions, tr) })

	f.orch.Run(context.Background(), false)
	f.orch.Run(context.Background(), true)

	assert.Equal(t, []domain.AvailabilityState{domain.StateLoading, domain.StateLoading}, during)
	assert.Equal(t, []domain.Transition{
		{Previous: domain.StateLoading, Current: domain.StateEnabled},
		{Previous: domain.StateEnabled, Current: domain.StateLoading},
		{Previous: domain.StateLoading, Current: domain.StateEnabled},
	}, transitions)
}

func TestResponse_ProbesLazilyOnce(t *testing.T) {
	f := newFixture(t, true)
	f.engine.EXPECT().Preflight(gomock.Any(), false).Return(csharp(), nil).Times(1)
	f.credentials.EXPECT().HasCredential().Return(true)

	first := f.orch.Response(context.Background())
	second := f.orch.Response(context.Background())

	assert.Equal(t, csharp(), first)
	assert.Same(t, first, second)
}

func TestResponse_RetriesWhileOffline(t *testing.T) {
	f := newFixture(t, true)
	f.engine.EXPECT().Preflight(gomock.Any(), false).Return(nil, nil).Times(2)

	assert.Nil(t, f.orch.Response(context.Background()))
	assert.Nil(t, f.orch.Response(context.Background()))
}

func TestIsSupportedLanguage(t *testing.T) {
	f := newFixture(t, true)

	assert.False(t, f.orch.IsSupportedLanguage("cs"), "no probe has run yet")

	f.engine.EXPECT().Preflight(gomock.Any(), false).Return(csharp(), nil)
	f.credentials.EXPECT().HasCredential().Return(true)
	f.orch.Run(context.Background(), false)

	assert.True(t, f.orch.IsSupportedLanguage("cs"))
	assert.True(t, f.orch.IsSupportedLanguage(".CS"))
	assert.True(t, f.orch.IsSupportedLanguage("ts"))
	assert.False(t, f.orch.IsSupportedLanguage("go"))
	assert.False(t, f.orch.IsSupportedLanguage(""))
}

func TestConfig_BeforeFirstRun(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, domain.AutoRefactorConfig{Visible: false, Status: domain.StateLoading}, f.orch.Config())
}

func TestRun_CoalescesConcurrentProbes(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t, true)
		release := make(chan struct{})
		f.engine.EXPECT().Preflight(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, bool) (*domain.PreflightResponse, error) {
				<-release
				return csharp(), nil
			}).Times(1)
		f.credentials.EXPECT().HasCredential().Return(true).Times(1)

		const callers = 8
		results := make([]*domain.PreflightResponse, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], _ = f.orch.Run(context.Background(), i%2 == 0)
			}()
		}

		synctest.Wait()
		close(release)
		wg.Wait()

		for i := range callers {
			assert.Same(t, results[0], results[i])
		}
		assert.Equal(t, domain.StateEnabled, f.tracker.State())
	})
}
