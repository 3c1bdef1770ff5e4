//go:build unit

package interference

import (
	"context"
	"errors"
	"testing"

	"killshot/internal/mock"
	"killshot/internal/types"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	coord     *Coordinator
	services  *mock.MockServiceManager
	runner    *mock.MockCommandRunner
	processes *mock.MockProcessLister
	hook      *test.Hook
}

func newFixture(t *testing.T, units ...string) fixture {
	ctrl := gomock.NewController(t)
	services := mock.NewMockServiceManager(ctrl)
	runner := mock.NewMockCommandRunner(ctrl)
	processes := mock.NewMockProcessLister(ctrl)
	logger, hook := test.NewNullLogger()

	coord := NewCoordinator(services, runner, processes, "airmon-ng", units, []string{"wpa_supplicant", "dhclient"}).
		WithLogger(logrus.NewEntry(logger))
	return fixture{coord: coord, services: services, runner: runner, processes: processes, hook: hook}
}

func TestCoordinator_SuppressInterference(t *testing.T) {
	ctx := context.Background()

	t.Run("StopsUnitsInOrder", func(t *testing.T) {
		f := newFixture(t, "NetworkManager", "wpa_supplicant")
		gomock.InOrder(
			f.services.EXPECT().Stop(ctx, "NetworkManager").Return(nil),
			f.services.EXPECT().Stop(ctx, "wpa_supplicant").Return(nil),
		)

		assert.NoError(t, f.coord.SuppressInterference(ctx))
	})

	t.Run("RollsBackOnPartialFailure", func(t *testing.T) {
		f := newFixture(t, "NetworkManager", "wpa_supplicant", "iwd")
		stopErr := &types.ServiceError{Op: "stop", Unit: "iwd", Err: errors.New("unit not loaded")}
		gomock.InOrder(
			f.services.EXPECT().Stop(ctx, "NetworkManager").Return(nil),
			f.services.EXPECT().Stop(ctx, "wpa_supplicant").Return(nil),
			f.services.EXPECT().Stop(ctx, "iwd").Return(stopErr),
			f.services.EXPECT().Start(gomock.Any(), "wpa_supplicant").Return(nil),
			f.services.EXPECT().Start(gomock.Any(), "NetworkManager").Return(nil),
		)

		err := f.coord.SuppressInterference(ctx)
		assert.ErrorIs(t, err, types.ErrService)
	})

	t.Run("RollbackFailureIsJoined", func(t *testing.T) {
		f := newFixture(t, "NetworkManager", "wpa_supplicant")
		gomock.InOrder(
			f.services.EXPECT().Stop(ctx, "NetworkManager").Return(nil),
			f.services.EXPECT().Stop(ctx, "wpa_supplicant").Return(errors.New("stop failed")),
			f.services.EXPECT().Start(gomock.Any(), "NetworkManager").Return(errors.New("start failed")),
		)

		err := f.coord.SuppressInterference(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "stop failed")
		assert.Contains(t, err.Error(), "start failed")
	})
}

func TestCoordinator_RestoreNetworking(t *testing.T) {
	ctx := context.Background()

	t.Run("ReverseOrder", func(t *testing.T) {
		f := newFixture(t, "NetworkManager", "wpa_supplicant")
		gomock.InOrder(
			f.services.EXPECT().Start(ctx, "wpa_supplicant").Return(nil),
			f.services.EXPECT().Start(ctx, "NetworkManager").Return(nil),
		)

		assert.NoError(t, f.coord.RestoreNetworking(ctx))
	})

	t.Run("AttemptsEveryUnit", func(t *testing.T) {
		f := newFixture(t, "NetworkManager", "wpa_supplicant")
		gomock.InOrder(
			f.services.EXPECT().Start(ctx, "wpa_supplicant").Return(errors.New("masked")).Times(1),
			f.services.EXPECT().Start(ctx, "NetworkManager").Return(nil).Times(1),
		)

		err := f.coord.RestoreNetworking(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "masked")

		var failed []string
		for _, entry := range f.hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				failed = append(failed, entry.Data["unit"].(string))
			}
		}
		assert.Equal(t, []string{"wpa_supplicant"}, failed)
	})
}

func TestCoordinator_KillInterference(t *testing.T) {
	ctx := context.Background()
	checkKill := types.NewCommand("airmon-ng", "check", "kill")

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().Run(ctx, checkKill).Return(&types.CommandResult{Stdout: "Killing these processes:\n"}, nil)

		assert.NoError(t, f.coord.KillInterference(ctx))
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().Run(ctx, checkKill).Return(&types.CommandResult{ExitCode: 1, Stderr: "permission denied"}, nil)

		err := f.coord.KillInterference(ctx)
		assert.ErrorIs(t, err, types.ErrService)
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("ToolMissing", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().Run(ctx, checkKill).Return(nil, &types.ToolMissingError{Tool: "airmon-ng", Err: errors.New("not found")})

		assert.True(t, types.IsFatal(f.coord.KillInterference(ctx)))
	})
}

func TestCoordinator_Interfering(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	procs := []types.InterferingProcess{{PID: 812, Name: "wpa_supplicant"}}
	f.processes.EXPECT().FindByName(ctx, []string{"wpa_supplicant", "dhclient"}).Return(procs, nil)

	got, err := f.coord.Interfering(ctx)
	require.NoError(t, err)
	assert.Equal(t, procs, got)
}

func TestWithSuppressed(t *testing.T) {
	logger, hook := test.NewNullLogger()
	entry := logrus.NewEntry(logger).WithField("component", "scan")

	ctx := context.Background()

	t.Run("RestoresAfterSuccess", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)
		gomock.InOrder(
			coord.EXPECT().SuppressInterference(ctx).Return(nil),
			coord.EXPECT().KillInterference(ctx).Return(nil),
			coord.EXPECT().RestoreNetworking(gomock.Any()).Return(nil).Times(1),
		)

		called := false
		err := WithSuppressed(ctx, coord, entry, true, func(context.Context) error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("RestoresExactlyOnceWhenFnFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)
		coord.EXPECT().SuppressInterference(ctx).Return(nil)
		coord.EXPECT().RestoreNetworking(gomock.Any()).Return(nil).Times(1)

		fnErr := errors.New("scan failed")
		err := WithSuppressed(ctx, coord, entry, false, func(context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
	})

	t.Run("RestoresWhenKillFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)
		coord.EXPECT().SuppressInterference(ctx).Return(nil)
		coord.EXPECT().KillInterference(ctx).Return(errors.New("kill failed"))
		coord.EXPECT().RestoreNetworking(gomock.Any()).Return(nil).Times(1)

		err := WithSuppressed(ctx, coord, entry, true, func(context.Context) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.EqualError(t, err, "kill failed")
	})

	t.Run("NoRestoreWhenSuppressFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)
		coord.EXPECT().SuppressInterference(ctx).Return(errors.New("stop failed"))

		err := WithSuppressed(ctx, coord, entry, true, func(context.Context) error { return nil })
		assert.EqualError(t, err, "stop failed")
	})

	t.Run("RestoreIgnoresCancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)

		cctx, cancel := context.WithCancel(ctx)
		coord.EXPECT().SuppressInterference(cctx).Return(nil)
		coord.EXPECT().
			RestoreNetworking(gomock.Any()).
			DoAndReturn(func(rctx context.Context) error {
				assert.NoError(t, rctx.Err())
				return nil
			}).
			Times(1)

		err := WithSuppressed(cctx, coord, entry, false, func(ctx context.Context) error {
			cancel()
			return ctx.Err()
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("RestoreFailureIsJoined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		coord := mock.NewMockInterferenceCoordinator(ctrl)
		coord.EXPECT().SuppressInterference(ctx).Return(nil)
		coord.EXPECT().RestoreNetworking(gomock.Any()).Return(errors.New("start failed"))

		hook.Reset()
		fnErr := errors.New("scan failed")
		err := WithSuppressed(ctx, coord, entry, false, func(context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.Contains(t, err.Error(), "start failed")

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "scan", hook.LastEntry().Data["component"])
	})

	t.Run("CoordinatorMethod", func(t *testing.T) {
		f := newFixture(t, "NetworkManager")
		gomock.InOrder(
			f.services.EXPECT().Stop(ctx, "NetworkManager").Return(nil),
			f.services.EXPECT().Start(gomock.Any(), "NetworkManager").Return(nil).Times(1),
		)

		err := f.coord.WithSuppressed(ctx, false, func(context.Context) error { return errors.New("boom") })
		assert.EqualError(t, err, "boom")
	})

	t.Run("CoordinatorMethodLogsRestoreFailure", func(t *testing.T) {
		f := newFixture(t, "NetworkManager")
		gomock.InOrder(
			f.services.EXPECT().Stop(ctx, "NetworkManager").Return(nil),
			f.services.EXPECT().Start(gomock.Any(), "NetworkManager").Return(errors.New("masked")),
		)

		err := f.coord.WithSuppressed(ctx, false, func(context.Context) error { return nil })
		require.Error(t, err)

		last := f.hook.LastEntry()
		require.NotNil(t, last)
		assert.Equal(t, logrus.ErrorLevel, last.Level)
		assert.Equal(t, "Failed to restore networking", last.Message)
	})
}
