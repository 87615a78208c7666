package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pali/cmd/pali/commands"
	"go.trai.ch/pali/internal/adapters/telemetry"
	"go.trai.ch/pali/internal/app"
	"go.trai.ch/pali/internal/core/domain"
	"go.trai.ch/pali/internal/core/ports/mocks"
	"go.trai.ch/pali/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cli      *commands.CLI
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	oracle   *mocks.MockStalenessOracle
	out      *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	oracle := mocks.NewMockStalenessOracle(ctrl)

	renderer := mocks.NewMockRenderer(ctrl)
	renderer.EXPECT().RenderReport(gomock.Any()).Return("").AnyTimes()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	sched := scheduler.NewScheduler(executor, oracle, telemetry.NewNoOp(), mockLogger)
	a := app.New(loader, sched, renderer, mockLogger)
	out := &bytes.Buffer{}
	a.SetOutput(out)

	return &fixture{
		cli:      commands.New(a),
		loader:   loader,
		executor: executor,
		oracle:   oracle,
		out:      out,
	}
}

func buildGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    domain.NewInternedString("build"),
		Command: []string{"make"},
		Outputs: []domain.InternedString{domain.NewInternedString("out.bin")},
	}))
	return g
}

func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(buildGraph(t), nil)
	f.oracle.EXPECT().IsStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ActionResult{ExitCode: 0, Failure: domain.FailureNone})

	f.cli.SetArgs([]string{"run", "build"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestRun_NoGoalShowsHelp(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"run"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestRun_Failure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(buildGraph(t), nil)
	f.oracle.EXPECT().IsStale(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ActionResult{ExitCode: 1, Failure: domain.FailureExit})

	f.cli.SetArgs([]string{"run", "build"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunFailed))
}

func TestRun_AlwaysFlag(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(buildGraph(t), nil)
	// The staleness oracle is bypassed with --always.
	f.executor.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ActionResult{ExitCode: 0, Failure: domain.FailureNone})

	f.cli.SetArgs([]string{"run", "--always", "build"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestClean(t *testing.T) {
	f := newFixture(t)

	g := domain.NewGraph()
	require.NoError(t, g.AddTarget(&domain.Target{
		Name:    domain.NewInternedString("build"),
		Command: []string{"make"},
	}))
	f.loader.EXPECT().Load(".").Return(g, nil)

	f.cli.SetArgs([]string{"clean"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestRoot_Help(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"--help"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"version"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestConfigHook(t *testing.T) {
	f := newFixture(t)

	var got string
	f.cli.SetConfigHook(func(path string) { got = path })

	f.cli.SetArgs([]string{"version", "--config", "custom.yaml"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", got)
}
