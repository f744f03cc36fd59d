package wheel_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/wheel"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestPEP517_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Name: "python3",
		Args: []string{"-m", "build", "--wheel", "--no-isolation", "--outdir", "/src/a/wheels1", "/src/a"},
		Dir:  "/src/a",
		Env:  map[string]string{"PYTHONPATH": "/src/a" + string(os.PathListSeparator) + "/src/b"},
	}).Return(nil)

	b := wheel.NewPEP517(executor, "python3")
	assert.Equal(t, domain.BuildBackendPEP517, b.Name())
	require.NoError(t, b.Build(context.Background(), "/src/a", "/src/a/wheels1", []string{"/src/a", "/src/b"}))
}

func TestSetupPy_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), &domain.Command{
		Name: "/usr/bin/python3",
		Args: []string{"setup.py", "bdist_wheel", "--dist-dir", "/out"},
		Dir:  "/src/legacy",
	}).Return(nil)

	b := wheel.NewSetupPy(executor, "/usr/bin/python3")
	assert.Equal(t, domain.BuildBackendSetupPy, b.Name())
	require.NoError(t, b.Build(context.Background(), "/src/legacy", "/out", nil))
}

func TestBuild_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)

	err := wheel.NewPEP517(executor, "python3").Build(context.Background(), "/s", "/o", nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	err = wheel.NewSetupPy(executor, "python3").Build(context.Background(), "/s", "/o", nil)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}
