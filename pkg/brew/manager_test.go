package brew

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/installer/installertest"
)

func newFake() *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("brew --version", "Homebrew 4.2.5\n").
		On("brew list --formula --versions", "cmake 3.28.1\neigen 3.4.0_1\npython@3.11 3.11.7_1 3.11.6_1\nbroken\n")
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	got := Detect(ctx, []string{"python@3.11", "boost", "osrf/simulation/eigen", "cmake"}, newFake().Run)
	assert.Equal(t, []string{"python@3.11", "osrf/simulation/eigen", "cmake"}, got)

	fake := newFake()
	assert.Empty(t, Detect(ctx, nil, fake.Run))
	assert.Empty(t, fake.Calls())
}

func TestInstallCommand(t *testing.T) {
	ctx := context.Background()
	inst := NewInstaller(newFake().Config("darwin", "arm64"))

	plan, err := inst.InstallCommand(ctx, []installer.PackageSpec{
		installer.NewPackageSpec("cmake"),
		installer.NewPackageSpec("boost", "--build-from-source"),
	}, installer.PlanOptions{})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"brew", "install", "boost", "--build-from-source"}}, plan)

	plan, err = inst.InstallCommand(ctx, installer.Specs("cmake", "cmake"), installer.PlanOptions{Reinstall: true, Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"brew", "reinstall", "--quiet", "cmake"}}, plan)

	_, err = NewInstaller(installertest.NewFakeRunner().Config("darwin", "arm64")).InstallCommand(ctx, nil, installer.PlanOptions{})
	assert.ErrorIs(t, err, installer.ErrInstallerUnavailable)
}

func TestVersionStrings(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, []string{"Homebrew 4.2.5"}, NewInstaller(newFake().Config("darwin", "arm64")).VersionStrings(ctx))
	assert.Equal(t, []string{"Homebrew not-found"}, NewInstaller(installertest.NewFakeRunner().Config("darwin", "arm64")).VersionStrings(ctx))
}
