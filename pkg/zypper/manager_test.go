package zypper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/installer/installertest"
	"github.com/arc-language/sysdeps/pkg/rpm"
)

func newFake() *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("zypper --version", "zypper 1.14.68\n").
		On("rpm -qa --queryformat %{NAME} %{ARCH}\\n", "zlib-devel x86_64\nlibgcc_s1 i586\n")
}

func TestDetectArchitecture(t *testing.T) {
	arch, err := DetectArchitecture("386")
	require.NoError(t, err)
	assert.Equal(t, rpm.ArchI586, arch)

	arch, err = DetectArchitecture("amd64")
	require.NoError(t, err)
	assert.Equal(t, rpm.ArchX86_64, arch)
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	inst := NewInstaller(newFake().Config("linux", "386"))
	assert.Equal(t, []string{"libgcc_s1"}, inst.Detect(ctx, []string{"zlib-devel", "libgcc_s1"}))

	inst = NewInstaller(newFake().Config("linux", "mips"))
	assert.Empty(t, inst.Detect(ctx, []string{"zlib-devel"}))
}

func TestInstallCommand(t *testing.T) {
	ctx := context.Background()
	inst := NewInstaller(newFake().Config("linux", "amd64"))

	plan, err := inst.InstallCommand(ctx, installer.Specs("zlib-devel", "libopenssl-devel"), installer.PlanOptions{})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"zypper", "--non-interactive", "install", "libopenssl-devel"}}, plan)

	plan, err = inst.InstallCommand(ctx, installer.Specs("zlib-devel"), installer.PlanOptions{Reinstall: true, Quiet: true, Interactive: true})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"zypper", "--quiet", "install", "--force", "zlib-devel"}}, plan)

	assert.Equal(t, []string{"zypper 1.14.68"}, inst.VersionStrings(ctx))
}
