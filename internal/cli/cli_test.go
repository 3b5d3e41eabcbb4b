package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/config"
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/installer/installertest"
	"github.com/arc-language/sysdeps/pkg/platform"
)

const dpkgQuery = "dpkg-query --show --showformat=${Package}:${Architecture} ${db:Status-Status}\\n"

var (
	windows = platform.Info{OS: platform.OSWindows, GOOS: "windows", Arch: "amd64"}
	jammy   = platform.Info{OS: platform.OSUbuntu, GOOS: "linux", Arch: "amd64", Version: "22.04", Codename: "jammy"}
)

func chocoFake() *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("choco --version", "2.2.2\n").
		On("choco list --limit-output", "git|2.43.0\n")
}

func aptFake() *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("apt-get --version", "apt 2.4.11 (amd64)\n").
		On(dpkgQuery, "zlib1g-dev:amd64 installed\n")
}

func execute(t *testing.T, fake *installertest.FakeRunner, info platform.Info, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv(config.RulesPathEnv, "")

	var stdout, stderr bytes.Buffer
	a := &app{
		runner: installer.Runner(fake.Run),
		detect: func() (*platform.Info, error) {
			host := info
			return &host, nil
		},
		stdin:  strings.NewReader(""),
		stdout: &stdout,
		stderr: &stderr,
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name string
		fake *installertest.FakeRunner
		info platform.Info
		args []string
		want string
	}{
		{
			name: "default installer skips installed",
			fake: chocoFake(),
			info: windows,
			args: []string{"plan", "git", "cmake"},
			want: "choco install -y cmake\n",
		},
		{
			name: "reinstall",
			fake: chocoFake(),
			info: windows,
			args: []string{"plan", "--reinstall", "git"},
			want: "choco upgrade --force -y git\n",
		},
		{
			name: "nothing to do",
			fake: chocoFake(),
			info: windows,
			args: []string{"plan", "git"},
			want: "",
		},
		{
			name: "options and sudo",
			fake: aptFake(),
			info: jammy,
			args: []string{"plan", "--sudo", "-q", "--option=--no-install-recommends", "zlib1g-dev", "libssl-dev"},
			want: "sudo -H apt-get install -y -qq libssl-dev --no-install-recommends\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.fake, tt.info, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPlanErrors(t *testing.T) {
	_, err := execute(t, installertest.NewFakeRunner(), windows, "plan", "git")
	assert.ErrorIs(t, err, installer.ErrInstallerUnavailable)

	_, err = execute(t, chocoFake(), windows, "--os", "gentoo", "plan", "git")
	assert.ErrorIs(t, err, installer.ErrUnknownOS)

	_, err = execute(t, chocoFake(), windows, "--installer", "apt", "plan", "git")
	assert.ErrorIs(t, err, installer.ErrUnknownInstaller)

	_, err = execute(t, chocoFake(), windows, "plan")
	assert.Error(t, err)
}

func TestInstallSimulate(t *testing.T) {
	fake := chocoFake()
	out, err := execute(t, fake, windows, "install", "--simulate", "git", "cmake")
	require.NoError(t, err)
	assert.Equal(t, "+ choco install -y cmake\n", out)

	out, err = execute(t, chocoFake(), windows, "install", "git")
	require.NoError(t, err)
	assert.Equal(t, "✓ All packages are installed\n", out)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, aptFake(), jammy, "check", "libssl-dev", "zlib1g-dev")
	assert.EqualError(t, err, "1 package(s) missing")
	assert.Equal(t, "✗ libssl-dev\n✓ zlib1g-dev\n", out)

	out, err = execute(t, aptFake(), jammy, "check", "zlib1g-dev")
	require.NoError(t, err)
	assert.Equal(t, "✓ zlib1g-dev\n", out)
}

func TestList(t *testing.T) {
	out, err := execute(t, chocoFake(), windows, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "OS: windows")
	assert.Contains(t, out, "  * chocolatey\n")
	assert.Contains(t, out, "    pip\n")
	assert.Contains(t, out, "    vcpkg\n")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, aptFake(), jammy, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Platform: linux/amd64 (ubuntu 22.04 jammy)")
	assert.Contains(t, out, "OS version: jammy")
	assert.Contains(t, out, "  apt 2.4.11\n")
	assert.Contains(t, out, "  pip not-found\n")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, installertest.NewFakeRunner(), windows, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sysdeps version "+Version)
}

func TestHelpNamesLinuxFamilies(t *testing.T) {
	out, err := execute(t, installertest.NewFakeRunner(), windows, "--help")
	require.NoError(t, err)
	for _, name := range []string{"Fedora", "Arch", "openSUSE", "Alpine", "NixOS"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "fedora, arch, opensuse-leap, alpine")
}
