package choco

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/installer/installertest"
)

func listOutput(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "choco-list-output"))
	require.NoError(t, err)
	return string(data)
}

func newFake(t *testing.T) *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("choco --version", "2.2.2\n").
		On("choco list --limit-output", listOutput(t))
}

func TestParseList(t *testing.T) {
	pkgs := ParseList("git|2.43.0\nnot a row\n\n7zip|23.1.0\n2 packages installed.\n")
	assert.Equal(t, []PackageInfo{
		{ID: "git", Version: "2.43.0"},
		{ID: "7zip", Version: "23.1.0"},
	}, pkgs)
}

func TestListCommand(t *testing.T) {
	assert.Equal(t, []string{"choco", "list", "--limit-output"}, listCommand("2.2.2"))
	assert.Equal(t, []string{"choco", "list", "--limit-output", "--local-only"}, listCommand("1.4.0"))
	assert.Equal(t, []string{"choco", "list", "--limit-output"}, listCommand("unknown"))
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input runs nothing", func(t *testing.T) {
		fake := newFake(t)
		assert.Empty(t, Detect(ctx, nil, fake.Run))
		assert.Empty(t, fake.Calls())
	})

	t.Run("nothing installed", func(t *testing.T) {
		fake := installertest.NewFakeRunner().
			On("choco --version", "2.2.2").
			On("choco list --limit-output", "")
		assert.Empty(t, Detect(ctx, []string{"tinyxml"}, fake.Run))
		assert.True(t, fake.Called("choco list --limit-output"))
	})

	t.Run("preserves order", func(t *testing.T) {
		fake := newFake(t)
		got := Detect(ctx, []string{"apt", "subversion", "python", "bazaar"}, fake.Run)
		assert.Equal(t, []string{"subversion", "bazaar"}, got)
	})

	t.Run("no duplicates", func(t *testing.T) {
		fake := newFake(t)
		got := Detect(ctx, []string{"bazaar", "subversion", "bazaar"}, fake.Run)
		assert.Equal(t, []string{"bazaar", "subversion"}, got)
	})

	t.Run("absent manager", func(t *testing.T) {
		fake := installertest.NewFakeRunner()
		assert.Empty(t, Detect(ctx, []string{"bazaar"}, fake.Run))
		assert.False(t, fake.Called("choco list --limit-output"))
	})

	t.Run("list failure treated as not installed", func(t *testing.T) {
		fake := installertest.NewFakeRunner().
			On("choco --version", "2.2.2").
			Fail("choco list --limit-output", errors.New("exit status 1"))
		assert.Empty(t, Detect(ctx, []string{"bazaar"}, fake.Run))
	})

	t.Run("legacy chocolatey lists local only", func(t *testing.T) {
		fake := installertest.NewFakeRunner().
			On("choco --version", "0.10.15").
			On("choco list --limit-output --local-only", "bazaar|2.6.0\n")
		assert.Equal(t, []string{"bazaar"}, Detect(ctx, []string{"bazaar"}, fake.Run))
	})
}

func TestInstallCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("empty plan when everything installed", func(t *testing.T) {
		inst := NewInstaller(newFake(t).Config("windows", "amd64"))
		plan, err := inst.InstallCommand(ctx, installer.Specs("bazaar"), installer.PlanOptions{})
		require.NoError(t, err)
		assert.Empty(t, plan)
	})

	t.Run("installs missing packages", func(t *testing.T) {
		inst := NewInstaller(newFake(t).Config("windows", "amd64"))
		for _, interactive := range []bool{true, false} {
			plan, err := inst.InstallCommand(ctx, installer.Specs("git", "cmake"), installer.PlanOptions{Interactive: interactive})
			require.NoError(t, err)
			assert.Equal(t, installer.Plan{
				{"choco", "install", "-y", "git"},
				{"choco", "install", "-y", "cmake"},
			}, plan)
		}
	})

	t.Run("reinstall force upgrades every package", func(t *testing.T) {
		inst := NewInstaller(newFake(t).Config("windows", "amd64"))
		plan, err := inst.InstallCommand(ctx, installer.Specs("subversion", "bazaar"), installer.PlanOptions{Reinstall: true})
		require.NoError(t, err)
		assert.Equal(t, installer.Plan{
			{"choco", "upgrade", "--force", "-y", "subversion"},
			{"choco", "upgrade", "--force", "-y", "bazaar"},
		}, plan)
	})

	t.Run("options are appended", func(t *testing.T) {
		fake := installertest.NewFakeRunner().
			On("choco --version", "2.2.2").
			On("choco list --limit-output", "")
		inst := NewInstaller(fake.Config("windows", "amd64"))
		specs := []installer.PackageSpec{
			installer.NewPackageSpec("subversion", "foo", "bar", "baz"),
			installer.NewPackageSpec("bazaar", "tüü"),
		}
		plan, err := inst.InstallCommand(ctx, specs, installer.PlanOptions{})
		require.NoError(t, err)
		assert.Equal(t, installer.Plan{
			{"choco", "install", "-y", "subversion", "foo", "bar", "baz"},
			{"choco", "install", "-y", "bazaar", "tüü"},
		}, plan)
	})

	t.Run("package ids differing in case are one package", func(t *testing.T) {
		inst := NewInstaller(newFake(t).Config("windows", "amd64"))
		plan, err := inst.InstallCommand(ctx, installer.Specs("Git", "git", "GIT"), installer.PlanOptions{Reinstall: true})
		require.NoError(t, err)
		assert.Equal(t, installer.Plan{{"choco", "upgrade", "--force", "-y", "Git"}}, plan)
	})

	t.Run("unavailable manager is an error", func(t *testing.T) {
		inst := NewInstaller(installertest.NewFakeRunner().Config("windows", "amd64"))
		plan, err := inst.InstallCommand(ctx, installer.Specs("git"), installer.PlanOptions{})
		require.Error(t, err)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, installer.ErrInstallerUnavailable)

		var ierr *installer.Error
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, Key, ierr.Installer)
	})

	t.Run("unavailable manager fails even with nothing to install", func(t *testing.T) {
		inst := NewInstaller(installertest.NewFakeRunner().Config("windows", "amd64"))
		_, err := inst.InstallCommand(ctx, nil, installer.PlanOptions{})
		assert.ErrorIs(t, err, installer.ErrInstallerUnavailable)
	})
}

func TestVersionStrings(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, []string{"Chocolatey 2.2.2"}, NewInstaller(newFake(t).Config("windows", "amd64")).VersionStrings(ctx))
	assert.Equal(t, []string{"Chocolatey not-found"}, NewInstaller(installertest.NewFakeRunner().Config("windows", "amd64")).VersionStrings(ctx))
}
