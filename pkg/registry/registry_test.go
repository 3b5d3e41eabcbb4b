package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/platform"
)

type stubInstaller struct{ key string }

func (s *stubInstaller) Name() string { return s.key }
func (s *stubInstaller) IsAvailable(context.Context) bool { return true }
func (s *stubInstaller) VersionStrings(context.Context) []string { return []string{s.key} }
func (s *stubInstaller) Detect(context.Context, []string) []string { return nil }
func (s *stubInstaller) InstallCommand(context.Context, []installer.PackageSpec, installer.PlanOptions) (installer.Plan, error) {
	return nil, nil
}

func TestAddOsInstallerKeyDeduplicates(t *testing.T) {
	reg := New()
	reg.AddOsInstallerKey("windows", "chocolatey")
	reg.AddOsInstallerKey("windows", "pip")
	reg.AddOsInstallerKey("windows", "chocolatey")

	keys, err := reg.OsInstallerKeys("windows")
	require.NoError(t, err)
	assert.Equal(t, []string{"chocolatey", "pip"}, keys)
}

func TestSetInstallerLastWriterWins(t *testing.T) {
	reg := New()
	first, second := &stubInstaller{key: "pip"}, &stubInstaller{key: "pip"}
	reg.SetInstaller("pip", first)
	reg.SetInstaller("pip", second)

	inst, err := reg.Installer("pip")
	require.NoError(t, err)
	assert.Same(t, second, inst)
}

func TestUnknownInstallerFailsAtResolution(t *testing.T) {
	reg := New()
	reg.AddOsInstallerKey("windows", "source")

	_, err := reg.Resolve("windows", "source", &platform.Info{})
	require.ErrorIs(t, err, installer.ErrUnknownInstaller)

	var ierr *installer.Error
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "source", ierr.Installer)

	reg.SetInstaller("source", &stubInstaller{key: "source"})
	inst, err := reg.Resolve("windows", "source", &platform.Info{})
	require.NoError(t, err)
	assert.Equal(t, "source", inst.Name())
}

func TestResolveRejectsKeyForOtherOS(t *testing.T) {
	reg := New()
	reg.SetInstaller("apt", &stubInstaller{key: "apt"})
	reg.AddOsInstallerKey("ubuntu", "apt")
	reg.AddOsInstallerKey("windows", "chocolatey")

	_, err := reg.Resolve("windows", "apt", &platform.Info{})
	assert.ErrorIs(t, err, installer.ErrUnknownInstaller)

	_, err = reg.Resolve("plan9", "", &platform.Info{})
	assert.ErrorIs(t, err, installer.ErrUnknownOS)
}

func TestDefaultOsInstallerKey(t *testing.T) {
	reg := New()
	reg.AddOsInstallerKey("ubuntu", "apt")
	reg.AddOsInstallerKey("ubuntu", "nix")

	key, err := reg.DefaultOsInstallerKey("ubuntu", &platform.Info{})
	require.NoError(t, err)
	assert.Equal(t, "apt", key, "first registered key without a selector")

	reg.SetDefaultOsInstallerKey("ubuntu", func(info *platform.Info) string {
		if info.Codename == "noble" {
			return "nix"
		}
		return "apt"
	})

	key, err = reg.DefaultOsInstallerKey("ubuntu", &platform.Info{Codename: "noble"})
	require.NoError(t, err)
	assert.Equal(t, "nix", key)

	key, err = reg.DefaultOsInstallerKey("ubuntu", &platform.Info{Codename: "jammy"})
	require.NoError(t, err)
	assert.Equal(t, "apt", key)
}

func TestOsVersion(t *testing.T) {
	reg := New()
	reg.AddOsInstallerKey("ubuntu", "apt")
	reg.AddOsInstallerKey("nixos", "nix")
	reg.SetOsVersionType("ubuntu", platform.Codename)

	info := &platform.Info{Version: "22.04", Codename: "jammy"}

	v, err := reg.OsVersion("ubuntu", info)
	require.NoError(t, err)
	assert.Equal(t, "jammy", v)

	v, err = reg.OsVersion("nixos", info)
	require.NoError(t, err)
	assert.Equal(t, "22.04", v)

	_, err = reg.OsVersion("plan9", info)
	assert.ErrorIs(t, err, installer.ErrUnknownOS)
}

func TestListings(t *testing.T) {
	reg := New()
	reg.SetInstaller("pip", &stubInstaller{key: "pip"})
	reg.SetInstaller("apt", &stubInstaller{key: "apt"})
	reg.AddOsInstallerKey("windows", "pip")
	reg.AddOsInstallerKey("debian", "apt")

	assert.Equal(t, []string{"apt", "pip"}, reg.InstallerKeys())
	assert.Equal(t, []string{"debian", "windows"}, reg.OsIDs())
}
