package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer/installertest"
	"github.com/arc-language/sysdeps/pkg/platform"
)

func TestEveryOsKeyHasAnInstaller(t *testing.T) {
	reg := NewRegistry(installertest.NewFakeRunner().Config("linux", "amd64"))

	require.NotEmpty(t, reg.OsIDs())
	for _, osID := range reg.OsIDs() {
		keys, err := reg.OsInstallerKeys(osID)
		require.NoError(t, err)
		require.NotEmpty(t, keys, osID)
		for _, key := range keys {
			inst, err := reg.Installer(key)
			require.NoError(t, err, "%s/%s", osID, key)
			assert.Equal(t, key, inst.Name())
		}
	}
}

func TestDefaults(t *testing.T) {
	reg := NewRegistry(installertest.NewFakeRunner().Config("linux", "amd64"))
	info := &platform.Info{Version: "22.04", Codename: "jammy"}

	want := map[string]string{
		platform.OSUbuntu:  "apt",
		platform.OSDebian:  "apt",
		platform.OSWindows: "chocolatey",
		platform.OSX:       "homebrew",
		platform.OSConda:   "conda",
		platform.OSNixOS:   "nix",
		platform.OSFedora:  "dnf",
		platform.OSRocky:   "dnf",
		platform.OSArch:    "pacman",
		platform.OSLeap:    "zypper",
		platform.OSAlpine:  "apk",
	}
	for osID, key := range want {
		got, err := reg.DefaultOsInstallerKey(osID, info)
		require.NoError(t, err)
		assert.Equal(t, key, got, osID)
	}

	keys, err := reg.OsInstallerKeys(platform.OSWindows)
	require.NoError(t, err)
	assert.Equal(t, []string{"chocolatey", "pip", "vcpkg", "winget"}, keys)

	version, err := reg.OsVersion(platform.OSUbuntu, info)
	require.NoError(t, err)
	assert.Equal(t, "jammy", version)
}
