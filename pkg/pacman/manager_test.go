package pacman

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/installer/installertest"
)

const versionBanner = `
 .--.                  Pacman v6.1.0 - libalpm v14.0.0
/ _.-' .-.  .-.  .-.   Copyright (C) 2006-2024 Pacman Development Team
\  '-. '-'  '-'  '-'   Copyright (C) 2002-2006 Judd Vinet
 '--'
`

func newFake() *installertest.FakeRunner {
	return installertest.NewFakeRunner().
		On("pacman --version", versionBanner).
		On("pacman -Q", "cmake 3.29.2-1\nzlib 1:1.3.1-1\nbroken\n")
}

func TestParseVersion(t *testing.T) {
	v, ok := parseVersion(versionBanner)
	require.True(t, ok)
	assert.Equal(t, "6.1.0", v)

	_, ok = parseVersion("something else")
	assert.False(t, ok)
}

func TestDetect(t *testing.T) {
	ctx := context.Background()

	got := Detect(ctx, []string{"boost", "zlib", "cmake>=3.20", "zlib"}, newFake().Run)
	assert.Equal(t, []string{"zlib", "cmake>=3.20"}, got)

	fake := newFake()
	assert.Empty(t, Detect(ctx, nil, fake.Run))
	assert.Empty(t, fake.Calls())

	assert.Empty(t, Detect(ctx, []string{"zlib"}, installertest.NewFakeRunner().Run))
}

func TestInstallCommand(t *testing.T) {
	ctx := context.Background()
	cfg := newFake().Config("linux", "amd64")
	cfg.Sudo = true
	inst := NewInstaller(cfg)

	plan, err := inst.InstallCommand(ctx, installer.Specs("zlib", "boost"), installer.PlanOptions{})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"sudo", "-H", "pacman", "-S", "--noconfirm", "--needed", "boost"}}, plan)

	plan, err = inst.InstallCommand(ctx, installer.Specs("zlib"), installer.PlanOptions{Reinstall: true, Interactive: true, Quiet: true})
	require.NoError(t, err)
	assert.Equal(t, installer.Plan{{"sudo", "-H", "pacman", "-S", "--quiet", "zlib"}}, plan)

	assert.Equal(t, []string{"pacman 6.1.0"}, inst.VersionStrings(ctx))
}
