// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// OS identifiers understood by the installer registry
const (
	OSUbuntu  = "ubuntu"
	OSDebian  = "debian"
	OSWindows = "windows"
	OSX       = "osx"
	OSConda   = "conda"
	OSNixOS   = "nixos"

	OSFedora     = "fedora"
	OSRHEL       = "rhel"
	OSCentOS     = "centos"
	OSRocky      = "rocky"
	OSAlma       = "almalinux"
	OSArch       = "arch"
	OSManjaro    = "manjaro"
	OSLeap       = "opensuse-leap"
	OSTumbleweed = "opensuse-tumbleweed"
	OSSLES       = "sles"
	OSAlpine     = "alpine"
)

// OverrideEnv forces detection, formatted "os:version[:codename]"
const OverrideEnv = "SYSDEPS_OS_OVERRIDE"

// Info represents the detected host
type Info struct {
	OS       string // OS identifier (e.g., "ubuntu", "windows", "osx")
	GOOS     string // linux, darwin, windows
	Arch     string // amd64, arm64, 386, arm
	Version  string // Numeric version (e.g., "22.04")
	Codename string // Release codename (e.g., "jammy")
}

// Detect detects the running host
func Detect() (*Info, error) {
	var osRelease string
	if runtime.GOOS == "linux" {
		for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
			if data, err := os.ReadFile(path); err == nil {
				osRelease = string(data)
				break
			}
		}
	}
	return DetectFrom(runtime.GOOS, runtime.GOARCH, osRelease, os.Getenv)
}

// DetectFrom classifies a host from its Go platform, the contents of
// os-release and its environment
func DetectFrom(goos, goarch, osRelease string, getenv func(string) string) (*Info, error) {
	info := &Info{GOOS: goos, Arch: goarch}

	if override := getenv(OverrideEnv); override != "" {
		parts := strings.SplitN(override, ":", 3)
		if parts[0] == "" {
			return nil, fmt.Errorf("invalid %s value: %q", OverrideEnv, override)
		}
		info.OS = parts[0]
		if len(parts) > 1 {
			info.Version = parts[1]
		}
		if len(parts) > 2 {
			info.Codename = parts[2]
		}
		return info, nil
	}

	if prefix := getenv("CONDA_PREFIX"); prefix != "" {
		info.OS = OSConda
		return info, nil
	}

	switch goos {
	case "windows":
		info.OS = OSWindows
	case "darwin":
		info.OS = OSX
	case "linux":
		fields := ParseOSRelease(osRelease)
		info.OS = fields["ID"]
		info.Version = fields["VERSION_ID"]
		info.Codename = fields["VERSION_CODENAME"]
		if info.Codename == "" {
			info.Codename = fields["UBUNTU_CODENAME"]
		}
		if info.OS == "" {
			return nil, fmt.Errorf("unable to identify linux distribution")
		}
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}

	return info, nil
}

// String returns a string representation of the platform
func (i *Info) String() string {
	s := fmt.Sprintf("%s/%s (%s", i.GOOS, i.Arch, i.OS)
	if v := NumericVersion(i); v != "" {
		s += " " + v
	}
	if c := Codename(i); c != "" {
		s += " " + c
	}
	return s + ")"
}
