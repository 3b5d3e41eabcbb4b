// pkg/pip/platform.go
package pip

import (
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/registry"
)

// pythonExecutable returns the interpreter that hosts pip on goos
func pythonExecutable(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}

// Register binds the pip installer in reg
func Register(reg *registry.Registry, cfg *installer.Config) {
	reg.SetInstaller(Key, NewInstaller(cfg))
}
