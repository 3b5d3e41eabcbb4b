// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/sysdeps"
	"github.com/arc-language/sysdeps/pkg/config"
	"github.com/arc-language/sysdeps/pkg/installer"
	"github.com/arc-language/sysdeps/pkg/platform"
)

// Version of the sysdeps command
const Version = "0.1.0"

// app holds the state shared by every command
type app struct {
	cfgFile   string
	installer string
	osID      string
	rulesPath string
	debug     bool
	sudo      bool

	config *config.Config
	logger *log.Logger

	runner installer.Runner
	detect func() (*platform.Info, error)
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Execute executes the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree for the running host
func NewRootCommand() *cobra.Command {
	return newRootCmd(&app{
		detect: platform.Detect,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysdeps",
		Short: "System dependency installer",
		Long: `sysdeps - System dependency installer

Plans and runs the native package manager commands needed to install
system dependencies on Windows, macOS, Debian, Ubuntu, Fedora, RHEL,
CentOS, Rocky, AlmaLinux, Arch, Manjaro, openSUSE, SLES, Alpine, conda
and NixOS.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	// Global flags
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/sysdeps/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.installer, "installer", "", "installer to use instead of the OS default")
	cmd.PersistentFlags().StringVar(&a.osID, "os", "", "OS identifier to plan for (see 'sysdeps list'; e.g. ubuntu, fedora, arch, opensuse-leap, alpine, windows, osx)")
	cmd.PersistentFlags().StringVar(&a.rulesPath, "rules", "", "rules directory used with --keys")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&a.sudo, "sudo", false, "prefix system-wide installs with sudo")

	cmd.AddCommand(newPlanCmd(a))
	cmd.AddCommand(newInstallCmd(a))
	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newInfoCmd(a))
	cmd.AddCommand(newUpdateCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *app) init() error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if a.installer != "" {
		cfg.DefaultInstaller = a.installer
	}
	if a.osID != "" {
		cfg.OS = a.osID
	}
	if a.rulesPath != "" {
		cfg.RulesPath = a.rulesPath
	}
	if a.debug {
		cfg.Debug = true
	}
	if a.sudo {
		cfg.Sudo = true
	}
	a.config = cfg

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(a.stderr, log.Options{Level: level})
	return nil
}

func (a *app) manager() (*sysdeps.Manager, error) {
	info, err := a.detect()
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}
	if a.config.Arch != "" {
		info.Arch = a.config.Arch
	}

	return sysdeps.New(&sysdeps.Options{
		Config: &installer.Config{
			Runner: a.runner,
			Logger: a.logger,
			Debug:  a.config.Debug,
			Sudo:   a.config.Sudo,
			OS:     info.GOOS,
			Arch:   info.Arch,
		},
		Platform:  info,
		OS:        a.config.OS,
		Installer: a.config.DefaultInstaller,
		RulesPath: a.config.RulesPath,
	})
}
