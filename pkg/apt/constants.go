// pkg/apt/constants.go
package apt

const (
	// Key is the installer key for APT
	Key = "apt"

	// Executable installs packages
	Executable = "apt-get"

	// QueryExecutable lists installed packages
	QueryExecutable = "dpkg-query"

	// queryFormat prints one "package:arch status" row per package
	queryFormat = "--showformat=${Package}:${Architecture} ${db:Status-Status}\\n"

	// statusInstalled is the dpkg status of a fully installed package
	statusInstalled = "installed"

	notFound = "apt not-found"
)
