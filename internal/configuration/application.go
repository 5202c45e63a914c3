package configuration

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	// RootPath is the confinement root for the shell's jail; when empty,
	// the process-wide default root applies.
	RootPath string

	// Umask is the initial permission mask of the jail, as parsed from an
	// octal string.
	Umask uint32
}
