// Package configuration implements the reading of shell configuration from
// Unix-type environment files.
package configuration

import (
	"fmt"
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for configuration handling.
type Handler struct {
	configReader genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configReader genericConfigProvider) *Handler {
	return &Handler{
		configReader: configReader,
	}
}

// EstablishConfiguration reads the given configuration files into an
// [AppConfiguration]. Missing keys keep their zero values.
func (c *Handler) EstablishConfiguration(filenames ...string) (*AppConfiguration, error) {
	envMap, err := c.configReader.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	config := &AppConfiguration{
		RootPath: mapKeyToString(envMap, "JAILFS_ROOT"),
		Umask:    mapKeyToOctal(envMap, "JAILFS_UMASK"),
	}

	return config, nil
}

func mapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

func mapKeyToOctal(envMap map[string]string, key string) uint32 {
	value := mapKeyToString(envMap, key)
	if value == "" {
		return 0
	}

	octValue, err := strconv.ParseUint(value, 8, 32)
	if err != nil {
		return 0
	}

	return uint32(octValue)
}
