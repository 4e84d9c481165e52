// Package pathutils normalizes user supplied data file paths.
package pathutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant               = "~"
	homeDirectoryUnavailableTemplate  = "cannot expand %q: %w"
	homeDirectoryEmptyMessageConstant = "home directory is empty"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// DataFilePathResolver expands home shortcuts and environment references in data file paths.
type DataFilePathResolver struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewDataFilePathResolver constructs a resolver using the operating system home lookup.
func NewDataFilePathResolver() *DataFilePathResolver {
	return NewDataFilePathResolverWithProvider(os.UserHomeDir)
}

// NewDataFilePathResolverWithProvider constructs a resolver with a custom home directory provider.
func NewDataFilePathResolverWithProvider(provider HomeDirectoryProvider) *DataFilePathResolver {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &DataFilePathResolver{homeDirectoryProvider: provider}
}

// Resolve trims the path, expands $VARIABLES and a leading ~ and cleans the result.
// Blank input resolves to an empty string.
func (resolver *DataFilePathResolver) Resolve(rawPath string) (string, error) {
	trimmedPath := strings.TrimSpace(rawPath)
	if len(trimmedPath) == 0 {
		return "", nil
	}

	expandedPath := os.ExpandEnv(trimmedPath)
	if !isHomeRelative(expandedPath) {
		return filepath.Clean(expandedPath), nil
	}

	homeDirectory, homeError := resolver.resolveHomeDirectory()
	if homeError != nil {
		return "", fmt.Errorf(homeDirectoryUnavailableTemplate, rawPath, homeError)
	}

	relativePath := strings.TrimLeft(strings.TrimPrefix(expandedPath, tildeSymbolConstant), `/\`)
	return filepath.Join(homeDirectory, relativePath), nil
}

func isHomeRelative(candidatePath string) bool {
	if !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return false
	}
	if len(candidatePath) == len(tildeSymbolConstant) {
		return true
	}
	nextCharacter := candidatePath[len(tildeSymbolConstant)]
	return nextCharacter == '/' || nextCharacter == os.PathSeparator
}

func (resolver *DataFilePathResolver) resolveHomeDirectory() (string, error) {
	resolver.initializationGuard.Do(func() {
		resolver.homeDirectory, resolver.homeDirectoryError = resolver.homeDirectoryProvider()
		if resolver.homeDirectoryError == nil && len(strings.TrimSpace(resolver.homeDirectory)) == 0 {
			resolver.homeDirectoryError = errors.New(homeDirectoryEmptyMessageConstant)
		}
	})
	return resolver.homeDirectory, resolver.homeDirectoryError
}
