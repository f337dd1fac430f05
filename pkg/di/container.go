// Package di provides dependency injection container
package di

import (
	"github.com/ssargent/elmalev/pkg/codec"
	"github.com/ssargent/elmalev/pkg/config"
	"github.com/ssargent/elmalev/pkg/storage"
)

// LibraryFactory opens a level library
type LibraryFactory func(path string, c *codec.LevelCodec) (*storage.LevelLibrary, error)

// Container holds all the dependencies for the application
type Container struct {
	config         *config.Config
	libraryFactory LibraryFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		config:         config.DefaultConfig(),
		libraryFactory: storage.NewLevelLibrary,
	}
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// SetConfig replaces the active configuration
func (c *Container) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// GetCodec returns a level codec configured from the active configuration
func (c *Container) GetCodec() *codec.LevelCodec {
	return codec.NewLevelCodecWithConfig(c.config.CodecConfig())
}

// OpenLibrary opens the configured level library
func (c *Container) OpenLibrary() (*storage.LevelLibrary, error) {
	return c.libraryFactory(c.config.LibraryDir, c.GetCodec())
}

// SetLibraryFactory allows overriding the library factory (for testing)
func (c *Container) SetLibraryFactory(factory LibraryFactory) {
	c.libraryFactory = factory
}
