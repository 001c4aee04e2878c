package catalog

import (
	"context"
	"errors"

	"github.com/osse101/RogueMods_Go/internal/gamedata"
)

// ExtensionProvider loads the optional catalog extension: extra descriptors
// and the species booster table. A nil provider means "not configured".
type ExtensionProvider interface {
	Load(ctx context.Context) (*gamedata.Extension, error)
}

// ExtensionFunc adapts a function to ExtensionProvider
type ExtensionFunc func(ctx context.Context) (*gamedata.Extension, error)

// Load implements ExtensionProvider
func (f ExtensionFunc) Load(ctx context.Context) (*gamedata.Extension, error) {
	return f(ctx)
}

// RegistryExtension serves the extension section of loaded game data
func RegistryExtension(reg *gamedata.Registry) ExtensionProvider {
	return ExtensionFunc(func(context.Context) (*gamedata.Extension, error) {
		ext := reg.Extension()
		if ext == nil {
			return nil, errors.New(ErrMsgExtensionMissing)
		}
		return ext, nil
	})
}
