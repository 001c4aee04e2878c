package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/RogueMods_Go/internal/validation"
)

//go:embed gamedata.schema.json
var schemaJSON []byte

// Loader reads game data documents
type Loader interface {
	Load(path string) (*Registry, error)
	Parse(raw []byte) (*Registry, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that validates documents against the embedded schema
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, schemaJSON); err != nil {
		return nil, err
	}
	return &loader{schemaValidator: v}, nil
}

// Load reads, validates and indexes a game data file
func (l *loader) Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(raw, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}

	return l.parse(raw)
}

// Parse validates and indexes an in-memory document
func (l *loader) Parse(raw []byte) (*Registry, error) {
	if err := l.schemaValidator.ValidateBytes(raw, SchemaName); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, "document", err)
	}
	return l.parse(raw)
}

func (l *loader) parse(raw []byte) (*Registry, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFailed, err)
	}
	return NewRegistry(&data)
}
