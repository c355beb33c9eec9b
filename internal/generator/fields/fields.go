// Package fields answers the one question code generation asks about the
// program under test: is this data item numeric? The store is populated from
// a YAML or TOML listing naming each field's data type.
package fields

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type DataType int

const (
	Alphanumeric DataType = iota
	PackedDecimal
	FloatingPoint
	DisplayNumeric
)

// Numeric reports whether a data type takes the numeric compare path.
func (d DataType) Numeric() bool {
	return d == PackedDecimal || d == FloatingPoint || d == DisplayNumeric
}

// Store maps data item names to their data types. Lookups for unknown names
// return Alphanumeric, the safe default for MOVE-based comparison.
type Store struct {
	types map[string]DataType
}

func NewStore() *Store {
	return &Store{types: make(map[string]DataType)}
}

func (s *Store) Set(name string, dt DataType) {
	s.types[strings.ToUpper(name)] = dt
}

func (s *Store) DataTypeOf(name string) DataType {
	return s.types[strings.ToUpper(name)]
}

// Len reports how many fields the store knows about.
func (s *Store) Len() int {
	return len(s.types)
}

var typeNames = map[string]DataType{
	"packed-decimal":  PackedDecimal,
	"packed":          PackedDecimal,
	"floating-point":  FloatingPoint,
	"float":           FloatingPoint,
	"display-numeric": DisplayNumeric,
	"display":         DisplayNumeric,
	"alphanumeric":    Alphanumeric,
}

// LoadFile reads a field listing, a flat map of field name to type name.
// The format is chosen by extension: .toml, or .yaml/.yml.
func LoadFile(path string) (*Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field listing: %w", err)
	}

	raw := make(map[string]string)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parsing field listing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("parsing field listing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported field listing format %q", ext)
	}

	store := NewStore()
	for name, typeName := range raw {
		dt, ok := typeNames[strings.ToLower(typeName)]
		if !ok {
			return nil, fmt.Errorf("unknown data type %q for field %s", typeName, name)
		}
		store.Set(name, dt)
	}
	return store, nil
}
