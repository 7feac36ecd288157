package product

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads extra product entries from a YAML file and returns a table
// where they take precedence over the built-in entries:
//
//	products:
//	  - var_name: mosaicked_refl
//	    var_unit: dbz
//	    cf_name: MREFL
//	    cf_unit: dBZ
//	    cf_long_name: Mosaicked Reflectivity
//
// Omitted missing and no-coverage values default to Undefined.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product table: %w", err)
	}
	extra, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("parse product table %s: %w", path, err)
	}
	return NewTable(append(extra, defaultEntries()...)), nil
}

func parseTable(data []byte) ([]Info, error) {
	var raw struct {
		Products []yaml.Node `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(raw.Products))
	for i := range raw.Products {
		p := Info{VarMissing: Undefined, VarNoCoverage: Undefined}
		if err := raw.Products[i].Decode(&p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		if p.VarName == "" {
			return nil, fmt.Errorf("product %d: var_name is required", i)
		}
		if p.CFName == "" {
			return nil, fmt.Errorf("product %d (%s): cf_name is required", i, p.VarName)
		}
		out = append(out, p)
	}
	return out, nil
}
