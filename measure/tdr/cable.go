package tdr

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cable names a cable type and its velocity factor.
type Cable struct {
	Name           string  `yaml:"name"`
	VelocityFactor float64 `yaml:"velocity_factor"`
}

// Velocity factors collected from cable datasheets and user measurements.
var cableCatalog = []Cable{
	{"Jelly filled (0.64)", 0.64},
	{"Polyethylene (0.66)", 0.66},
	{"PTFE (Teflon) (0.70)", 0.70},
	{"Pulp Insulation (0.72)", 0.72},
	{"Foam or Cellular PE (0.78)", 0.78},
	{"Semi-solid PE (SSPE) (0.84)", 0.84},
	{"Air (Helical spacers) (0.94)", 0.94},
	{"RG-6/U PE 75ohm (Belden 8215) (0.66)", 0.66},
	{"RG-6/U Foam 75ohm (Belden 9290) (0.81)", 0.81},
	{"RG-8/U PE 50ohm (Belden 8237) (0.66)", 0.66},
	{"RG-8/U Foam (Belden 8214) (0.78)", 0.78},
	{"RG-8/U (Belden 9913) (0.84)", 0.84},
	{"RG-8/U (Shireen RFC400 Low Loss) (0.86)", 0.86},
	{"RG-8X (Belden 9258) (0.82)", 0.82},
	{"RG-8X (Wireman \"Super 8\" CQ106) (0.81)", 0.81},
	{"RG-8X (Wireman \"MINI-8 Lo-Loss\" CQ118) (0.82)", 0.82},
	{"RG-58 (Wireman \"CQ 58 Lo-Loss Flex\" CQ129FF) (0.79)", 0.79},
	{"RG-11/U 75ohm Foam HDPE (Belden 9292) (0.84)", 0.84},
	{"RG-58/U 52ohm PE (Belden 9201) (0.66)", 0.66},
	{"RG-58A/U 54ohm Foam (Belden 8219) (0.73)", 0.73},
	{"RG-59A/U PE 75ohm (Belden 8241) (0.66)", 0.66},
	{"RG-59A/U Foam 75ohm (Belden 8241F) (0.78)", 0.78},
	{"RG-174 PE (Belden 8216) (0.66)", 0.66},
	{"RG-174 Foam (Belden 7805R) (0.735)", 0.735},
	{"RG-213/U PE (Belden 8267) (0.66)", 0.66},
	{"RG316 (0.695)", 0.695},
	{"RG402 (0.695)", 0.695},
	{"LMR-240 (0.84)", 0.84},
	{"LMR-240UF (0.80)", 0.80},
	{"LMR-400 (0.85)", 0.85},
	{"LMR400UF (0.83)", 0.83},
	{"Davis Bury-FLEX (0.82)", 0.82},
}

// Cables returns the built-in cable catalog.
func Cables() []Cable {
	return append([]Cable(nil), cableCatalog...)
}

// CableByName finds a catalog cable by case-insensitive substring match.
// The first match in catalog order wins.
func CableByName(catalog []Cable, name string) (Cable, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Cable{}, false
	}

	for _, c := range catalog {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			return c, true
		}
	}

	return Cable{}, false
}

// LoadCables reads additional cable definitions from a YAML document of the
// form:
//
//	- name: My hardline
//	  velocity_factor: 0.87
//
// Every entry must carry a velocity factor in (0, 1].
func LoadCables(r io.Reader) ([]Cable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tdr: failed to read cable file: %w", err)
	}

	var cables []Cable
	if err := yaml.Unmarshal(data, &cables); err != nil {
		return nil, fmt.Errorf("tdr: failed to parse cable file: %w", err)
	}

	for _, c := range cables {
		if c.VelocityFactor <= 0 || c.VelocityFactor > 1 {
			return nil, fmt.Errorf("%w: cable %q has %v", ErrInvalidVelocity, c.Name, c.VelocityFactor)
		}
	}

	return cables, nil
}
