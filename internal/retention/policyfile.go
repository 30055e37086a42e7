package retention

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// PolicyFile is the parsed contents of an on-disk policy document:
//
//	template = "backup-{now}.tar"
//
//	[keep]
//	daily   = 7
//	weekly  = 4
//	monthly = 6
//
// Tiers left out of the file stay absent. The template is optional and
// only used when no template is given on the command line.
type PolicyFile struct {
	Template string
	Policy   Policy
}

type fileDoc struct {
	Template string   `toml:"template"`
	Keep     fileKeep `toml:"keep"`
}

type fileKeep struct {
	Minutely int `toml:"minutely"`
	Hourly   int `toml:"hourly"`
	Daily    int `toml:"daily"`
	Weekly   int `toml:"weekly"`
	Monthly  int `toml:"monthly"`
}

// LoadFile reads a TOML policy file from path.
func LoadFile(path string) (PolicyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PolicyFile{}, fmt.Errorf("reading policy file: %w", err)
	}

	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return PolicyFile{}, fmt.Errorf("parsing policy file %s: %w", path, err)
	}

	pf := PolicyFile{Template: doc.Template}
	for _, f := range []struct {
		name string
		n    int
		dst  *Count
	}{
		{"minutely", doc.Keep.Minutely, &pf.Policy.Minutely},
		{"hourly", doc.Keep.Hourly, &pf.Policy.Hourly},
		{"daily", doc.Keep.Daily, &pf.Policy.Daily},
		{"weekly", doc.Keep.Weekly, &pf.Policy.Weekly},
		{"monthly", doc.Keep.Monthly, &pf.Policy.Monthly},
	} {
		if f.n == 0 {
			continue // tier not requested
		}
		c, err := KeepCount(f.n)
		if err != nil {
			return PolicyFile{}, fmt.Errorf("%s: keep.%s: %w", path, f.name, err)
		}
		*f.dst = c
	}
	return pf, nil
}
