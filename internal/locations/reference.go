// Package locations serves the Philippine Standard Geographic Code subset
// used by the resume form: region, province, city, and barangay code/name
// pairs. The reference is embedded at build time and never mutated.
package locations

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

//go:embed data/ph.json
var dataFS embed.FS

// Entry is a single code/name pair at any level of the hierarchy.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ResolvedAddress carries the display names for a full set of location codes.
// Unknown codes resolve to empty names.
type ResolvedAddress struct {
	Region   string
	Province string
	City     string
	Barangay string
}

type barangayNode struct {
	Entry
}

type cityNode struct {
	Entry
	Barangays []barangayNode `json:"barangays"`
}

type provinceNode struct {
	Entry
	Cities []cityNode `json:"cities"`
}

type regionNode struct {
	Entry
	Provinces []provinceNode `json:"provinces"`
}

type referenceFile struct {
	Regions []regionNode `json:"regions"`
}

// Reference is the loaded hierarchy with code indexes for O(1) lookups.
type Reference struct {
	regions []regionNode

	provincesByRegion map[string][]Entry
	citiesByProvince  map[string][]Entry
	barangaysByCity   map[string][]Entry
	nameByCode        map[string]string
}

var (
	loadOnce sync.Once
	loaded   *Reference
	loadErr  error
)

// Load parses the embedded reference once and returns the shared instance.
func Load() (*Reference, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse()
	})
	return loaded, loadErr
}

func parse() (*Reference, error) {
	raw, err := dataFS.ReadFile("data/ph.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded reference: %w", err)
	}

	var file referenceFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse embedded reference: %w", err)
	}

	ref := &Reference{
		regions:           file.Regions,
		provincesByRegion: make(map[string][]Entry),
		citiesByProvince:  make(map[string][]Entry),
		barangaysByCity:   make(map[string][]Entry),
		nameByCode:        make(map[string]string),
	}
	for _, region := range file.Regions {
		ref.nameByCode[region.Code] = region.Name
		for _, province := range region.Provinces {
			ref.nameByCode[province.Code] = province.Name
			ref.provincesByRegion[region.Code] = append(ref.provincesByRegion[region.Code], province.Entry)
			for _, city := range province.Cities {
				ref.nameByCode[city.Code] = city.Name
				ref.citiesByProvince[province.Code] = append(ref.citiesByProvince[province.Code], city.Entry)
				for _, barangay := range city.Barangays {
					ref.nameByCode[barangay.Code] = barangay.Name
					ref.barangaysByCity[city.Code] = append(ref.barangaysByCity[city.Code], barangay.Entry)
				}
			}
		}
	}
	return ref, nil
}

// Regions lists all regions sorted by name.
func (r *Reference) Regions() []Entry {
	out := make([]Entry, 0, len(r.regions))
	for _, region := range r.regions {
		out = append(out, region.Entry)
	}
	sortByName(out)
	return out
}

// Provinces lists the provinces of a region; nil when the code is unknown.
func (r *Reference) Provinces(regionCode string) []Entry {
	return sorted(r.provincesByRegion[regionCode])
}

// Cities lists the cities of a province; nil when the code is unknown.
func (r *Reference) Cities(provinceCode string) []Entry {
	return sorted(r.citiesByProvince[provinceCode])
}

// Barangays lists the barangays of a city; nil when the code is unknown.
func (r *Reference) Barangays(cityCode string) []Entry {
	return sorted(r.barangaysByCity[cityCode])
}

// Name returns the display name for any code at any level, or "".
func (r *Reference) Name(code string) string {
	return r.nameByCode[code]
}

// Resolve maps a full set of codes to display names in one call.
func (r *Reference) Resolve(regionCode, provinceCode, cityCode, barangayCode string) ResolvedAddress {
	return ResolvedAddress{
		Region:   r.nameByCode[regionCode],
		Province: r.nameByCode[provinceCode],
		City:     r.nameByCode[cityCode],
		Barangay: r.nameByCode[barangayCode],
	}
}

func sorted(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	sortByName(out)
	return out
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
}
