package sim

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// FaultProfileError indicates a fault profile file could not be parsed.
type FaultProfileError struct {
	Path string
	Err  error
}

func (e *FaultProfileError) Error() string {
	return fmt.Sprintf("fault profile %s: %v", e.Path, e.Err)
}

func (e *FaultProfileError) Unwrap() error { return e.Err }

// faultRecord is the on-disk shape of a Fault, named the same way the
// exported field names read so a profile file is self-describing.
type faultRecord struct {
	Kind           string `json:"kind"`
	Address        uint32 `json:"address"`
	CoupledAddress uint32 `json:"coupledAddress,omitempty"`
}

var faultKindNames = map[FaultKind]string{
	StuckAt0:      "stuck-at-0",
	StuckAt1:      "stuck-at-1",
	CouplingSet:   "coupling-set",
	CouplingClear: "coupling-clear",
}

var faultKindValues = func() map[string]FaultKind {
	m := make(map[string]FaultKind, len(faultKindNames))
	for k, v := range faultKindNames {
		m[v] = k
	}
	return m
}()

// LoadFaultProfile reads a JSON fault list from fs at path and returns
// the decoded faults, for use with InjectFault. fs is an afero.Fs so
// callers can load from a real disk, a test's in-memory filesystem, or
// an embedded one without this package caring which.
func LoadFaultProfile(fs afero.Fs, path string) ([]Fault, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &FaultProfileError{Path: path, Err: err}
	}

	var records []faultRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &FaultProfileError{Path: path, Err: err}
	}

	faults := make([]Fault, 0, len(records))
	for _, rec := range records {
		kind, ok := faultKindValues[rec.Kind]
		if !ok {
			return nil, &FaultProfileError{Path: path, Err: fmt.Errorf("unknown fault kind %q", rec.Kind)}
		}
		faults = append(faults, Fault{
			Kind:           kind,
			Address:        rec.Address,
			CoupledAddress: rec.CoupledAddress,
		})
	}
	return faults, nil
}

// SaveFaultProfile writes faults to fs at path as JSON, in the format
// LoadFaultProfile reads back.
func SaveFaultProfile(fs afero.Fs, path string, faults []Fault) error {
	records := make([]faultRecord, len(faults))
	for i, f := range faults {
		records[i] = faultRecord{
			Kind:           faultKindNames[f.Kind],
			Address:        f.Address,
			CoupledAddress: f.CoupledAddress,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &FaultProfileError{Path: path, Err: err}
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return &FaultProfileError{Path: path, Err: err}
	}
	return nil
}
