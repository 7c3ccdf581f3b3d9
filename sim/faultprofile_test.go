package sim_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/trevor-makes/avr-dram-tester/sim"
)

func TestSaveThenLoadFaultProfileRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	want := []sim.Fault{
		{Kind: sim.StuckAt1, Address: 0x1234},
		{Kind: sim.CouplingSet, Address: 0, CoupledAddress: 1},
	}

	if err := sim.SaveFaultProfile(fs, "/faults.json", want); err != nil {
		t.Fatalf("SaveFaultProfile: %v", err)
	}

	got, err := sim.LoadFaultProfile(fs, "/faults.json")
	if err != nil {
		t.Fatalf("LoadFaultProfile: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d faults, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fault %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadFaultProfileRejectsUnknownKind(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/bad.json", []byte(`[{"kind":"not-a-real-kind","address":0}]`), 0644)

	if _, err := sim.LoadFaultProfile(fs, "/bad.json"); err == nil {
		t.Error("LoadFaultProfile with an unknown kind returned nil error")
	}
}

func TestLoadFaultProfileMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := sim.LoadFaultProfile(fs, "/missing.json"); err == nil {
		t.Error("LoadFaultProfile on a missing file returned nil error")
	}
}
