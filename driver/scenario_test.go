//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use
// of this software will be governed by the GNU Lesser General Public Licence v3
//

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kgluszczyk/polish-constitution-as-code/common"
	"github.com/kgluszczyk/polish-constitution-as-code/registry"
)

func TestScenarioLoader_LoadsTestdata(t *testing.T) {
	loader, err := NewScenarioLoader(scenarioCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	scenario, err := loader.Load(filepath.Join("testdata", "bill_enacted.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if scenario.Procedure != "bill" {
		t.Errorf("unexpected procedure: %v", scenario.Procedure)
	}
	if len(scenario.Events) != 7 {
		t.Errorf("unexpected number of events: %d", len(scenario.Events))
	}
	if got := scenario.Events[1]; got.Step != "sejm_vote" || got.For != 240 {
		t.Errorf("unexpected second event: %+v", got)
	}
}

func TestScenarioLoader_CachesByContentDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	content := []byte("title: t\nprocedure: bill\nevents:\n  - step: introduce\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewScenarioLoader(4)
	if err != nil {
		t.Fatal(err)
	}
	first, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("identical content should be served from the cache")
	}

	if err := os.WriteFile(path, append(content, []byte("  - step: promulgate\n")...), 0644); err != nil {
		t.Fatal(err)
	}
	third, err := loader.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Error("changed content must not be served from the cache")
	}
	if len(third.Events) != 2 {
		t.Errorf("unexpected number of events after reload: %d", len(third.Events))
	}
}

func TestScenarioLoader_RejectsMissingProcedure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	if err := os.WriteFile(path, []byte("title: t\nevents: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	loader, err := NewScenarioLoader(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(path); err == nil {
		t.Error("expected an error for a scenario without a procedure")
	}
}

func TestScenarioLoader_RejectsNegativeCounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	content := "title: t\nprocedure: bill\nevents:\n  - step: sejm_vote\n    for: -1\n    against: 300\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	loader, err := NewScenarioLoader(4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Load(path); err == nil {
		t.Error("expected an error for a scenario with a negative vote count")
	}
}

func TestReplay_RejectsOmittedResolutionAndDecision(t *testing.T) {
	idx, err := registry.NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	tests := map[string]Event{
		"senate resolution": {Step: "senate_resolution", For: 60, Against: 30},
		"president":         {Step: "president"},
	}
	for name, event := range tests {
		t.Run(name, func(t *testing.T) {
			s := &Scenario{Title: "t", Procedure: "bill", Events: []Event{event}}
			if err := replayBill(s, idx); err == nil {
				t.Error("expected an error for an event without its choice field")
			}
		})
	}
}

func TestReplay_BillScenarios(t *testing.T) {
	idx, err := registry.NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	loader, err := NewScenarioLoader(scenarioCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range []string{"bill_enacted.yaml", "veto_overridden.yaml"} {
		scenario, err := loader.Load(filepath.Join("testdata", file))
		if err != nil {
			t.Fatal(err)
		}
		if err := replayBill(scenario, idx); err != nil {
			t.Errorf("%s: unexpected failure: %v", file, err)
		}
	}
}

func TestReplay_FormationFallbackReportsFailedConfidence(t *testing.T) {
	idx, err := registry.NewIndex()
	if err != nil {
		t.Fatal(err)
	}
	loader, err := NewScenarioLoader(scenarioCacheSize)
	if err != nil {
		t.Fatal(err)
	}
	scenario, err := loader.Load(filepath.Join("testdata", "formation_second_step.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	err = replayFormation(scenario, idx)
	v, ok := common.AsViolation(err)
	if !ok {
		t.Fatalf("expected a violation from the failed confidence vote, got %v", err)
	}
	if v.Kind != common.MajorityNotReached || v.Provision != "154(2)" {
		t.Errorf("unexpected violation: %v", v)
	}
}
