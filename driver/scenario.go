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
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v3"
)

const scenarioCacheSize = 256

// Scenario is a recorded sequence of procedure events, replayed in order
// against a fresh stage machine.
type Scenario struct {
	Title     string  `yaml:"title"`
	Procedure string  `yaml:"procedure"`
	Sponsor   string  `yaml:"sponsor"`
	Urgent    bool    `yaml:"urgent"`
	Events    []Event `yaml:"events"`
}

// Event is one step of a scenario. Which fields apply depends on the step;
// unused fields stay zero.
type Event struct {
	Step       string `yaml:"step"`
	For        int    `yaml:"for"`
	Against    int    `yaml:"against"`
	Abstain    int    `yaml:"abstain"`
	Members    int    `yaml:"members"`
	Eligible   int    `yaml:"eligible"`
	Resolution string `yaml:"resolution"`
	Decision   string `yaml:"decision"`
	Outcome    string `yaml:"outcome"`
	Candidate  string `yaml:"candidate"`
}

// ScenarioLoader parses scenario files, caching parse results keyed by the
// digest of the file content so repeated runs over the same inputs skip
// re-parsing.
type ScenarioLoader struct {
	cache *lru.Cache[[32]byte, *Scenario]
}

func NewScenarioLoader(capacity int) (*ScenarioLoader, error) {
	cache, err := lru.New[[32]byte, *Scenario](capacity)
	if err != nil {
		return nil, err
	}
	return &ScenarioLoader{cache: cache}, nil
}

func (l *ScenarioLoader) Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key := sha3.Sum256(data)
	if scenario, found := l.cache.Get(key); found {
		return scenario, nil
	}
	scenario := &Scenario{}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if scenario.Procedure == "" {
		return nil, fmt.Errorf("scenario %s does not name a procedure", path)
	}
	for i, e := range scenario.Events {
		if e.For < 0 || e.Against < 0 || e.Abstain < 0 || e.Members < 0 || e.Eligible < 0 {
			return nil, fmt.Errorf("scenario %s: event %d (%q) carries a negative count", path, i, e.Step)
		}
	}
	l.cache.Add(key, scenario)
	return scenario, nil
}
