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

package procedure

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Entry is one recorded stage transition.
type Entry struct {
	Seq   int
	From  string
	To    string
	Event string

	// Digest chains sha3-256 over the previous entry, so audit tooling can
	// detect tampering with or reordering of the log.
	Digest [32]byte
}

// Journal is the append-only transition log of one in-flight procedure. It is
// the only mutable state a procedure owns besides its current stage; one
// journal per procedure instance, advanced at most once per logical event.
type Journal struct {
	id      uuid.UUID
	entries []Entry
}

func newJournal() Journal {
	return Journal{id: uuid.New()}
}

// ID identifies the procedure instance the journal belongs to.
func (j *Journal) ID() uuid.UUID {
	return j.id
}

func (j *Journal) record(from, to, event string) {
	var prev [32]byte
	if n := len(j.entries); n > 0 {
		prev = j.entries[n-1].Digest
	}
	seq := len(j.entries)
	j.entries = append(j.entries, Entry{
		Seq:    seq,
		From:   from,
		To:     to,
		Event:  event,
		Digest: chain(prev, seq, from, to, event),
	})
}

// Entries returns a copy of the recorded transitions.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Verify recomputes the digest chain and reports whether it is intact.
func (j *Journal) Verify() bool {
	var prev [32]byte
	for i, e := range j.entries {
		if e.Seq != i || e.Digest != chain(prev, i, e.From, e.To, e.Event) {
			return false
		}
		prev = e.Digest
	}
	return true
}

func chain(prev [32]byte, seq int, from, to, event string) [32]byte {
	h := sha3.New256()
	h.Write(prev[:])
	fmt.Fprintf(h, "%d|%s|%s|%s", seq, from, to, event)
	var d [32]byte
	copy(d[:], h.Sum(nil))
	return d
}
