package claim

import "sync/atomic"

// Claimant identifies the producer asserting a condition. Values are
// comparable: copies of one Claimant are equal, Claimants from separate
// NewClaimant calls never are, even when they share a name.
type Claimant struct {
	id   uint32
	name string
}

var nextClaimantID atomic.Uint32

// NewClaimant allocates a producer identity. Call it once per producer,
// typically in the constructor of the system that owns it.
func NewClaimant(name string) Claimant {
	return Claimant{id: nextClaimantID.Add(1), name: name}
}

func (c Claimant) Name() string {
	return c.name
}

func (c Claimant) Valid() bool {
	return c.id != 0
}

func (c Claimant) String() string {
	if c.name == "" {
		return "claimant"
	}
	return c.name
}
