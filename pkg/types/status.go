package types

import "fmt"

type BlockID struct {
	Hash   string `json:"hash"`
	Number uint64 `json:"number"`
}

func (id BlockID) String() string {
	return fmt.Sprintf("%s:%d", id.Hash, id.Number)
}

type BlockRef struct {
	Hash       string `json:"hash"`
	Number     uint64 `json:"number"`
	ParentHash string `json:"parentHash"`
	Time       uint64 `json:"timestamp"`
}

func (ref BlockRef) ID() BlockID {
	return BlockID{Hash: ref.Hash, Number: ref.Number}
}

// ChainSyncStatus is one chain's tracked heads, one per safety level.
type ChainSyncStatus struct {
	LocalUnsafe BlockRef `json:"localUnsafe"`
	LocalSafe   BlockID  `json:"localSafe"`
	CrossUnsafe BlockID  `json:"crossUnsafe"`
	// Downstream consumers already depend on `safe`, so the JSON field name
	// stays `safe` even though the head is cross-safe.
	CrossSafe BlockID `json:"safe"`
	Finalized BlockID `json:"finalized"`
}

// Head returns the chain head corresponding to the given safety level.
// Invalid has no head.
func (s ChainSyncStatus) Head(level SafetyLevel) (BlockID, error) {
	switch level {
	case Unsafe:
		return s.LocalUnsafe.ID(), nil
	case CrossUnsafe:
		return s.CrossUnsafe, nil
	case LocalSafe:
		return s.LocalSafe, nil
	case Safe:
		return s.CrossSafe, nil
	case Finalized:
		return s.Finalized, nil
	case Invalid:
		return BlockID{}, fmt.Errorf("no chain head for safety level %q", level)
	default:
		return BlockID{}, fmt.Errorf("unknown safety level %d", level)
	}
}

// SupervisorSyncStatus is the supervisor's cross-chain view.
type SupervisorSyncStatus struct {
	SafeTimestamp      uint64                      `json:"safeTimestamp"`
	FinalizedTimestamp uint64                      `json:"finalizedTimestamp"`
	Chains             map[uint64]*ChainSyncStatus `json:"chains"`
}
