package types

import "fmt"

// ExecutingMessage identifies a cross-chain message by the coordinates of
// the log that carries it.
type ExecutingMessage struct {
	ChainID     uint64 `json:"chainId"`
	BlockNumber uint64 `json:"blockNumber"`
	LogIndex    uint32 `json:"logIndex"`
	Timestamp   uint64 `json:"timestamp"`
	Hash        string `json:"hash"`
}

func (m ExecutingMessage) String() string {
	return fmt.Sprintf("chain %d block %d log %d", m.ChainID, m.BlockNumber, m.LogIndex)
}

// CheckedMessage is a message paired with the safety level it was
// classified at.
type CheckedMessage struct {
	Message ExecutingMessage `json:"message"`
	Safety  SafetyLevel      `json:"safety"`
}
