package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStatus() ChainSyncStatus {
	return ChainSyncStatus{
		LocalUnsafe: BlockRef{Hash: "0xaa", Number: 105, ParentHash: "0xa9", Time: 1700000105},
		LocalSafe:   BlockID{Hash: "0xab", Number: 104},
		CrossUnsafe: BlockID{Hash: "0xac", Number: 103},
		CrossSafe:   BlockID{Hash: "0xad", Number: 102},
		Finalized:   BlockID{Hash: "0xae", Number: 100},
	}
}

func TestChainSyncStatus_Head(t *testing.T) {
	status := testStatus()

	tests := []struct {
		level    SafetyLevel
		expected BlockID
	}{
		{Unsafe, BlockID{Hash: "0xaa", Number: 105}},
		{CrossUnsafe, BlockID{Hash: "0xac", Number: 103}},
		{LocalSafe, BlockID{Hash: "0xab", Number: 104}},
		{Safe, BlockID{Hash: "0xad", Number: 102}},
		{Finalized, BlockID{Hash: "0xae", Number: 100}},
	}

	for _, test := range tests {
		head, err := status.Head(test.level)
		require.NoError(t, err, "level %s", test.level)
		assert.Equal(t, test.expected, head, "level %s", test.level)
	}
}

func TestChainSyncStatus_Head_Invalid(t *testing.T) {
	status := testStatus()

	_, err := status.Head(Invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestChainSyncStatus_JSON(t *testing.T) {
	data, err := json.Marshal(testStatus())
	require.NoError(t, err)

	// The cross-safe head keeps its legacy field name.
	assert.Contains(t, string(data), `"safe":{"hash":"0xad","number":102}`)
	assert.NotContains(t, string(data), `"crossSafe"`)

	var decoded ChainSyncStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, testStatus(), decoded)
}

func TestBlockRef_ID(t *testing.T) {
	ref := BlockRef{Hash: "0xaa", Number: 105, ParentHash: "0xa9", Time: 1700000105}
	assert.Equal(t, BlockID{Hash: "0xaa", Number: 105}, ref.ID())
}

func TestSupervisorSyncStatus_JSON(t *testing.T) {
	chain := testStatus()
	status := SupervisorSyncStatus{
		SafeTimestamp:      1700000102,
		FinalizedTimestamp: 1700000100,
		Chains:             map[uint64]*ChainSyncStatus{10: &chain},
	}

	data, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded SupervisorSyncStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, status.SafeTimestamp, decoded.SafeTimestamp)
	require.Contains(t, decoded.Chains, uint64(10))
	assert.Equal(t, chain, *decoded.Chains[10])
}

func TestCheckedMessage_JSON(t *testing.T) {
	checked := CheckedMessage{
		Message: ExecutingMessage{ChainID: 10, BlockNumber: 105, LogIndex: 3, Timestamp: 1700000105, Hash: "0xbb"},
		Safety:  CrossUnsafe,
	}

	data, err := json.Marshal(checked)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"safety":"cross-unsafe"`)

	var decoded CheckedMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, checked, decoded)
}
