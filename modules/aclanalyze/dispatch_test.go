package aclanalyze

import (
	"fmt"
	"testing"

	sd "github.com/lkarlslund/aclhound/modules/securitydescriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolEvaluatesAllTasks(t *testing.T) {
	valid := descriptor("", allowACE(sd.GENERIC_ALL, attackerSID))

	pool := NewPool(4)
	const tasks = 100
	go func() {
		for i := 0; i < tasks; i++ {
			pool.Submit(Task{
				ID:         fmt.Sprintf("CN=Object%d,DC=example,DC=local", i),
				Class:      ClassUser,
				Descriptor: valid,
			})
		}
		pool.Close()
	}()

	seen := make(map[string]Result)
	for result := range pool.Results() {
		seen[result.ID] = result
	}
	require.Len(t, seen, tasks)
	for id, result := range seen {
		require.NoError(t, result.Err, "task %v", id)
		assert.Equal(t, []Relation{{SID: attacker(), RightName: GenericAll}}, result.Relations)
	}
}

func TestPoolIsolatesMalformedDescriptors(t *testing.T) {
	valid := descriptor(ownerSID)

	pool := NewPool(2)
	go func() {
		pool.Submit(Task{ID: "good", Class: ClassUser, Descriptor: valid})
		pool.Submit(Task{ID: "bad", Class: ClassUser, Descriptor: []byte{0x01, 0x00}})
		pool.Submit(Task{ID: "empty", Class: ClassUser})
		pool.Close()
	}()

	seen := make(map[string]Result)
	for result := range pool.Results() {
		seen[result.ID] = result
	}
	require.Len(t, seen, 3)

	require.NoError(t, seen["good"].Err)
	assert.Len(t, seen["good"].Relations, 1)

	require.Error(t, seen["bad"].Err)
	assert.ErrorIs(t, seen["bad"].Err, sd.ErrMalformedDescriptor)
	assert.Nil(t, seen["bad"].Relations)

	require.NoError(t, seen["empty"].Err)
	assert.Nil(t, seen["empty"].Relations)
}

func TestPoolDefaultWorkerCount(t *testing.T) {
	pool := NewPool(0)
	go pool.Close()
	for range pool.Results() {
	}
	// Reaching here means the pool started and shut down cleanly
}
