package workflow_test

import (
	"testing"

	"go-talento/internal/workflow"

	"github.com/stretchr/testify/assert"
)

func TestNext_Permission(t *testing.T) {
	t.Run("approve from pending", func(t *testing.T) {
		tr, err := workflow.Next(workflow.KindPermission, workflow.StatusPending, workflow.ActionApprove)
		assert.NoError(t, err)
		assert.Equal(t, workflow.StatusApproved, tr.To)
		assert.False(t, tr.NeedsReason)
	})

	t.Run("reject from pending requires reason", func(t *testing.T) {
		tr, err := workflow.Next(workflow.KindPermission, workflow.StatusPending, workflow.ActionReject)
		assert.NoError(t, err)
		assert.Equal(t, workflow.StatusRejected, tr.To)
		assert.True(t, tr.NeedsReason)
	})

	t.Run("negative sign off actions undefined", func(t *testing.T) {
		_, err := workflow.Next(workflow.KindPermission, workflow.StatusPending, workflow.ActionSignOffApprove)
		assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
	})
}

func TestNext_ShiftSwap(t *testing.T) {
	t.Run("sign off moves to in review", func(t *testing.T) {
		tr, err := workflow.Next(workflow.KindShiftSwap, workflow.StatusPending, workflow.ActionSignOffApprove)
		assert.NoError(t, err)
		assert.Equal(t, workflow.StatusInReview, tr.To)
	})

	t.Run("head decision only after sign off", func(t *testing.T) {
		_, err := workflow.Next(workflow.KindShiftSwap, workflow.StatusPending, workflow.ActionHeadApprove)
		assert.ErrorIs(t, err, workflow.ErrIllegalTransition)

		tr, err := workflow.Next(workflow.KindShiftSwap, workflow.StatusInReview, workflow.ActionHeadApprove)
		assert.NoError(t, err)
		assert.Equal(t, workflow.StatusApproved, tr.To)
	})

	t.Run("negative head action after sign off rejection", func(t *testing.T) {
		tr, err := workflow.Next(workflow.KindShiftSwap, workflow.StatusPending, workflow.ActionSignOffReject)
		assert.NoError(t, err)
		assert.Equal(t, workflow.StatusRejected, tr.To)
		assert.True(t, tr.NeedsReason)

		_, err = workflow.Next(workflow.KindShiftSwap, tr.To, workflow.ActionHeadApprove)
		assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
	})
}

func TestNext_Severance(t *testing.T) {
	tr, err := workflow.Next(workflow.KindSeverance, workflow.StatusPending, workflow.ActionApprove)
	assert.NoError(t, err)
	assert.Equal(t, workflow.StatusApproved, tr.To)
	assert.True(t, tr.NeedsAmount)

	tr, err = workflow.Next(workflow.KindSeverance, workflow.StatusPending, workflow.ActionReject)
	assert.NoError(t, err)
	assert.True(t, tr.NeedsReason)
}

func TestNext_TerminalStatesAreFinal(t *testing.T) {
	kinds := []workflow.Kind{workflow.KindPermission, workflow.KindShiftSwap, workflow.KindSeverance}
	actions := []workflow.Action{
		workflow.ActionApprove, workflow.ActionReject,
		workflow.ActionSignOffApprove, workflow.ActionSignOffReject,
		workflow.ActionHeadApprove, workflow.ActionHeadReject,
	}

	for _, kind := range kinds {
		for _, terminal := range []string{workflow.StatusApproved, workflow.StatusRejected} {
			for _, action := range actions {
				_, err := workflow.Next(kind, terminal, action)
				assert.ErrorIs(t, err, workflow.ErrIllegalTransition,
					"kind=%s state=%s action=%s", kind, terminal, action)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, workflow.IsTerminal(workflow.StatusApproved))
	assert.True(t, workflow.IsTerminal(workflow.StatusRejected))
	assert.False(t, workflow.IsTerminal(workflow.StatusPending))
	assert.False(t, workflow.IsTerminal(workflow.StatusInReview))
}

func TestActions(t *testing.T) {
	actions := workflow.Actions(workflow.KindShiftSwap, workflow.StatusPending)
	assert.ElementsMatch(t, []workflow.Action{workflow.ActionSignOffApprove, workflow.ActionSignOffReject}, actions)

	assert.Empty(t, workflow.Actions(workflow.KindPermission, workflow.StatusApproved))
}
