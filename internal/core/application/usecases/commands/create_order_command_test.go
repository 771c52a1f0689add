package commands_test

import (
	"testing"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	lines := []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 2},
		{ItemID: 2, ItemName: "banana", Quantity: 1},
	}
	cmd, err := commands.NewCreateOrderCommand(7, "alice", lines)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cmd.OwnerID())
	assert.Equal(t, "alice", cmd.OwnerUsername())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewCreateOrderCommand_MissingOwner(t *testing.T) {
	lines := []commands.OrderLine{{ItemID: 1, ItemName: "apple", Quantity: 2}}

	_, err := commands.NewCreateOrderCommand(0, "alice", lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOwnerIsRequired)

	_, err = commands.NewCreateOrderCommand(7, "", lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOwnerIsRequired)
}

func TestNewCreateOrderCommand_EmptyLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(7, "alice", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLinesAreEmpty)
}

func TestNewCreateOrderCommand_InvalidLine(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "", Quantity: 2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
