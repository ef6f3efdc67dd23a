package display

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phrasebot/db"
	"phrasebot/phrases"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	conn, err := db.GetDB("file:"+t.Name()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	board, err := NewBoard(conn)
	require.NoError(t, err)
	return board
}

func TestBoardElement(t *testing.T) {
	ctx := context.Background()
	board := newTestBoard(t)

	_, err := board.Element(ctx, "footermessage")
	assert.ErrorIs(t, err, phrases.ErrTargetNotFound)

	_, err = board.Create(ctx, "footermessage")
	require.NoError(t, err)
	_, err = board.Create(ctx, "footermessage")
	require.NoError(t, err, "creating twice is a no-op")

	el, err := board.Element(ctx, "footermessage")
	require.NoError(t, err)
	require.NoError(t, el.SetText(ctx, "What a long, strange trip it's been."))

	text, err := board.Text(ctx, "footermessage")
	require.NoError(t, err)
	assert.Equal(t, "What a long, strange trip it's been.", text)
}

func TestBoardElementDeletedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	board := newTestBoard(t)
	_, err := board.Create(ctx, "footermessage")
	require.NoError(t, err)

	el, err := board.Element(ctx, "footermessage")
	require.NoError(t, err)
	require.NoError(t, board.db.Unscoped().Where("name = ?", "footermessage").Delete(&DisplayElement{}).Error)

	assert.ErrorIs(t, el.SetText(ctx, "late"), phrases.ErrTargetNotFound)
}
