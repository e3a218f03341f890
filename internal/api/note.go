package api

import (
	"context"
	"fmt"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
)

// Notes fetches all of the user's notes.
func (c *Client) Notes(ctx context.Context, sess *auth.Session) ([]model.Note, error) {
	var notes []model.Note
	if err := c.get(ctx, "/notes", nil, sess, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// SaveNote creates or updates a note.
func (c *Client) SaveNote(ctx context.Context, sess *auth.Session, req model.SaveNoteRequest) (*model.Note, error) {
	var note model.Note
	if err := c.post(ctx, "/notes", sess, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// NoteByQuestion fetches the user's note for one question. A 404 means no
// note exists and is returned as (nil, nil).
func (c *Client) NoteByQuestion(ctx context.Context, sess *auth.Session, questionID int64) (*model.Note, error) {
	var note model.Note
	err := c.get(ctx, fmt.Sprintf("/notes/question/%d", questionID), nil, sess, &note)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote deletes one note. Callers must not drop the note from any
// local snapshot until this returns nil.
func (c *Client) DeleteNote(ctx context.Context, sess *auth.Session, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/notes/%d", id), sess, nil)
}
