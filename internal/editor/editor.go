// Package editor implements the detail panel's status/priority edit
// workflow: an explicit viewing/editing/saving machine that diffs the
// draft against the loaded snapshot, gates the transition on the status
// catalog's explanation rules and reconciles the result with whatever the
// upstream answers.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/delta10/signalen-console/internal/model"
)

type Mode string

const (
	ModeViewing Mode = "viewing"
	ModeEditing Mode = "editing"
	ModeSaving  Mode = "saving"
)

// MaxExplanationLength mirrors the explanation input's max-length.
const MaxExplanationLength = 3000

var (
	ErrNotEditing          = errors.New("editor: no edit in progress")
	ErrUnknownStatus       = errors.New("editor: selected status is not in the catalog")
	ErrExplanationRequired = errors.New("editor: this status requires an explanation")
	ErrExplanationTooLong  = errors.New("editor: explanation exceeds the maximum length")

	// ErrChangeNotPermitted is the single error surfaced for any rejected
	// save, whatever the upstream's actual reason.
	ErrChangeNotPermitted = errors.New("editor: change not permitted in this situation")
)

// Saver persists a partial update. *signalen.Client satisfies it.
type Saver interface {
	PatchSignal(ctx context.Context, id string, patch model.SignalPatch) (*model.Signal, error)
}

// Editor owns the draft state of one open detail panel. It is not safe for
// concurrent use; a panel has exactly one owner.
type Editor struct {
	id      string
	signal  *model.Signal
	catalog []model.StatusMessage
	mode    Mode

	draftStatus   string
	draftPriority string
	draftText     string
}

// New builds an editor around a freshly loaded signal. An empty catalog
// falls back to the hardcoded default so the status select is never empty.
func New(id string, signal *model.Signal, catalog []model.StatusMessage) *Editor {
	if len(catalog) == 0 {
		catalog = model.DefaultStatusCatalog()
	}
	return &Editor{
		id:      id,
		signal:  signal,
		catalog: catalog,
		mode:    ModeViewing,
	}
}

func (e *Editor) Mode() Mode            { return e.mode }
func (e *Editor) Signal() *model.Signal { return e.signal }

// Options returns the status labels the user may pick from.
func (e *Editor) Options() []model.StatusMessage {
	options := make([]model.StatusMessage, 0, len(e.catalog))
	for _, entry := range e.catalog {
		if entry.Active {
			options = append(options, entry)
		}
	}
	return options
}

// BeginEdit snapshots the loaded status and priority into the draft and
// clears any prior explanation. A no-op unless the editor is viewing.
func (e *Editor) BeginEdit() {
	if e.mode != ModeViewing {
		return
	}
	e.draftStatus = e.signal.Status.StateDisplay
	e.draftPriority = e.signal.Priority.Priority
	e.draftText = ""
	e.mode = ModeEditing
}

// Cancel discards the draft and returns to viewing.
func (e *Editor) Cancel() {
	if e.mode != ModeEditing {
		return
	}
	e.draftStatus = ""
	e.draftPriority = ""
	e.draftText = ""
	e.mode = ModeViewing
}

// SetStatus selects a status label. Picking a different label clears the
// explanation draft: each status has its own text requirement.
func (e *Editor) SetStatus(label string) {
	if e.mode != ModeEditing || label == e.draftStatus {
		return
	}
	e.draftStatus = label
	e.draftText = ""
}

func (e *Editor) SetPriority(priority string) {
	if e.mode != ModeEditing {
		return
	}
	e.draftPriority = strings.ToLower(priority)
}

// SetExplanation stores the draft explanation, enforcing the input bound.
func (e *Editor) SetExplanation(text string) error {
	if e.mode != ModeEditing {
		return ErrNotEditing
	}
	if len([]rune(text)) > MaxExplanationLength {
		return ErrExplanationTooLong
	}
	e.draftText = text
	return nil
}

// Save validates and diffs the draft, sends the partial update and
// reconciles local state with the response. It reports whether anything
// was persisted: an unchanged draft skips the network entirely and simply
// returns to viewing. On failure the editor stays in editing with the
// draft intact so the user can retry or cancel.
func (e *Editor) Save(ctx context.Context, saver Saver) (bool, error) {
	if e.mode != ModeEditing {
		return false, ErrNotEditing
	}

	patch, resolved, err := e.buildPatch()
	if err != nil {
		return false, err
	}
	if patch.IsEmpty() {
		e.mode = ModeViewing
		return false, nil
	}

	e.mode = ModeSaving
	updated, err := saver.PatchSignal(ctx, e.id, patch)
	if err != nil {
		e.mode = ModeEditing
		return false, fmt.Errorf("%w: %w", ErrChangeNotPermitted, err)
	}

	if updated != nil {
		e.signal = updated
	} else {
		e.reconcileLocally(patch, resolved)
	}
	e.mode = ModeViewing
	return true, nil
}

// buildPatch produces the outgoing diff. Priority is included only when it
// differs case-insensitively from the loaded value; status only when the
// display label differs, resolved through the catalog to a state code plus
// either the user's explanation or the catalog's canned text.
func (e *Editor) buildPatch() (model.SignalPatch, *model.StatusMessage, error) {
	var patch model.SignalPatch
	var resolved *model.StatusMessage

	if e.draftPriority != "" && !strings.EqualFold(e.draftPriority, e.signal.Priority.Priority) {
		patch.Priority = &model.PriorityPatch{Priority: strings.ToLower(e.draftPriority)}
	}

	if e.draftStatus != e.signal.Status.StateDisplay {
		entry, ok := e.findCatalogEntry(e.draftStatus)
		if !ok {
			return model.SignalPatch{}, nil, ErrUnknownStatus
		}

		text := strings.TrimSpace(e.draftText)
		if len([]rune(text)) > MaxExplanationLength {
			return model.SignalPatch{}, nil, ErrExplanationTooLong
		}
		if text == "" {
			text = strings.TrimSpace(entry.Text)
		}
		if text == "" && model.StateRequiresText(entry.State) {
			return model.SignalPatch{}, nil, ErrExplanationRequired
		}

		resolved = &entry
		patch.Status = &model.StatusPatch{State: entry.State, Text: text}
	}

	return patch, resolved, nil
}

func (e *Editor) findCatalogEntry(label string) (model.StatusMessage, bool) {
	for _, entry := range e.catalog {
		if entry.Active && entry.Title == label {
			return entry, true
		}
	}
	for _, entry := range e.catalog {
		if entry.Title == label {
			return entry, true
		}
	}
	return model.StatusMessage{}, false
}

// reconcileLocally rebuilds the snapshot when the upstream answered the
// PATCH with an empty body.
func (e *Editor) reconcileLocally(patch model.SignalPatch, resolved *model.StatusMessage) {
	now := time.Now().UTC()
	if patch.Status != nil && resolved != nil {
		e.signal.Status = model.Status{
			Text:         patch.Status.Text,
			State:        patch.Status.State,
			StateDisplay: resolved.Title,
			CreatedAt:    now,
		}
	}
	if patch.Priority != nil {
		e.signal.Priority.Priority = patch.Priority.Priority
	}
	e.signal.UpdatedAt = now
}
