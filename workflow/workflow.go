package workflow

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Eklavvyaaaaa/CIVIX/models"
	"github.com/Eklavvyaaaaa/CIVIX/utils"
)

// State identifies where the in-flight draft sits in the submission cycle.
type State string

const (
	StateEmpty     State = "empty"
	StateCapturing State = "capturing"
	StateDrafting  State = "drafting"
	StateReady     State = "ready"
	StateReviewing State = "reviewing"
)

// Required field names, as surfaced in validation messages.
const (
	FieldPhoto       = "Photo"
	FieldCategory    = "Category"
	FieldDescription = "Description"
	FieldLocation    = "Location"
)

// Classifier infers a category and description from an issue photo.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) (models.Suggestion, error)
}

// Locator resolves the reporter's current position. Implementations return
// ErrLocationDenied when the platform refuses access.
type Locator interface {
	Locate(ctx context.Context) (models.Coordinates, error)
}

// Sink receives the committed report. *store.ReportStore satisfies it.
type Sink interface {
	Insert(models.Report)
}

// Draft holds the not-yet-committed report data. Contact fields are
// optional in every state.
type Draft struct {
	ImageURL       string               `json:"imageUrl"`
	Category       models.IssueCategory `json:"category"`
	Description    string               `json:"description"`
	Location       *models.Coordinates  `json:"location"`
	LocationStatus string               `json:"locationStatus"`
	UserName       string               `json:"userName"`
	Phone          string               `json:"phone"`
}

func (d Draft) clone() Draft {
	out := d
	if d.Location != nil {
		loc := *d.Location
		out.Location = &loc
	}
	return out
}

// Workflow is the stateful controller for one submission cycle. Image
// classification runs on its own goroutine so field edits stay interactive
// while analysis is pending; a superseding image selection is
// last-write-wins on the autofilled fields.
type Workflow struct {
	mu         sync.Mutex
	classifier Classifier
	sink       Sink

	draft     Draft
	snapshot  Draft
	reviewing bool
	analyzing int
	epoch     uint64

	classifyTimeout time.Duration
	now             func() time.Time
}

// New builds a workflow in the Empty state. classifier may be nil, in
// which case every capture degrades to manual entry.
func New(sink Sink, classifier Classifier) *Workflow {
	return &Workflow{
		sink:            sink,
		classifier:      classifier,
		draft:           Draft{LocationStatus: "Detect your Location"},
		classifyTimeout: 20 * time.Second,
		now:             time.Now,
	}
}

// State derives the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Workflow) stateLocked() State {
	switch {
	case w.reviewing:
		return StateReviewing
	case w.analyzing > 0:
		return StateCapturing
	case w.draft.ImageURL == "":
		return StateEmpty
	case len(w.missingLocked()) == 0:
		return StateReady
	default:
		return StateDrafting
	}
}

func (w *Workflow) missingLocked() []string {
	var missing []string
	if w.draft.ImageURL == "" {
		missing = append(missing, FieldPhoto)
	}
	if w.draft.Category == "" {
		missing = append(missing, FieldCategory)
	}
	if w.draft.Description == "" {
		missing = append(missing, FieldDescription)
	}
	if w.draft.Location == nil {
		missing = append(missing, FieldLocation)
	}
	return missing
}

// Draft returns a copy of the current field values.
func (w *Workflow) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.clone()
}

// AttachImage stores the captured photo and kicks off classification.
// The workflow does not block input while classification runs; a
// classification fault degrades silently to manual entry.
func (w *Workflow) AttachImage(data []byte, mimeType string) error {
	dataURL := utils.EncodeDataURL(data, mimeType)

	w.mu.Lock()
	if w.reviewing {
		w.mu.Unlock()
		return ErrReviewInProgress
	}
	w.draft.ImageURL = dataURL
	if w.classifier == nil {
		w.mu.Unlock()
		return nil
	}
	w.analyzing++
	epoch := w.epoch
	w.mu.Unlock()

	go w.classify(epoch, data, mimeType)
	return nil
}

func (w *Workflow) classify(epoch uint64, data []byte, mimeType string) {
	ctx, cancel := context.WithTimeout(context.Background(), w.classifyTimeout)
	defer cancel()

	sug, err := w.classifier.Classify(ctx, data, mimeType)

	w.mu.Lock()
	defer w.mu.Unlock()
	if epoch != w.epoch {
		// Draft was discarded or committed while the call was in flight;
		// resetLocked already zeroed the busy counter for this epoch.
		return
	}
	w.analyzing--
	if err != nil {
		// Absorbed: the user fills in category and description by hand.
		log.Printf("image classification failed: %v", err)
		return
	}
	if sug.Category != "" {
		w.draft.Category = sug.Category
	}
	if sug.Description != "" {
		w.draft.Description = sug.Description
	}
}

// SetCategory hand-edits the category field.
func (w *Workflow) SetCategory(c models.IssueCategory) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reviewing {
		return ErrReviewInProgress
	}
	w.draft.Category = c
	return nil
}

// SetDescription hand-edits the description field.
func (w *Workflow) SetDescription(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reviewing {
		return ErrReviewInProgress
	}
	w.draft.Description = text
	return nil
}

// SetContact records the optional reporter contact details.
func (w *Workflow) SetContact(name, phone string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reviewing {
		return ErrReviewInProgress
	}
	w.draft.UserName = name
	w.draft.Phone = phone
	return nil
}

// DetectLocation asks the platform for the reporter's position. Denial is
// surfaced as a persistent status string, not a hard error: the user may
// retry, and an already pinned location is left untouched.
func (w *Workflow) DetectLocation(ctx context.Context, locator Locator) (models.Coordinates, error) {
	w.mu.Lock()
	if w.reviewing {
		w.mu.Unlock()
		return models.Coordinates{}, ErrReviewInProgress
	}
	w.draft.LocationStatus = "Pinpointing..."
	w.mu.Unlock()

	coords, err := locator.Locate(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.draft.LocationStatus = "GPS Access Denied."
		return models.Coordinates{}, err
	}
	w.draft.Location = &coords
	w.draft.LocationStatus = "Exact Location Locked!"
	return coords, nil
}

// RequestReview transitions Ready -> Reviewing, freezing a snapshot of the
// draft so that cancelling the review is non-destructive. It fails with a
// *ValidationError naming every missing required field.
func (w *Workflow) RequestReview() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.reviewing {
		return nil
	}
	if missing := w.missingLocked(); len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if w.analyzing > 0 {
		return ErrAnalyzing
	}
	w.snapshot = w.draft.clone()
	w.reviewing = true
	return nil
}

// Review returns the frozen snapshot shown on the confirmation surface.
func (w *Workflow) Review() (Draft, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.reviewing {
		return Draft{}, false
	}
	return w.snapshot.clone(), true
}

// CancelReview returns to Ready with every field value preserved.
func (w *Workflow) CancelReview() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.reviewing {
		return ErrNotReviewing
	}
	w.reviewing = false
	w.snapshot = Draft{}
	return nil
}

// Confirm commits the reviewed snapshot: it constructs the report, hands
// it to the store and resets the workflow for a new cycle. The returned
// report lets the caller navigate to the feed.
func (w *Workflow) Confirm() (models.Report, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.reviewing {
		return models.Report{}, ErrNotReviewing
	}

	snap := w.snapshot
	r := models.Report{
		ID:          uuid.NewString(),
		Title:       string(snap.Category) + " Report",
		Description: snap.Description,
		Category:    snap.Category,
		Status:      models.Pending,
		Location:    *snap.Location,
		ImageURL:    snap.ImageURL,
		Date:        w.now().Format("Jan 2"),
		Upvotes:     0,
		UserName:    snap.UserName,
		Phone:       snap.Phone,
	}
	w.sink.Insert(r)
	w.resetLocked()
	return r, nil
}

// Discard clears the whole draft from any state.
func (w *Workflow) Discard() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

func (w *Workflow) resetLocked() {
	w.draft = Draft{LocationStatus: "Detect your Location"}
	w.snapshot = Draft{}
	w.reviewing = false
	w.analyzing = 0
	w.epoch++
}
