package wizard

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/forum-agent/internal/agenda"
	"github.com/jonathan/forum-agent/internal/answers"
	"github.com/jonathan/forum-agent/internal/forumapi"
	"github.com/jonathan/forum-agent/internal/logging"
	"github.com/jonathan/forum-agent/internal/types"
	"github.com/jonathan/forum-agent/internal/validation"
)

// Step identifies one of the three logical wizard stages
type Step int

// Wizard steps, in order. Transitions are linear with single-step backward
// navigation; there is no branching.
const (
	StepQuestionnaire Step = iota + 1
	StepSlot
	StepConfirmation
)

// String returns the step name
func (s Step) String() string {
	switch s {
	case StepQuestionnaire:
		return "questionnaire"
	case StepSlot:
		return "slot"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// SubmissionState tracks the two-call submission saga
type SubmissionState string

// Saga states. booking_failed is recoverable via RetryBooking; the
// application record already exists server-side at that point.
const (
	SubmissionPending       SubmissionState = "pending"
	SubmissionCreated       SubmissionState = "created"
	SubmissionBooking       SubmissionState = "booking"
	SubmissionBooked        SubmissionState = "booked"
	SubmissionBookingFailed SubmissionState = "booking_failed"
)

// API is the slice of the forum client the wizard depends on
type API interface {
	GetQuestionnaire(ctx context.Context, offerID int) (*types.Questionnaire, error)
	GetAgenda(ctx context.Context, forumID int) (*types.Agenda, error)
	CreateApplication(ctx context.Context, req types.ApplicationRequest) (*types.Application, error)
	BookSlot(ctx context.Context, forumID, slotID int) error
}

var _ API = (*forumapi.Client)(nil)

// Options configures a wizard controller
type Options struct {
	API    API
	Logger logging.Logger
	Now    func() time.Time // clock for slot filtering; time.Now when nil
}

// Controller drives one candidate's application wizard. All state lives for
// a single open/close session; Close discards everything.
type Controller struct {
	api API
	log logging.Logger
	now func() time.Time

	mu               sync.Mutex
	open             bool
	step             Step
	draft            *types.ApplicationDraft
	sheet            *answers.Sheet
	questionnaire    *types.Questionnaire
	questionnaireErr error
	slots            []types.Slot
	submission       SubmissionState
	application      *types.Application
}

// New creates a closed wizard controller
func New(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{api: opts.API, log: log, now: now}
}

// Open starts a session for one offer within one forum. The questionnaire
// and agenda are fetched concurrently; either fetch failing degrades the
// session (no questionnaire / no slots) rather than blocking it, with the
// questionnaire failure retained on the controller so callers can surface
// it. Only context cancellation aborts the open.
func (c *Controller) Open(ctx context.Context, offer types.Offer, forumID int) error {
	c.mu.Lock()
	c.reset()
	c.open = true
	c.step = StepQuestionnaire
	c.draft = types.NewApplicationDraft(offer, forumID)
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		questionnaire, err := c.api.GetQuestionnaire(gctx, offer.ID)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			// Degraded: proceed as if none is configured, but keep the
			// error apart from the genuine 404 case.
			c.log.Error("questionnaire fetch failed, continuing without it", logging.Fields{
				"offer": offer.ID,
				"error": err.Error(),
			})
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.open {
			return nil
		}
		c.questionnaire = questionnaire
		c.questionnaireErr = err
		return nil
	})

	g.Go(func() error {
		result, err := c.api.GetAgenda(gctx, forumID)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			c.log.Error("agenda fetch failed, continuing with no slots", logging.Fields{
				"forum": forumID,
				"error": err.Error(),
			})
			return nil
		}
		filtered := agenda.FilterFutureAvailable(result.Slots, c.now())
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.open {
			return nil
		}
		c.slots = filtered
		return nil
	})

	if err := g.Wait(); err != nil {
		c.Close()
		return err
	}

	c.log.Info("wizard opened", logging.Fields{
		"offer": offer.ID,
		"forum": forumID,
		"slots": len(c.Slots()),
	})
	return nil
}

// Close discards all session state. Reopening starts from scratch.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Controller) reset() {
	c.open = false
	c.step = 0
	c.draft = nil
	c.sheet = nil
	c.questionnaire = nil
	c.questionnaireErr = nil
	c.slots = nil
	c.submission = ""
	c.application = nil
}

// Step returns the current wizard step, or 0 when closed
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Questionnaire returns the fetched questionnaire, nil when none exists
func (c *Controller) Questionnaire() *types.Questionnaire {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questionnaire
}

// QuestionnaireErr returns the non-404 fetch failure, if one occurred
func (c *Controller) QuestionnaireErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.questionnaireErr
}

// Slots returns the future, available slots loaded at open time
func (c *Controller) Slots() []types.Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.slots
}

// Draft returns the accumulating application draft
func (c *Controller) Draft() *types.ApplicationDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// SubmissionState returns the saga state, empty before Submit
func (c *Controller) SubmissionState() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submission
}

// Application returns the created application record once Submit has run
func (c *Controller) Application() *types.Application {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.application
}

// SetAnswer records an answer on the questionnaire step's sheet. Answers
// survive backward navigation: returning to the step restores them.
func (c *Controller) SetAnswer(questionID int, value types.AnswerValue) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return &ErrClosed{}
	}
	if c.sheet == nil {
		c.sheet = answers.NewSheet()
	}
	c.sheet.Set(questionID, value)
	return nil
}

// SubmitQuestionnaire validates required questions, serializes the sheet,
// records the response on the draft, and advances to the slot step.
func (c *Controller) SubmitQuestionnaire(ctx context.Context) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return &ErrClosed{}
	}
	if c.step != StepQuestionnaire {
		step := c.step
		c.mu.Unlock()
		return &ErrInvalidStep{Current: step, Action: "submit questionnaire"}
	}
	questionnaire := c.questionnaire
	sheet := c.sheet
	if sheet == nil {
		sheet = answers.NewSheet()
	}
	c.mu.Unlock()

	if err := validation.ValidateRequired(questionnaire, sheet); err != nil {
		return err
	}

	var response *types.QuestionnaireResponse
	if questionnaire != nil {
		serialized, err := answers.Serialize(ctx, sheet, questionnaire, c.log)
		if err != nil {
			return err
		}
		response = &types.QuestionnaireResponse{
			QuestionnaireID: questionnaire.ID,
			Answers:         serialized,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open || c.step != StepQuestionnaire {
		return &ErrClosed{}
	}
	c.draft.Questionnaire = response
	c.sheet = sheet
	c.step = StepSlot
	return nil
}

// SkipQuestionnaire advances without answers. When a questionnaire exists an
// empty-answers response is recorded so the backend still links it.
func (c *Controller) SkipQuestionnaire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return &ErrClosed{}
	}
	if c.step != StepQuestionnaire {
		return &ErrInvalidStep{Current: c.step, Action: "skip questionnaire"}
	}
	if c.questionnaire != nil {
		c.draft.Questionnaire = &types.QuestionnaireResponse{
			QuestionnaireID: c.questionnaire.ID,
			Answers:         []types.Answer{},
		}
	}
	c.step = StepSlot
	return nil
}

// SelectSlot picks one interview slot and advances to confirmation. A new
// choice silently replaces any prior one.
func (c *Controller) SelectSlot(slotID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return &ErrClosed{}
	}
	if c.step != StepSlot {
		return &ErrInvalidStep{Current: c.step, Action: "select slot"}
	}
	for _, s := range c.slots {
		if s.ID == slotID {
			chosen := s
			c.draft.Slot = &chosen
			c.step = StepConfirmation
			return nil
		}
	}
	return &ErrInvalidSlot{SlotID: slotID}
}

// SkipSlot advances to confirmation without an explicit pick. When slots
// are available the earliest one is auto-selected rather than leaving the
// draft slotless; with no slots the draft simply carries none.
func (c *Controller) SkipSlot() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return &ErrClosed{}
	}
	if c.step != StepSlot {
		return &ErrInvalidStep{Current: c.step, Action: "skip slot"}
	}
	if c.draft.Slot == nil {
		c.draft.Slot = agenda.FirstAvailable(c.slots)
	}
	c.step = StepConfirmation
	return nil
}

// Previous steps back one stage. Data collected on the step being left is
// kept, so moving forward again restores prior answers and slot choice.
func (c *Controller) Previous() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return &ErrClosed{}
	}
	switch c.step {
	case StepSlot:
		c.step = StepQuestionnaire
	case StepConfirmation:
		c.step = StepSlot
	default:
		return &ErrInvalidStep{Current: c.step, Action: "go back"}
	}
	return nil
}

// Next advances from the current step using its default action. This is the
// embedded-mode control surface: an enclosing screen renders one
// Next/Previous pair while the three logical stages stay intact.
func (c *Controller) Next(ctx context.Context) error {
	switch c.Step() {
	case StepQuestionnaire:
		if c.Questionnaire() == nil {
			return c.SkipQuestionnaire()
		}
		return c.SubmitQuestionnaire(ctx)
	case StepSlot:
		return c.SkipSlot()
	default:
		return &ErrInvalidStep{Current: c.Step(), Action: "advance"}
	}
}

// Submit runs the two-call submission saga from the confirmation step:
// create the application, then book the chosen slot if any. The calls are
// not atomic; a booking failure leaves booking_failed with the created
// application retained, and RetryBooking re-attempts just the booking.
// On full success the wizard closes.
func (c *Controller) Submit(ctx context.Context) (*types.Application, error) {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return nil, &ErrClosed{}
	}
	if c.step != StepConfirmation {
		step := c.step
		c.mu.Unlock()
		return nil, &ErrInvalidStep{Current: step, Action: "submit"}
	}
	draft := c.draft
	c.submission = SubmissionPending
	c.mu.Unlock()

	app, err := c.api.CreateApplication(ctx, draft.ToRequest())
	if err != nil {
		c.mu.Lock()
		c.submission = SubmissionPending
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.application = app
	c.submission = SubmissionCreated
	slot := draft.Slot
	forumID := draft.ForumID
	c.mu.Unlock()

	if slot == nil {
		c.log.Info("application submitted without slot", logging.Fields{"application": app.ID})
		c.Close()
		return app, nil
	}

	c.mu.Lock()
	c.submission = SubmissionBooking
	c.mu.Unlock()

	if err := c.api.BookSlot(ctx, forumID, slot.ID); err != nil {
		c.mu.Lock()
		c.submission = SubmissionBookingFailed
		c.mu.Unlock()
		c.log.Error("slot booking failed after application creation", logging.Fields{
			"application": app.ID,
			"slot":        slot.ID,
			"error":       err.Error(),
		})
		return app, &BookingError{ApplicationID: app.ID, SlotID: slot.ID, Cause: err}
	}

	c.mu.Lock()
	c.submission = SubmissionBooked
	c.mu.Unlock()
	c.log.Info("application submitted and slot booked", logging.Fields{
		"application": app.ID,
		"slot":        slot.ID,
	})
	c.Close()
	return app, nil
}

// RetryBooking re-attempts only the booking call after a booking_failed
// submission. On success the saga completes and the wizard closes.
func (c *Controller) RetryBooking(ctx context.Context) error {
	c.mu.Lock()
	if !c.open {
		c.mu.Unlock()
		return &ErrClosed{}
	}
	if c.submission != SubmissionBookingFailed {
		c.mu.Unlock()
		return &ErrInvalidStep{Current: c.step, Action: "retry booking"}
	}
	app := c.application
	slot := c.draft.Slot
	forumID := c.draft.ForumID
	c.submission = SubmissionBooking
	c.mu.Unlock()

	if err := c.api.BookSlot(ctx, forumID, slot.ID); err != nil {
		c.mu.Lock()
		c.submission = SubmissionBookingFailed
		c.mu.Unlock()
		return &BookingError{ApplicationID: app.ID, SlotID: slot.ID, Cause: err}
	}

	c.mu.Lock()
	c.submission = SubmissionBooked
	c.mu.Unlock()
	c.log.Info("slot booked on retry", logging.Fields{"application": app.ID, "slot": slot.ID})
	c.Close()
	return nil
}
