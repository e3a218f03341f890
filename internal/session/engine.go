package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/model"
	"github.com/cloudprep/cloudprep-client/internal/validator"
)

// State enumerates the lifecycle states of one exam attempt.
type State string

const (
	StateLoading    State = "LOADING"
	StateInProgress State = "IN_PROGRESS"
	StateSubmitted  State = "SUBMITTED"
	StateErrored    State = "ERRORED"
	StateEmpty      State = "EMPTY"
)

// Common engine errors.
var (
	// ErrSubmitInFlight rejects a second Submit while one is outstanding.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrNotInProgress rejects Submit outside the InProgress state.
	ErrNotInProgress = errors.New("session is not in progress")
	// ErrNotLoaded rejects operations before a successful Load.
	ErrNotLoaded = errors.New("no exam loaded")
	// ErrBlankNote rejects saving an empty or whitespace-only note.
	ErrBlankNote = errors.New("note content must not be blank")
)

// MissingAnswersError rejects a submission while questions remain
// unanswered. No network call is made.
type MissingAnswersError struct {
	Missing int
}

func (e *MissingAnswersError) Error() string {
	return fmt.Sprintf("%d questions are still unanswered", e.Missing)
}

// Loader fetches an exam and its question set from the API collaborator.
// *api.Client satisfies it.
type Loader interface {
	GetExam(ctx context.Context, id int64) (*model.Exam, error)
	QuestionsByExam(ctx context.Context, examID int64, showAnswers bool) ([]model.Question, error)
}

// Submitter turns a complete answer set into a per-question result map.
// The two wire integrations (batch endpoint, sequential per-question
// check) both implement it and produce the same terminal shape.
type Submitter interface {
	Submit(ctx context.Context, examID int64, answers []model.AnswerChoice) (map[int64]model.QuestionResult, error)
}

// NoteSaver persists a per-question note. *api.Client satisfies it.
type NoteSaver interface {
	SaveNote(ctx context.Context, sess *auth.Session, req model.SaveNoteRequest) (*model.Note, error)
}

// Engine owns one exam attempt: the loaded question set, per-question
// selected answer, current position, submission, and derived result state.
// It lives in memory for one attempt only and is single-threaded by
// construction: all operations run to completion between interactions.
type Engine struct {
	loader    Loader
	submitter Submitter
	log       zerolog.Logger

	state      State
	exam       *model.Exam
	questions  []model.Question
	index      int
	answers    map[int64]int64 // questionID → chosen answerID
	results    map[int64]model.QuestionResult
	noteDrafts map[int64]string
	submitting bool
}

// New creates an Engine. Load must be called before anything else.
func New(loader Loader, submitter Submitter, log zerolog.Logger) *Engine {
	return &Engine{
		loader:    loader,
		submitter: submitter,
		log:       log,
		state:     StateLoading,
	}
}

// Load fetches the exam and its questions (without correctness markers)
// and starts the attempt at question 0. Zero questions ends in StateEmpty.
// A failed Load ends in StateErrored and may be retried by calling Load
// again; retrying resets all attempt state.
func (e *Engine) Load(ctx context.Context, examID int64) error {
	e.state = StateLoading
	e.exam = nil
	e.questions = nil
	e.index = 0
	e.answers = make(map[int64]int64)
	e.results = make(map[int64]model.QuestionResult)
	e.noteDrafts = make(map[int64]string)

	exam, err := e.loader.GetExam(ctx, examID)
	if err != nil {
		e.state = StateErrored
		return fmt.Errorf("load exam: %w", err)
	}

	questions, err := e.loader.QuestionsByExam(ctx, examID, false)
	if err != nil {
		e.state = StateErrored
		return fmt.Errorf("load questions: %w", err)
	}

	e.exam = exam
	if len(questions) == 0 {
		e.state = StateEmpty
		e.log.Debug().Int64("exam_id", examID).Msg("exam has no questions")
		return nil
	}

	e.questions = questions
	e.state = StateInProgress
	e.log.Debug().Int64("exam_id", examID).Int("questions", len(questions)).Msg("attempt started")
	return nil
}

// SelectAnswer records the chosen answer for a question, overwriting any
// prior choice. It reports whether the selection was recorded: outside
// InProgress, or for an unknown question/answer pair, it is a no-op.
func (e *Engine) SelectAnswer(questionID, answerID int64) bool {
	if e.state != StateInProgress {
		return false
	}
	question := e.question(questionID)
	if question == nil {
		return false
	}
	valid := false
	for _, a := range question.Answers {
		if a.ID == answerID {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}
	e.answers[questionID] = answerID
	return true
}

// Navigate moves the current position by delta, clamped to the question
// range. Navigation never changes answer state and remains available
// after submission.
func (e *Engine) Navigate(delta int) int {
	return e.JumpTo(e.index + delta)
}

// JumpTo moves the current position to index, clamped to [0, n-1].
func (e *Engine) JumpTo(index int) int {
	if e.state != StateInProgress && e.state != StateSubmitted {
		return e.index
	}
	if index < 0 {
		index = 0
	}
	if max := len(e.questions) - 1; index > max {
		index = max
	}
	e.index = index
	return e.index
}

// Submit sends the full answer map to the API collaborator. Preconditions,
// checked in order and leaving state untouched on failure:
//   - the attempt must be InProgress (submitted is a one-way transition)
//   - no other submission may be in flight
//   - every question must have an answer (*MissingAnswersError otherwise)
//
// A failed submission keeps the session InProgress so the user can submit
// again without re-answering.
func (e *Engine) Submit(ctx context.Context) error {
	if e.state != StateInProgress {
		return ErrNotInProgress
	}
	if e.submitting {
		return ErrSubmitInFlight
	}
	if missing := len(e.questions) - len(e.answers); missing > 0 {
		return &MissingAnswersError{Missing: missing}
	}

	e.submitting = true
	defer func() { e.submitting = false }()

	answers := make([]model.AnswerChoice, 0, len(e.questions))
	for _, q := range e.questions {
		answers = append(answers, model.AnswerChoice{QuestionID: q.ID, AnswerID: e.answers[q.ID]})
	}

	results, err := e.submitter.Submit(ctx, e.exam.ID, answers)
	if err != nil {
		e.log.Debug().Err(err).Int64("exam_id", e.exam.ID).Msg("submission failed")
		return fmt.Errorf("submit exam: %w", err)
	}

	e.results = results
	e.state = StateSubmitted

	correct, total, percent := e.Score()
	e.log.Debug().
		Int64("exam_id", e.exam.ID).
		Int("correct", correct).
		Int("total", total).
		Int("percent", percent).
		Msg("attempt submitted")
	return nil
}

// Score derives the attempt score from the stored result map rather than
// trusting a server aggregate, so both submission integrations display
// identically. percent is round(100 * correct / total), 0 for an empty
// question set.
func (e *Engine) Score() (correct, total, percent int) {
	total = len(e.questions)
	for _, r := range e.results {
		if r.IsCorrect {
			correct++
		}
	}
	if total == 0 {
		return correct, 0, 0
	}
	percent = int(math.Round(float64(correct) / float64(total) * 100))
	return correct, total, percent
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Exam returns the loaded exam, nil before a successful Load.
func (e *Engine) Exam() *model.Exam { return e.exam }

// Questions returns the loaded question set in navigation order.
func (e *Engine) Questions() []model.Question { return e.questions }

// Index returns the current question position.
func (e *Engine) Index() int { return e.index }

// Current returns the question at the current position, nil when no
// questions are loaded.
func (e *Engine) Current() *model.Question {
	if len(e.questions) == 0 {
		return nil
	}
	return &e.questions[e.index]
}

// AnsweredCount returns how many questions have a selected answer.
func (e *Engine) AnsweredCount() int { return len(e.answers) }

// SelectedAnswer returns the chosen answer for a question, 0 when none.
func (e *Engine) SelectedAnswer(questionID int64) int64 {
	return e.answers[questionID]
}

// Result returns the post-submission detail for a question. ok is false
// before submission or for unknown questions.
func (e *Engine) Result(questionID int64) (model.QuestionResult, bool) {
	r, ok := e.results[questionID]
	return r, ok
}

// ─── Per-question note sub-flow ─────────────────────────────────────────

// SetNoteDraft updates the free-text note buffer for a question. The
// buffer is independent of answer state.
func (e *Engine) SetNoteDraft(questionID int64, content string) {
	if e.noteDrafts == nil {
		e.noteDrafts = make(map[int64]string)
	}
	e.noteDrafts[questionID] = content
}

// NoteDraft returns the buffered note text for a question.
func (e *Engine) NoteDraft(questionID int64) string {
	return e.noteDrafts[questionID]
}

// DiscardNoteDraft drops the local buffer for a question. Purely local;
// any server-side note is untouched.
func (e *Engine) DiscardNoteDraft(questionID int64) {
	delete(e.noteDrafts, questionID)
}

// SaveNote persists the buffered note for a question through the saver.
// Empty or whitespace-only content is rejected before any network call.
// A remote failure surfaces as the returned error and leaves the buffer
// intact; no rollback is attempted.
func (e *Engine) SaveNote(ctx context.Context, saver NoteSaver, sess *auth.Session, questionID int64) (*model.Note, error) {
	if e.state != StateInProgress && e.state != StateSubmitted {
		return nil, ErrNotLoaded
	}
	content := strings.TrimSpace(e.noteDrafts[questionID])
	if content == "" {
		return nil, ErrBlankNote
	}

	req := model.SaveNoteRequest{QuestionID: &questionID, Content: content}
	if fields := validator.Check(req); fields != nil {
		return nil, fmt.Errorf("%w: %s", ErrBlankNote, validator.First(fields))
	}

	note, err := saver.SaveNote(ctx, sess, req)
	if err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	return note, nil
}

func (e *Engine) question(id int64) *model.Question {
	for i := range e.questions {
		if e.questions[i].ID == id {
			return &e.questions[i]
		}
	}
	return nil
}
