package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/cloudprep/cloudprep-client/internal/api"
	"github.com/cloudprep/cloudprep-client/internal/auth"
	"github.com/cloudprep/cloudprep-client/internal/config"
	"github.com/cloudprep/cloudprep-client/internal/filter"
	"github.com/cloudprep/cloudprep-client/internal/logger"
	"github.com/cloudprep/cloudprep-client/internal/model"
	"github.com/cloudprep/cloudprep-client/internal/session"
	"github.com/cloudprep/cloudprep-client/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Build Client + Session ────────────────────────────────────────
	client := api.New(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	store := auth.NewFileStore(cfg.TokenFile)

	token, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not load stored token")
	}
	sess := auth.NewSession(token)
	if sess.Authenticated() && sess.Expired() {
		fmt.Println("Your saved login has expired. Please log in again.")
		sess.Clear()
		_ = store.Clear()
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	app := &app{client: client, sess: sess, store: store, log: log, in: bufio.NewReader(os.Stdin)}
	ctx := context.Background()

	switch os.Args[1] {
	case "login":
		err = app.login(ctx)
	case "register":
		err = app.register(ctx)
	case "logout":
		err = app.logout()
	case "whoami":
		err = app.whoami(ctx)
	case "courses":
		err = app.courses(ctx, argID(2))
	case "exams":
		err = app.exams(ctx, argID(2))
	case "take":
		if argID(2) <= 0 {
			err = fmt.Errorf("usage: cloudprep take <exam-id>")
		} else {
			err = app.take(ctx, argID(2))
		}
	case "history":
		err = app.history(ctx)
	case "result":
		if argID(2) <= 0 {
			err = fmt.Errorf("usage: cloudprep result <result-id>")
		} else {
			err = app.result(ctx, argID(2))
		}
	case "stats":
		err = app.stats(ctx)
	case "notes":
		err = app.notes(ctx, strings.Join(os.Args[2:], " "))
	case "note-del":
		if argID(2) <= 0 {
			err = fmt.Errorf("usage: cloudprep note-del <note-id>")
		} else {
			err = app.deleteNote(ctx, argID(2))
		}
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", api.Message(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`cloudprep — cloud certification exam practice

Usage:
  cloudprep login                 log in and store the auth token
  cloudprep register              create an account
  cloudprep logout                forget the stored token
  cloudprep whoami                show the logged-in profile
  cloudprep courses [provider-id] list courses (optionally one provider)
  cloudprep exams [course-id]     list exams (optionally one course)
  cloudprep take <exam-id>        take an exam interactively
  cloudprep history               show past results
  cloudprep result <result-id>    review one past result in detail
  cloudprep stats                 show aggregate statistics
  cloudprep notes [query]         list/search saved notes
  cloudprep note-del <note-id>    delete a note`)
}

func argID(n int) int64 {
	if len(os.Args) <= n {
		return 0
	}
	id, err := strconv.ParseInt(os.Args[n], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

type app struct {
	client *api.Client
	sess   *auth.Session
	store  *auth.FileStore
	log    zerolog.Logger
	in     *bufio.Reader
}

// ─── Auth commands ──────────────────────────────────────────────────────

func (a *app) login(ctx context.Context) error {
	email := a.prompt("Email: ")
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	req := model.LoginRequest{Email: email, Password: password}
	if fields := validator.Check(req); fields != nil {
		return fmt.Errorf("%s", validator.First(fields))
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return err
	}

	a.sess.SetToken(resp.Token)
	if err := a.store.Save(resp.Token); err != nil {
		return err
	}
	if resp.User != nil {
		fmt.Printf("Logged in as %s <%s>\n", resp.User.FullName, resp.User.Email)
	} else {
		fmt.Println("Logged in.")
	}
	return nil
}

func (a *app) register(ctx context.Context) error {
	fullName := a.prompt("Full name: ")
	email := a.prompt("Email: ")
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	req := model.RegisterRequest{FullName: fullName, Email: email, Password: password}
	if fields := validator.Check(req); fields != nil {
		return fmt.Errorf("%s", validator.First(fields))
	}

	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return err
	}

	a.sess.SetToken(resp.Token)
	if err := a.store.Save(resp.Token); err != nil {
		return err
	}
	fmt.Println("Account created. You are now logged in.")
	return nil
}

func (a *app) logout() error {
	a.sess.Clear()
	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	user, err := a.client.Profile(ctx, a.sess)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.FullName, user.Email)
	return nil
}

// ─── Browsing commands ──────────────────────────────────────────────────

func (a *app) courses(ctx context.Context, providerID int64) error {
	page, err := a.client.ListCourses(ctx, api.ListCoursesParams{Page: 1, Limit: 50})
	if err != nil {
		return err
	}

	courses := filter.CoursesByProvider(page.Data, providerID)
	if len(courses) == 0 {
		fmt.Println("No courses found.")
		return nil
	}
	for _, c := range courses {
		fmt.Printf("[%d] %s — %s, %s (%d exams)\n", c.ID, c.Title, c.Provider.Name, c.Level, c.Count.Exams)
	}
	return nil
}

func (a *app) exams(ctx context.Context, courseID int64) error {
	page, err := a.client.ListExams(ctx, 1, 50, courseID)
	if err != nil {
		return err
	}

	exams := filter.ExamsByCourse(page.Data, courseID)
	if len(exams) == 0 {
		fmt.Println("No exams found.")
		return nil
	}
	for _, e := range exams {
		fmt.Printf("[%d] %s — %s, %d min, %d questions\n",
			e.ID, e.Title, e.Course.Title, e.DurationMinutes, e.Count.Questions)
	}
	return nil
}

// ─── History / stats / notes ────────────────────────────────────────────

func (a *app) history(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	page, err := a.client.History(ctx, a.sess, 1, 20)
	if err != nil {
		return err
	}
	if len(page.Data) == 0 {
		fmt.Println("No attempts yet.")
		return nil
	}
	for _, r := range page.Data {
		verdict := "FAIL"
		if r.Passed {
			verdict = "PASS"
		}
		fmt.Printf("[%d] %s — %d/%d (%d%%) %s on %s\n",
			r.ID, r.Exam.Title, r.CorrectCount, r.TotalQuestions, r.Score,
			verdict, r.CompletedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// result renders one stored attempt: the questions with correctness
// revealed, annotated with the user's recorded answers.
func (a *app) result(ctx context.Context, id int64) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	res, err := a.client.GetResult(ctx, a.sess, id)
	if err != nil {
		return err
	}
	questions, err := a.client.QuestionsByExam(ctx, res.Exam.ID, true)
	if err != nil {
		return err
	}

	chosen := make(map[int64]model.UserAnswerRecord, len(res.UserAnswers))
	for _, ua := range res.UserAnswers {
		chosen[ua.QuestionID] = ua
	}

	verdict := "FAIL"
	if res.Passed {
		verdict = "PASS"
	}
	fmt.Printf("%s — %d/%d (%d%%) %s on %s\n\n",
		res.Exam.Title, res.CorrectCount, res.TotalQuestions, res.Score,
		verdict, res.CompletedAt.Format("2006-01-02 15:04"))

	for i, q := range questions {
		fmt.Printf("%d. %s\n", i+1, q.Content)
		record := chosen[q.ID]
		for j, answer := range q.Answers {
			marks := ""
			if answer.IsCorrect != nil && *answer.IsCorrect {
				marks += " ✓"
			}
			if answer.ID == record.AnswerID {
				marks += " (your answer)"
			}
			fmt.Printf("   %c) %s%s\n", 'a'+j, answer.Content, marks)
		}
		if q.Explanation != nil && *q.Explanation != "" {
			fmt.Println("   Explanation:", *q.Explanation)
		}
	}
	return nil
}

func (a *app) stats(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	raw, err := a.client.Stats(ctx, a.sess)
	if err != nil {
		return err
	}
	s := filter.Summarize(*raw)
	fmt.Printf("Exams taken:     %d\n", s.ExamsTaken)
	fmt.Printf("Average score:   %d%%\n", s.AveragePercent)
	fmt.Printf("Correct answers: %d/%d\n", s.CorrectAnswers, s.TotalQuestions)
	fmt.Printf("Passed / failed: %d / %d\n", s.PassedExams, s.FailedExams)
	return nil
}

func (a *app) notes(ctx context.Context, query string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	all, err := a.client.Notes(ctx, a.sess)
	if err != nil {
		return err
	}
	notes := filter.SearchNotes(all, query)
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return nil
	}
	for _, n := range notes {
		where := ""
		if n.Question != nil && n.Question.Exam != nil {
			where = " (" + n.Question.Exam.Title + ")"
		} else if n.Course != nil {
			where = " (" + n.Course.Title + ")"
		}
		fmt.Printf("[%d]%s %s\n", n.ID, where, n.Content)
	}
	return nil
}

// deleteNote removes a note server-side first and only then reports it
// gone. A failed delete leaves the note visible.
func (a *app) deleteNote(ctx context.Context, id int64) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if err := a.client.DeleteNote(ctx, a.sess, id); err != nil {
		return err
	}
	fmt.Printf("Note %d deleted.\n", id)
	return nil
}

// ─── Exam taking ────────────────────────────────────────────────────────

func (a *app) take(ctx context.Context, examID int64) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	engine := session.New(a.client, session.NewBatchSubmitter(a.client, a.sess), a.log)
	if err := engine.Load(ctx, examID); err != nil {
		return err
	}

	switch engine.State() {
	case session.StateEmpty:
		fmt.Printf("%s has no questions yet.\n", engine.Exam().Title)
		return nil
	case session.StateInProgress:
		// fall through to the loop
	default:
		return fmt.Errorf("unexpected session state %s", engine.State())
	}

	exam := engine.Exam()
	fmt.Printf("\n%s — %d questions, %d minutes\n", exam.Title, len(engine.Questions()), exam.DurationMinutes)
	fmt.Println("Commands: a-f select · n next · p previous · g <num> jump · note · submit · quit")

	for {
		a.renderQuestion(engine)

		line := strings.ToLower(a.prompt("> "))
		switch {
		case line == "quit", line == "q":
			return nil
		case line == "n":
			engine.Navigate(1)
		case line == "p":
			engine.Navigate(-1)
		case strings.HasPrefix(line, "g "):
			num, err := strconv.Atoi(strings.TrimSpace(line[2:]))
			if err != nil {
				fmt.Println("Not a question number.")
				continue
			}
			engine.JumpTo(num - 1)
		case line == "note":
			a.editNote(ctx, engine)
		case line == "submit":
			if done := a.submit(ctx, engine); done {
				a.renderSummary(engine)
			}
		case len(line) == 1 && line[0] >= 'a' && line[0] <= 'f':
			q := engine.Current()
			idx := int(line[0] - 'a')
			if q == nil || idx >= len(q.Answers) {
				fmt.Println("No such option.")
				continue
			}
			if !engine.SelectAnswer(q.ID, q.Answers[idx].ID) {
				fmt.Println("Selection is closed for this attempt.")
			}
		case line == "":
			// re-render
		default:
			fmt.Println("Unknown command.")
		}
	}
}

func (a *app) renderQuestion(e *session.Engine) {
	q := e.Current()
	if q == nil {
		return
	}

	fmt.Printf("\nQuestion %d/%d (%d answered)\n", e.Index()+1, len(e.Questions()), e.AnsweredCount())
	fmt.Println(q.Content)

	result, scored := e.Result(q.ID)
	selected := e.SelectedAnswer(q.ID)

	for i, answer := range q.Answers {
		marker := " "
		if answer.ID == selected {
			marker = "*"
		}
		verdict := ""
		if scored {
			if answer.ID == result.CorrectAnswerID {
				verdict = " ✓"
			} else if answer.ID == selected && !result.IsCorrect {
				verdict = " ✗"
			}
		}
		fmt.Printf("  %s %c) %s%s\n", marker, 'a'+i, answer.Content, verdict)
	}

	if scored && result.Explanation != nil && *result.Explanation != "" {
		fmt.Println("  Explanation:", *result.Explanation)
	}
	if draft := e.NoteDraft(q.ID); draft != "" {
		fmt.Println("  Note:", draft)
	}
}

func (a *app) submit(ctx context.Context, e *session.Engine) bool {
	if err := e.Submit(ctx); err != nil {
		fmt.Println(api.Message(err))
		return false
	}
	return true
}

func (a *app) renderSummary(e *session.Engine) {
	correct, total, percent := e.Score()
	verdict := "Below the pass mark — keep practicing."
	if filter.Passed(percent) {
		verdict = "Passed!"
	}
	fmt.Printf("\nSubmitted: %d/%d correct (%d%%). %s\n", correct, total, percent, verdict)
	fmt.Println("Navigate to review each question; correct answers are marked ✓.")
}

func (a *app) editNote(ctx context.Context, e *session.Engine) {
	q := e.Current()
	if q == nil {
		return
	}
	fmt.Println("Note text (empty line keeps the current draft, '-' discards it):")
	text := a.promptRaw()
	switch text {
	case "":
	case "-":
		e.DiscardNoteDraft(q.ID)
		fmt.Println("Draft discarded.")
		return
	default:
		e.SetNoteDraft(q.ID, text)
	}

	if _, err := e.SaveNote(ctx, a.client, a.sess, q.ID); err != nil {
		fmt.Println(api.Message(err))
		return
	}
	fmt.Println("Note saved.")
}

// ─── Helpers ────────────────────────────────────────────────────────────

func (a *app) requireLogin() error {
	if !a.sess.Authenticated() {
		return fmt.Errorf("not logged in — run `cloudprep login` first")
	}
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	return a.promptRaw()
}

func (a *app) promptRaw() string {
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
