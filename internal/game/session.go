package game

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aaronzipp/detective-quest/internal/clues"
	"github.com/aaronzipp/detective-quest/internal/console"
	"github.com/aaronzipp/detective-quest/internal/index"
	"github.com/aaronzipp/detective-quest/internal/journal"
	"github.com/aaronzipp/detective-quest/internal/mansion"
	"github.com/aaronzipp/detective-quest/internal/models"
	"github.com/aaronzipp/detective-quest/internal/render"
	"github.com/aaronzipp/detective-quest/internal/scenario"
)

// Case is everything a session needs to know about the mystery
type Case struct {
	Title string
	Intro string
	Map   *mansion.Room
	Index *index.HashIndex
}

// NewCase builds the room map and evidence index of a scenario
func NewCase(s *models.Scenario, buckets int) Case {
	return Case{
		Title: s.Title,
		Intro: s.Intro,
		Map:   mansion.Build(s.Map),
		Index: scenario.BuildIndex(s, buckets),
	}
}

// Options tune a session
type Options struct {
	Threshold int
	Renderer  render.Renderer
	Logger    *slog.Logger
}

// Session is one play-through: exploration followed by the trial
type Session struct {
	ID      string
	Phase   models.Phase
	Case    Case
	Clues   *clues.Collection
	Journal *journal.Journal
	Verdict *Verdict

	term      Terminal
	render    render.Renderer
	logger    *slog.Logger
	threshold int
}

// NewSession creates a session for the case, talking through term
func NewSession(c Case, term Terminal, opts Options) *Session {
	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	threshold := opts.Threshold
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Session{
		ID:        id,
		Phase:     models.PhaseExploring,
		Case:      c,
		Clues:     clues.New(),
		Journal:   journal.New(),
		term:      term,
		render:    opts.Renderer,
		logger:    logger.With("session_id", id),
		threshold: threshold,
	}
}

// Run plays the session to the end. Running out of input ends the session
// quietly without a verdict.
func (s *Session) Run(ctx context.Context) error {
	s.Journal.Subscribe(journal.LogTo(s.logger))
	s.Journal.Record(journal.EventSessionStarted, "title", s.Case.Title)
	s.logger.Info("session started", "rooms", s.Case.Map.Count(), "evidence", s.Case.Index.Len())

	s.term.Println(s.render.Banner(s.Case.Title, s.Case.Intro))

	explorer := NewExplorer(s.Case.Map, s.Clues, s.term, s.render, s.Journal)
	if err := explorer.Run(ctx); err != nil {
		return s.stop(err)
	}

	s.Phase = models.PhaseJudging
	if err := s.judge(ctx, explorer.Visited()); err != nil {
		return s.stop(err)
	}

	s.Phase = models.PhaseFinished
	s.term.Println(s.render.GameOver())
	s.logger.Info("session finished", "clues", s.Clues.Len(), "upheld", s.Verdict.Upheld)
	return nil
}

// stop ends the session after an input failure
func (s *Session) stop(err error) error {
	s.Phase = models.PhaseFinished
	if errors.Is(err, console.ErrClosed) {
		s.logger.Info("input closed, ending session")
		return nil
	}
	return err
}

// judge lists the collected clues, reads the accusation and rules on it
func (s *Session) judge(ctx context.Context, visited int) error {
	if s.Clues.Empty() {
		s.Verdict = Judge(s.Clues, s.Case.Index, "", s.threshold)
		s.Journal.Record(journal.EventVerdict, "outcome", "no-evidence")
		s.term.Println(s.render.NoClues())
		return nil
	}

	s.term.Println(s.render.ClueList(s.Clues.Sorted()))

	suspects := s.Case.Index.Suspects()
	accused, err := s.accusation(ctx, suspects)
	if err != nil {
		return err
	}
	s.Journal.Record(journal.EventAccusation, "accused", accused)

	v := Judge(s.Clues, s.Case.Index, accused, s.threshold)
	s.Verdict = v
	outcome := "rejected"
	if v.Upheld {
		outcome = "upheld"
	}
	s.Journal.Record(journal.EventVerdict, "outcome", outcome, "accused", accused)

	s.term.Println(s.render.Verdict(v.Accused, v.Matches, v.Upheld, v.Supporting, visited, Suggest(accused, suspects)))
	return nil
}

// accusation prompts until the player names someone
func (s *Session) accusation(ctx context.Context, suspects []string) (string, error) {
	for {
		line, err := s.term.Prompt(ctx, s.render.AccusePrompt(suspects))
		if err != nil {
			return "", err
		}
		if accused := strings.TrimSpace(line); accused != "" {
			return accused, nil
		}
		s.term.Println(s.render.EmptyAccusation())
	}
}
