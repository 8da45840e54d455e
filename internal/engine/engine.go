package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tatianab/relationship-game/internal/models"
)

// FinalDay is the day on which the story ends.
const FinalDay = 30

// ErrSessionEnded is returned for commands dispatched after the ending.
var ErrSessionEnded = errors.New("session has ended")

// Store persists the roster between runs.
type Store interface {
	Save(doc *models.SaveDocument) error
	// Load returns a nil document when nothing has been saved.
	Load() (*models.SaveDocument, error)
}

// State is the session's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateEnded
)

// Action is a player command.
type Action int

const (
	ActionTalk Action = iota + 1
	ActionHangOut
	ActionGiveGift
	ActionGiveSpace
	ActionPushTooFast
	ActionSwitchCharacter
	ActionChangeLocation
	ActionEndDay
	ActionSave
	ActionLoad
	ActionQuit
)

var actionNames = map[Action]string{
	ActionTalk:            "Talk",
	ActionHangOut:         "Hang out",
	ActionGiveGift:        "Give gift",
	ActionGiveSpace:       "Give space",
	ActionPushTooFast:     "Push too fast",
	ActionSwitchCharacter: "Switch character",
	ActionChangeLocation:  "Change location",
	ActionEndDay:          "End day",
	ActionSave:            "Save game",
	ActionLoad:            "Load game",
	ActionQuit:            "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Command is one player selection. Topic is read for Talk, Target (1-based)
// for SwitchCharacter, Location for ChangeLocation.
type Command struct {
	Action   Action
	Topic    Topic
	Target   int
	Location models.Location
}

// Outcome is what a command produced.
type Outcome struct {
	Lines   []string
	Summary []string // events of a day that just ended
	Status  string
	Ended   bool
}

// Session is the running game: the roster, who and where the player is, and
// the day counter.
type Session struct {
	roster   []*models.Character
	active   int
	location models.Location
	day      int
	state    State

	resolver *Resolver
	store    Store
	logger   *slog.Logger
}

// NewSession restores the roster from store, falling back to the default cast.
func NewSession(store Store, resolver *Resolver, logger *slog.Logger) *Session {
	s := &Session{
		location: models.LocationHome,
		day:      1,
		resolver: resolver,
		store:    store,
		logger:   logger,
	}
	s.restore()
	return s
}

func (s *Session) Day() int { return s.day }
func (s *Session) Location() models.Location { return s.location }
func (s *Session) State() State { return s.state }
func (s *Session) Ended() bool { return s.state == StateEnded }
func (s *Session) ActiveIndex() int { return s.active }
func (s *Session) Active() *models.Character { return s.roster[s.active] }
func (s *Session) Roster() []*models.Character { return s.roster }

// Dispatch runs one command, then refreshes the active character's mood and
// checks for the ending.
func (s *Session) Dispatch(ctx context.Context, cmd Command) (Outcome, error) {
	if s.state == StateEnded {
		return Outcome{Ended: true}, ErrSessionEnded
	}
	s.logger.Debug("dispatch", "action", cmd.Action, "topic", cmd.Topic, "day", s.day, "character", s.Active().Name)

	var out Outcome
	c := s.Active()
	switch cmd.Action {
	case ActionTalk:
		out.Lines = s.resolver.Talk(ctx, c, cmd.Topic)
		s.advance()
	case ActionHangOut:
		out.Lines = s.resolver.HangOut(ctx, c, s.location)
		s.advance()
	case ActionGiveGift:
		out.Lines = s.resolver.GiveGift(ctx, c)
		s.advance()
	case ActionGiveSpace:
		out.Lines = s.resolver.GiveSpace(ctx, c)
		s.advance()
	case ActionPushTooFast:
		out.Lines = s.resolver.PushTooFast(ctx, c)
		s.advance()
	case ActionSwitchCharacter:
		s.switchCharacter(cmd.Target)
		out.Status = "Now with " + s.Active().Name
	case ActionChangeLocation:
		if cmd.Location.Valid() {
			s.location = cmd.Location
		}
		out.Status = "Location: " + string(s.location)
		out.Lines = s.resolver.SideEvent(ctx, c)
	case ActionEndDay:
		out.Lines = []string{s.resolver.narrator.Line(ctx, LineDayEnds, c)}
		out.Summary = c.TakeEvents()
		s.advance()
	case ActionSave:
		out.Status = s.save()
	case ActionLoad:
		out.Status = s.restore()
	case ActionQuit:
		s.state = StateEnded
	default:
		s.logger.Debug("ignoring unknown action", "action", cmd.Action)
	}

	models.RefreshMood(s.Active())
	if s.day >= FinalDay {
		s.state = StateEnded
	}
	out.Ended = s.state == StateEnded
	if out.Ended {
		s.logger.Info("session ended", "day", s.day, "character", s.Active().Name)
	}
	return out, nil
}

func (s *Session) advance() {
	s.day++
	models.Clamp(s.Active())
}

// switchCharacter selects the 1-based target, clamped into the roster.
func (s *Session) switchCharacter(target int) {
	s.active = min(max(target-1, 0), len(s.roster)-1)
}

func (s *Session) save() string {
	doc := &models.SaveDocument{
		Characters: s.roster,
		Session: &models.SessionState{
			Day:      s.day,
			Location: s.location,
			Active:   s.active,
		},
	}
	if err := s.store.Save(doc); err != nil {
		s.logger.Error("save failed", "err", err)
		return "Save failed: " + err.Error()
	}
	s.logger.Info("game saved", "characters", len(s.roster), "day", s.day)
	return "Game saved!"
}

// restore replaces the roster from the store. A missing or unreadable save
// leaves the default cast in place of the roster.
func (s *Session) restore() string {
	doc, err := s.store.Load()
	if err != nil {
		s.logger.Warn("could not load save, starting fresh", "err", err)
	}
	if doc == nil || len(doc.Characters) == 0 {
		s.roster = models.DefaultRoster()
		s.active = 0
		if err != nil {
			return "Save file unreadable, starting fresh."
		}
		return "No save found, starting fresh."
	}

	s.roster = doc.Characters
	if st := doc.Session; st != nil {
		s.day = st.Day
		s.location = st.Location
		s.active = st.Active
	}
	s.active = min(max(s.active, 0), len(s.roster)-1)
	s.logger.Info("game loaded", "characters", len(s.roster), "day", s.day)
	return "Game loaded!"
}

// CharacterSummary is the final state of one character.
type CharacterSummary struct {
	Name       string
	Attraction int
	Trust      int
	Comfort    int
	Mood       models.Mood
	Arc        string
	ArcStep    int
}

// Summary describes the roster for the ending screen.
func (s *Session) Summary() []CharacterSummary {
	out := make([]CharacterSummary, 0, len(s.roster))
	for _, c := range s.roster {
		arc := models.ArcFor(c.Name)
		out = append(out, CharacterSummary{
			Name:       c.Name,
			Attraction: c.Attraction,
			Trust:      c.Trust,
			Comfort:    c.Comfort,
			Mood:       c.Mood,
			Arc:        arc,
			ArcStep:    c.StoryProgress[arc],
		})
	}
	return out
}
