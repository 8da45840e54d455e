package engine

import (
	"context"

	"github.com/tatianab/relationship-game/internal/models"
)

var (
	hangOutDelta = models.Delta{Attraction: 5, Trust: 4, Comfort: 4}
	spaceDelta   = models.Delta{Comfort: 5}
	pushDelta    = models.Delta{Attraction: -8, Trust: -8, Comfort: -15}
)

const (
	secretEventOdds = 4
	sideEventOdds   = 5
)

// Resolver applies player actions to a character. Every method leaves the
// character's stats clamped and returns the lines to show the player.
type Resolver struct {
	rng      Rand
	narrator Narrator
}

func NewResolver(rng Rand, narrator Narrator) *Resolver {
	if narrator == nil {
		narrator = StaticNarrator{}
	}
	return &Resolver{rng: rng, narrator: narrator}
}

// Talk resolves a conversation about t.
func (r *Resolver) Talk(ctx context.Context, c *models.Character, t Topic) []string {
	key, ok := topicLines[t]
	if !ok {
		return []string{r.narrator.Line(ctx, LineTalkNone, c)}
	}

	c.Apply(TalkDelta(t, c.Personality, c.Mood))
	lines := []string{r.narrator.Line(ctx, key, c)}

	if secret, ok := secretEvents[secretPairing{c.Personality, c.Mood}]; ok && r.rng.IntN(secretEventOdds) == 0 {
		line := r.narrator.Line(ctx, secret, c)
		c.AddEvent(line)
		lines = append(lines, line)
	}
	return lines
}

// HangOut spends time together at loc, which also advances quests and the
// character's story arc.
func (r *Resolver) HangOut(ctx context.Context, c *models.Character, loc models.Location) []string {
	c.Apply(hangOutDelta)
	lines := []string{r.narrator.Line(ctx, LineHangOut, c)}
	models.LocationQuest(c, loc)
	models.StoryArcProgress(c)
	return append(lines, r.SideEvent(ctx, c)...)
}

// GiveGift applies a random boost. Whether the gift lands is rolled
// separately from the boost.
func (r *Resolver) GiveGift(ctx context.Context, c *models.Character) []string {
	c.Apply(models.Delta{
		Attraction: r.rng.IntN(6),
		Trust:      r.rng.IntN(4),
		Comfort:    r.rng.IntN(3),
	})
	key := LineGiftBad
	if r.rng.IntN(2) == 0 {
		key = LineGiftGood
	}
	return []string{r.narrator.Line(ctx, key, c)}
}

func (r *Resolver) GiveSpace(ctx context.Context, c *models.Character) []string {
	c.Apply(spaceDelta)
	return []string{r.narrator.Line(ctx, LineSpace, c)}
}

func (r *Resolver) PushTooFast(ctx context.Context, c *models.Character) []string {
	c.Apply(pushDelta)
	return []string{r.narrator.Line(ctx, LinePush, c)}
}

// SideEvent occasionally records a personal moment.
func (r *Resolver) SideEvent(ctx context.Context, c *models.Character) []string {
	if r.rng.IntN(sideEventOdds) != 0 {
		return nil
	}
	line := r.narrator.Line(ctx, LineSideEvent, c)
	c.AddEvent(line)
	return []string{line}
}
