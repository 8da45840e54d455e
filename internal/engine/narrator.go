package engine

import (
	"context"
	"fmt"

	"github.com/tatianab/relationship-game/internal/models"
)

// LineKey identifies a piece of dialogue or narration.
type LineKey string

const (
	LineTalkFood          LineKey = "talk_food"
	LineTalkHobbies       LineKey = "talk_hobbies"
	LineTalkFeelings      LineKey = "talk_feelings"
	LineTalkInappropriate LineKey = "talk_inappropriate"
	LineTalkNone          LineKey = "talk_none"
	LineHangOut           LineKey = "hangout"
	LineGiftGood          LineKey = "gift_good"
	LineGiftBad           LineKey = "gift_bad"
	LineSpace             LineKey = "space"
	LinePush              LineKey = "push"
	LineSideEvent         LineKey = "side_event"
	LineSecretShy         LineKey = "secret_shy"
	LineSecretOpen        LineKey = "secret_open"
	LineSecretReserved    LineKey = "secret_reserved"
	LineDayEnds           LineKey = "day_ends"
)

// Narrator turns a line key into text for a character.
type Narrator interface {
	Line(ctx context.Context, key LineKey, c *models.Character) string
}

// staticLines are format strings taking the character name.
var staticLines = map[LineKey]string{
	LineTalkFood:          "%s smiles talking about food.",
	LineTalkHobbies:       "%s opens up about hobbies.",
	LineTalkFeelings:      "%s hesitates but shares feelings.",
	LineTalkInappropriate: "%s looks uncomfortable.",
	LineTalkNone:          "A quiet moment passes with %s.",
	LineHangOut:           "You spend a nice afternoon with %s.",
	LineGiftGood:          "%s loves the gift!",
	LineGiftBad:           "%s forces a polite smile.",
	LineSpace:             "%s appreciates the space.",
	LinePush:              "%s pulls away.",
	LineSideEvent:         "%s shares a personal moment.",
	LineSecretShy:         "%s quietly shows you a sketchbook nobody else has seen.",
	LineSecretOpen:        "%s admits that keeping everyone entertained is exhausting sometimes.",
	LineSecretReserved:    "%s lets the composure slip and confesses a long-held worry.",
	LineDayEnds:           "The day ends with %s.",
}

// StaticNarrator renders lines from a fixed table.
type StaticNarrator struct{}

func (StaticNarrator) Line(_ context.Context, key LineKey, c *models.Character) string {
	format, ok := staticLines[key]
	if !ok {
		format = staticLines[LineTalkNone]
	}
	return fmt.Sprintf(format, c.Name)
}
