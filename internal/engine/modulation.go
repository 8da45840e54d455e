package engine

import "github.com/tatianab/relationship-game/internal/models"

// Topic is a Talk subject, numbered as in the menu.
type Topic int

const (
	TopicNone Topic = iota
	TopicFood
	TopicHobbies
	TopicFeelings
	TopicInappropriate
)

// ParseTopic maps a menu selection to a topic. Anything outside 1-4 is TopicNone.
func ParseTopic(n int) Topic {
	if n < int(TopicFood) || n > int(TopicInappropriate) {
		return TopicNone
	}
	return Topic(n)
}

func (t Topic) String() string {
	switch t {
	case TopicFood:
		return "Food"
	case TopicHobbies:
		return "Hobbies"
	case TopicFeelings:
		return "Feelings"
	case TopicInappropriate:
		return "Inappropriate"
	}
	return "Nothing in particular"
}

// Topics lists the selectable topics in menu order.
var Topics = []Topic{TopicFood, TopicHobbies, TopicFeelings, TopicInappropriate}

var topicDeltas = map[Topic]models.Delta{
	TopicFood:          {Attraction: 3, Trust: 1, Comfort: 2},
	TopicHobbies:       {Attraction: 2, Trust: 3, Comfort: 2},
	TopicFeelings:      {Attraction: 5, Trust: 4, Comfort: 3},
	TopicInappropriate: {Attraction: -5, Trust: -3, Comfort: -5},
}

var topicLines = map[Topic]LineKey{
	TopicFood:          LineTalkFood,
	TopicHobbies:       LineTalkHobbies,
	TopicFeelings:      LineTalkFeelings,
	TopicInappropriate: LineTalkInappropriate,
}

// Halving uses Go integer division, which truncates toward zero.
var personalityRules = map[models.Personality]func(Topic, models.Delta) models.Delta{
	models.PersonalityShy: func(t Topic, d models.Delta) models.Delta {
		if t == TopicFeelings || t == TopicInappropriate {
			d.Attraction /= 2
		}
		if t == TopicInappropriate {
			d.Trust /= 2
		}
		return d
	},
	models.PersonalityOpen: func(t Topic, d models.Delta) models.Delta {
		if t != TopicInappropriate {
			d.Attraction += 2
			d.Trust++
		}
		return d
	},
	models.PersonalityReserved: func(t Topic, d models.Delta) models.Delta {
		switch t {
		case TopicInappropriate:
			d.Attraction /= 2
			d.Comfort -= 2
		case TopicFeelings:
			d.Trust /= 2
		}
		return d
	},
}

var moodShift = map[models.Mood]models.Delta{
	models.MoodHappy:   {Attraction: 2, Trust: 2},
	models.MoodGuarded: {Attraction: -2, Trust: -1},
	models.MoodUpset:   {Attraction: -4, Trust: -3, Comfort: -2},
	models.MoodNeutral: {},
}

type secretPairing struct {
	personality models.Personality
	mood        models.Mood
}

var secretEvents = map[secretPairing]LineKey{
	{models.PersonalityShy, models.MoodHappy}:      LineSecretShy,
	{models.PersonalityOpen, models.MoodGuarded}:   LineSecretOpen,
	{models.PersonalityReserved, models.MoodUpset}: LineSecretReserved,
}

// TalkDelta returns the stat change for talking about t, after personality
// and then mood modulation.
func TalkDelta(t Topic, p models.Personality, m models.Mood) models.Delta {
	d, ok := topicDeltas[t]
	if !ok {
		return models.Delta{}
	}
	if rule, ok := personalityRules[p]; ok {
		d = rule(t, d)
	}
	return d.Add(moodShift[m])
}
