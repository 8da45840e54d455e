package models

// DeriveMood maps trust and comfort to a mood. The first matching rule wins.
func DeriveMood(c *Character) Mood {
	switch {
	case c.Comfort <= 20 || c.Trust <= 20:
		return MoodUpset
	case c.Comfort <= 40:
		return MoodGuarded
	case c.Trust >= 70 && c.Comfort >= 70:
		return MoodHappy
	default:
		return MoodNeutral
	}
}

// RefreshMood recomputes and stores the character's mood.
func RefreshMood(c *Character) {
	c.Mood = DeriveMood(c)
}
