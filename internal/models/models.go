package models

// Mood is derived from a character's stats after every action.
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodNeutral Mood = "Neutral"
	MoodGuarded Mood = "Guarded"
	MoodUpset   Mood = "Upset"
)

// Personality is fixed when a character is created.
type Personality string

const (
	PersonalityShy      Personality = "Shy"
	PersonalityOpen     Personality = "Open"
	PersonalityReserved Personality = "Reserved"
)

// Location is where the player currently is.
type Location string

const (
	LocationHome Location = "Home"
	LocationCafe Location = "Cafe"
	LocationPark Location = "Park"
)

// Locations lists every location in menu order.
var Locations = []Location{LocationHome, LocationCafe, LocationPark}

const (
	StatMin = 0
	StatMax = 100

	startingStat = 50
)

// Character is one relationship target.
type Character struct {
	Name          string         `yaml:"name"`
	Attraction    int            `yaml:"attraction"`
	Trust         int            `yaml:"trust"`
	Comfort       int            `yaml:"comfort"`
	Mood          Mood           `yaml:"mood"`
	Personality   Personality    `yaml:"personality"`
	QuestLog      []string       `yaml:"quest_log"`
	StoryProgress map[string]int `yaml:"story_progress"`
	DailyEvents   []string       `yaml:"daily_events"`
}

// Delta is a change to the three relationship stats.
type Delta struct {
	Attraction int
	Trust      int
	Comfort    int
}

// Add returns the component-wise sum of d and o.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		Attraction: d.Attraction + o.Attraction,
		Trust:      d.Trust + o.Trust,
		Comfort:    d.Comfort + o.Comfort,
	}
}

// NewCharacter returns a character with starting stats.
func NewCharacter(name string, p Personality) *Character {
	return &Character{
		Name:          name,
		Attraction:    startingStat,
		Trust:         startingStat,
		Comfort:       startingStat,
		Mood:          MoodNeutral,
		Personality:   p,
		QuestLog:      []string{},
		StoryProgress: map[string]int{},
		DailyEvents:   []string{},
	}
}

// DefaultRoster is the cast used when there is no save to restore.
func DefaultRoster() []*Character {
	return []*Character{
		NewCharacter("Emilia", PersonalityShy),
		NewCharacter("Luna", PersonalityOpen),
		NewCharacter("Olivia", PersonalityReserved),
	}
}

// Apply adds d to the character's stats and clamps the result.
func (c *Character) Apply(d Delta) {
	c.Attraction += d.Attraction
	c.Trust += d.Trust
	c.Comfort += d.Comfort
	Clamp(c)
}

// AddEvent records a narrative line for the current day.
func (c *Character) AddEvent(line string) {
	c.DailyEvents = append(c.DailyEvents, line)
}

// TakeEvents returns the day's events and clears them.
func (c *Character) TakeEvents() []string {
	events := c.DailyEvents
	c.DailyEvents = []string{}
	return events
}

// Clamp forces attraction, trust and comfort into [StatMin, StatMax].
func Clamp(c *Character) {
	c.Attraction = clampStat(c.Attraction)
	c.Trust = clampStat(c.Trust)
	c.Comfort = clampStat(c.Comfort)
}

func clampStat(v int) int {
	return min(max(v, StatMin), StatMax)
}

// Valid reports whether l is a known location.
func (l Location) Valid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// Valid reports whether p is a known personality.
func (p Personality) Valid() bool {
	switch p {
	case PersonalityShy, PersonalityOpen, PersonalityReserved:
		return true
	}
	return false
}

// Valid reports whether m is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodGuarded, MoodUpset:
		return true
	}
	return false
}
