package models

import "slices"

// ArcMax is the value at which a story arc is complete.
const ArcMax = 3

const defaultArc = "Story"

// storyArcs maps a character name to the arc that hanging out advances.
var storyArcs = map[string]string{
	"Emilia": "Art Exhibition",
	"Luna":   "Dance Competition",
	"Olivia": "Coding Project",
}

// ArcFor returns the story arc tied to a character name.
func ArcFor(name string) string {
	if arc, ok := storyArcs[name]; ok {
		return arc
	}
	return defaultArc
}

// LocationQuest records a visit to loc. Repeat visits are ignored.
func LocationQuest(c *Character, loc Location) {
	if slices.Contains(c.QuestLog, string(loc)) {
		return
	}
	c.QuestLog = append(c.QuestLog, string(loc))
}

// StoryArcProgress advances the character's arc by one step, up to ArcMax.
func StoryArcProgress(c *Character) {
	if c.StoryProgress == nil {
		c.StoryProgress = map[string]int{}
	}
	arc := ArcFor(c.Name)
	if c.StoryProgress[arc] < ArcMax {
		c.StoryProgress[arc]++
	}
}

// ArcComplete reports whether the character's arc has reached ArcMax.
func ArcComplete(c *Character) bool {
	return c.StoryProgress[ArcFor(c.Name)] >= ArcMax
}
