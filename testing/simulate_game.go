package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tatianab/relationship-game/internal/config"
	"github.com/tatianab/relationship-game/internal/engine"
	"github.com/tatianab/relationship-game/internal/logging"
	"github.com/tatianab/relationship-game/internal/models"
)

// maxCommands guards against a game that never reaches the ending.
const maxCommands = 500

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	dir, err := os.MkdirTemp("", "relgame-sim")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	store := models.NewSaveFile(filepath.Join(dir, cfg.SaveFile))
	session := engine.NewSession(store, engine.NewResolver(engine.NewRand(seed), engine.StaticNarrator{}), logging.Discard())

	// Player choices come from a separate stream.
	player := engine.NewRand(seed + 1)

	fmt.Printf("--- Simulating with seed %d ---\n", seed)
	for i := 0; i < maxCommands && !session.Ended(); i++ {
		cmd := pickCommand(player, session)
		out, err := session.Dispatch(ctx, cmd)
		if err != nil {
			fmt.Printf("Error dispatching %v: %v\n", cmd.Action, err)
			break
		}

		c := session.Active()
		fmt.Printf("Day %2d  %-16s %-7s A=%3d T=%3d C=%3d %s\n",
			session.Day(), cmd.Action, c.Name, c.Attraction, c.Trust, c.Comfort, c.Mood)
		for _, line := range out.Lines {
			fmt.Printf("        %s\n", line)
		}
		for _, event := range out.Summary {
			fmt.Printf("        (today) %s\n", event)
		}
		if out.Status != "" {
			fmt.Printf("        [%s]\n", out.Status)
		}
	}

	fmt.Println("--- Ending ---")
	for _, s := range session.Summary() {
		fmt.Printf("%-8s A=%3d T=%3d C=%3d %-8s %s %d/%d\n",
			s.Name, s.Attraction, s.Trust, s.Comfort, s.Mood, s.Arc, s.ArcStep, models.ArcMax)
	}
}

func pickCommand(rng engine.Rand, session *engine.Session) engine.Command {
	switch rng.IntN(10) {
	case 0, 1, 2:
		return engine.Command{Action: engine.ActionTalk, Topic: engine.ParseTopic(rng.IntN(5) + 1)}
	case 3, 4:
		return engine.Command{Action: engine.ActionHangOut}
	case 5:
		return engine.Command{Action: engine.ActionGiveGift}
	case 6:
		return engine.Command{Action: engine.ActionGiveSpace}
	case 7:
		return engine.Command{Action: engine.ActionPushTooFast}
	case 8:
		if rng.IntN(2) == 0 {
			return engine.Command{Action: engine.ActionSwitchCharacter, Target: rng.IntN(len(session.Roster())) + 1}
		}
		return engine.Command{Action: engine.ActionChangeLocation, Location: models.Locations[rng.IntN(len(models.Locations))]}
	default:
		return engine.Command{Action: engine.ActionEndDay}
	}
}
