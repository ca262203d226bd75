// Package config loads server settings from environment variables and
// the activity seed roster from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mergington/school-activities/internal/model"
)

// Server holds HTTP server settings read from environment variables.
type Server struct {
	Port           string
	WebDir         string
	ActivitiesFile string
}

// ServerFromEnv reads server config from well-known environment
// variables, falling back to sensible local-development defaults.
func ServerFromEnv() Server {
	return Server{
		Port:           getEnv("PORT", "8080"),
		WebDir:         getEnv("WEB_DIR", "./web"),
		ActivitiesFile: getEnv("ACTIVITIES_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// seedActivity is the YAML shape of one seeded activity.
type seedActivity struct {
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// seedFile is the top-level YAML document.
type seedFile struct {
	Activities map[string]seedActivity `yaml:"activities"`
}

// Seed returns the activity roster the store is constructed from.
// With an empty path it returns the built-in default roster; otherwise
// it loads and validates the named YAML file.
func Seed(path string) (map[string]model.Activity, error) {
	if path == "" {
		return DefaultSeed(), nil
	}
	return LoadSeed(path)
}

// LoadSeed reads a YAML seed file and validates every record against
// the roster invariants before the store ever sees it.
func LoadSeed(path string) (map[string]model.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(doc.Activities) == 0 {
		return nil, fmt.Errorf("seed file %s: no activities defined", path)
	}

	seed := make(map[string]model.Activity, len(doc.Activities))
	for name, sa := range doc.Activities {
		a := model.Activity{
			Description:     sa.Description,
			Schedule:        sa.Schedule,
			MaxParticipants: sa.MaxParticipants,
			Participants:    sa.Participants,
		}
		if err := validateSeed(name, a); err != nil {
			return nil, fmt.Errorf("seed file %s: %w", path, err)
		}
		seed[name] = a
	}
	return seed, nil
}

// validateSeed enforces the roster invariants on a seeded activity:
// positive capacity, roster within capacity, no duplicate emails.
func validateSeed(name string, a model.Activity) error {
	if name == "" {
		return errors.New("activity name must not be empty")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be a positive integer", name)
	}
	if len(a.Participants) > a.MaxParticipants {
		return fmt.Errorf("activity %q: %d participants exceed capacity %d",
			name, len(a.Participants), a.MaxParticipants)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if email == "" {
			return fmt.Errorf("activity %q: empty participant email", name)
		}
		if _, dup := seen[email]; dup {
			return fmt.Errorf("activity %q: duplicate participant %q", name, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// DefaultSeed returns the built-in Mergington High School roster, used
// when no seed file is configured.
func DefaultSeed() map[string]model.Activity {
	return map[string]model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the school soccer team and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"liam@mergington.edu", "noah@mergington.edu"},
		},
		"Basketball Team": {
			Description:     "Practice and play basketball with the school team",
			Schedule:        "Wednesdays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "mia@mergington.edu"},
		},
		"Art Club": {
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu", "harper@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems and prepare for math competitions",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
		},
	}
}
