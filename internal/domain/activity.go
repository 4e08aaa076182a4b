package domain

import "errors"

var (
	// ErrEmailRequired is returned when a signup or lookup arrives without an email.
	ErrEmailRequired = errors.New("email is required")
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateSignup is returned when a student is already on the roster.
	ErrDuplicateSignup = errors.New("student already signed up")
	// ErrActivityFull is returned when the roster is at capacity.
	ErrActivityFull = errors.New("activity is full")
	// ErrParticipantNotFound is returned when removing an email not on the roster.
	ErrParticipantNotFound = errors.New("participant not found")
)

// Activity represents one extracurricular offering. The activity name is the
// directory key rather than a field, so the record serialises exactly as the
// wire shape expects.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// seedActivities builds the fixed dataset the directory starts from.
func seedActivities() map[string]*Activity {
	return map[string]*Activity{
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
		"Basketball Team": {
			Description:     "Competitive basketball training and matches",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		"Tennis Club": {
			Description:     "Tennis lessons and tournament preparation",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"jessica@mergington.edu", "ryan@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Acting, theater production, and stage performance",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"maya@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Painting, drawing, and visual arts exploration",
			Schedule:        "Fridays, 2:00 PM - 3:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu", "grace@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Competitive debate and public speaking skills",
			Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu"},
		},
		"Science Club": {
			Description:     "Hands-on experiments and scientific exploration",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 22,
			Participants:    []string{"zoe@mergington.edu", "ethan@mergington.edu"},
		},
		"Robotics Workshop": {
			Description:     "Build and program robots with cutting-edge technology",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 5,
			Participants:    []string{"alice@mergington.edu", "bob@mergington.edu", "charlie@mergington.edu", "diana@mergington.edu"},
		},
	}
}
