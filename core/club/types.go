package club

// Session is a bookable training session.
type Session struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	SessionType         string `json:"sessionType"`
	Date                string `json:"date"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	Location            string `json:"location"`
	CoachID             int64  `json:"coachId"`
	CoachName           string `json:"coachName"`
	MaxParticipants     int    `json:"maxParticipants"`
	CurrentParticipants int    `json:"currentParticipants"`
	Status              string `json:"status"`
}

// Session status values returned by the backend.
const (
	SessionScheduled  = "scheduled"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

// Athlete is a registered club athlete.
type Athlete struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	Position    string `json:"position"`
	TeamID      int64  `json:"teamId"`
	TeamName    string `json:"teamName"`
}

// Drill is a reusable practice drill.
type Drill struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Duration    int    `json:"duration"`
	CreatedBy   int64  `json:"createdBy"`
}

// PracticePlan is an ordered set of drills for a practice date.
type PracticePlan struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Duration    int     `json:"duration"`
	Drills      []Drill `json:"drills"`
	CreatedBy   int64   `json:"createdBy"`
}

// Evaluation is a coach's assessment of an athlete.
type Evaluation struct {
	ID          int64  `json:"id"`
	AthleteID   int64  `json:"athleteId"`
	AthleteName string `json:"athleteName"`
	CoachID     int64  `json:"coachId"`
	CoachName   string `json:"coachName"`
	Date        string `json:"date"`
	Score       int    `json:"score"`
	Notes       string `json:"notes"`
	Type        string `json:"type"`
}

// Message is a direct message between club members.
type Message struct {
	ID            int64  `json:"id"`
	SenderID      int64  `json:"senderId"`
	SenderName    string `json:"senderName"`
	RecipientID   int64  `json:"recipientId"`
	RecipientName string `json:"recipientName"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	IsRead        bool   `json:"isRead"`
	CreatedAt     string `json:"createdAt"`
}

// Notification is a broadcast notice shown to a member.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Type      string `json:"type"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}

// Team groups athletes under a coach for a season.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	AgeGroup     string `json:"ageGroup"`
	Season       string `json:"season"`
	CoachID      int64  `json:"coachId"`
}

// RosterPlayer is a player entry on a team roster. A player may exist on the
// roster without a club account; UserID is set once the entry is linked.
type RosterPlayer struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	Position     string `json:"position"`
	JerseyNumber string `json:"jerseyNumber"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
	UserID       *int64 `json:"userId"`
	IsLinked     bool   `json:"isLinked"`
}

// GamePlan is a scheduled team event, either a practice or a game.
type GamePlan struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"teamId"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Opponent  string `json:"opponent"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
	CoachName string `json:"coachName"`
	Status    string `json:"status"`
}

// Game plan event types.
const (
	GamePlanPractice = "practice"
	GamePlanGame     = "game"
)

// DashboardStats is the aggregate counters shown on the home screen. Keys
// vary by role, so values stay untyped.
type DashboardStats map[string]any
