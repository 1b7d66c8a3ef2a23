package models

import "time"

// RecordID is embedded by every persisted entity so the generic repository
// can read and assign collection-unique identifiers.
type RecordID struct {
	ID string `json:"id"`
}

func (r RecordID) GetID() string    { return r.ID }
func (r *RecordID) SetID(id string) { r.ID = id }

// --- Portfolio Entities ---

type ContactInfo struct {
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Location         string `json:"location,omitempty"`
	AvailableForWork bool   `json:"availableForWork"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// PersonalInfo is a singleton record, not a collection entry.
type PersonalInfo struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Tagline     string       `json:"tagline"`
	Avatar      string       `json:"avatar"`
	Bio         string       `json:"bio"`
	ResumeURL   string       `json:"resumeUrl,omitempty"`
	ContactInfo ContactInfo  `json:"contactInfo"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

type Project struct {
	RecordID
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GithubURL   string   `json:"githubUrl,omitempty"`
	Featured    bool     `json:"featured"`
}

type Skill struct {
	RecordID
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type Experience struct {
	RecordID
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Current      bool     `json:"current,omitempty"`
}

type Education struct {
	RecordID
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// PortfolioData aggregates everything a view renders.
type PortfolioData struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Projects     []Project    `json:"projects"`
	Skills       []Skill      `json:"skills"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education"`
}

// --- Auth Records ---

// LoginAttempt records one terminal password-step outcome. Append-only,
// most-recent-first, capped at 50 entries.
type LoginAttempt struct {
	Timestamp time.Time `json:"timestamp"`
	Origin    string    `json:"origin"`
	Success   bool      `json:"success"`
}

// Session tracks one authenticated login for activity-based expiry and
// multi-session visibility. The active-session collection is a shared
// append/remove log visible to all views; Current is recomputed from each
// view's own perspective.
type Session struct {
	ID               string    `json:"id"`
	StartTime        time.Time `json:"startTime"`
	LastActivity     time.Time `json:"lastActivity"`
	ClientDescriptor string    `json:"clientDescriptor"`
	Current          bool      `json:"isCurrentSession"`
}

// LockoutState survives reloads so a locked account stays locked.
type LockoutState struct {
	ConsecutiveFailures int        `json:"consecutiveFailures"`
	LockedUntil         *time.Time `json:"lockedUntil,omitempty"`
}

type SecurityQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// SecurityQuestionConfig is the persisted question selection. Answers are
// stored under a reversible obfuscation, not a hash; see the auth package.
type SecurityQuestionConfig struct {
	QuestionIDs []string          `json:"questions"`
	Answers     map[string]string `json:"answers"`
}

// MathChallenge is ephemeral: generated fresh per login attempt sequence and
// never persisted.
type MathChallenge struct {
	OperandA int
	OperandB int
	Operator string
	Expected int
}
