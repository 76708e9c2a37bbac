// Package domain defines the persistence models for profiles, skills, and
// swap requests. These types are mapped with GORM and form the core data
// layer of the skill-swap application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Profile represents a user of the platform together with the two flags the
// swap engine cares about: whether the profile can be targeted by a swap
// request (IsPublic) and whether the user currently accepts swaps
// (IsAvailable).
//
// Fields:
//   - UserID: stable external user identifier, primary key.
//   - Bio / Location / Phone: free-form profile data (phone is scrubbed from
//     access logs by the redacting logger).
//   - Availability: human-readable schedule hint ("weekends", "evenings", …);
//     informational only, the engine consults IsAvailable.
//   - IsPublic: private profiles cannot be targeted even with a valid id.
//   - IsAvailable: gates the accept transition on the receiver's side.
type Profile struct {
	UserID       string         `json:"user_id"      gorm:"type:varchar(64);primaryKey"`
	Bio          string         `json:"bio"          gorm:"type:varchar(500)"`
	Location     string         `json:"location"     gorm:"type:varchar(100)"`
	Phone        string         `json:"phone"        gorm:"type:varchar(15)"`
	Availability string         `json:"availability" gorm:"type:varchar(20);not null;default:'weekends'"`
	IsPublic     bool           `json:"is_public"    gorm:"not null;default:true"`
	IsAvailable  bool           `json:"is_available" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-"            gorm:"index"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// Skill is a capability offered by exactly one user. Ownership is what the
// validation gate checks: a swap may only offer skills the sender owns and
// request skills the receiver owns.
type Skill struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	OwnerID     string         `json:"owner_id"    gorm:"type:varchar(64);not null;index:idx_owner_skills"`
	Name        string         `json:"name"        gorm:"type:varchar(100);not null"`
	Category    string         `json:"category"    gorm:"type:varchar(50)"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Skill.
func (Skill) TableName() string { return "skills" }

// SwapRequest is the central entity: a directed offer from SenderID to
// ReceiverID to exchange OfferedSkillID for RequestedSkillID.
//
// Invariants (enforced in services.SwapService):
//   - SenderID != ReceiverID.
//   - OfferedSkillID is owned by SenderID; RequestedSkillID by ReceiverID.
//   - At most one pending row per ordered (sender, receiver) pair.
//   - Status only moves along the transition table in status.go, at most once.
//
// Version is the optimistic concurrency column: every successful transition
// increments it, and the UPDATE is conditioned on the version that was read,
// so two concurrent responders can never both win.
type SwapRequest struct {
	ID               string         `json:"id"                 gorm:"type:char(36);primaryKey"`
	SenderID         string         `json:"sender_id"          gorm:"type:varchar(64);not null;index:idx_sender_status,priority:1"`
	ReceiverID       string         `json:"receiver_id"        gorm:"type:varchar(64);not null;index:idx_receiver_status,priority:1"`
	OfferedSkillID   string         `json:"offered_skill_id"   gorm:"type:char(36);not null"`
	RequestedSkillID string         `json:"requested_skill_id" gorm:"type:char(36);not null"`
	Status           SwapStatus     `json:"status"             gorm:"type:varchar(20);not null;default:'pending';index:idx_sender_status,priority:2;index:idx_receiver_status,priority:2"`
	Message          string         `json:"message,omitempty"  gorm:"type:text"`
	Version          int64          `json:"-"                  gorm:"not null;default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-"                  gorm:"index"`
}

// TableName returns the database table name for SwapRequest.
func (SwapRequest) TableName() string { return "swap_requests" }

// Participant reports whether userID is the sender or receiver of the swap.
func (s *SwapRequest) Participant(userID string) bool {
	return userID == s.SenderID || userID == s.ReceiverID
}
