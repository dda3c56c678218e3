// Package model holds the domain types shared across layers. No persistence tags.
package model

import "time"

// Lifestyle captures the roommate preferences collected during onboarding.
type Lifestyle struct {
	Cleanliness   int    `json:"cleanliness"` // 1 (relaxed) .. 5 (spotless)
	SleepSchedule string `json:"sleep_schedule"`
	Smoking       bool   `json:"smoking"`
	Pets          bool   `json:"pets"`
	Guests        string `json:"guests"`
}

// Profile is a user of the matching service.
// Budget values are whole US dollars per month.
type Profile struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Pronouns  string     `json:"pronouns,omitempty"`
	School    string     `json:"school,omitempty"`
	Company   string     `json:"company,omitempty"`
	Role      string     `json:"role,omitempty"`
	City      string     `json:"city,omitempty"`
	Bio       string     `json:"bio,omitempty"`
	BudgetMin int        `json:"budget_min"`
	BudgetMax int        `json:"budget_max"`
	MoveIn    *time.Time `json:"move_in,omitempty"`
	MoveOut   *time.Time `json:"move_out,omitempty"`
	Lifestyle Lifestyle  `json:"lifestyle"`
	AvatarKey string     `json:"avatar_key,omitempty"`
	Onboarded bool       `json:"onboarded"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
