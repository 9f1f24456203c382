package models

import "time"

// AlertStatus tracks the delivery state of an alert.
type AlertStatus string

const (
	AlertPending   AlertStatus = "pending"
	AlertSent      AlertStatus = "sent"
	AlertCompleted AlertStatus = "completed"
	AlertCancelled AlertStatus = "cancelled"
)

// Alert is a scheduled or event-triggered notice for a farm.
type Alert struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Message     string      `json:"message,omitempty"`
	FarmID      string      `json:"farm_id,omitempty"`
	AnimalID    string      `json:"animal_id,omitempty"`
	Status      AlertStatus `json:"status"`
	ScheduledAt *time.Time  `json:"scheduled_date,omitempty"`
}

// AlertInput carries create/update form values.
type AlertInput struct {
	Type        string      `json:"type" validate:"required"`
	Title       string      `json:"title" validate:"required,max=200"`
	Message     string      `json:"message,omitempty"`
	FarmID      string      `json:"farm_id,omitempty"`
	AnimalID    string      `json:"animal_id,omitempty"`
	Status      AlertStatus `json:"status,omitempty"`
	ScheduledAt *time.Time  `json:"scheduled_date,omitempty"`
}
