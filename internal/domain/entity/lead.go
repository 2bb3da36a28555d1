package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Lead.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"
)

// ValidLeadStatus indica si el estado pertenece al enum de cuatro miembros.
func ValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead representa una oportunidad atada a exactamente un Customer.
// No puede sobrevivir a su Customer: el borrado de éste lo arrastra.
type Lead struct {
	ID          string
	CustomerID  string
	Title       string
	Description string
	Status      string          // New, Contacted, Converted, Lost
	Value       decimal.Decimal // >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
