package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de ventas.
const (
	LeadStartToCall      = "Start-to-Call"
	LeadCallToConnect    = "Call-to-Connect"
	LeadConnectToContact = "Connect-to-Contact"
	LeadContactToDemo    = "Contact-to-Demo"
	LeadDemoToClose      = "Demo-to-Close"
	LeadLost             = "Lost"
)

// LeadStatuts etapas válidas, en orden de pipeline.
var LeadStatuts = []string{
	LeadStartToCall, LeadCallToConnect, LeadConnectToContact,
	LeadContactToDemo, LeadDemoToClose, LeadLost,
}

// ValidLeadStatut indica si s es una etapa conocida.
func ValidLeadStatut(s string) bool {
	for _, v := range LeadStatuts {
		if v == s {
			return true
		}
	}
	return false
}

// Fuentes válidas de un lead.
var LeadSources = []string{"website", "referral", "event", "outbound", "inbound"}

// ValidLeadSource indica si s es una fuente conocida.
func ValidLeadSource(s string) bool {
	for _, v := range LeadSources {
		if v == s {
			return true
		}
	}
	return false
}

// Lead oportunidad comercial sobre un cliente, asignada a un usuario.
type Lead struct {
	ID            string
	ClientID      string
	UserID        string // usuario asignado
	Name          string
	Description   string
	Source        string
	Statut        string
	ValeurEstimee decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeadStatusLog registro de auditoría de cambios de etapa.
// Se escribe en la misma transacción que la actualización del lead.
type LeadStatusLog struct {
	ID             string
	LeadID         string
	PreviousStatut string // vacío en el log inicial
	NewStatut      string
	ChangedBy      string
	ChangedAt      time.Time
	Duration       int64 // milisegundos en la etapa anterior
}
