package models

import (
	"encoding/json"
	"time"
)

// Member is an account's profile document. The section payloads are
// free-form JSON captured from the client and stored as JSONB; the backend
// treats them as opaque.
type Member struct {
	ID               string
	AccountID        string
	PersonalInfo     json.RawMessage
	StockMarketInfo  json.RawMessage
	MutualFundInfo   json.RawMessage
	BankInfo         json.RawMessage
	NationalIdentity json.RawMessage
	VehicleInfo      json.RawMessage
	ProfileImage     string
	UpdatedAt        time.Time
}

// Nominee is a beneficiary registered against a member.
type Nominee struct {
	ID               string
	MemberID         string
	Category         string
	DematAccountNo   string
	TradingAccountNo string
	BrokerName       string
	BrokerCode       string
	NomineeName      string
	Relationship     string
	DateOfBirth      string
	PercentageShare  float64
	Address          string
	Guardian         *Guardian
}

// Guardian represents the guardian of a minor nominee.
type Guardian struct {
	ID            string
	NomineeID     string
	GuardianName  string
	Relationship  string
	ContactNumber string
	Address       string
}

// InsuranceInfo holds a member's insurance portal details. One row per
// member; saves are upserts.
type InsuranceInfo struct {
	ID               string
	MemberID         string
	Email            string
	LoginID          string
	Password         string
	PortalURL        string
	CustomerPolicyID string
	AgentName        string
}

// BusinessEntity is a company profile owned by an account. One row per
// account; saves are upserts. Document fields hold storage references
// supplied by the client.
type BusinessEntity struct {
	ID                      string
	AccountID               string
	EntityName              string
	EntityType              string
	RegistrationNumber      string
	DateOfIncorporation     string
	ContactNumber           string
	Email                   string
	RegisteredAddress       string
	PANNumber               string
	LicenseNumber           string
	SoftwareLicenseNumber   string
	PartnershipDeedDetails  string
	CompanyDocument         string
	LicenseDocument         string
	SoftwareLicenseDocument string
	PANDocument             string
	PartnershipDeedDocument string
	ProfileImage            string
}

// Stakeholder is a shareholder or partner of a business entity.
type Stakeholder struct {
	ID              string
	EntityID        string
	StakeholderName string
	StakeholderType string
	ContactNumber   string
	Email           string
	SharePercentage float64
	IDProofNumber   string
	IDProofDocument string
}
