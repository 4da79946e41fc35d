package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/gin-gonic/gin"
)

type memberRequest struct {
	PersonalInfo     json.RawMessage `json:"personal_info"`
	StockMarketInfo  json.RawMessage `json:"stock_market_info"`
	MutualFundInfo   json.RawMessage `json:"mutual_fund_info"`
	BankInfo         json.RawMessage `json:"bank_info"`
	NationalIdentity json.RawMessage `json:"national_identity"`
	VehicleInfo      json.RawMessage `json:"vehicle_info"`
	ProfileImage     string          `json:"profile_image"`
}

type memberResponse struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	PersonalInfo     json.RawMessage `json:"personal_info"`
	StockMarketInfo  json.RawMessage `json:"stock_market_info"`
	MutualFundInfo   json.RawMessage `json:"mutual_fund_info"`
	BankInfo         json.RawMessage `json:"bank_info"`
	NationalIdentity json.RawMessage `json:"national_identity"`
	VehicleInfo      json.RawMessage `json:"vehicle_info"`
	ProfileImage     string          `json:"profile_image"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toMemberResponse(m *models.Member) memberResponse {
	return memberResponse{
		ID:               m.ID,
		AccountID:        m.AccountID,
		PersonalInfo:     m.PersonalInfo,
		StockMarketInfo:  m.StockMarketInfo,
		MutualFundInfo:   m.MutualFundInfo,
		BankInfo:         m.BankInfo,
		NationalIdentity: m.NationalIdentity,
		VehicleInfo:      m.VehicleInfo,
		ProfileImage:     m.ProfileImage,
		UpdatedAt:        m.UpdatedAt,
	}
}

// SaveMember upserts the caller's member profile document.
func (h *Handlers) SaveMember(c *gin.Context) {
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := &models.Member{
		PersonalInfo:     req.PersonalInfo,
		StockMarketInfo:  req.StockMarketInfo,
		MutualFundInfo:   req.MutualFundInfo,
		BankInfo:         req.BankInfo,
		NationalIdentity: req.NationalIdentity,
		VehicleInfo:      req.VehicleInfo,
		ProfileImage:     req.ProfileImage,
	}
	saved, err := h.profile.SaveMember(c.Request.Context(), accountID(c), m)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(saved))
}

// GetMember returns the caller's member profile document.
func (h *Handlers) GetMember(c *gin.Context) {
	m, err := h.profile.GetMember(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMemberResponse(m))
}

type guardianPayload struct {
	GuardianName  string `json:"guardian_name" binding:"required"`
	Relationship  string `json:"relationship"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

type nomineeRequest struct {
	Category         string           `json:"category"`
	DematAccountNo   string           `json:"demat_account_no"`
	TradingAccountNo string           `json:"trading_account_no"`
	BrokerName       string           `json:"broker_name"`
	BrokerCode       string           `json:"broker_code"`
	NomineeName      string           `json:"nominee_name" binding:"required"`
	Relationship     string           `json:"relationship"`
	DateOfBirth      string           `json:"date_of_birth"`
	PercentageShare  float64          `json:"percentage_share"`
	Address          string           `json:"address"`
	Guardian         *guardianPayload `json:"guardian"`
}

type guardianResponse struct {
	ID            string `json:"id"`
	NomineeID     string `json:"nominee_id"`
	GuardianName  string `json:"guardian_name"`
	Relationship  string `json:"relationship"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

func toGuardianResponse(g *models.Guardian) *guardianResponse {
	if g == nil {
		return nil
	}
	return &guardianResponse{
		ID:            g.ID,
		NomineeID:     g.NomineeID,
		GuardianName:  g.GuardianName,
		Relationship:  g.Relationship,
		ContactNumber: g.ContactNumber,
		Address:       g.Address,
	}
}

type nomineeResponse struct {
	ID               string            `json:"id"`
	MemberID         string            `json:"member_id"`
	Category         string            `json:"category"`
	DematAccountNo   string            `json:"demat_account_no"`
	TradingAccountNo string            `json:"trading_account_no"`
	BrokerName       string            `json:"broker_name"`
	BrokerCode       string            `json:"broker_code"`
	NomineeName      string            `json:"nominee_name"`
	Relationship     string            `json:"relationship"`
	DateOfBirth      string            `json:"date_of_birth"`
	PercentageShare  float64           `json:"percentage_share"`
	Address          string            `json:"address"`
	Guardian         *guardianResponse `json:"guardian,omitempty"`
}

func toNomineeResponse(n *models.Nominee) nomineeResponse {
	return nomineeResponse{
		ID:               n.ID,
		MemberID:         n.MemberID,
		Category:         n.Category,
		DematAccountNo:   n.DematAccountNo,
		TradingAccountNo: n.TradingAccountNo,
		BrokerName:       n.BrokerName,
		BrokerCode:       n.BrokerCode,
		NomineeName:      n.NomineeName,
		Relationship:     n.Relationship,
		DateOfBirth:      n.DateOfBirth,
		PercentageShare:  n.PercentageShare,
		Address:          n.Address,
		Guardian:         toGuardianResponse(n.Guardian),
	}
}

// AddNominee registers a nominee, with an optional inline guardian for
// minors.
func (h *Handlers) AddNominee(c *gin.Context) {
	var req nomineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := &models.Nominee{
		Category:         req.Category,
		DematAccountNo:   req.DematAccountNo,
		TradingAccountNo: req.TradingAccountNo,
		BrokerName:       req.BrokerName,
		BrokerCode:       req.BrokerCode,
		NomineeName:      req.NomineeName,
		Relationship:     req.Relationship,
		DateOfBirth:      req.DateOfBirth,
		PercentageShare:  req.PercentageShare,
		Address:          req.Address,
	}
	if req.Guardian != nil {
		n.Guardian = &models.Guardian{
			GuardianName:  req.Guardian.GuardianName,
			Relationship:  req.Guardian.Relationship,
			ContactNumber: req.Guardian.ContactNumber,
			Address:       req.Guardian.Address,
		}
	}

	saved, err := h.profile.AddNominee(c.Request.Context(), accountID(c), n)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toNomineeResponse(saved))
}

type addGuardianRequest struct {
	NomineeID string `json:"nominee_id" binding:"required"`
	guardianPayload
}

// AddGuardian attaches a guardian to one of the caller's nominees.
func (h *Handlers) AddGuardian(c *gin.Context) {
	var req addGuardianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := &models.Guardian{
		NomineeID:     req.NomineeID,
		GuardianName:  req.GuardianName,
		Relationship:  req.Relationship,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	}
	saved, err := h.profile.AddGuardian(c.Request.Context(), accountID(c), g)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGuardianResponse(saved))
}

// ListNominees returns the caller's nominees. The member id in the path must
// be the caller's own.
func (h *Handlers) ListNominees(c *gin.Context) {
	if !h.callerOwnsMember(c, c.Param("member_id")) {
		return
	}

	list, err := h.profile.ListNominees(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	out := make([]nomineeResponse, 0, len(list))
	for i := range list {
		out = append(out, toNomineeResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"nominees": out})
}

// DeleteNominee removes one of the caller's nominees.
func (h *Handlers) DeleteNominee(c *gin.Context) {
	if err := h.profile.DeleteNominee(c.Request.Context(), accountID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type insuranceRequest struct {
	Email            string `json:"email"`
	LoginID          string `json:"login_id"`
	Password         string `json:"password"`
	PortalURL        string `json:"portal_url"`
	CustomerPolicyID string `json:"customer_policy_id"`
	AgentName        string `json:"agent_name"`
}

type insuranceResponse struct {
	ID               string `json:"id"`
	MemberID         string `json:"member_id"`
	Email            string `json:"email"`
	LoginID          string `json:"login_id"`
	PortalURL        string `json:"portal_url"`
	CustomerPolicyID string `json:"customer_policy_id"`
	AgentName        string `json:"agent_name"`
}

// toInsuranceResponse deliberately omits the stored portal password.
func toInsuranceResponse(info *models.InsuranceInfo) insuranceResponse {
	return insuranceResponse{
		ID:               info.ID,
		MemberID:         info.MemberID,
		Email:            info.Email,
		LoginID:          info.LoginID,
		PortalURL:        info.PortalURL,
		CustomerPolicyID: info.CustomerPolicyID,
		AgentName:        info.AgentName,
	}
}

// SaveInsurance upserts the caller's insurance portal details.
func (h *Handlers) SaveInsurance(c *gin.Context) {
	var req insuranceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info := &models.InsuranceInfo{
		Email:            req.Email,
		LoginID:          req.LoginID,
		Password:         req.Password,
		PortalURL:        req.PortalURL,
		CustomerPolicyID: req.CustomerPolicyID,
		AgentName:        req.AgentName,
	}
	saved, err := h.profile.SaveInsurance(c.Request.Context(), accountID(c), info)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInsuranceResponse(saved))
}

// GetInsurance returns the caller's insurance portal details.
func (h *Handlers) GetInsurance(c *gin.Context) {
	if !h.callerOwnsMember(c, c.Param("member_id")) {
		return
	}

	info, err := h.profile.GetInsurance(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInsuranceResponse(info))
}

type stakeholderPayload struct {
	StakeholderName string  `json:"stakeholder_name" binding:"required"`
	StakeholderType string  `json:"stakeholder_type"`
	ContactNumber   string  `json:"contact_number"`
	Email           string  `json:"email"`
	SharePercentage float64 `json:"share_percentage"`
	IDProofNumber   string  `json:"id_proof_number"`
	IDProofDocument string  `json:"id_proof_document"`
}

type businessEntityRequest struct {
	EntityName              string               `json:"entity_name" binding:"required"`
	EntityType              string               `json:"entity_type"`
	RegistrationNumber      string               `json:"registration_number"`
	DateOfIncorporation     string               `json:"date_of_incorporation"`
	ContactNumber           string               `json:"contact_number"`
	Email                   string               `json:"email"`
	RegisteredAddress       string               `json:"registered_address"`
	PANNumber               string               `json:"pan_number"`
	LicenseNumber           string               `json:"license_number"`
	SoftwareLicenseNumber   string               `json:"software_license_number"`
	PartnershipDeedDetails  string               `json:"partnership_deed_details"`
	CompanyDocument         string               `json:"company_document"`
	LicenseDocument         string               `json:"license_document"`
	SoftwareLicenseDocument string               `json:"software_license_document"`
	PANDocument             string               `json:"pan_document"`
	PartnershipDeedDocument string               `json:"partnership_deed_document"`
	ProfileImage            string               `json:"profile_image"`
	Stakeholders            []stakeholderPayload `json:"stakeholders"`
}

func toStakeholder(p stakeholderPayload) models.Stakeholder {
	return models.Stakeholder{
		StakeholderName: p.StakeholderName,
		StakeholderType: p.StakeholderType,
		ContactNumber:   p.ContactNumber,
		Email:           p.Email,
		SharePercentage: p.SharePercentage,
		IDProofNumber:   p.IDProofNumber,
		IDProofDocument: p.IDProofDocument,
	}
}

// SaveBusinessEntity upserts the caller's company profile, replacing its
// stakeholder set with the one in the request.
func (h *Handlers) SaveBusinessEntity(c *gin.Context) {
	var req businessEntityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e := &models.BusinessEntity{
		EntityName:              req.EntityName,
		EntityType:              req.EntityType,
		RegistrationNumber:      req.RegistrationNumber,
		DateOfIncorporation:     req.DateOfIncorporation,
		ContactNumber:           req.ContactNumber,
		Email:                   req.Email,
		RegisteredAddress:       req.RegisteredAddress,
		PANNumber:               req.PANNumber,
		LicenseNumber:           req.LicenseNumber,
		SoftwareLicenseNumber:   req.SoftwareLicenseNumber,
		PartnershipDeedDetails:  req.PartnershipDeedDetails,
		CompanyDocument:         req.CompanyDocument,
		LicenseDocument:         req.LicenseDocument,
		SoftwareLicenseDocument: req.SoftwareLicenseDocument,
		PANDocument:             req.PANDocument,
		PartnershipDeedDocument: req.PartnershipDeedDocument,
		ProfileImage:            req.ProfileImage,
	}
	stakeholders := make([]models.Stakeholder, 0, len(req.Stakeholders))
	for _, p := range req.Stakeholders {
		stakeholders = append(stakeholders, toStakeholder(p))
	}

	saved, err := h.profile.SaveBusinessEntity(c.Request.Context(), accountID(c), e, stakeholders)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": saved.ID, "entity_name": saved.EntityName})
}

// AddStakeholder registers a single stakeholder against the caller's
// business entity.
func (h *Handlers) AddStakeholder(c *gin.Context) {
	var req stakeholderPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sh := toStakeholder(req)
	saved, err := h.profile.AddStakeholder(c.Request.Context(), accountID(c), &sh)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": saved.ID, "entity_id": saved.EntityID})
}

type businessEntityResponse struct {
	ID                      string `json:"id"`
	AccountID               string `json:"account_id"`
	EntityName              string `json:"entity_name"`
	EntityType              string `json:"entity_type"`
	RegistrationNumber      string `json:"registration_number"`
	DateOfIncorporation     string `json:"date_of_incorporation"`
	ContactNumber           string `json:"contact_number"`
	Email                   string `json:"email"`
	RegisteredAddress       string `json:"registered_address"`
	PANNumber               string `json:"pan_number"`
	LicenseNumber           string `json:"license_number"`
	SoftwareLicenseNumber   string `json:"software_license_number"`
	PartnershipDeedDetails  string `json:"partnership_deed_details"`
	CompanyDocument         string `json:"company_document"`
	LicenseDocument         string `json:"license_document"`
	SoftwareLicenseDocument string `json:"software_license_document"`
	PANDocument             string `json:"pan_document"`
	PartnershipDeedDocument string `json:"partnership_deed_document"`
	ProfileImage            string `json:"profile_image"`
}

type stakeholderResponse struct {
	ID              string  `json:"id"`
	EntityID        string  `json:"entity_id"`
	StakeholderName string  `json:"stakeholder_name"`
	StakeholderType string  `json:"stakeholder_type"`
	ContactNumber   string  `json:"contact_number"`
	Email           string  `json:"email"`
	SharePercentage float64 `json:"share_percentage"`
	IDProofNumber   string  `json:"id_proof_number"`
	IDProofDocument string  `json:"id_proof_document"`
}

func toBusinessEntityResponse(e *models.BusinessEntity) businessEntityResponse {
	return businessEntityResponse{
		ID:                      e.ID,
		AccountID:               e.AccountID,
		EntityName:              e.EntityName,
		EntityType:              e.EntityType,
		RegistrationNumber:      e.RegistrationNumber,
		DateOfIncorporation:     e.DateOfIncorporation,
		ContactNumber:           e.ContactNumber,
		Email:                   e.Email,
		RegisteredAddress:       e.RegisteredAddress,
		PANNumber:               e.PANNumber,
		LicenseNumber:           e.LicenseNumber,
		SoftwareLicenseNumber:   e.SoftwareLicenseNumber,
		PartnershipDeedDetails:  e.PartnershipDeedDetails,
		CompanyDocument:         e.CompanyDocument,
		LicenseDocument:         e.LicenseDocument,
		SoftwareLicenseDocument: e.SoftwareLicenseDocument,
		PANDocument:             e.PANDocument,
		PartnershipDeedDocument: e.PartnershipDeedDocument,
		ProfileImage:            e.ProfileImage,
	}
}

// GetBusinessEntity returns the caller's company profile with stakeholders.
// The user id in the path must be the caller's own.
func (h *Handlers) GetBusinessEntity(c *gin.Context) {
	if c.Param("user_id") != accountID(c) {
		h.respondError(c, common.ErrNotFound)
		return
	}

	e, stakeholders, err := h.profile.GetBusinessEntity(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	shs := make([]stakeholderResponse, 0, len(stakeholders))
	for _, s := range stakeholders {
		shs = append(shs, stakeholderResponse{
			ID:              s.ID,
			EntityID:        s.EntityID,
			StakeholderName: s.StakeholderName,
			StakeholderType: s.StakeholderType,
			ContactNumber:   s.ContactNumber,
			Email:           s.Email,
			SharePercentage: s.SharePercentage,
			IDProofNumber:   s.IDProofNumber,
			IDProofDocument: s.IDProofDocument,
		})
	}
	c.JSON(http.StatusOK, gin.H{"entity": toBusinessEntityResponse(e), "stakeholders": shs})
}

// callerOwnsMember checks that the member id in the request path resolves to
// the caller's own member row; on mismatch it writes a 404 and returns
// false.
func (h *Handlers) callerOwnsMember(c *gin.Context, memberID string) bool {
	own, err := h.profile.MemberID(c.Request.Context(), accountID(c))
	if err != nil {
		h.respondError(c, err)
		return false
	}
	if own != memberID {
		h.respondError(c, common.ErrNotFound)
		return false
	}
	return true
}
