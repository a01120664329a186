package entity

// CampaignStatus estado de una campaña de marketing.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusScheduled CampaignStatus = "scheduled"
)

// Valid indica si el estado es uno de los permitidos.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusCompleted, CampaignStatusScheduled:
		return true
	}
	return false
}

// CampaignType canal de envío de la campaña.
type CampaignType string

const (
	CampaignTypeEmail  CampaignType = "email"
	CampaignTypeSocial CampaignType = "social"
	CampaignTypeSMS    CampaignType = "sms"
	CampaignTypePush   CampaignType = "push"
)

// Valid indica si el canal es uno de los permitidos.
func (t CampaignType) Valid() bool {
	switch t {
	case CampaignTypeEmail, CampaignTypeSocial, CampaignTypeSMS, CampaignTypePush:
		return true
	}
	return false
}

// Campaign campaña de marketing con sus contadores de envío.
type Campaign struct {
	Audit
	Name     string
	Status   CampaignStatus
	Type     CampaignType
	Audience string
	Sent     int
	Opened   int
	Clicked  int
	Date     string // ISO YYYY-MM-DD
}

// Clone copia el registro.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	return &cp
}
