package models

import "time"

const DefaultLeadStatus = "qualified"

// Lead is a scholarship opportunity discovered by the crawler or entered by
// hand. Only ID, Name, Status and the timestamps are always present; nil
// pointers and nil slices mean "never set", which is different from "", 0,
// false or an empty list.
type Lead struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`

	Amount     *string `json:"amount,omitempty"`
	Deadline   *string `json:"deadline,omitempty"`
	Source     *string `json:"source,omitempty"`
	SourceType *string `json:"sourceType,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	AddedDate  *string `json:"addedDate,omitempty"`
	URL        *string `json:"url,omitempty"`
	Bucket     *string `json:"bucket,omitempty"`
	TrustTier  *string `json:"trustTier,omitempty"`

	MatchScore            *int `json:"matchScore,omitempty"`
	HTTPStatus            *int `json:"httpStatus,omitempty"`
	EffortScore           *int `json:"effortScore,omitempty"`
	Confidence            *int `json:"confidence,omitempty"`
	EligibilityConfidence *int `json:"eligibilityConfidence,omitempty"`
	CheckCount            *int `json:"checkCount,omitempty"`

	Eligibility       []string `json:"eligibility,omitzero"`
	MatchReasons      []string `json:"matchReasons,omitzero"`
	HardFailReasons   []string `json:"hardFailReasons,omitzero"`
	SoftFlags         []string `json:"softFlags,omitzero"`
	RiskFlags         []string `json:"riskFlags,omitzero"`
	MatchedRuleIDs    []string `json:"matchedRuleIds,omitzero"`
	EligibleCountries []string `json:"eligibleCountries,omitzero"`
	Tags              []string `json:"tags,omitzero"`

	IsTaiwanEligible            *bool   `json:"isTaiwanEligible,omitempty"`
	TaiwanEligibilityConfidence *string `json:"taiwanEligibilityConfidence,omitempty"`
	IsDirectoryPage             *bool   `json:"isDirectoryPage,omitempty"`
	IsIndexOnly                 *bool   `json:"isIndexOnly,omitempty"`

	DeadlineDate       *string `json:"deadlineDate,omitempty"`
	DeadlineLabel      *string `json:"deadlineLabel,omitempty"`
	DeadlineConfidence *string `json:"deadlineConfidence,omitempty"`
	IntakeYear         *string `json:"intakeYear,omitempty"`
	StudyStart         *string `json:"studyStart,omitempty"`

	CanonicalURL      *string `json:"canonicalUrl,omitempty"`
	OfficialSourceURL *string `json:"officialSourceUrl,omitempty"`
	SourceDomain      *string `json:"sourceDomain,omitempty"`

	FirstSeenAt       *string `json:"firstSeenAt,omitempty"`
	LastCheckedAt     *string `json:"lastCheckedAt,omitempty"`
	NextCheckAt       *string `json:"nextCheckAt,omitempty"`
	PersistenceStatus *string `json:"persistenceStatus,omitempty"`
	SourceSeed        *string `json:"sourceSeed,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeadInput carries the writable lead fields for both create and partial
// update. A nil field is "not provided": create falls back to the column
// default, update keeps the stored value.
type LeadInput struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Status *string `json:"status" validate:"omitempty,min=1"`

	Amount     *string `json:"amount"`
	Deadline   *string `json:"deadline"`
	Source     *string `json:"source"`
	SourceType *string `json:"sourceType"`
	Notes      *string `json:"notes"`
	AddedDate  *string `json:"addedDate"`
	URL        *string `json:"url"`
	Bucket     *string `json:"bucket"`
	TrustTier  *string `json:"trustTier"`

	MatchScore            *int `json:"matchScore"`
	HTTPStatus            *int `json:"httpStatus"`
	EffortScore           *int `json:"effortScore"`
	Confidence            *int `json:"confidence" validate:"omitempty,min=0,max=100"`
	EligibilityConfidence *int `json:"eligibilityConfidence" validate:"omitempty,min=0,max=100"`
	CheckCount            *int `json:"checkCount" validate:"omitempty,min=0"`

	Eligibility       []string `json:"eligibility"`
	MatchReasons      []string `json:"matchReasons"`
	HardFailReasons   []string `json:"hardFailReasons"`
	SoftFlags         []string `json:"softFlags"`
	RiskFlags         []string `json:"riskFlags"`
	MatchedRuleIDs    []string `json:"matchedRuleIds"`
	EligibleCountries []string `json:"eligibleCountries"`
	Tags              []string `json:"tags"`

	IsTaiwanEligible            *bool   `json:"isTaiwanEligible"`
	TaiwanEligibilityConfidence *string `json:"taiwanEligibilityConfidence"`
	IsDirectoryPage             *bool   `json:"isDirectoryPage"`
	IsIndexOnly                 *bool   `json:"isIndexOnly"`

	DeadlineDate       *string `json:"deadlineDate"`
	DeadlineLabel      *string `json:"deadlineLabel"`
	DeadlineConfidence *string `json:"deadlineConfidence"`
	IntakeYear         *string `json:"intakeYear"`
	StudyStart         *string `json:"studyStart"`

	CanonicalURL      *string `json:"canonicalUrl"`
	OfficialSourceURL *string `json:"officialSourceUrl"`
	SourceDomain      *string `json:"sourceDomain"`

	FirstSeenAt       *string `json:"firstSeenAt"`
	LastCheckedAt     *string `json:"lastCheckedAt"`
	NextCheckAt       *string `json:"nextCheckAt"`
	PersistenceStatus *string `json:"persistenceStatus"`
	SourceSeed        *string `json:"sourceSeed"`
}

// WithDefaults returns a copy with the creation defaults filled in where the
// caller left a field nil. Explicit zero values are kept as given.
func (in LeadInput) WithDefaults() LeadInput {
	if in.Status == nil {
		in.Status = Ptr(DefaultLeadStatus)
	}
	if in.MatchScore == nil {
		in.MatchScore = Ptr(0)
	}
	if in.IsDirectoryPage == nil {
		in.IsDirectoryPage = Ptr(false)
	}
	if in.IsIndexOnly == nil {
		in.IsIndexOnly = Ptr(false)
	}
	if in.CheckCount == nil {
		in.CheckCount = Ptr(0)
	}
	return in
}

// LeadFilter narrows a lead listing. Empty fields do not filter.
type LeadFilter struct {
	Status string
	Bucket string
	Search string
}

// IsZero reports whether the filter would match every lead.
func (f *LeadFilter) IsZero() bool {
	return f == nil || (f.Status == "" && f.Bucket == "" && f.Search == "")
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
