package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// CriteriaID is the fixed key of the only criteria row.
const CriteriaID = 1

// Criteria is the applicant's search filters and profile. Both documents are
// kept as raw JSON so that whatever the client stored is returned verbatim.
type Criteria struct {
	ID           int64           `json:"id"`
	CriteriaJSON json.RawMessage `json:"criteriaJson,omitempty"`
	ProfileJSON  json.RawMessage `json:"profileJson,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// IsEmpty reports whether neither document carries any content: each one is
// missing, JSON null or an empty object.
func (c *Criteria) IsEmpty() bool {
	return c == nil || (emptyDoc(c.CriteriaJSON) && emptyDoc(c.ProfileJSON))
}

func emptyDoc(doc json.RawMessage) bool {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return false
	}
	return len(obj) == 0
}

// SearchCriteria is the shape of criteriaJson.
type SearchCriteria struct {
	Required         []string `json:"required" yaml:"required" validate:"required"`
	Preferred        []string `json:"preferred" yaml:"preferred" validate:"required"`
	ExcludedKeywords []string `json:"excluded_keywords" yaml:"excluded_keywords" validate:"required"`
}

// Profile is the shape of profileJson. Required keys are pointers so that a
// key sent as "" or 0 is accepted while a missing key is rejected.
type Profile struct {
	Nationality       *string     `json:"nationality" yaml:"nationality" validate:"required"`
	TargetUniversity  *string     `json:"target_university" yaml:"target_university" validate:"required"`
	TargetCountry     *string     `json:"target_country" yaml:"target_country" validate:"required"`
	ProgrammeLevel    *string     `json:"programme_level" yaml:"programme_level" validate:"required"`
	ProgrammeStart    *string     `json:"programme_start" yaml:"programme_start" validate:"required"`
	Education         []Education `json:"education" yaml:"education" validate:"required,dive"`
	MinDeadline       *string     `json:"min_deadline,omitempty" yaml:"min_deadline,omitempty"`
	MaxGPARequirement *float64    `json:"max_gpa_requirement,omitempty" yaml:"max_gpa_requirement,omitempty"`
}

type Education struct {
	Degree     *string  `json:"degree" yaml:"degree" validate:"required"`
	University *string  `json:"university" yaml:"university" validate:"required"`
	Department *string  `json:"department" yaml:"department" validate:"required"`
	GPA        *float64 `json:"gpa" yaml:"gpa" validate:"required"`
	GPAScale   *float64 `json:"gpa_scale" yaml:"gpa_scale" validate:"required"`
	Status     *string  `json:"status" yaml:"status" validate:"required"`
}

// CriteriaInput is the body of a criteria upsert.
type CriteriaInput struct {
	CriteriaJSON *SearchCriteria `json:"criteriaJson"`
	ProfileJSON  *Profile        `json:"profileJson"`
}

// Encode turns the typed documents into a Criteria ready for storage. A nil
// document stays nil.
func (in CriteriaInput) Encode() (*Criteria, error) {
	c := &Criteria{ID: CriteriaID}
	if in.CriteriaJSON != nil {
		b, err := json.Marshal(in.CriteriaJSON)
		if err != nil {
			return nil, err
		}
		c.CriteriaJSON = b
	}
	if in.ProfileJSON != nil {
		b, err := json.Marshal(in.ProfileJSON)
		if err != nil {
			return nil, err
		}
		c.ProfileJSON = b
	}
	return c, nil
}
