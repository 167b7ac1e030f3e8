package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"gopkg.in/yaml.v3"
)

const (
	LeadsFile        = "leads.json"
	ApplicationsFile = "applications.json"
	CriteriaFile     = "criteria.yml"
)

// camelKey turns a snake_case key into the camelCase used by the API, so
// "match_reasons" becomes "matchReasons". Keys without underscores pass
// through unchanged.
func camelKey(k string) string {
	if !strings.Contains(k, "_") {
		return k
	}
	parts := strings.Split(k, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// decodeRecords reads {"<key>": [ {...}, ... ]} and decodes every element
// into a T after rewriting snake_case keys. Both the crawler's snake_case
// files and API-shaped camelCase files are accepted. Other top-level keys are
// ignored.
func decodeRecords[T any](r io.Reader, key string) ([]T, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	var items []map[string]json.RawMessage
	if raw, ok := doc[key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}

	out := make([]T, 0, len(items))
	for i, raw := range items {
		renamed := make(map[string]json.RawMessage, len(raw))
		for k, v := range raw {
			renamed[camelKey(k)] = v
		}
		b, err := json.Marshal(renamed)
		if err != nil {
			return nil, err
		}
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeLeads(r io.Reader) ([]models.LeadInput, error) {
	return decodeRecords[models.LeadInput](r, "leads")
}

func decodeApplications(r io.Reader) ([]models.ApplicationInput, error) {
	return decodeRecords[models.ApplicationInput](r, "applications")
}

type criteriaFile struct {
	Criteria *models.SearchCriteria `yaml:"criteria"`
	Profile  *models.Profile        `yaml:"profile"`
}

func decodeCriteria(r io.Reader) (*models.CriteriaInput, error) {
	var f criteriaFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &models.CriteriaInput{CriteriaJSON: f.Criteria, ProfileJSON: f.Profile}, nil
}
