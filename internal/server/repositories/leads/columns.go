package leads

import (
	"fmt"
	"strings"

	"github.com/scholarshipops/scholarshipops/internal/dbx"
	"github.com/scholarshipops/scholarshipops/internal/server/models"
)

// writableColumns lists every column a caller may set, in the order used by
// inputArgs.
var writableColumns = []string{
	"name", "status", "amount", "deadline", "source", "source_type", "notes", "added_date", "url", "bucket", "trust_tier",
	"match_score", "http_status", "effort_score", "confidence", "eligibility_confidence", "check_count",
	"eligibility", "match_reasons", "hard_fail_reasons", "soft_flags", "risk_flags", "matched_rule_ids", "eligible_countries", "tags",
	"is_taiwan_eligible", "taiwan_eligibility_confidence", "is_directory_page", "is_index_only",
	"deadline_date", "deadline_label", "deadline_confidence", "intake_year", "study_start",
	"canonical_url", "official_source_url", "source_domain",
	"first_seen_at", "last_checked_at", "next_check_at", "persistence_status", "source_seed",
}

var (
	selectColumns = "id, " + strings.Join(writableColumns, ", ") + ", created_at, updated_at"

	insertQuery = buildInsertQuery()
	updateQuery = buildUpdateQuery()
)

func buildInsertQuery() string {
	placeholders := make([]string, len(writableColumns))
	for i := range writableColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO leads (%s) VALUES (%s) RETURNING %s",
		strings.Join(writableColumns, ", "), strings.Join(placeholders, ", "), selectColumns)
}

// buildUpdateQuery produces a single-statement partial update: a NULL
// parameter keeps the stored value. $1 is the lead id.
func buildUpdateQuery() string {
	sets := make([]string, len(writableColumns))
	for i, col := range writableColumns {
		sets[i] = fmt.Sprintf("%s = COALESCE($%d, %s)", col, i+2, col)
	}
	return fmt.Sprintf("UPDATE leads SET %s, updated_at = now() WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), selectColumns)
}

func inputArgs(in *models.LeadInput) []any {
	return []any{
		in.Name, in.Status, in.Amount, in.Deadline, in.Source, in.SourceType, in.Notes, in.AddedDate, in.URL, in.Bucket, in.TrustTier,
		in.MatchScore, in.HTTPStatus, in.EffortScore, in.Confidence, in.EligibilityConfidence, in.CheckCount,
		dbx.StringList(in.Eligibility), dbx.StringList(in.MatchReasons), dbx.StringList(in.HardFailReasons),
		dbx.StringList(in.SoftFlags), dbx.StringList(in.RiskFlags), dbx.StringList(in.MatchedRuleIDs),
		dbx.StringList(in.EligibleCountries), dbx.StringList(in.Tags),
		in.IsTaiwanEligible, in.TaiwanEligibilityConfidence, in.IsDirectoryPage, in.IsIndexOnly,
		in.DeadlineDate, in.DeadlineLabel, in.DeadlineConfidence, in.IntakeYear, in.StudyStart,
		in.CanonicalURL, in.OfficialSourceURL, in.SourceDomain,
		in.FirstSeenAt, in.LastCheckedAt, in.NextCheckAt, in.PersistenceStatus, in.SourceSeed,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(row scanner) (*models.Lead, error) {
	var l models.Lead
	err := row.Scan(
		&l.ID,
		&l.Name, &l.Status, &l.Amount, &l.Deadline, &l.Source, &l.SourceType, &l.Notes, &l.AddedDate, &l.URL, &l.Bucket, &l.TrustTier,
		&l.MatchScore, &l.HTTPStatus, &l.EffortScore, &l.Confidence, &l.EligibilityConfidence, &l.CheckCount,
		(*dbx.StringList)(&l.Eligibility), (*dbx.StringList)(&l.MatchReasons), (*dbx.StringList)(&l.HardFailReasons),
		(*dbx.StringList)(&l.SoftFlags), (*dbx.StringList)(&l.RiskFlags), (*dbx.StringList)(&l.MatchedRuleIDs),
		(*dbx.StringList)(&l.EligibleCountries), (*dbx.StringList)(&l.Tags),
		&l.IsTaiwanEligible, &l.TaiwanEligibilityConfidence, &l.IsDirectoryPage, &l.IsIndexOnly,
		&l.DeadlineDate, &l.DeadlineLabel, &l.DeadlineConfidence, &l.IntakeYear, &l.StudyStart,
		&l.CanonicalURL, &l.OfficialSourceURL, &l.SourceDomain,
		&l.FirstSeenAt, &l.LastCheckedAt, &l.NextCheckAt, &l.PersistenceStatus, &l.SourceSeed,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
