package services

import (
	"context"
	"errors"
	"testing"

	"github.com/scholarshipops/scholarshipops/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaService_GetAbsentIsNil(t *testing.T) {
	s := NewCriteriaService(nil, newFakeRepoManager())

	c, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCriteriaService_GetError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.c.err = errors.New("db error: down")
	s := NewCriteriaService(nil, rm)

	_, err := s.Get(context.Background())
	assert.EqualError(t, err, "db error: down")
}

func TestCriteriaService_SaveTwiceMergesDocuments(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewCriteriaService(nil, rm)
	ctx := context.Background()

	_, err := s.Save(ctx, &models.CriteriaInput{
		CriteriaJSON: &models.SearchCriteria{Required: []string{"taiwan"}, Preferred: []string{}, ExcludedKeywords: []string{}},
	})
	require.NoError(t, err)

	saved, err := s.Save(ctx, &models.CriteriaInput{
		ProfileJSON: &models.Profile{Nationality: models.Ptr("TW"), Education: []models.Education{}},
	})
	require.NoError(t, err)

	require.Len(t, rm.c.saved, 2)
	assert.Nil(t, rm.c.saved[1].CriteriaJSON)
	assert.Equal(t, int64(models.CriteriaID), saved.ID)
	assert.JSONEq(t, `{"required":["taiwan"],"preferred":[],"excluded_keywords":[]}`, string(saved.CriteriaJSON))
	assert.Contains(t, string(saved.ProfileJSON), `"nationality":"TW"`)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestCriteriaService_EmptyPayloadReadsAsAbsent(t *testing.T) {
	rm := newFakeRepoManager()
	s := NewCriteriaService(nil, rm)
	rm.c.stored = &models.Criteria{ID: models.CriteriaID, CriteriaJSON: []byte(`{}`)}

	c, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, c)
}
