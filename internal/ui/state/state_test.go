package state

import (
	"testing"

	"cityscout/internal/domain"
	"cityscout/internal/ui/services/navigation"

	"github.com/stretchr/testify/assert"
)

func TestAppState(t *testing.T) {
	t.Parallel()

	s := NewAppState()
	assert.Equal(t, navigation.PageHome, s.Page)

	s.SetResults(domain.FilterCriteria{City: "Paris"}, domain.FilterResult{
		Events:    []domain.Event{{ID: 1}, {ID: 2}},
		CityKnown: true,
	})
	assert.Equal(t, 2, s.ResultCount())
	e, ok := s.EventAt(1)
	assert.True(t, ok)
	assert.Equal(t, 2, e.ID)
	_, ok = s.EventAt(2)
	assert.False(t, ok)

	pending := domain.FilterCriteria{City: "Atlantis"}
	s.Pending = &pending
	s.ShowBanner(BannerConfirm, "Search anyway?", "")
	s.ClearBanner()
	assert.Equal(t, BannerNone, s.Banner.Kind)
	assert.Nil(t, s.Pending)
}
