package tests

import (
	"net/http"
	"time"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/adapter/http/dto"
)

// The scenario from the task tracker's acceptance notes: three tasks
// created today, one marked completed via full-replace update.
func (s *APISuite) TestAnalytics_ScenarioThreeTasksOneCompleted() {
	s.request(http.MethodPost, "/tasks", `{"title":"one"}`)
	s.request(http.MethodPost, "/tasks", `{"title":"two"}`)
	s.request(http.MethodPost, "/tasks", `{"title":"three","priority":"high"}`)

	rec := s.request(http.MethodPatch, "/tasks/2", `{"title":"two","status":"completed","priority":"medium"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodGet, "/analytics/status-count", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var count dto.StatusCount
	s.decode(rec, &count)
	s.Require().Equal(dto.StatusCount{Completed: 1, Pending: 2}, count)

	rec = s.request(http.MethodGet, "/analytics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var summary dto.AnalyticsSummary
	s.decode(rec, &summary)

	s.Require().Equal(dto.StatusCount{Completed: 1, Pending: 2}, summary.Status)
	s.Require().Equal(dto.PriorityCount{High: 1, Medium: 2, Low: 0}, summary.Priority)

	s.Require().Len(summary.Daily, 7)
	today := summary.Daily[6]
	s.Require().Equal(time.Now().UTC().Format("2006-01-02"), today.Date)
	s.Require().EqualValues(3, today.Added)
	s.Require().EqualValues(1, today.Completed)

	for _, day := range summary.Daily[:6] {
		s.Require().EqualValues(0, day.Added)
		s.Require().EqualValues(0, day.Completed)
	}
}

func (s *APISuite) TestAnalytics_DailyWindowIsSevenConsecutiveDays() {
	rec := s.request(http.MethodGet, "/analytics", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var summary dto.AnalyticsSummary
	s.decode(rec, &summary)
	s.Require().Len(summary.Daily, 7)

	for i, day := range summary.Daily {
		parsed, err := time.Parse("2006-01-02", day.Date)
		s.Require().NoError(err)
		if i > 0 {
			previous, err := time.Parse("2006-01-02", summary.Daily[i-1].Date)
			s.Require().NoError(err)
			s.Require().Equal(previous.AddDate(0, 0, 1), parsed)
		}
	}
	s.Require().Equal(time.Now().UTC().Format("2006-01-02"), summary.Daily[6].Date)
}

func (s *APISuite) TestAnalytics_UnknownStatusAndPriorityCountNowhere() {
	s.request(http.MethodPost, "/tasks", `{"title":"odd","status":"archived","priority":"urgent"}`)

	rec := s.request(http.MethodGet, "/analytics", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var summary dto.AnalyticsSummary
	s.decode(rec, &summary)
	s.Require().Equal(dto.StatusCount{Completed: 0, Pending: 0}, summary.Status)
	s.Require().Equal(dto.PriorityCount{High: 0, Medium: 0, Low: 0}, summary.Priority)

	// The task still shows up in the creation trend.
	s.Require().EqualValues(1, summary.Daily[6].Added)
	s.Require().EqualValues(0, summary.Daily[6].Completed)
}
