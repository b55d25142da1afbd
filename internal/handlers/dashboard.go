package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
	"github.com/Chatrawit/Meeting2/internal/validation"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

const (
	defaultDistributionDays = 90
	defaultVenueLimit       = 10
)

// MeetingCountsGetter defines the method the meeting counts handler needs.
type MeetingCountsGetter interface {
	MeetingCounts(ctx context.Context) (*models.MeetingCounts, error)
}

// TimeDistributionGetter defines the method the time distribution handler needs.
type TimeDistributionGetter interface {
	TimeDistribution(ctx context.Context, days int) (*models.TimeDistribution, error)
}

// VenueUsageGetter defines the method the venue usage handler needs.
type VenueUsageGetter interface {
	VenueUsage(ctx context.Context, limit int) ([]models.VenueUsage, error)
}

// OverviewGetter defines the method the overview handler needs.
type OverviewGetter interface {
	Overview(ctx context.Context) (*models.DashboardOverview, error)
}

// TimeDistributionQuery holds the query parameters of the time distribution endpoint.
type TimeDistributionQuery struct {
	Days int `query:"days" validate:"min=1,max=3650"`
}

// VenueUsageQuery holds the query parameters of the venue usage endpoint.
type VenueUsageQuery struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}

// NewMeetingCountsHandler returns an HTTP handler for the meeting counts view.
// @Summary Meeting counts
// @Description Total, upcoming, past and today's meetings.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.MeetingCounts
// @Failure 500 {object} handlers.ErrorResponse
// @Router /dashboard/meeting-counts [get]
func NewMeetingCountsHandler(svc MeetingCountsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := svc.MeetingCounts(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to retrieve meeting counts", "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve meeting counts: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, counts)
	}
}

// NewTimeDistributionHandler returns an HTTP handler for the time distribution view.
// @Summary Meeting time distribution
// @Description Meetings of the last days bucketed by day of week and hour of day.
// @Tags dashboard
// @Produce json
// @Param days query int false "Window in days" default(90) minimum(1) maximum(3650)
// @Success 200 {object} models.TimeDistribution
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /dashboard/time-distribution [get]
func NewTimeDistributionHandler(svc TimeDistributionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		days, err := queryInt(r, "days", defaultDistributionDays)
		if err == nil {
			err = validation.ValidateStruct(TimeDistributionQuery{Days: days})
		}
		if err != nil {
			log.Warnw("invalid time distribution request", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		dist, err := svc.TimeDistribution(r.Context(), days)
		if err != nil {
			log.Errorw("failed to retrieve time distribution", "days", days, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve time distribution: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, dist)
	}
}

// NewVenueUsageHandler returns an HTTP handler for the venue usage view.
// @Summary Venue usage
// @Description Venues hosting the most meetings, busiest first.
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of venues" default(10) minimum(1) maximum(100)
// @Success 200 {array} models.VenueUsage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /dashboard/venue-usage [get]
func NewVenueUsageHandler(svc VenueUsageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, err := queryInt(r, "limit", defaultVenueLimit)
		if err == nil {
			err = validation.ValidateStruct(VenueUsageQuery{Limit: limit})
		}
		if err != nil {
			log.Warnw("invalid venue usage request", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		venues, err := svc.VenueUsage(r.Context(), limit)
		if err != nil {
			log.Errorw("failed to retrieve venue usage", "limit", limit, "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve venue usage: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, venues)
	}
}

// NewOverviewHandler returns an HTTP handler for the dashboard overview.
// @Summary Dashboard overview
// @Description Counts, next meetings within a week, top venues and top creators.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardOverview
// @Failure 500 {object} handlers.ErrorResponse
// @Router /dashboard/overview [get]
func NewOverviewHandler(svc OverviewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := svc.Overview(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("failed to retrieve dashboard overview", "error", err)
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve dashboard overview: %v", err))
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}
