package models

import "time"

// MeetingCounts partitions meetings by time relative to now.
// swagger:model MeetingCounts
type MeetingCounts struct {
	// All meetings
	Total int64 `json:"total" bson:"total"`
	// Meetings that start after now
	Upcoming int64 `json:"upcoming" bson:"upcoming"`
	// Meetings that ended before now
	Past int64 `json:"past" bson:"past"`
	// Meetings that start and end within today
	Today int64 `json:"today" bson:"today"`
}

// TimeBucket is one bar of a distribution chart.
// swagger:model TimeBucket
type TimeBucket struct {
	// Bucket label, e.g. "Monday" or "14:00"
	Name string `json:"name" bson:"name"`
	// Meetings in the bucket
	Count int64 `json:"count" bson:"count"`
}

// TimeDistribution buckets meetings by weekday and by hour of the day.
// swagger:model TimeDistribution
type TimeDistribution struct {
	ByDayOfWeek []TimeBucket `json:"by_day_of_week" bson:"by_day"`
	ByHourOfDay []TimeBucket `json:"by_hour_of_day" bson:"by_hour"`
}

// VenueUsage is the number of meetings held at a venue.
// swagger:model VenueUsage
type VenueUsage struct {
	PlaceID      string `json:"place_id" bson:"place_id"`
	PlaceName    string `json:"place_name" bson:"place_name"`
	MeetingCount int64  `json:"meeting_count" bson:"meeting_count"`
}

// CreatorUsage is the number of meetings created by a user.
// swagger:model CreatorUsage
type CreatorUsage struct {
	UserID       string `json:"user_id" bson:"user_id"`
	MeetingCount int64  `json:"meeting_count" bson:"meeting_count"`
}

// UpcomingMeeting is a meeting listed on the overview.
// swagger:model UpcomingMeeting
type UpcomingMeeting struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	StartDatetime time.Time `json:"start_datetime" bson:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime" bson:"end_datetime"`
	PlaceID       string    `json:"place_id" bson:"place_id"`
}

// DashboardOverview bundles the headline numbers of the dashboard.
// swagger:model DashboardOverview
type DashboardOverview struct {
	MeetingStats     MeetingCounts     `json:"meeting_stats"`
	UpcomingMeetings []UpcomingMeeting `json:"upcoming_meetings"`
	TopVenues        []VenueUsage      `json:"top_venues"`
	TopUsers         []CreatorUsage    `json:"top_users"`
	LastUpdated      time.Time         `json:"last_updated"`
}
