package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Chatrawit/Meeting2/internal/logger"
	"github.com/Chatrawit/Meeting2/internal/models"
)

const (
	unknownVenue      = "Unknown Venue"
	overviewUpcoming  = 5
	overviewTopVenues = 3
	overviewTopUsers  = 3
	overviewLookahead = 7 * 24 * time.Hour
)

// dayNames follows $dayOfWeek numbering: 1 is Sunday.
var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// MeetingRepository runs the dashboard aggregations over the meeting collection.
type MeetingRepository struct {
	coll      *mongo.Collection
	placeColl string
}

func NewMeetingRepository(db *mongo.Database, meetingCollection, placeCollection string) *MeetingRepository {
	return &MeetingRepository{
		coll:      db.Collection(meetingCollection),
		placeColl: placeCollection,
	}
}

type countDoc struct {
	Count int64 `bson:"count"`
}

type countFacets struct {
	Total    []countDoc `bson:"total"`
	Upcoming []countDoc `bson:"upcoming"`
	Past     []countDoc `bson:"past"`
	Today    []countDoc `bson:"today"`
}

func (f countFacets) counts() models.MeetingCounts {
	first := func(docs []countDoc) int64 {
		if len(docs) == 0 {
			return 0
		}
		return docs[0].Count
	}
	return models.MeetingCounts{
		Total:    first(f.Total),
		Upcoming: first(f.Upcoming),
		Past:     first(f.Past),
		Today:    first(f.Today),
	}
}

// MeetingCounts returns total, upcoming, past and today's meeting counts as of now.
func (r *MeetingRepository) MeetingCounts(ctx context.Context, now time.Time) (*models.MeetingCounts, error) {
	pipeline := meetingCountsPipeline(now)

	var out []countFacets
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}

	var counts models.MeetingCounts
	if len(out) > 0 {
		counts = out[0].counts()
	}
	return &counts, nil
}

// TimeDistribution buckets the meetings that started at or after since by weekday and hour.
func (r *MeetingRepository) TimeDistribution(ctx context.Context, since time.Time) (*models.TimeDistribution, error) {
	pipeline := timeDistributionPipeline(since)

	var out []struct {
		ByDay []struct {
			ID    int32 `bson:"_id"`
			Count int64 `bson:"count"`
		} `bson:"by_day"`
		ByHour []struct {
			ID    int32 `bson:"_id"`
			Count int64 `bson:"count"`
		} `bson:"by_hour"`
	}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}

	dist := &models.TimeDistribution{
		ByDayOfWeek: []models.TimeBucket{},
		ByHourOfDay: []models.TimeBucket{},
	}
	if len(out) == 0 {
		return dist, nil
	}
	for _, b := range out[0].ByDay {
		dist.ByDayOfWeek = append(dist.ByDayOfWeek, models.TimeBucket{Name: dayOfWeekName(b.ID), Count: b.Count})
	}
	for _, b := range out[0].ByHour {
		dist.ByHourOfDay = append(dist.ByHourOfDay, models.TimeBucket{Name: fmt.Sprintf("%d:00", b.ID), Count: b.Count})
	}
	return dist, nil
}

// VenueUsage returns the limit venues hosting the most meetings, busiest first.
func (r *MeetingRepository) VenueUsage(ctx context.Context, limit int) ([]models.VenueUsage, error) {
	pipeline := mongo.Pipeline(venueUsageStages(r.placeColl, limit))

	out := []models.VenueUsage{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Overview returns the counts, the next meetings within a week, the top venues and the top creators.
func (r *MeetingRepository) Overview(ctx context.Context, now time.Time) (*models.DashboardOverview, error) {
	pipeline := overviewPipeline(now, r.placeColl)

	var out []struct {
		Counts    countFacets              `bson:",inline"`
		Upcoming  []models.UpcomingMeeting `bson:"upcoming_meetings"`
		TopVenues []models.VenueUsage      `bson:"top_venues"`
		TopUsers  []models.CreatorUsage    `bson:"top_users"`
	}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}

	overview := &models.DashboardOverview{
		UpcomingMeetings: []models.UpcomingMeeting{},
		TopVenues:        []models.VenueUsage{},
		TopUsers:         []models.CreatorUsage{},
		LastUpdated:      now,
	}
	if len(out) == 0 {
		return overview, nil
	}
	overview.MeetingStats = out[0].Counts.counts()
	if out[0].Upcoming != nil {
		overview.UpcomingMeetings = out[0].Upcoming
	}
	if out[0].TopVenues != nil {
		overview.TopVenues = out[0].TopVenues
	}
	if out[0].TopUsers != nil {
		overview.TopUsers = out[0].TopUsers
	}
	return overview, nil
}

func (r *MeetingRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err == nil {
		err = cur.All(ctx, out)
	}

	logger.Log.Infow("mongo query",
		"collection", r.coll.Name(),
		"op", "aggregate",
		"pipeline", pipeline,
		"error", err,
	)

	return err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayOfWeekName(n int32) string {
	if n < 1 || int(n) > len(dayNames) {
		return fmt.Sprintf("day %d", n)
	}
	return dayNames[n-1]
}

func countStage(match bson.D) bson.A {
	if match == nil {
		return bson.A{bson.D{{Key: "$count", Value: "count"}}}
	}
	return bson.A{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$count", Value: "count"}},
	}
}

// countFacetFields builds the four $facet branches partitioning meetings around now.
func countFacetFields(now time.Time) bson.D {
	todayStart := startOfDay(now)
	todayEnd := todayStart.AddDate(0, 0, 1)

	return bson.D{
		{Key: "total", Value: countStage(nil)},
		{Key: "upcoming", Value: countStage(bson.D{{Key: "start_datetime", Value: bson.D{{Key: "$gt", Value: now}}}})},
		{Key: "past", Value: countStage(bson.D{{Key: "end_datetime", Value: bson.D{{Key: "$lt", Value: now}}}})},
		{Key: "today", Value: countStage(bson.D{
			{Key: "start_datetime", Value: bson.D{{Key: "$gte", Value: todayStart}}},
			{Key: "end_datetime", Value: bson.D{{Key: "$lt", Value: todayEnd}}},
		})},
	}
}

func meetingCountsPipeline(now time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$facet", Value: countFacetFields(now)}},
	}
}

func timeDistributionPipeline(since time.Time) mongo.Pipeline {
	bucket := func(op string) bson.A {
		return bson.A{
			bson.D{{Key: "$group", Value: bson.D{
				{Key: "_id", Value: bson.D{{Key: op, Value: "$start_datetime"}}},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		}
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "start_datetime", Value: bson.D{{Key: "$gte", Value: since}}}}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "by_day", Value: bucket("$dayOfWeek")},
			{Key: "by_hour", Value: bucket("$hour")},
		}}},
	}
}

// venueUsageStages groups by place, keeps the busiest limit venues and resolves their names.
func venueUsageStages(placeColl string, limit int) []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$place_id"},
			{Key: "meeting_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "meeting_count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: placeColl},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "place"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$place"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "place_id", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			{Key: "place_name", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$place.name", unknownVenue}}}},
			{Key: "meeting_count", Value: 1},
		}}},
	}
}

func overviewPipeline(now time.Time, placeColl string) mongo.Pipeline {
	facets := countFacetFields(now)

	upcoming := bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "start_datetime", Value: bson.D{
			{Key: "$gt", Value: now},
			{Key: "$lte", Value: now.Add(overviewLookahead)},
		}}}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "start_datetime", Value: 1}}}},
		bson.D{{Key: "$limit", Value: overviewUpcoming}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			{Key: "name", Value: 1},
			{Key: "start_datetime", Value: 1},
			{Key: "end_datetime", Value: 1},
			{Key: "place_id", Value: bson.D{{Key: "$toString", Value: "$place_id"}}},
		}}},
	}

	venues := bson.A{}
	for _, stage := range venueUsageStages(placeColl, overviewTopVenues) {
		venues = append(venues, stage)
	}

	users := bson.A{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_create"},
			{Key: "meeting_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "meeting_count", Value: -1}, {Key: "_id", Value: 1}}}},
		bson.D{{Key: "$limit", Value: overviewTopUsers}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: "$_id"},
			{Key: "meeting_count", Value: 1},
		}}},
	}

	facets = append(facets,
		bson.E{Key: "upcoming_meetings", Value: upcoming},
		bson.E{Key: "top_venues", Value: venues},
		bson.E{Key: "top_users", Value: users},
	)

	return mongo.Pipeline{
		{{Key: "$facet", Value: facets}},
	}
}
