package repository

import (
	"context"
	"log"
	"math"
	"strconv"
	"time"

	"elo_drinks/internal/domain/entities"
	"elo_drinks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "event_drafts"

type draftRecord struct {
	SessionID string `dynamodbav:"session_id"`

	CurrentStep  int `dynamodbav:"current_step"`
	AnimatedStep int `dynamodbav:"animated_step"`
	Direction    int `dynamodbav:"direction"`

	SelectedEventType string `dynamodbav:"selected_event_type,omitempty"`

	EventName       string `dynamodbav:"event_name,omitempty"`
	EventDate       string `dynamodbav:"event_date,omitempty"`
	EventStartTime  string `dynamodbav:"event_start_time,omitempty"`
	EventGuestCount string `dynamodbav:"event_guest_count,omitempty"`
	EventDuration   string `dynamodbav:"event_duration,omitempty"`
	EventAddress    string `dynamodbav:"event_address,omitempty"`

	AlcoholicDrinkIDs       []string       `dynamodbav:"alcoholic_drink_ids,omitempty"`
	NonAlcoholicDrinkIDs    []string       `dynamodbav:"non_alcoholic_drink_ids,omitempty"`
	OtherBeverageQuantities map[string]int `dynamodbav:"other_beverage_quantities,omitempty"`
	ShotQuantities          map[string]int `dynamodbav:"shot_quantities,omitempty"`
	StructureID             string         `dynamodbav:"structure_id,omitempty"`
	StaffQuantities         map[string]int `dynamodbav:"staff_quantities,omitempty"`

	// Stored as a string: the unconfirmed-price sentinel is NaN, which a
	// DynamoDB number attribute rejects.
	BackendPrice string `dynamodbav:"backend_price"`

	UpdatedAt string `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists one customization draft per session.
//
// Table requirements:
//   - PK: session_id (string)
//
// Load is tolerant: a missing or unreadable record yields the empty default
// draft with a nil error, so a storage hiccup never strands a session.

type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client) *DraftDynamoRepository {
	return &DraftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAFTS_TABLE", defaultDraftsTableName),
	}
}

func (r *DraftDynamoRepository) Load(ctx context.Context, sessionID string) (entities.EventDraft, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EventDraft{}, err
	}
	if len(out.Item) == 0 {
		return entities.NewEventDraft(), nil
	}

	var rec draftRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		log.Printf("[draft][repository] unreadable record session_id=%s err=%v; using empty draft", sessionID, err)
		return entities.NewEventDraft(), nil
	}
	return fromDraftRecord(rec), nil
}

func (r *DraftDynamoRepository) Save(ctx context.Context, sessionID string, draft entities.EventDraft) error {
	av, err := attributevalue.MarshalMap(toDraftRecord(sessionID, draft))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	return err
}

func toDraftRecord(sessionID string, d entities.EventDraft) draftRecord {
	return draftRecord{
		SessionID: sessionID,

		CurrentStep:  d.CurrentStep,
		AnimatedStep: d.AnimatedStep,
		Direction:    d.Direction,

		SelectedEventType: d.SelectedEventType,

		EventName:       d.EventInfo.Name,
		EventDate:       d.EventInfo.Date,
		EventStartTime:  d.EventInfo.StartTime,
		EventGuestCount: d.EventInfo.GuestCount,
		EventDuration:   d.EventInfo.Duration,
		EventAddress:    d.EventInfo.Address,

		AlcoholicDrinkIDs:       d.AlcoholicDrinkIDs,
		NonAlcoholicDrinkIDs:    d.NonAlcoholicDrinkIDs,
		OtherBeverageQuantities: d.OtherBeverageQuantities,
		ShotQuantities:          d.ShotQuantities,
		StructureID:             d.StructureID,
		StaffQuantities:         d.StaffQuantities,

		BackendPrice: floatToString(d.BackendPrice),
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
}

func fromDraftRecord(rec draftRecord) entities.EventDraft {
	// ParseFloat round-trips the "NaN" sentinel; anything unreadable also
	// degrades to "price not confirmed".
	price, err := strconv.ParseFloat(rec.BackendPrice, 64)
	if err != nil {
		price = math.NaN()
	}

	d := entities.EventDraft{
		CurrentStep:  rec.CurrentStep,
		AnimatedStep: rec.AnimatedStep,
		Direction:    rec.Direction,

		SelectedEventType: rec.SelectedEventType,
		EventInfo: entities.EventInfo{
			Name:       rec.EventName,
			Date:       rec.EventDate,
			StartTime:  rec.EventStartTime,
			GuestCount: rec.EventGuestCount,
			Duration:   rec.EventDuration,
			Address:    rec.EventAddress,
		},

		AlcoholicDrinkIDs:       rec.AlcoholicDrinkIDs,
		NonAlcoholicDrinkIDs:    rec.NonAlcoholicDrinkIDs,
		OtherBeverageQuantities: rec.OtherBeverageQuantities,
		ShotQuantities:          rec.ShotQuantities,
		StructureID:             rec.StructureID,
		StaffQuantities:         rec.StaffQuantities,

		BackendPrice: price,
	}
	d.Normalize()
	return d
}
