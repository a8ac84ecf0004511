package repository

import (
	"context"
	"strconv"

	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCountersTableName = "Counters"
	ticketCounterName        = "ticket_number"
)

// CounterDynamoRepository owns the ticket-number counter.
//
// Table requirements:
//   - Counters: PK counter_name (S), attr counter_value (N)
//
// Allocation is a single atomic UpdateItem, so two concurrent creates
// can never observe the same value.
type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) NextTicketNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              counterKey(),
		UpdateExpression: aws.String("SET counter_value = if_not_exists(counter_value, :zero) + :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": numAttr(0),
			":one":  numAttr(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	return counterValue(out.Attributes)
}

func (r *CounterDynamoRepository) CurrentTicketNumber(ctx context.Context) (int64, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            counterKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}
	n, err := counterValue(out.Item)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

func (r *CounterDynamoRepository) RaiseTicketNumber(ctx context.Context, n int64) error {
	// Guard against a stale migration batch lowering the counter.
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 counterKey(),
		UpdateExpression:    aws.String("SET counter_value = :new"),
		ConditionExpression: aws.String("attribute_not_exists(counter_value) OR counter_value <= :new"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": numAttr(n),
		},
	})
	return classifyWriteErr(err)
}

func counterKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"counter_name": strAttr(ticketCounterName)}
}

func counterValue(attrs map[string]types.AttributeValue) (int64, error) {
	v, ok := attrs["counter_value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, interfaces.ErrDataIntegrity
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
