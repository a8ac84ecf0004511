package repository

import (
	"context"
	"strings"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultConfigTableName      = "Config"
	defaultTimeEntriesTableName = "TimeEntries"
	defaultPurchasesTableName   = "Purchases"

	// All timeclock entries share one partition so a day's logs for
	// the whole shop are a single range query over the sort key.
	timeEntriesPK = "ALL"

	storeConfigKey     = "config"
	clockedInKeySuffix = "#is_clocked_in"
	wageKeySuffix      = "#wage"
)

type timeEntryItem struct {
	PK         string `dynamodbav:"pk"`
	Timestamp  int64  `dynamodbav:"timestamp"`
	UserName   string `dynamodbav:"user_name"`
	IsClockOut bool   `dynamodbav:"is_clock_out"`
}

type clockStateItem struct {
	ConfigKey   string `dynamodbav:"config_key"`
	ClockedIn   bool   `dynamodbav:"clocked_in"`
	LastUpdated int64  `dynamodbav:"last_updated"`
}

type wageItem struct {
	ConfigKey string `dynamodbav:"config_key"`
	WageCents int64  `dynamodbav:"wage_cents"`
}

type purchaseItemItem struct {
	Name        string `dynamodbav:"name"`
	AmountCents int64  `dynamodbav:"amount_cents"`
}

type purchasesItem struct {
	MonthYear string             `dynamodbav:"month_year"`
	Items     []purchaseItemItem `dynamodbav:"items"`
}

type storeConfigItem struct {
	ConfigKey  string  `dynamodbav:"config_key"`
	StoreName  string  `dynamodbav:"store_name"`
	TaxRate    float64 `dynamodbav:"tax_rate"`
	Address    string  `dynamodbav:"address"`
	City       string  `dynamodbav:"city"`
	State      string  `dynamodbav:"state"`
	Zip        string  `dynamodbav:"zip"`
	Phone      string  `dynamodbav:"phone"`
	Email      string  `dynamodbav:"email"`
	Disclaimer string  `dynamodbav:"disclaimer"`
}

// OperationsDynamoRepository covers shop-operations state.
//
// Table requirements:
//   - Config: PK config_key (S). Holds the "config" singleton plus
//     the per-user "{user}#is_clocked_in" and "{user}#wage" rows.
//   - TimeEntries: PK pk (S), SK timestamp (N)
//   - Purchases: PK month_year (S)
type OperationsDynamoRepository struct {
	ddb              *dynamodb.Client
	configTable      string
	timeEntriesTable string
	purchasesTable   string
}

var _ interfaces.IOperationsRepository = (*OperationsDynamoRepository)(nil)

func NewOperationsDynamoRepository(ddb *dynamodb.Client) *OperationsDynamoRepository {
	return &OperationsDynamoRepository{
		ddb:              ddb,
		configTable:      getenvDefault("CONFIG_TABLE", defaultConfigTableName),
		timeEntriesTable: getenvDefault("TIME_ENTRIES_TABLE", defaultTimeEntriesTableName),
		purchasesTable:   getenvDefault("PURCHASES_TABLE", defaultPurchasesTableName),
	}
}

func (r *OperationsDynamoRepository) ClockInOut(ctx context.Context, user string, clockingIn bool, now int64) error {
	eav, err := attributevalue.MarshalMap(timeEntryItem{
		PK:         timeEntriesPK,
		Timestamp:  now,
		UserName:   user,
		IsClockOut: !clockingIn,
	})
	if err != nil {
		return err
	}
	sav, err := attributevalue.MarshalMap(clockStateItem{
		ConfigKey:   user + clockedInKeySuffix,
		ClockedIn:   clockingIn,
		LastUpdated: now,
	})
	if err != nil {
		return err
	}

	// Clocking in requires being clocked out (or never clocked) and
	// vice versa; racing double taps lose the transaction.
	cond := "clocked_in = :prev"
	if clockingIn {
		cond = "attribute_not_exists(config_key) OR clocked_in = :prev"
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(r.timeEntriesTable),
				Item:      eav,
			}},
			{Put: &types.Put{
				TableName:           aws.String(r.configTable),
				Item:                sav,
				ConditionExpression: aws.String(cond),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":prev": &types.AttributeValueMemberBOOL{Value: !clockingIn},
				},
			}},
		},
	})
	return classifyWriteErr(err)
}

func (r *OperationsDynamoRepository) ClockStatus(ctx context.Context, user string) (entities.ClockState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.configTable),
		Key:            configKey(user + clockedInKeySuffix),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClockState{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClockState{}, nil
	}

	var it clockStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClockState{}, err
	}
	return entities.ClockState{ClockedIn: it.ClockedIn, LastUpdated: it.LastUpdated}, nil
}

func (r *OperationsDynamoRepository) ListTimeEntries(ctx context.Context, start, end int64) ([]entities.TimeEntry, error) {
	var entries []entities.TimeEntry
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.timeEntriesTable),
			KeyConditionExpression: aws.String("pk = :pk AND #ts BETWEEN :start AND :end"),
			ExpressionAttributeNames: map[string]string{
				"#ts": "timestamp",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":    strAttr(timeEntriesPK),
				":start": numAttr(start),
				":end":   numAttr(end),
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it timeEntryItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			entries = append(entries, entities.TimeEntry{
				PK:         it.PK,
				UserName:   it.UserName,
				Timestamp:  it.Timestamp,
				IsClockOut: it.IsClockOut,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			return entries, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *OperationsDynamoRepository) RewriteClockLogs(ctx context.Context, user string, startOfDay, endOfDay int64, segments []entities.TimeSegment) error {
	existing, err := r.ListTimeEntries(ctx, startOfDay, endOfDay)
	if err != nil {
		return err
	}

	var items []types.TransactWriteItem
	for _, e := range existing {
		if e.UserName != user {
			continue
		}
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.timeEntriesTable),
				Key: map[string]types.AttributeValue{
					"pk":        strAttr(timeEntriesPK),
					"timestamp": numAttr(e.Timestamp),
				},
			},
		})
	}

	for _, seg := range segments {
		in, err := attributevalue.MarshalMap(timeEntryItem{
			PK: timeEntriesPK, Timestamp: seg.Start, UserName: user, IsClockOut: false,
		})
		if err != nil {
			return err
		}
		out, err := attributevalue.MarshalMap(timeEntryItem{
			PK: timeEntriesPK, Timestamp: seg.End, UserName: user, IsClockOut: true,
		})
		if err != nil {
			return err
		}
		items = append(items,
			types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.timeEntriesTable), Item: in}},
			types.TransactWriteItem{Put: &types.Put{TableName: aws.String(r.timeEntriesTable), Item: out}},
		)
	}

	if len(items) == 0 {
		return nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return classifyWriteErr(err)
}

func (r *OperationsDynamoRepository) GetWages(ctx context.Context, users []string) (map[string]int64, error) {
	if len(users) == 0 {
		return map[string]int64{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(users))
	for _, u := range users {
		keys = append(keys, configKey(u+wageKeySuffix))
	}

	wages := make(map[string]int64, len(users))
	for _, chunk := range chunkKeys(keys, 100) {
		responses, err := batchGetWithRetries(ctx, r.ddb, map[string]types.KeysAndAttributes{
			r.configTable: {Keys: chunk},
		})
		if err != nil {
			return nil, err
		}
		for _, item := range responses[r.configTable] {
			var it wageItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			user := strings.TrimSuffix(it.ConfigKey, wageKeySuffix)
			wages[user] = it.WageCents
		}
	}
	return wages, nil
}

func (r *OperationsDynamoRepository) PutWage(ctx context.Context, user string, wageCents int64) error {
	av, err := attributevalue.MarshalMap(wageItem{
		ConfigKey: user + wageKeySuffix,
		WageCents: wageCents,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.configTable),
		Item:      av,
	})
	return err
}

func (r *OperationsDynamoRepository) GetPurchases(ctx context.Context, monthYear string) (entities.MonthPurchases, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.purchasesTable),
		Key: map[string]types.AttributeValue{
			"month_year": strAttr(monthYear),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MonthPurchases{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.MonthPurchases{}, false, nil
	}

	var it purchasesItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MonthPurchases{}, false, err
	}

	items := make([]entities.PurchaseItem, 0, len(it.Items))
	for _, pi := range it.Items {
		items = append(items, entities.PurchaseItem{Name: pi.Name, AmountCents: pi.AmountCents})
	}
	return entities.MonthPurchases{MonthYear: it.MonthYear, Items: items}, true, nil
}

func (r *OperationsDynamoRepository) PutPurchases(ctx context.Context, mp entities.MonthPurchases) error {
	items := make([]purchaseItemItem, 0, len(mp.Items))
	for _, pi := range mp.Items {
		items = append(items, purchaseItemItem{Name: pi.Name, AmountCents: pi.AmountCents})
	}
	av, err := attributevalue.MarshalMap(purchasesItem{MonthYear: mp.MonthYear, Items: items})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.purchasesTable),
		Item:      av,
	})
	return err
}

func (r *OperationsDynamoRepository) GetStoreConfig(ctx context.Context) (entities.StoreConfig, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.configTable),
		Key:            configKey(storeConfigKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoreConfig{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.StoreConfig{}, false, nil
	}

	var it storeConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoreConfig{}, false, err
	}
	return entities.StoreConfig{
		StoreName:  it.StoreName,
		TaxRate:    it.TaxRate,
		Address:    it.Address,
		City:       it.City,
		State:      it.State,
		Zip:        it.Zip,
		Phone:      it.Phone,
		Email:      it.Email,
		Disclaimer: it.Disclaimer,
	}, true, nil
}

func (r *OperationsDynamoRepository) PutStoreConfig(ctx context.Context, sc entities.StoreConfig) error {
	av, err := attributevalue.MarshalMap(storeConfigItem{
		ConfigKey:  storeConfigKey,
		StoreName:  sc.StoreName,
		TaxRate:    sc.TaxRate,
		Address:    sc.Address,
		City:       sc.City,
		State:      sc.State,
		Zip:        sc.Zip,
		Phone:      sc.Phone,
		Email:      sc.Email,
		Disclaimer: sc.Disclaimer,
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.configTable),
		Item:      av,
	})
	return err
}

func (r *OperationsDynamoRepository) GetTaxRate(ctx context.Context) (float64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.configTable),
		Key:                  configKey(storeConfigKey),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("tax_rate"),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	var it storeConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.TaxRate, nil
}

func configKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"config_key": strAttr(key)}
}
