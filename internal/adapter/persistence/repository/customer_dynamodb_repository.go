package repository

import (
	"context"
	"errors"
	"strings"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName          = "Customers"
	defaultCustomerNamesTableName      = "CustomerNames"
	defaultCustomerPhoneIndexTableName = "CustomerPhoneIndex"
)

type phoneNumberItem struct {
	Number         string `dynamodbav:"number"`
	PrefersTexting bool   `dynamodbav:"prefers_texting"`
	NoEnglish      bool   `dynamodbav:"no_english"`
}

type customerItem struct {
	CustomerID   string            `dynamodbav:"customer_id"`
	FullName     string            `dynamodbav:"full_name"`
	Email        string            `dynamodbav:"email,omitempty"`
	PhoneNumbers []phoneNumberItem `dynamodbav:"phone_numbers"`
	CreatedAt    int64             `dynamodbav:"created_at"`
	LastUpdated  int64             `dynamodbav:"last_updated"`
}

type customerNameItem struct {
	CustomerID string `dynamodbav:"customer_id"`
	FullNameLC string `dynamodbav:"full_name_lc"`
}

type customerPhoneItem struct {
	PhoneNumber string `dynamodbav:"phone_number"`
	CustomerID  string `dynamodbav:"customer_id"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - Customers: PK customer_id (S)
//   - CustomerNames: PK customer_id (S), attr full_name_lc
//   - CustomerPhoneIndex: PK phone_number (S), SK customer_id (S)
//
// CustomerNames and CustomerPhoneIndex are derived data; every
// mutation commits the primary row and its index side effects in one
// transaction so they cannot drift.
type CustomerDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	namesTable string
	phoneTable string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		namesTable: getenvDefault("CUSTOMER_NAMES_TABLE", defaultCustomerNamesTableName),
		phoneTable: getenvDefault("CUSTOMER_PHONE_INDEX_TABLE", defaultCustomerPhoneIndexTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) error {
	cav, err := attributevalue.MarshalMap(toCustomerItem(c))
	if err != nil {
		return err
	}
	nav, err := attributevalue.MarshalMap(customerNameItem{
		CustomerID: c.CustomerID,
		FullNameLC: strings.ToLower(c.FullName),
	})
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     cav,
			ConditionExpression:      aws.String("attribute_not_exists(#cid)"),
			ExpressionAttributeNames: map[string]string{"#cid": "customer_id"},
		}},
		{Put: &types.Put{TableName: aws.String(r.namesTable), Item: nav}},
	}
	for _, pn := range c.PhoneNumbers {
		pav, err := attributevalue.MarshalMap(customerPhoneItem{
			PhoneNumber: pn.Number,
			CustomerID:  c.CustomerID,
		})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.phoneTable), Item: pav},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return classifyWriteErr(err)
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            customerKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, false, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, false, err
	}
	return fromCustomerItem(it), true, nil
}

func (r *CustomerDynamoRepository) ListByPhone(ctx context.Context, phone string) ([]entities.Customer, error) {
	var ids []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.phoneTable),
			KeyConditionExpression: aws.String("phone_number = :p"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":p": strAttr(phone),
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it customerPhoneItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.CustomerID)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return r.batchGet(ctx, ids, "customer_id, full_name, phone_numbers")
}

func (r *CustomerDynamoRepository) SearchIDsByName(ctx context.Context, words []string, limit int) ([]string, error) {
	filter, names, values := containsFilter("full_name_lc", words)

	var ids []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.namesTable),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it customerNameItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.CustomerID)
			if len(ids) >= limit {
				return ids, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CustomerDynamoRepository) BatchGet(ctx context.Context, ids []string) ([]entities.Customer, error) {
	return r.batchGet(ctx, ids, "customer_id, full_name, email, phone_numbers, created_at, last_updated")
}

func (r *CustomerDynamoRepository) batchGet(ctx context.Context, ids []string, projection string) ([]entities.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, customerKey(id))
	}

	var customers []entities.Customer
	for _, chunk := range chunkKeys(keys, 100) {
		responses, err := batchGetWithRetries(ctx, r.ddb, map[string]types.KeysAndAttributes{
			r.tableName: {
				Keys:                 chunk,
				ProjectionExpression: aws.String(projection),
			},
		})
		if err != nil {
			return nil, err
		}
		for _, item := range responses[r.tableName] {
			var it customerItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			customers = append(customers, fromCustomerItem(it))
		}
	}
	return customers, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, id string, u entities.CustomerUpdate) error {
	expr, names, values, err := buildCustomerUpdate(u)
	if err != nil {
		return err
	}
	names["#cid"] = "customer_id"

	update := &types.Update{
		TableName:                 aws.String(r.tableName),
		Key:                       customerKey(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#cid)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}

	items := []types.TransactWriteItem{{Update: update}}

	if u.FullName != nil {
		nav, err := attributevalue.MarshalMap(customerNameItem{
			CustomerID: id,
			FullNameLC: strings.ToLower(*u.FullName),
		})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.namesTable), Item: nav},
		})
	}

	if u.PhoneNumbers != nil {
		// Diff against the stored numbers so stale phone index rows
		// are deleted in the same transaction.
		current, found, err := r.getPhoneNumbers(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return interfaces.ErrNotFound
		}

		next := make(map[string]bool, len(*u.PhoneNumbers))
		for _, pn := range *u.PhoneNumbers {
			next[pn.Number] = true
		}
		prev := make(map[string]bool, len(current))
		for _, pn := range current {
			prev[pn.Number] = true
		}

		for _, pn := range current {
			if !next[pn.Number] {
				items = append(items, types.TransactWriteItem{
					Delete: &types.Delete{
						TableName: aws.String(r.phoneTable),
						Key: map[string]types.AttributeValue{
							"phone_number": strAttr(pn.Number),
							"customer_id":  strAttr(id),
						},
					},
				})
			}
		}
		for _, pn := range *u.PhoneNumbers {
			if !prev[pn.Number] {
				pav, err := attributevalue.MarshalMap(customerPhoneItem{
					PhoneNumber: pn.Number,
					CustomerID:  id,
				})
				if err != nil {
					return err
				}
				items = append(items, types.TransactWriteItem{
					Put: &types.Put{TableName: aws.String(r.phoneTable), Item: pav},
				})
			}
		}
	}

	if len(items) == 1 {
		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 update.TableName,
			Key:                       update.Key,
			UpdateExpression:          update.UpdateExpression,
			ConditionExpression:       update.ConditionExpression,
			ExpressionAttributeNames:  update.ExpressionAttributeNames,
			ExpressionAttributeValues: update.ExpressionAttributeValues,
		})
	} else {
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	}

	err = classifyWriteErr(err)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return interfaces.ErrNotFound
	}
	return err
}

func (r *CustomerDynamoRepository) getPhoneNumbers(ctx context.Context, id string) ([]phoneNumberItem, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.tableName),
		Key:                  customerKey(id),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("phone_numbers"),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.PhoneNumbers, true, nil
}

func buildCustomerUpdate(u entities.CustomerUpdate) (string, map[string]string, map[string]types.AttributeValue, error) {
	sets := []string{"last_updated = :now"}
	var removes []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{":now": numAttr(nowEpoch())}

	if u.FullName != nil {
		sets = append(sets, "full_name = :full_name")
		values[":full_name"] = strAttr(*u.FullName)
	}
	if u.Email != nil {
		if *u.Email == "" {
			removes = append(removes, "email")
		} else {
			sets = append(sets, "email = :email")
			values[":email"] = strAttr(*u.Email)
		}
	}
	if u.PhoneNumbers != nil {
		pns := make([]phoneNumberItem, 0, len(*u.PhoneNumbers))
		for _, pn := range *u.PhoneNumbers {
			pns = append(pns, phoneNumberItem{
				Number:         pn.Number,
				PrefersTexting: pn.PrefersTexting,
				NoEnglish:      pn.NoEnglish,
			})
		}
		av, err := attributevalue.Marshal(pns)
		if err != nil {
			return "", nil, nil, err
		}
		sets = append(sets, "phone_numbers = :phone_numbers")
		values[":phone_numbers"] = av
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, names, values, nil
}

func customerKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"customer_id": strAttr(id)}
}

func toCustomerItem(c entities.Customer) customerItem {
	pns := make([]phoneNumberItem, 0, len(c.PhoneNumbers))
	for _, pn := range c.PhoneNumbers {
		pns = append(pns, phoneNumberItem{
			Number:         pn.Number,
			PrefersTexting: pn.PrefersTexting,
			NoEnglish:      pn.NoEnglish,
		})
	}
	return customerItem{
		CustomerID:   c.CustomerID,
		FullName:     c.FullName,
		Email:        c.Email,
		PhoneNumbers: pns,
		CreatedAt:    c.CreatedAt,
		LastUpdated:  c.LastUpdated,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	pns := make([]entities.PhoneNumber, 0, len(it.PhoneNumbers))
	for _, pn := range it.PhoneNumbers {
		pns = append(pns, entities.PhoneNumber{
			Number:         pn.Number,
			PrefersTexting: pn.PrefersTexting,
			NoEnglish:      pn.NoEnglish,
		})
	}
	return entities.Customer{
		CustomerID:   it.CustomerID,
		FullName:     it.FullName,
		Email:        it.Email,
		PhoneNumbers: pns,
		CreatedAt:    it.CreatedAt,
		LastUpdated:  it.LastUpdated,
	}
}
