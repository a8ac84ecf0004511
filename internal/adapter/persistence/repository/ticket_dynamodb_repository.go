package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTicketsTableName        = "Tickets"
	defaultTicketSubjectsTableName = "TicketSubjects"

	customerIDIndexName   = "CustomerIdIndex"
	ticketNumberIndexName = "TicketNumberIndex"
	statusDeviceIndexName = "StatusDeviceIndex"
	revenueIndexName      = "RevenueIndex"
	ticketSearchIndexName = "TicketSearchIndex"

	// Every ticket item carries gsi_pk="ALL" so the recency and
	// revenue indexes can range over the whole table under one
	// partition.
	gsiPKAll = "ALL"
)

type commentItem struct {
	CommentBody string `dynamodbav:"comment_body"`
	TechName    string `dynamodbav:"tech_name"`
	CreatedAt   int64  `dynamodbav:"created_at"`
}

type lineItemItem struct {
	Subject    string `dynamodbav:"subject"`
	PriceCents int64  `dynamodbav:"price_cents"`
}

type ticketItem struct {
	TicketNumber   int64          `dynamodbav:"ticket_number"`
	CustomerID     string         `dynamodbav:"customer_id"`
	Subject        string         `dynamodbav:"subject"`
	Status         string         `dynamodbav:"status"`
	Device         string         `dynamodbav:"device"`
	StatusDevice   string         `dynamodbav:"status_device"`
	GSIPK          string         `dynamodbav:"gsi_pk"`
	Password       string         `dynamodbav:"password,omitempty"`
	ItemsLeft      []string       `dynamodbav:"items_left,omitempty"`
	Attachments    []string       `dynamodbav:"attachments,omitempty"`
	Comments       []commentItem  `dynamodbav:"comments,omitempty"`
	LineItems      []lineItemItem `dynamodbav:"line_items,omitempty"`
	PaidAt         *int64         `dynamodbav:"paid_at,omitempty"`
	TotalPaidCents *int64         `dynamodbav:"total_paid_cents,omitempty"`
	CreatedAt      int64          `dynamodbav:"created_at"`
	LastUpdated    int64          `dynamodbav:"last_updated"`
}

type ticketSubjectItem struct {
	TicketNumber int64  `dynamodbav:"ticket_number"`
	SubjectLC    string `dynamodbav:"subject_lc"`
	GSIPK        string `dynamodbav:"gsi_pk"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - Tickets: PK ticket_number (N)
//   - GSI CustomerIdIndex: customer_id, ticket_number
//   - GSI TicketNumberIndex: gsi_pk, ticket_number
//   - GSI StatusDeviceIndex: status_device, ticket_number
//   - GSI RevenueIndex (sparse): gsi_pk, paid_at
//   - TicketSubjects: PK ticket_number (N)
//   - GSI TicketSearchIndex: gsi_pk, ticket_number
//
// Writes that touch the subject go through TransactWriteItems so the
// TicketSubjects projection stays in lockstep with the ticket.
type TicketDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	subjectsTable string

	// Import also writes customer rows, so it resolves the customer
	// tables through the same env vars the customer repository uses.
	customersTable string
	namesTable     string
	phoneTable     string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
		subjectsTable:  getenvDefault("TICKET_SUBJECTS_TABLE", defaultTicketSubjectsTableName),
		customersTable: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		namesTable:     getenvDefault("CUSTOMER_NAMES_TABLE", defaultCustomerNamesTableName),
		phoneTable:     getenvDefault("CUSTOMER_PHONE_INDEX_TABLE", defaultCustomerPhoneIndexTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) error {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return err
	}
	sav, err := attributevalue.MarshalMap(toTicketSubjectItem(t))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#tn)"),
				ExpressionAttributeNames: map[string]string{"#tn": "ticket_number"},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.subjectsTable),
				Item:      sav,
			}},
		},
	})
	return classifyWriteErr(err)
}

func (r *TicketDynamoRepository) GetByNumber(ctx context.Context, number int64) (entities.Ticket, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            ticketKey(number),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, false, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, false, err
	}
	return fromTicketItem(it), true, nil
}

func (r *TicketDynamoRepository) GetPaymentView(ctx context.Context, number int64) (entities.Ticket, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      ticketKey(number),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("ticket_number, line_items, device, #st, subject"),
		ExpressionAttributeNames: map[string]string{"#st": "status"},
	})
	if err != nil {
		return entities.Ticket{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, false, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, false, err
	}
	return fromTicketItem(it), true, nil
}

func (r *TicketDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(customerIDIndexName),
			KeyConditionExpression: aws.String("customer_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": strAttr(customerID),
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		page, err := unmarshalTickets(out.Items)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return tickets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TicketDynamoRepository) SearchNumbersBySubject(ctx context.Context, words []string, limit int) ([]int64, error) {
	filter, names, values := containsFilter("subject_lc", words)
	values[":gpk"] = strAttr(gsiPKAll)

	var numbers []int64
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.subjectsTable),
			IndexName:                 aws.String(ticketSearchIndexName),
			KeyConditionExpression:    aws.String("gsi_pk = :gpk"),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ScanIndexForward:          aws.Bool(false),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it ticketSubjectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			numbers = append(numbers, it.TicketNumber)
			if len(numbers) >= limit {
				return numbers, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return numbers, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TicketDynamoRepository) BatchGet(ctx context.Context, numbers []int64) ([]entities.Ticket, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(numbers))
	for _, n := range numbers {
		keys = append(keys, ticketKey(n))
	}

	var tickets []entities.Ticket
	for _, chunk := range chunkKeys(keys, 100) {
		responses, err := batchGetWithRetries(ctx, r.ddb, map[string]types.KeysAndAttributes{
			r.tableName: {Keys: chunk},
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalTickets(responses[r.tableName])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, page...)
	}
	return tickets, nil
}

func (r *TicketDynamoRepository) Recent(ctx context.Context, limit int32) ([]entities.Ticket, error) {
	return r.queryRecent(ctx, ticketNumberIndexName, "gsi_pk = :pk", strAttr(gsiPKAll), limit)
}

func (r *TicketDynamoRepository) RecentByStatusDevice(ctx context.Context, statusDevice string, limit int32) ([]entities.Ticket, error) {
	return r.queryRecent(ctx, statusDeviceIndexName, "status_device = :pk", strAttr(statusDevice), limit)
}

func (r *TicketDynamoRepository) queryRecent(ctx context.Context, index, keyCond string, pk types.AttributeValue, limit int32) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	var startKey map[string]types.AttributeValue

	for {
		remaining := limit - int32(len(tickets))
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String(keyCond),
			ExpressionAttributeValues: map[string]types.AttributeValue{":pk": pk},
			ScanIndexForward:          aws.Bool(false),
			Limit:                     aws.Int32(remaining),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}

		page, err := unmarshalTickets(out.Items)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, page...)

		if int32(len(tickets)) >= limit || len(out.LastEvaluatedKey) == 0 {
			return tickets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TicketDynamoRepository) ListPaidBetween(ctx context.Context, start, end int64) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(revenueIndexName),
			KeyConditionExpression: aws.String("gsi_pk = :pk AND paid_at BETWEEN :start AND :end"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk":    strAttr(gsiPKAll),
				":start": numAttr(start),
				":end":   numAttr(end),
			},
			ScanIndexForward:  aws.Bool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		page, err := unmarshalTickets(out.Items)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return tickets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TicketDynamoRepository) Update(ctx context.Context, number int64, u entities.TicketUpdate) error {
	status, device := "", ""
	statusChanging := u.Status != nil || u.Device != nil
	if statusChanging {
		// status_device is denormalized, so a change to either half
		// needs the other half's current value.
		cur, found, err := r.getStatusDevice(ctx, number)
		if err != nil {
			return err
		}
		if !found {
			return interfaces.ErrNotFound
		}
		status, device = cur.Status, cur.Device
		if u.Status != nil {
			status = string(*u.Status)
		}
		if u.Device != nil {
			device = string(*u.Device)
		}
	}

	expr, names, values, err := buildTicketUpdate(u, status, device)
	if err != nil {
		return err
	}

	cond := "attribute_exists(#tn)"
	names["#tn"] = "ticket_number"
	if u.Status != nil {
		// A Resolved ticket holding line items only leaves Resolved
		// through refund, and only enters it through payment.
		cond += " AND ((attribute_not_exists(line_items) OR size(line_items) = :zero) OR (#st <> :resolved AND :newst <> :resolved))"
		names["#st"] = "status"
		values[":zero"] = numAttr(0)
		values[":resolved"] = strAttr(string(entities.StatusResolved))
		values[":newst"] = strAttr(string(*u.Status))
	}

	if u.Subject != nil {
		sav, err := attributevalue.MarshalMap(ticketSubjectItem{
			TicketNumber: number,
			SubjectLC:    strings.ToLower(*u.Subject),
			GSIPK:        gsiPKAll,
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				{Update: &types.Update{
					TableName:                 aws.String(r.tableName),
					Key:                       ticketKey(number),
					UpdateExpression:          aws.String(expr),
					ConditionExpression:       aws.String(cond),
					ExpressionAttributeNames:  names,
					ExpressionAttributeValues: values,
				}},
				{Put: &types.Put{
					TableName: aws.String(r.subjectsTable),
					Item:      sav,
				}},
			},
		})
		return r.classifyUpdateErr(err, u, statusChanging)
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       ticketKey(number),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return r.classifyUpdateErr(err, u, statusChanging)
}

// classifyUpdateErr disambiguates a conditional failure on Update.
// When a status change was requested, existence was already verified
// by the status_device read, so the failed condition is the
// resolved-ticket lock; otherwise the attribute_exists guard failed.
func (r *TicketDynamoRepository) classifyUpdateErr(err error, u entities.TicketUpdate, existenceKnown bool) error {
	err = classifyWriteErr(err)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		if u.Status != nil && existenceKnown {
			return interfaces.ErrResolvedTicketLocked
		}
		return interfaces.ErrNotFound
	}
	return err
}

type statusDeviceView struct {
	Status string `dynamodbav:"status"`
	Device string `dynamodbav:"device"`
}

func (r *TicketDynamoRepository) getStatusDevice(ctx context.Context, number int64) (statusDeviceView, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      ticketKey(number),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#st, device"),
		ExpressionAttributeNames: map[string]string{"#st": "status"},
	})
	if err != nil {
		return statusDeviceView{}, false, err
	}
	if len(out.Item) == 0 {
		return statusDeviceView{}, false, nil
	}
	var v statusDeviceView
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return statusDeviceView{}, false, err
	}
	return v, true, nil
}

func (r *TicketDynamoRepository) AddComment(ctx context.Context, number int64, c entities.Comment) error {
	return r.appendToList(ctx, number, "comments", commentItem{
		CommentBody: c.CommentBody,
		TechName:    c.TechName,
		CreatedAt:   c.CreatedAt,
	}, c.CreatedAt)
}

func (r *TicketDynamoRepository) AppendAttachment(ctx context.Context, number int64, url string) error {
	now := nowEpoch()
	return r.appendToList(ctx, number, "attachments", url, now)
}

func (r *TicketDynamoRepository) appendToList(ctx context.Context, number int64, attr string, element any, now int64) error {
	one, err := attributevalue.Marshal([]any{element})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 ticketKey(number),
		UpdateExpression:    aws.String("SET #attr = list_append(if_not_exists(#attr, :empty), :one), last_updated = :now"),
		ConditionExpression: aws.String("attribute_exists(#tn)"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attr,
			"#tn":   "ticket_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":   one,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":now":   numAttr(now),
		},
	})
	err = classifyWriteErr(err)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return interfaces.ErrNotFound
	}
	return err
}

func (r *TicketDynamoRepository) ResolveWithPayment(ctx context.Context, number int64, device entities.Device, totalPaidCents int64, receipt entities.Comment, now int64) error {
	one, err := attributevalue.Marshal([]commentItem{{
		CommentBody: receipt.CommentBody,
		TechName:    receipt.TechName,
		CreatedAt:   receipt.CreatedAt,
	}})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       ticketKey(number),
		UpdateExpression: aws.String("SET #st = :resolved, status_device = :sd, paid_at = :now, " +
			"total_paid_cents = :total, comments = list_append(if_not_exists(comments, :empty), :one), last_updated = :now"),
		ConditionExpression:      aws.String("attribute_exists(#tn) AND #st <> :resolved"),
		ExpressionAttributeNames: map[string]string{"#st": "status", "#tn": "ticket_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":resolved": strAttr(string(entities.StatusResolved)),
			":sd":       strAttr(entities.StatusDevice(entities.StatusResolved, device)),
			":now":      numAttr(now),
			":total":    numAttr(totalPaidCents),
			":one":      one,
			":empty":    &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	return classifyWriteErr(err)
}

func (r *TicketDynamoRepository) RefundPayment(ctx context.Context, number int64, device entities.Device, comment entities.Comment, now int64) error {
	one, err := attributevalue.Marshal([]commentItem{{
		CommentBody: comment.CommentBody,
		TechName:    comment.TechName,
		CreatedAt:   comment.CreatedAt,
	}})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       ticketKey(number),
		UpdateExpression: aws.String("SET #st = :inprogress, status_device = :sd, " +
			"comments = list_append(if_not_exists(comments, :empty), :one), last_updated = :now " +
			"REMOVE paid_at, total_paid_cents"),
		ConditionExpression:      aws.String("attribute_exists(#tn) AND #st = :resolved"),
		ExpressionAttributeNames: map[string]string{"#st": "status", "#tn": "ticket_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inprogress": strAttr(string(entities.StatusInProgress)),
			":resolved":   strAttr(string(entities.StatusResolved)),
			":sd":         strAttr(entities.StatusDevice(entities.StatusInProgress, device)),
			":now":        numAttr(now),
			":one":        one,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	return classifyWriteErr(err)
}

func (r *TicketDynamoRepository) MarkDontFix(ctx context.Context, number int64, device entities.Device, comment entities.Comment, now int64) error {
	one, err := attributevalue.Marshal([]commentItem{{
		CommentBody: comment.CommentBody,
		TechName:    comment.TechName,
		CreatedAt:   comment.CreatedAt,
	}})
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key:       ticketKey(number),
		UpdateExpression: aws.String("SET #st = :ready, status_device = :sd, " +
			"comments = list_append(if_not_exists(comments, :empty), :one), last_updated = :now " +
			"REMOVE line_items"),
		ConditionExpression:      aws.String("attribute_exists(#tn)"),
		ExpressionAttributeNames: map[string]string{"#st": "status", "#tn": "ticket_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ready": strAttr(string(entities.StatusReady)),
			":sd":    strAttr(entities.StatusDevice(entities.StatusReady, device)),
			":now":   numAttr(now),
			":one":   one,
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	err = classifyWriteErr(err)
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return interfaces.ErrNotFound
	}
	return err
}

func (r *TicketDynamoRepository) Import(ctx context.Context, c entities.Customer, t entities.Ticket) error {
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
	tav, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return err
	}
	sav, err := attributevalue.MarshalMap(toTicketSubjectItem(t))
	if err != nil {
		return err
	}

	// Re-running a migration batch must be idempotent, so every Put
	// overwrites unconditionally.
	items := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.customersTable), Item: cav}},
		{Put: &types.Put{TableName: aws.String(r.namesTable), Item: nav}},
		{Put: &types.Put{TableName: aws.String(r.tableName), Item: tav}},
		{Put: &types.Put{TableName: aws.String(r.subjectsTable), Item: sav}},
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

func buildTicketUpdate(u entities.TicketUpdate, status, device string) (string, map[string]string, map[string]types.AttributeValue, error) {
	sets := []string{"last_updated = :now"}
	var removes []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{":now": numAttr(nowEpoch())}

	if u.Subject != nil {
		sets = append(sets, "subject = :subject")
		values[":subject"] = strAttr(*u.Subject)
	}
	if u.Status != nil {
		sets = append(sets, "#st = :st")
		names["#st"] = "status"
		values[":st"] = strAttr(string(*u.Status))
	}
	if u.Device != nil {
		sets = append(sets, "device = :device")
		values[":device"] = strAttr(string(*u.Device))
	}
	if u.Status != nil || u.Device != nil {
		sets = append(sets, "status_device = :sd")
		values[":sd"] = strAttr(status + "#" + device)
	}
	if u.Password != nil {
		if *u.Password == "" {
			removes = append(removes, "password")
		} else {
			sets = append(sets, "password = :password")
			values[":password"] = strAttr(*u.Password)
		}
	}
	if u.ItemsLeft != nil {
		if len(*u.ItemsLeft) == 0 {
			removes = append(removes, "items_left")
		} else {
			av, err := attributevalue.Marshal(*u.ItemsLeft)
			if err != nil {
				return "", nil, nil, err
			}
			sets = append(sets, "items_left = :items_left")
			values[":items_left"] = av
		}
	}
	if u.LineItems != nil {
		if len(*u.LineItems) == 0 {
			removes = append(removes, "line_items")
		} else {
			lis := make([]lineItemItem, 0, len(*u.LineItems))
			for _, li := range *u.LineItems {
				lis = append(lis, lineItemItem{Subject: li.Subject, PriceCents: li.PriceCents})
			}
			av, err := attributevalue.Marshal(lis)
			if err != nil {
				return "", nil, nil, err
			}
			sets = append(sets, "line_items = :line_items")
			values[":line_items"] = av
		}
	}

	expr := "SET " + strings.Join(sets, ", ")
	if len(removes) > 0 {
		expr += " REMOVE " + strings.Join(removes, ", ")
	}
	return expr, names, values, nil
}

// containsFilter builds an AND-of-contains filter over one attribute,
// e.g. "contains(#f, :w0) AND contains(#f, :w1)".
func containsFilter(attr string, words []string) (string, map[string]string, map[string]types.AttributeValue) {
	clauses := make([]string, 0, len(words))
	values := make(map[string]types.AttributeValue, len(words)+1)
	for i, w := range words {
		placeholder := ":w" + strconv.Itoa(i)
		clauses = append(clauses, fmt.Sprintf("contains(#f, %s)", placeholder))
		values[placeholder] = strAttr(strings.ToLower(w))
	}
	return strings.Join(clauses, " AND "), map[string]string{"#f": attr}, values
}

func ticketKey(number int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"ticket_number": numAttr(number)}
}

func unmarshalTickets(items []map[string]types.AttributeValue) ([]entities.Ticket, error) {
	tickets := make([]entities.Ticket, 0, len(items))
	for _, item := range items {
		var it ticketItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		tickets = append(tickets, fromTicketItem(it))
	}
	return tickets, nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	comments := make([]commentItem, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, commentItem{
			CommentBody: c.CommentBody,
			TechName:    c.TechName,
			CreatedAt:   c.CreatedAt,
		})
	}
	lineItems := make([]lineItemItem, 0, len(t.LineItems))
	for _, li := range t.LineItems {
		lineItems = append(lineItems, lineItemItem{Subject: li.Subject, PriceCents: li.PriceCents})
	}

	return ticketItem{
		TicketNumber:   t.TicketNumber,
		CustomerID:     t.CustomerID,
		Subject:        t.Subject,
		Status:         string(t.Status),
		Device:         string(t.Device),
		StatusDevice:   entities.StatusDevice(t.Status, t.Device),
		GSIPK:          gsiPKAll,
		Password:       t.Password,
		ItemsLeft:      t.ItemsLeft,
		Attachments:    t.Attachments,
		Comments:       comments,
		LineItems:      lineItems,
		PaidAt:         t.PaidAt,
		TotalPaidCents: t.TotalPaidCents,
		CreatedAt:      t.CreatedAt,
		LastUpdated:    t.LastUpdated,
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	comments := make([]entities.Comment, 0, len(it.Comments))
	for _, c := range it.Comments {
		comments = append(comments, entities.Comment{
			CommentBody: c.CommentBody,
			TechName:    c.TechName,
			CreatedAt:   c.CreatedAt,
		})
	}
	lineItems := make([]entities.LineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lineItems = append(lineItems, entities.LineItem{Subject: li.Subject, PriceCents: li.PriceCents})
	}

	return entities.Ticket{
		TicketNumber:   it.TicketNumber,
		CustomerID:     it.CustomerID,
		Subject:        it.Subject,
		Status:         entities.TicketStatus(it.Status),
		Device:         entities.Device(it.Device),
		Password:       it.Password,
		ItemsLeft:      it.ItemsLeft,
		Attachments:    it.Attachments,
		Comments:       comments,
		LineItems:      lineItems,
		PaidAt:         it.PaidAt,
		TotalPaidCents: it.TotalPaidCents,
		CreatedAt:      it.CreatedAt,
		LastUpdated:    it.LastUpdated,
	}
}

func toTicketSubjectItem(t entities.Ticket) ticketSubjectItem {
	return ticketSubjectItem{
		TicketNumber: t.TicketNumber,
		SubjectLC:    strings.ToLower(t.Subject),
		GSIPK:        gsiPKAll,
	}
}
