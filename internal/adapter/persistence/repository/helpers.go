package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"truetickets/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func nowEpoch() int64 {
	return time.Now().Unix()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func numAttr(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func strAttr(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// classifyWriteErr maps DynamoDB rejections onto the contract errors.
// Transaction cancellations and conditional-check failures both mean
// "a condition expression said no"; everything else bubbles up as-is.
func classifyWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var txnErr *types.TransactionCanceledException
	if errors.As(err, &txnErr) {
		for _, reason := range txnErr.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return fmt.Errorf("%w: %s", interfaces.ErrConditionFailed, txnErr.ErrorMessage())
			}
		}
		return fmt.Errorf("transaction canceled: %w", err)
	}
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return fmt.Errorf("%w: %s", interfaces.ErrConditionFailed, condErr.ErrorMessage())
	}
	return err
}

const batchGetMaxRetries = 5

// batchGetWithRetries drains a BatchGetItem request, re-queuing
// unprocessed keys with exponential backoff. If keys are still
// unprocessed after the last retry it fails with ErrPartialBatch
// rather than returning a silently partial result.
func batchGetWithRetries(
	ctx context.Context,
	ddb *dynamodb.Client,
	requestItems map[string]types.KeysAndAttributes,
) (map[string][]map[string]types.AttributeValue, error) {
	accumulated := make(map[string][]map[string]types.AttributeValue)
	current := requestItems

	for attempt := 1; ; attempt++ {
		out, err := ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: current,
		})
		if err != nil {
			return nil, fmt.Errorf("batch get: %w", err)
		}

		for table, items := range out.Responses {
			accumulated[table] = append(accumulated[table], items...)
		}

		if len(out.UnprocessedKeys) == 0 {
			return accumulated, nil
		}
		if attempt >= batchGetMaxRetries {
			return nil, interfaces.ErrPartialBatch
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond << attempt):
		}
		current = out.UnprocessedKeys
	}
}

// chunkKeys splits batch-get key sets below the service limit of 100.
func chunkKeys(keys []map[string]types.AttributeValue, size int) [][]map[string]types.AttributeValue {
	var chunks [][]map[string]types.AttributeValue
	for len(keys) > size {
		chunks = append(chunks, keys[:size])
		keys = keys[size:]
	}
	if len(keys) > 0 {
		chunks = append(chunks, keys)
	}
	return chunks
}
