package repository

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestPhoneNumberItem_FalseFlagsStored(t *testing.T) {
	av, err := attributevalue.MarshalMap(phoneNumberItem{Number: "555-0100"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, attr := range []string{"prefers_texting", "no_english"} {
		v, ok := av[attr]
		if !ok {
			t.Fatalf("expected %s attribute on the item, got %v", attr, av)
		}
		b, ok := v.(*types.AttributeValueMemberBOOL)
		if !ok || b.Value {
			t.Fatalf("expected %s to be BOOL false, got %#v", attr, v)
		}
	}
}
