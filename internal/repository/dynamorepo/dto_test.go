package dynamorepo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/mrled/suns/numcheck/internal/model"
)

func TestFromDomain(t *testing.T) {
	testTime := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	record := &model.CheckRecord{
		ID:        "v1:abs:n:i:1",
		Kind:      model.KindAbs,
		Name:      "neg",
		Input:     "-5",
		Output:    "5",
		Passed:    true,
		CheckTime: testTime,
	}

	dto := FromDomain(record)

	// Check that PK and SK are correctly mapped
	if dto.PK != "abs" {
		t.Errorf("Expected PK to be 'abs', got '%s'", dto.PK)
	}
	if dto.SK != "v1:abs:n:i:1" {
		t.Errorf("Expected SK to be the record ID, got '%s'", dto.SK)
	}

	if dto.Name != record.Name || dto.Input != record.Input || dto.Output != record.Output {
		t.Errorf("Expected fields to be preserved, got %+v", dto)
	}
	if !dto.Passed {
		t.Error("Expected Passed to be preserved")
	}
	if !dto.CheckTime.Equal(testTime) {
		t.Errorf("Expected CheckTime to be '%s', got '%s'", testTime, dto.CheckTime)
	}
}

func TestToDomain(t *testing.T) {
	testTime := time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC)

	dto := &DynamoDTO{
		PK:        "palindrome",
		SK:        "v1:palindrome:n:i:2",
		Name:      "-121",
		Input:     "-121",
		Output:    "false",
		Passed:    false,
		CheckTime: testTime,
	}

	record := dto.ToDomain()

	if record.Kind != model.KindPalindrome {
		t.Errorf("Expected Kind palindrome, got '%s'", record.Kind)
	}
	if record.ID != dto.SK {
		t.Errorf("Expected ID '%s', got '%s'", dto.SK, record.ID)
	}
	if record.Output != "false" || record.Passed {
		t.Errorf("Unexpected result fields: %+v", record)
	}
}

func TestDTO_AttributeKeys(t *testing.T) {
	item, err := attributevalue.MarshalMap(FromDomain(&model.CheckRecord{
		ID:   "v1:assert:n:i:3",
		Kind: model.KindAssert,
	}))
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	pk, ok := item["pk"].(*types.AttributeValueMemberS)
	if !ok || pk.Value != "assert" {
		t.Errorf("Expected pk attribute 'assert', got %#v", item["pk"])
	}
	sk, ok := item["sk"].(*types.AttributeValueMemberS)
	if !ok || sk.Value != "v1:assert:n:i:3" {
		t.Errorf("Expected sk attribute to be the ID, got %#v", item["sk"])
	}
}

func TestToDomainList(t *testing.T) {
	dtos := []*DynamoDTO{
		{PK: "abs", SK: "1"},
		{PK: "assert", SK: "2"},
	}

	records := ToDomainList(dtos)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[1].Kind != model.KindAssert || records[1].ID != "2" {
		t.Errorf("Unexpected record: %+v", records[1])
	}
}
