package dynamostream

import (
	"fmt"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/numcheck/internal/model"
)

// ConvertToCheckRecord converts a DynamoDB NewImage map to a CheckRecord.
// The image uses the layout written by dynamorepo: pk is the kind, sk the record ID.
func ConvertToCheckRecord(newImage map[string]events.DynamoDBAttributeValue) (*model.CheckRecord, error) {
	if newImage == nil {
		return nil, fmt.Errorf("newImage is nil")
	}

	record := &model.CheckRecord{
		Kind:   model.CheckKind(ExtractStringAttribute(newImage, "pk")),
		ID:     ExtractStringAttribute(newImage, "sk"),
		Name:   ExtractStringAttribute(newImage, "Name"),
		Input:  ExtractStringAttribute(newImage, "Input"),
		Output: ExtractStringAttribute(newImage, "Output"),
	}

	if record.Kind == "" {
		return nil, fmt.Errorf("missing required field: Kind (pk)")
	}
	kind, err := model.ParseCheckKind(string(record.Kind))
	if err != nil {
		return nil, err
	}
	record.Kind = kind
	if record.ID == "" {
		return nil, fmt.Errorf("missing required field: ID (sk)")
	}

	// Passed - required
	if passed, ok := newImage["Passed"]; ok && passed.DataType() == events.DataTypeBoolean {
		record.Passed = passed.Boolean()
	} else {
		return nil, fmt.Errorf("missing required field: Passed")
	}

	// CheckTime - required; attributevalue writes time.Time as RFC3339Nano
	if checkTime, ok := newImage["CheckTime"]; ok && checkTime.DataType() == events.DataTypeString {
		t, err := time.Parse(time.RFC3339Nano, checkTime.String())
		if err != nil {
			return nil, fmt.Errorf("invalid CheckTime format: %w", err)
		}
		record.CheckTime = t
	} else {
		return nil, fmt.Errorf("missing required field: CheckTime")
	}

	return record, nil
}

// ExtractStringAttribute extracts a string value from DynamoDB attribute map
func ExtractStringAttribute(attrs map[string]events.DynamoDBAttributeValue, key string) string {
	if attr, ok := attrs[key]; ok {
		if attr.DataType() == events.DataTypeString {
			return attr.String()
		}
	}
	return ""
}
