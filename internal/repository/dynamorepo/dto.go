package dynamorepo

import (
	"time"

	"github.com/mrled/suns/numcheck/internal/model"
)

// DynamoDTO represents the persistence layer DTO for DynamoDB
// It maps the domain model to DynamoDB's key structure where:
// - PK (partition key) is the check kind
// - SK (sort key) is the record ID
type DynamoDTO struct {
	PK        string    `dynamodbav:"pk"` // Partition Key - maps from Kind
	SK        string    `dynamodbav:"sk"` // Sort Key - maps from ID
	Name      string    `dynamodbav:"Name"`
	Input     string    `dynamodbav:"Input"`
	Output    string    `dynamodbav:"Output"`
	Passed    bool      `dynamodbav:"Passed"`
	CheckTime time.Time `dynamodbav:"CheckTime"`
}

// ToDomain converts a DynamoDTO to a domain model CheckRecord
func (dto *DynamoDTO) ToDomain() *model.CheckRecord {
	return &model.CheckRecord{
		ID:        dto.SK,
		Kind:      model.CheckKind(dto.PK),
		Name:      dto.Name,
		Input:     dto.Input,
		Output:    dto.Output,
		Passed:    dto.Passed,
		CheckTime: dto.CheckTime,
	}
}

// FromDomain creates a DynamoDTO from a domain model CheckRecord
func FromDomain(record *model.CheckRecord) *DynamoDTO {
	return &DynamoDTO{
		PK:        string(record.Kind),
		SK:        record.ID,
		Name:      record.Name,
		Input:     record.Input,
		Output:    record.Output,
		Passed:    record.Passed,
		CheckTime: record.CheckTime,
	}
}

// ToDomainList converts a slice of DynamoDTOs to domain model CheckRecords
func ToDomainList(dtos []*DynamoDTO) []*model.CheckRecord {
	records := make([]*model.CheckRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.ToDomain()
	}
	return records
}
