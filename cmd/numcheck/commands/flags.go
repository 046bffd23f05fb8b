package commands

import (
	"github.com/mrled/suns/numcheck/internal/repository"
	"github.com/spf13/cobra"
)

// PersistenceFlags holds flags related to persistence and data storage options
type PersistenceFlags struct {
	FilePath       string
	DynamoTable    string
	DynamoEndpoint string
}

// addPersistenceFlags adds common persistence-related flags to a command
func addPersistenceFlags(cmd *cobra.Command, flags *PersistenceFlags) {
	cmd.Flags().StringVarP(&flags.FilePath, "file", "f", "", "Path to JSON file for check history")
	cmd.Flags().StringVarP(&flags.DynamoTable, "dynamodb-table", "t", "", "DynamoDB table name for check history")
	cmd.Flags().StringVarP(&flags.DynamoEndpoint, "dynamodb-endpoint", "e", "", "DynamoDB endpoint URL (optional, uses AWS SDK default if not specified)")
}

// RepositoryConfig converts the flags into a repository configuration
func (f PersistenceFlags) RepositoryConfig() repository.RepositoryConfig {
	return repository.RepositoryConfig{
		FilePath:       f.FilePath,
		DynamoTable:    f.DynamoTable,
		DynamoEndpoint: f.DynamoEndpoint,
	}
}
