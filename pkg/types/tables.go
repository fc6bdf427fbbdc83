package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "gorlea_"

const (
	TABLE_ENTRY        = TableName("entry")
	TABLE_MEMORY       = TableName("memory")
	TABLE_USER         = TableName("user")
	TABLE_ACCESS_TOKEN = TableName("access_token")
)
