package schemas

import "embed"

// SchemasFS содержит JSON-схемы событий и тел запросов.
//
//go:embed events payloads
var SchemasFS embed.FS
