// Package schemas embeds the JSON Schemas for documents skillsync reads.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
