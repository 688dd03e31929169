// Package common contains shared constants and the error taxonomy used across
// Croissant components.
package common

// AppName is shown in greetings and CLI banners.
const AppName = "Croissant"

// Stages name the step an operation failed at. They prefix every error
// message that crosses the command boundary, e.g. "Insert error: ...".
const (
	StageConfig     = "Config"
	StageConnection = "Connection"
	StageHash       = "Hash"
	StageVerify     = "Verify"
	StageQuery      = "Query"
	StageInsert     = "Insert"
	StageUpdate     = "Update"
	StageDelete     = "Delete"
)
