// Package fields parses packet field definitions into the diagram model.
//
// Two input formats are accepted:
//
// Inline, a comma-separated list of Name:bits tokens where bits is a
// positive integer or "*" for a variable-length field:
//
//	Type:16,Length:16,Payload:*
//
// JSON, an object holding a fields array under the same constraints:
//
//	{"fields": [
//	    {"name": "Type", "bits": 16},
//	    {"name": "Payload", "bits": "*"}
//	]}
//
// ParseInput auto-detects the format: an argument naming an existing .json
// file is parsed as a JSON document, anything else as an inline definition.
//
// All parse errors identify the offending token or field index. An input
// that yields no fields at all fails with ErrNoFields.
package fields
