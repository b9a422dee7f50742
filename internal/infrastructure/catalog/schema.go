package catalog

// catalogSchema is the JSON Schema every catalog file must satisfy before
// import. Status values mirror the ImplementationStatus enum.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["framework", "controls"],
  "properties": {
    "framework": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1, "maxLength": 200},
        "version": {"type": "string", "maxLength": 50},
        "description": {"type": "string"}
      },
      "additionalProperties": false
    },
    "controls": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["code", "title"],
        "properties": {
          "code": {"type": "string", "minLength": 1, "maxLength": 50},
          "title": {"type": "string", "minLength": 1, "maxLength": 300},
          "description": {"type": "string"},
          "owner": {"type": "string", "maxLength": 200},
          "tags": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          },
          "status": {
            "type": "string",
            "enum": ["not_implemented", "partially_implemented", "implemented", "not_applicable"]
          }
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`
