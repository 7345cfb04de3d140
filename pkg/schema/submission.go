package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const SubmissionSchemaTextV1 = `{
	"type": "record",
	"namespace": "kanoha",
	"name": "submission",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "kind", "type": "string"},
		{"name": "visitor_id", "type": "string"},
		{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
		{"name": "contact", "type": {
			"type": "record",
			"name": "contact",
			"fields": [
				{"name": "first_name", "type": "string"},
				{"name": "last_name", "type": "string"},
				{"name": "email", "type": "string"},
				{"name": "company", "type": "string"},
				{"name": "phone", "type": "string"}
			]
		}},
		{"name": "subject", "type": "string"},
		{"name": "message", "type": "string"},
		{"name": "business_type", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "item",
				"fields": [
					{"name": "id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "img", "type": "string"},
					{"name": "quantity", "type": "int"}
				]
			}
		}}
	]
}`

type (
	SubmissionV1 struct {
		ID           string       `avro:"id"`
		Kind         string       `avro:"kind"`
		VisitorID    string       `avro:"visitor_id"`
		CreatedAt    time.Time    `avro:"created_at"`
		Contact      ContactV1    `avro:"contact"`
		Subject      string       `avro:"subject"`
		Message      string       `avro:"message"`
		BusinessType string       `avro:"business_type"`
		Items        []CartItemV1 `avro:"items"`
	}

	ContactV1 struct {
		FirstName string `avro:"first_name"`
		LastName  string `avro:"last_name"`
		Email     string `avro:"email"`
		Company   string `avro:"company"`
		Phone     string `avro:"phone"`
	}

	CartItemV1 struct {
		ID       string `avro:"id"`
		Name     string `avro:"name"`
		Img      string `avro:"img"`
		Quantity int    `avro:"quantity"`
	}
)

// SubmissionV1Avro parses [SubmissionSchemaTextV1]. It panics on a broken schema.
func SubmissionV1Avro() avro.Schema {
	return avro.MustParse(SubmissionSchemaTextV1)
}
