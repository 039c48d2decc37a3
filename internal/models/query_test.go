package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Label(t *testing.T) {
	assert.Equal(t, "a.pdf", Source{Filename: "a.pdf", Source: "s3://a"}.Label())
	assert.Equal(t, "b.csv", Source{Source: "b.csv"}.Label())
	assert.Equal(t, "Unknown source", Source{}.Label())
}

func TestQueryResult_ExactlyOneVariant(t *testing.T) {
	results := []QueryResult{
		Approved("ok", nil),
		Denied("no"),
		Failed(FailureTransport, "down"),
	}

	for _, r := range results {
		active := 0
		for _, v := range []bool{r.IsApproved(), r.IsDenied(), r.IsError()} {
			if v {
				active++
			}
		}
		assert.Equal(t, 1, active, "status %s", r.Status)
	}
}

func TestApproved_DefaultsSources(t *testing.T) {
	r := Approved("answer", nil)
	assert.NotNil(t, r.Sources)
	assert.Empty(t, r.Sources)
}

func TestUserRecord_Identifier(t *testing.T) {
	assert.Equal(t, "1003", UserRecord{UserID: "1003", ID: "x"}.Identifier())
	assert.Equal(t, "x", UserRecord{ID: "x"}.Identifier())
}
