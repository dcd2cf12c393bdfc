package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Category(t *testing.T) {
	assert.Equal(t, DefaultEntryType, Entry{}.Category())
	assert.Equal(t, "meeting", Entry{Type: "meeting"}.Category())
}
