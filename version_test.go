package hydr8_test

import (
	"testing"

	"github.com/0xalexb/hydr8"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefaults(t *testing.T) {
	assert.NotEmpty(t, hydr8.Version)
	assert.NotEmpty(t, hydr8.CompiledAt)
}
