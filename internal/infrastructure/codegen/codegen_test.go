package codegen_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/aerocode/internal/infrastructure/codegen"
)

var codePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

func TestAircraftCode_Formato(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := codegen.AircraftCode()
		assert.Regexp(t, codePattern, c)
		seen[c] = true
	}
	assert.Greater(t, len(seen), 45, "los códigos deben variar")
}
