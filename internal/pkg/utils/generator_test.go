package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMRN(t *testing.T) {
	t.Run("Always 9 Numeric Characters", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			mrn := GenerateMRN()

			assert.Len(t, mrn, 9, "MRN should be exactly 9 characters long")
			for _, c := range mrn {
				assert.True(t, c >= '0' && c <= '9', "MRN should contain only digits, got %q", mrn)
			}
		}
	})

	t.Run("Successive Calls Differ", func(t *testing.T) {
		// Not a uniqueness guarantee, just a sanity check that the generator
		// is not returning a constant.
		first := GenerateMRN()
		second := GenerateMRN()
		assert.NotEqual(t, first, second)
	})
}

func TestGenerateRequestID(t *testing.T) {
	assert.NotEmpty(t, GenerateRequestID())
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
