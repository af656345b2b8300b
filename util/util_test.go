package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(0), Sum([]int{}))
	assert.Equal(uint64(6), Sum([]int{1, 2, 3}))
	assert.Equal(uint64(510), Sum([]uint8{255, 255}))
}
