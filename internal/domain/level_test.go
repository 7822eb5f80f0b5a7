package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		minutes int
		want    ActivityLevel
	}{
		{0, LevelNone},
		{1, LevelLight},
		{29, LevelLight},
		{30, LevelMedium},
		{119, LevelMedium},
		{120, LevelHigh},
		{239, LevelHigh},
		{240, LevelMax},
		{600, LevelMax},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, LevelFor(c.minutes), "minutes=%d", c.minutes)
	}
}

func TestLevelFor_NegativeIsNone(t *testing.T) {
	assert.Equal(t, LevelNone, LevelFor(-5))
}
