package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityOf(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        int
	}{
		{"adults plus kid", "4 Adults + 1 Kid", 5},
		{"single number", "2 Adults", 2},
		{"numbers spread through text", "Sleeps 2, extra mattress for 1", 3},
		{"no numbers falls back", "Double bed", DefaultCapacity},
		{"empty falls back", "", DefaultCapacity},
		{"zero falls back", "0 Adults", DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapacityOf(tt.description))
		})
	}
}
